package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gil100/Personal-Finance--sub001/internal/store"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

// In-memory repository stubs. Maps are copied on read so tests can compare
// storage state before and after an operation. failOn lets a test inject an
// error for a specific record id.

type memTransactionRepo struct {
	items  map[string]models.Transaction
	failOn map[string]error
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{items: map[string]models.Transaction{}, failOn: map[string]error{}}
}

func (r *memTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTransactionRepo) Get(ctx context.Context, id string) (models.Transaction, error) {
	t, ok := r.items[id]
	if !ok {
		return models.Transaction{}, store.ErrNotFound
	}
	return t, nil
}

func (r *memTransactionRepo) Add(ctx context.Context, t models.Transaction) error {
	if err := r.failOn[t.ID]; err != nil {
		return err
	}
	if _, exists := r.items[t.ID]; exists {
		return fmt.Errorf("duplicate transaction %s", t.ID)
	}
	r.items[t.ID] = t
	return nil
}

func (r *memTransactionRepo) Update(ctx context.Context, t models.Transaction) error {
	if err := r.failOn[t.ID]; err != nil {
		return err
	}
	if _, exists := r.items[t.ID]; !exists {
		return store.ErrNotFound
	}
	r.items[t.ID] = t
	return nil
}

func (r *memTransactionRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memTransactionRepo) DeleteAll(ctx context.Context) error {
	r.items = map[string]models.Transaction{}
	return nil
}

func (r *memTransactionRepo) Filter(ctx context.Context, f store.TransactionFilter) ([]models.Transaction, error) {
	return r.GetAll(ctx)
}

type memCategoryRepo struct {
	items  map[string]models.Category
	failOn map[string]error
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: map[string]models.Category{}, failOn: map[string]error{}}
}

func (r *memCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategoryRepo) Get(ctx context.Context, id string) (models.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (r *memCategoryRepo) Add(ctx context.Context, c models.Category) error {
	if err := r.failOn[c.ID]; err != nil {
		return err
	}
	r.items[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Update(ctx context.Context, c models.Category) error {
	if err := r.failOn[c.ID]; err != nil {
		return err
	}
	if _, exists := r.items[c.ID]; !exists {
		return store.ErrNotFound
	}
	r.items[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memCategoryRepo) DeleteAll(ctx context.Context) error {
	r.items = map[string]models.Category{}
	return nil
}

type memAccountRepo struct {
	items  map[string]models.Account
	failOn map[string]error
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{items: map[string]models.Account{}, failOn: map[string]error{}}
}

func (r *memAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	out := make([]models.Account, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memAccountRepo) Get(ctx context.Context, id string) (models.Account, error) {
	a, ok := r.items[id]
	if !ok {
		return models.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (r *memAccountRepo) Add(ctx context.Context, a models.Account) error {
	if err := r.failOn[a.ID]; err != nil {
		return err
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAccountRepo) Update(ctx context.Context, a models.Account) error {
	if err := r.failOn[a.ID]; err != nil {
		return err
	}
	if _, exists := r.items[a.ID]; !exists {
		return store.ErrNotFound
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAccountRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memAccountRepo) DeleteAll(ctx context.Context) error {
	r.items = map[string]models.Account{}
	return nil
}

type memSettingsRepo struct {
	values models.Settings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{values: models.Settings{}}
}

func (r *memSettingsRepo) Get(ctx context.Context) (models.Settings, error) {
	out := models.Settings{}
	for k, v := range r.values {
		out[k] = v
	}
	return out, nil
}

func (r *memSettingsRepo) Put(ctx context.Context, s models.Settings) error {
	for k, v := range s {
		r.values[k] = v
	}
	return nil
}

func (r *memSettingsRepo) Replace(ctx context.Context, s models.Settings) error {
	r.values = models.Settings{}
	return r.Put(ctx, s)
}

type memDeviceRepo struct {
	deviceID string
	lastSync time.Time
}

func newMemDeviceRepo() *memDeviceRepo {
	return &memDeviceRepo{}
}

func (r *memDeviceRepo) GetDeviceID(ctx context.Context) (string, error) {
	if r.deviceID == "" {
		return "", store.ErrNotFound
	}
	return r.deviceID, nil
}

func (r *memDeviceRepo) SaveDeviceID(ctx context.Context, deviceID string) error {
	r.deviceID = deviceID
	return nil
}

func (r *memDeviceRepo) DeleteDeviceID(ctx context.Context) error {
	r.deviceID = ""
	return nil
}

func (r *memDeviceRepo) LastSyncTime(ctx context.Context) (time.Time, error) {
	if r.lastSync.IsZero() {
		return time.Time{}, store.ErrNotFound
	}
	return r.lastSync, nil
}

func (r *memDeviceRepo) SetLastSyncTime(ctx context.Context, t time.Time) error {
	r.lastSync = t
	return nil
}

type memSyncQueueRepo struct {
	entries []models.SyncQueueEntry
}

func newMemSyncQueueRepo() *memSyncQueueRepo {
	return &memSyncQueueRepo{}
}

func (r *memSyncQueueRepo) Append(ctx context.Context, e models.SyncQueueEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memSyncQueueRepo) Pending(ctx context.Context) ([]models.SyncQueueEntry, error) {
	out := make([]models.SyncQueueEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *memSyncQueueRepo) Clear(ctx context.Context) error {
	r.entries = nil
	return nil
}

type memStorages struct {
	transactions *memTransactionRepo
	categories   *memCategoryRepo
	accounts     *memAccountRepo
	settings     *memSettingsRepo
	device       *memDeviceRepo
	syncQueue    *memSyncQueueRepo
}

func newMemStorages() (*store.Storages, *memStorages) {
	mem := &memStorages{
		transactions: newMemTransactionRepo(),
		categories:   newMemCategoryRepo(),
		accounts:     newMemAccountRepo(),
		settings:     newMemSettingsRepo(),
		device:       newMemDeviceRepo(),
		syncQueue:    newMemSyncQueueRepo(),
	}
	storages := &store.Storages{
		Transactions: mem.transactions,
		Categories:   mem.categories,
		Accounts:     mem.accounts,
		Settings:     mem.settings,
		Device:       mem.device,
		SyncQueue:    mem.syncQueue,
	}
	return storages, mem
}
