package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type accountRepository struct {
	*DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *accountRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllAccounts)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.GetAll").
			Msg("failed to query all accounts")
		return nil, fmt.Errorf("failed to query all accounts: %w", err)
	}
	defer rows.Close()

	var items []models.Account

	for rows.Next() {
		item, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountRepository.GetAll").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("failed to scan account row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rowsErr)
	}

	return items, nil
}

func (r *accountRepository) Get(ctx context.Context, id string) (models.Account, error) {
	row := r.DB.QueryRowContext(ctx, selectAccount, id)
	item, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}
		return models.Account{}, fmt.Errorf("failed to get account %s: %w", id, err)
	}

	return item, nil
}

func (r *accountRepository) Add(ctx context.Context, a models.Account) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertAccount,
		a.ID,
		a.Name,
		a.Type,
		a.Balance.String(),
		a.Currency,
		a.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Add").
			Str("id", a.ID).
			Msg("failed to insert account")
		return fmt.Errorf("failed to insert account %s: %w", a.ID, err)
	}

	return nil
}

func (r *accountRepository) Update(ctx context.Context, a models.Account) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateAccount,
		a.Name,
		a.Type,
		a.Balance.String(),
		a.Currency,
		a.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Update").
			Str("id", a.ID).
			Msg("failed to update account")
		return fmt.Errorf("failed to update account %s: %w", a.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for account %s: %w", a.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteAccount, id); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}

func (r *accountRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllAccounts); err != nil {
		return fmt.Errorf("failed to delete all accounts: %w", err)
	}
	return nil
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		item      models.Account
		balance   string
		createdAt sql.NullTime
	)

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Type,
		&balance,
		&item.Currency,
		&createdAt,
	); err != nil {
		return models.Account{}, err
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return models.Account{}, fmt.Errorf("invalid stored balance %q: %w", balance, err)
	}
	item.Balance = parsed

	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}

	return item, nil
}
