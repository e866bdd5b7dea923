package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type transactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *transactionRepository) GetAll(ctx context.Context) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllTransactions)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetAll").
			Msg("failed to query all transactions")
		return nil, fmt.Errorf("failed to query all transactions: %w", err)
	}
	defer rows.Close()

	var items []models.Transaction

	for rows.Next() {
		item, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "transactionRepository.GetAll").
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("failed to scan transaction row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "transactionRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating transaction rows: %w", rowsErr)
	}

	return items, nil
}

func (r *transactionRepository) Get(ctx context.Context, id string) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, selectTransaction, id)
	item, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "transactionRepository.Get").
			Str("id", id).
			Msg("failed to scan transaction row")
		return models.Transaction{}, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}

	return item, nil
}

func (r *transactionRepository) Add(ctx context.Context, t models.Transaction) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertTransaction,
		t.ID,
		t.Type,
		t.Amount.String(),
		t.Description,
		t.Category,
		t.Date,
		t.Notes,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Add").
			Str("id", t.ID).
			Msg("failed to insert transaction")
		return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
	}

	return nil
}

func (r *transactionRepository) Update(ctx context.Context, t models.Transaction) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateTransaction,
		t.Type,
		t.Amount.String(),
		t.Description,
		t.Category,
		t.Date,
		t.Notes,
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Update").
			Str("id", t.ID).
			Msg("failed to update transaction")
		return fmt.Errorf("failed to update transaction %s: %w", t.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for transaction %s: %w", t.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteTransaction, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

func (r *transactionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllTransactions); err != nil {
		return fmt.Errorf("failed to delete all transactions: %w", err)
	}
	return nil
}

func (r *transactionRepository) Filter(ctx context.Context, f TransactionFilter) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "type", "amount", "description", "category", "date", "notes", "created_at", "updated_at").
		From("transactions").
		OrderBy("date DESC", "id")

	if f.Type != "" {
		builder = builder.Where(sq.Eq{"type": f.Type})
	}
	if f.Category != "" {
		builder = builder.Where(sq.Eq{"category": f.Category})
	}
	if f.From != "" {
		builder = builder.Where(sq.GtOrEq{"date": f.From})
	}
	if f.To != "" {
		builder = builder.Where(sq.LtOrEq{"date": f.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction filter query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Filter").
			Msg("failed to query filtered transactions")
		return nil, fmt.Errorf("failed to query filtered transactions: %w", err)
	}
	defer rows.Close()

	var items []models.Transaction
	for rows.Next() {
		item, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rowsErr)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		item      models.Transaction
		amount    string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	if err := row.Scan(
		&item.ID,
		&item.Type,
		&amount,
		&item.Description,
		&item.Category,
		&item.Date,
		&item.Notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		return models.Transaction{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	item.Amount = parsed

	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		item.UpdatedAt = updatedAt.Time
	}

	return item, nil
}
