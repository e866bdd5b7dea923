package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gil100/Personal-Finance--sub001/internal/logger"
	"github.com/Gil100/Personal-Finance--sub001/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	return &categoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllCategories)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.GetAll").
			Msg("failed to query all categories")
		return nil, fmt.Errorf("failed to query all categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category

	for rows.Next() {
		item, scanErr := scanCategory(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "categoryRepository.GetAll").
				Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category row: %w", scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rowsErr)
	}

	return items, nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (models.Category, error) {
	row := r.DB.QueryRowContext(ctx, selectCategory, id)
	item, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, fmt.Errorf("failed to get category %s: %w", id, err)
	}

	return item, nil
}

func (r *categoryRepository) Add(ctx context.Context, c models.Category) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertCategory,
		c.ID,
		c.Name,
		c.Type,
		c.Color,
		c.Icon,
		c.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Add").
			Str("id", c.ID).
			Msg("failed to insert category")
		return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c models.Category) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateCategory,
		c.Name,
		c.Type,
		c.Color,
		c.Icon,
		c.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "categoryRepository.Update").
			Str("id", c.ID).
			Msg("failed to update category")
		return fmt.Errorf("failed to update category %s: %w", c.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for category %s: %w", c.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteCategory, id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

func (r *categoryRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllCategories); err != nil {
		return fmt.Errorf("failed to delete all categories: %w", err)
	}
	return nil
}

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		item      models.Category
		createdAt sql.NullTime
	)

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Type,
		&item.Color,
		&item.Icon,
		&createdAt,
	); err != nil {
		return models.Category{}, err
	}

	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}

	return item, nil
}
