package variant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога вариантов (inventory catalog)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория вариантов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает вариант по ID
// capacity IS NULL означает неограниченную вместимость
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Variant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"name",
		"capacity",
		"attributes",
		"created_at",
		"updated_at",
	).
		From("variants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Variant
	var capacity sql.NullInt64
	var attributes []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.ProductID,
		&v.Name,
		&capacity,
		&attributes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan variant: %v", ErrScanRow, err)
	}

	if capacity.Valid {
		c := int(capacity.Int64)
		v.Capacity = &c
	}

	if len(attributes) > 0 {
		if err := json.Unmarshal(attributes, &v.Attributes); err != nil {
			return nil, fmt.Errorf("%w: GetByID - decode attributes: %v", ErrScanRow, err)
		}
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// ListByProduct получает все варианты товара
func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]*domain.Variant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"name",
		"capacity",
		"attributes",
		"created_at",
		"updated_at",
	).
		From("variants").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	variants := make([]*domain.Variant, 0)
	for rows.Next() {
		var v domain.Variant
		var capacity sql.NullInt64
		var attributes []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&v.Name,
			&capacity,
			&attributes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProduct - scan row: %v", ErrScanRow, err)
		}

		if capacity.Valid {
			c := int(capacity.Int64)
			v.Capacity = &c
		}
		if len(attributes) > 0 {
			if err := json.Unmarshal(attributes, &v.Attributes); err != nil {
				return nil, fmt.Errorf("%w: ListByProduct - decode attributes: %v", ErrScanRow, err)
			}
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time

		variants = append(variants, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - rows error: %v", ErrScanRow, err)
	}

	return variants, nil
}

// UpdateCapacity обновляет вместимость варианта
// capacity = nil снимает ограничение (неограниченная вместимость).
// Уже записанные бронирования не пересматриваются
func (r *Repository) UpdateCapacity(ctx context.Context, id int64, capacity *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("variants").
		Set("capacity", capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVariantNotFound
	}

	return nil
}
