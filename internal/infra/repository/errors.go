package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps a driver error onto the apperr kinds. Anything that is not
// a constraint violation is a transport failure.
func translate(op string, err error) error {
	if err == nil || apperr.IsKnown(err) {
		return err
	}

	var pgErr *pgconn.PgError
	isPg := errors.As(err, &pgErr)

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), isPg && pgErr.Code == pgUniqueViolation:
		field := "unique"
		if isPg && pgErr.ConstraintName != "" {
			field = pgErr.ConstraintName
		}
		return apperr.Conflict(field, "")
	case errors.Is(err, gorm.ErrForeignKeyViolated), isPg && pgErr.Code == pgForeignKeyViolation:
		return apperr.Validation("customer_id", "referencia inexistente")
	}

	return apperr.Transport(op, err)
}

// --------------------------------------------------
// Shared lookups
// --------------------------------------------------

func first[T any](ctx context.Context, db *gorm.DB, entity string, id uint) (T, error) {
	var row T
	err := db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, apperr.NotFound(entity, id)
	}
	if err != nil {
		return row, translate("get "+entity, err)
	}
	return row, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, entity string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate("delete "+entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(entity, id)
	}
	return nil
}

// updateColumns writes only the columns the patch set, after dropping any
// derived key. row must already carry the patched values.
func updateColumns(ctx context.Context, db *gorm.DB, op string, row any, cols map[string]any) error {
	names := gateway.ColumnNames(gateway.Strip(cols))
	if len(names) == 0 {
		return nil
	}
	return translate(op, db.WithContext(ctx).Model(row).Select(names).Updates(row).Error)
}

// refuseIfReferenced fails with a ValidationError on field when any row of
// model still matches query.
func refuseIfReferenced(ctx context.Context, db *gorm.DB, model any, field, message, query string, args ...any) error {
	n, err := count(ctx, db, model, query, args...)
	if err != nil {
		return translate("check "+field+" references", err)
	}
	if n > 0 {
		return apperr.Validation(field, message)
	}
	return nil
}

func count(ctx context.Context, db *gorm.DB, model any, query string, args ...any) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error
	return n, err
}

// requireCustomer fails with a ValidationError when the id does not resolve.
func requireCustomer(ctx context.Context, db *gorm.DB, id uint) error {
	if id == 0 {
		return apperr.Validation("customer_id", "el cliente es obligatorio")
	}
	n, err := count(ctx, db, &models.Customer{}, "id = ?", id)
	if err != nil {
		return translate("check customer", err)
	}
	if n == 0 {
		return apperr.Validation("customer_id", "el cliente no existe")
	}
	return nil
}

func findCustomer(ctx context.Context, db *gorm.DB, id uint) (*models.Customer, error) {
	var c models.Customer
	err := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&c).Error
	if err != nil {
		return nil, translate("get customer", err)
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}
