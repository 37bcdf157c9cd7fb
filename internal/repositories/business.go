package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

const businessColumns = `business_id, owner_id, name, description, location, categories, hours, contact, services, is_active, created_at, updated_at`

type BusinessReadRepository struct {
	db *sqlx.DB
}

func NewBusinessReadRepository(db *sqlx.DB) *BusinessReadRepository {
	return &BusinessReadRepository{db: db}
}

// GetByID fetches an active business by primary key. Returns (nil, nil)
// when missing or soft-deleted.
func (r *BusinessReadRepository) GetByID(ctx context.Context, businessID uuid.UUID) (*models.BusinessDB, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1 AND is_active = TRUE`

	var business models.BusinessDB
	err := r.db.GetContext(ctx, &business, query, businessID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{businessID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetByOwnerAndName performs the best-effort per-owner name-uniqueness
// lookup. Not transactional with the subsequent insert; a concurrent
// request can still create a duplicate.
func (r *BusinessReadRepository) GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.BusinessDB, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 AND LOWER(name) = LOWER($2) AND is_active = TRUE LIMIT 1`

	var business models.BusinessDB
	err := r.db.GetContext(ctx, &business, query, ownerID, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// buildFilter translates a BusinessFilter into WHERE conditions.
func buildFilter(filter models.BusinessFilter, args []any) (string, []any) {
	conds := []string{"is_active = TRUE"}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("categories @> to_jsonb(ARRAY[$%d::text])", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// List returns one page of active businesses matching the filter, newest first.
func (r *BusinessReadRepository) List(ctx context.Context, filter models.BusinessFilter, limit, offset int) ([]models.BusinessDB, error) {
	where, args := buildFilter(filter, nil)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT %s FROM businesses WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		businessColumns, where, len(args)-1, len(args),
	)

	businesses := []models.BusinessDB{}
	err := r.db.SelectContext(ctx, &businesses, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(businesses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return businesses, nil
}

// Count returns the number of active businesses matching the filter.
func (r *BusinessReadRepository) Count(ctx context.Context, filter models.BusinessFilter) (int64, error) {
	where, args := buildFilter(filter, nil)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM businesses WHERE %s`, where)

	var count int64
	err := r.db.GetContext(ctx, &count, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}

type BusinessWriteRepository struct {
	db *sqlx.DB
}

func NewBusinessWriteRepository(db *sqlx.DB) *BusinessWriteRepository {
	return &BusinessWriteRepository{db: db}
}

// Save inserts a new business row.
func (r *BusinessWriteRepository) Save(ctx context.Context, b *models.BusinessDB) error {
	query := `
		INSERT INTO businesses (business_id, owner_id, name, description, location, categories, hours, contact, services, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW(), NOW())
	`
	args := []any{
		b.BusinessID, b.OwnerID, b.Name, b.Description,
		b.Location, b.Categories, b.Hours, b.Contact, b.Services,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{b.BusinessID, b.OwnerID, b.Name},
		"error", err,
	)

	return err
}

// Update mutates the mutable fields of an existing business.
func (r *BusinessWriteRepository) Update(ctx context.Context, b *models.BusinessDB) error {
	query := `
		UPDATE businesses
		SET name = $2, description = $3, location = $4, categories = $5,
		    hours = $6, contact = $7, services = $8, updated_at = NOW()
		WHERE business_id = $1 AND is_active = TRUE
	`
	args := []any{
		b.BusinessID, b.Name, b.Description,
		b.Location, b.Categories, b.Hours, b.Contact, b.Services,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{b.BusinessID, b.Name},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDelete flips is_active off; the row and its media records remain.
func (r *BusinessWriteRepository) SoftDelete(ctx context.Context, businessID uuid.UUID) error {
	query := `UPDATE businesses SET is_active = FALSE, updated_at = NOW() WHERE business_id = $1 AND is_active = TRUE`

	res, err := r.db.ExecContext(ctx, query, businessID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{businessID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
