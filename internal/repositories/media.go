package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

const mediaColumns = `media_id, business_id, media_type, urls, description, sort_order, file_name, file_size, content_type, created_at`

type MediaReadRepository struct {
	db *sqlx.DB
}

func NewMediaReadRepository(db *sqlx.DB) *MediaReadRepository {
	return &MediaReadRepository{db: db}
}

// GetByID fetches a media item by primary key. Returns (nil, nil) when missing.
func (r *MediaReadRepository) GetByID(ctx context.Context, mediaID uuid.UUID) (*models.MediaDB, error) {
	query := `SELECT ` + mediaColumns + ` FROM business_media WHERE media_id = $1`

	var media models.MediaDB
	err := r.db.GetContext(ctx, &media, query, mediaID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// ListByBusiness returns all media for a business in display order.
func (r *MediaReadRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.MediaDB, error) {
	query := `SELECT ` + mediaColumns + ` FROM business_media WHERE business_id = $1 ORDER BY sort_order ASC, created_at ASC`

	media := []models.MediaDB{}
	err := r.db.SelectContext(ctx, &media, query, businessID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{businessID},
		"result", len(media),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return media, nil
}

type MediaWriteRepository struct {
	db *sqlx.DB
}

func NewMediaWriteRepository(db *sqlx.DB) *MediaWriteRepository {
	return &MediaWriteRepository{db: db}
}

// Save inserts a media row; sort_order appends after the business's
// existing media.
func (r *MediaWriteRepository) Save(ctx context.Context, m *models.MediaDB) error {
	query := `
		INSERT INTO business_media (media_id, business_id, media_type, urls, description, sort_order, file_name, file_size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM business_media WHERE business_id = $2),
			$6, $7, $8, NOW())
	`
	args := []any{
		m.MediaID, m.BusinessID, m.MediaType, m.URLs, m.Description,
		m.FileName, m.FileSize, m.ContentType,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{m.MediaID, m.BusinessID, m.MediaType},
		"error", err,
	)

	return err
}

// Delete removes a media row.
func (r *MediaWriteRepository) Delete(ctx context.Context, mediaID uuid.UUID) error {
	query := `DELETE FROM business_media WHERE media_id = $1`

	res, err := r.db.ExecContext(ctx, query, mediaID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mediaID},
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
