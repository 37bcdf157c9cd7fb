package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/localbiz/marketplace-api/internal/models"
)

func mediaRows(items ...*models.MediaDB) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"media_id", "business_id", "media_type", "urls", "description",
		"sort_order", "file_name", "file_size", "content_type", "created_at",
	})
	for _, m := range items {
		urls, _ := m.URLs.Value()
		rows.AddRow(
			m.MediaID, m.BusinessID, m.MediaType, urls, m.Description,
			m.SortOrder, m.FileName, m.FileSize, m.ContentType, time.Now(),
		)
	}
	return rows
}

func TestMediaReadRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMediaReadRepository(db)

	businessID := uuid.New()
	first := &models.MediaDB{
		MediaID:    uuid.New(),
		BusinessID: businessID,
		MediaType:  models.MediaTypeLogo,
		URLs:       models.VariantURLs{"thumbnail": "https://cdn.example.com/t.jpg"},
		SortOrder:  0,
	}
	second := &models.MediaDB{
		MediaID:    uuid.New(),
		BusinessID: businessID,
		MediaType:  models.MediaTypePhoto,
		SortOrder:  1,
	}

	t.Run("get by id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM business_media WHERE media_id = \$1`).
			WithArgs(first.MediaID).
			WillReturnRows(mediaRows(first))

		got, err := repo.GetByID(context.Background(), first.MediaID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "https://cdn.example.com/t.jpg", got.URLs["thumbnail"])
	})

	t.Run("missing returns nil", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM business_media WHERE media_id = \$1`).
			WithArgs(second.MediaID).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByID(context.Background(), second.MediaID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by business keeps sort order", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM business_media WHERE business_id = \$1 ORDER BY sort_order ASC`).
			WithArgs(businessID).
			WillReturnRows(mediaRows(first, second))

		got, err := repo.ListByBusiness(context.Background(), businessID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, first.MediaID, got[0].MediaID)
		assert.Equal(t, second.MediaID, got[1].MediaID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMediaWriteRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMediaWriteRepository(db)

	media := &models.MediaDB{
		MediaID:     uuid.New(),
		BusinessID:  uuid.New(),
		MediaType:   models.MediaTypePhoto,
		URLs:        models.VariantURLs{"large": "https://cdn.example.com/l.jpg"},
		FileName:    "storefront.jpg",
		FileSize:    2048,
		ContentType: "image/jpeg",
	}

	t.Run("save appends sort order", func(t *testing.T) {
		mock.ExpectExec(`(?s)INSERT INTO business_media.+SELECT COALESCE\(MAX\(sort_order\), -1\) \+ 1`).
			WithArgs(
				media.MediaID, media.BusinessID, media.MediaType, media.URLs,
				media.Description, media.FileName, media.FileSize, media.ContentType,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(context.Background(), media))
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM business_media WHERE media_id = \$1`).
			WithArgs(media.MediaID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), media.MediaID))
	})

	t.Run("delete missing row reports no rows", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM business_media WHERE media_id = \$1`).
			WithArgs(media.MediaID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), media.MediaID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
