package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/localbiz/marketplace-api/internal/apperrors"
	"github.com/localbiz/marketplace-api/internal/jwt"
	"github.com/localbiz/marketplace-api/internal/logger"
	"github.com/localbiz/marketplace-api/internal/models"
)

var (
	ErrBusinessNotFound  = apperrors.New("business not found", http.StatusNotFound)
	ErrBusinessNameTaken = apperrors.New("a business with this name already exists", http.StatusConflict)
	ErrInvalidCategory   = apperrors.New("unknown business category", http.StatusBadRequest)
	ErrNotBusinessOwner  = apperrors.New("only business owners can create listings", http.StatusForbidden)
	ErrForbidden         = apperrors.New("you do not have access to this business", http.StatusForbidden)
)

// BusinessReader defines read-only operations for businesses.
type BusinessReader interface {
	GetByID(ctx context.Context, businessID uuid.UUID) (*models.BusinessDB, error)
	GetByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*models.BusinessDB, error)
	List(ctx context.Context, filter models.BusinessFilter, limit, offset int) ([]models.BusinessDB, error)
	Count(ctx context.Context, filter models.BusinessFilter) (int64, error)
}

// BusinessWriter defines write operations for businesses.
type BusinessWriter interface {
	Save(ctx context.Context, b *models.BusinessDB) error
	Update(ctx context.Context, b *models.BusinessDB) error
	SoftDelete(ctx context.Context, businessID uuid.UUID) error
}

// MediaReader defines read-only operations for business media.
type MediaReader interface {
	GetByID(ctx context.Context, mediaID uuid.UUID) (*models.MediaDB, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.MediaDB, error)
}

// BusinessCache caches business DTOs; a miss returns (nil, nil).
type BusinessCache interface {
	Get(ctx context.Context, businessID uuid.UUID) (*models.Business, error)
	Set(ctx context.Context, business *models.Business) error
	Delete(ctx context.Context, businessID uuid.UUID) error
}

// BusinessInput carries the client-supplied fields of a listing.
type BusinessInput struct {
	Name        string
	Description string
	Location    models.BusinessLocation
	Categories  models.StringList
	Hours       models.Hours
	Contact     models.Contact
	Services    models.StringList
}

// BusinessService handles business listing CRUD and DTO mapping.
type BusinessService struct {
	reader      BusinessReader
	writer      BusinessWriter
	media       MediaReader
	cache       BusinessCache
	kafkaWriter KafkaWriter
}

// NewBusinessService creates a new BusinessService instance.
func NewBusinessService(
	reader BusinessReader,
	writer BusinessWriter,
	media MediaReader,
	cache BusinessCache,
	kafkaWriter KafkaWriter,
) *BusinessService {
	return &BusinessService{
		reader:      reader,
		writer:      writer,
		media:       media,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// canManage reports whether the actor owns the business or is an admin.
func canManage(b *models.BusinessDB, actor *jwt.Claims) bool {
	return actor.Role == models.RoleAdmin || b.OwnerID == actor.UserID
}

func validateCategories(categories models.StringList) error {
	for _, c := range categories {
		if !models.ValidCategory(c) {
			return ErrInvalidCategory
		}
	}
	return nil
}

// Create registers a new business listing for the acting owner.
// The per-owner name-uniqueness check is best-effort: it is not
// transactional with the insert, so concurrent requests can still race.
func (svc *BusinessService) Create(ctx context.Context, actor *jwt.Claims, input BusinessInput) (*models.Business, error) {
	if actor.Role != models.RoleBusinessOwner && actor.Role != models.RoleAdmin {
		return nil, ErrNotBusinessOwner
	}
	if err := validateCategories(input.Categories); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByOwnerAndName(ctx, actor.UserID, input.Name)
	if err != nil {
		logger.Log.Errorw("failed to check business name", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("business name taken", "owner_id", actor.UserID, "name", input.Name)
		return nil, ErrBusinessNameTaken
	}

	business := &models.BusinessDB{
		BusinessID:  uuid.New(),
		OwnerID:     actor.UserID,
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Categories:  input.Categories,
		Hours:       input.Hours,
		Contact:     input.Contact,
		Services:    input.Services,
		IsActive:    true,
	}

	if err := svc.writer.Save(ctx, business); err != nil {
		logger.Log.Errorw("failed to save business", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, EventBusinessCreated, business.BusinessID.String(), map[string]string{
		"owner_id": business.OwnerID.String(),
		"name":     business.Name,
	})

	return business.ToBusiness(), nil
}

// Get returns the DTO for a business, read-through cached in Redis.
func (svc *BusinessService) Get(ctx context.Context, businessID uuid.UUID) (*models.Business, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx, businessID); err == nil && cached != nil {
			return cached, nil
		}
	}

	business, err := svc.reader.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	dto, err := svc.withMedia(ctx, business)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, dto); err != nil {
			logger.Log.Warnw("failed to cache business", "business_id", businessID, "err", err)
		}
	}

	return dto, nil
}

// List returns one page of business DTOs plus pagination metadata.
func (svc *BusinessService) List(ctx context.Context, filter models.BusinessFilter, page, limit int) ([]*models.Business, models.Pagination, error) {
	total, err := svc.reader.Count(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to count businesses", "err", err)
		return nil, models.Pagination{}, err
	}

	pagination := models.NewPagination(page, limit, total)

	rows, err := svc.reader.List(ctx, filter, pagination.Limit, pagination.Offset())
	if err != nil {
		logger.Log.Errorw("failed to list businesses", "err", err)
		return nil, models.Pagination{}, err
	}

	out := make([]*models.Business, 0, len(rows))
	for i := range rows {
		dto, err := svc.withMedia(ctx, &rows[i])
		if err != nil {
			return nil, models.Pagination{}, err
		}
		out = append(out, dto)
	}

	return out, pagination, nil
}

// Update mutates a listing; only the owner or an admin may do so.
func (svc *BusinessService) Update(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims, input BusinessInput) (*models.Business, error) {
	business, err := svc.reader.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	if !canManage(business, actor) {
		return nil, ErrForbidden
	}
	if err := validateCategories(input.Categories); err != nil {
		return nil, err
	}

	if input.Name != business.Name {
		existing, err := svc.reader.GetByOwnerAndName(ctx, business.OwnerID, input.Name)
		if err != nil {
			logger.Log.Errorw("failed to check business name", "err", err)
			return nil, err
		}
		// The lookup is case-insensitive, so a case-only rename finds the
		// listing itself; only a different listing counts as a collision.
		if existing != nil && existing.BusinessID != business.BusinessID {
			return nil, ErrBusinessNameTaken
		}
	}

	business.Name = input.Name
	business.Description = input.Description
	business.Location = input.Location
	business.Categories = input.Categories
	business.Hours = input.Hours
	business.Contact = input.Contact
	business.Services = input.Services

	if err := svc.writer.Update(ctx, business); err != nil {
		logger.Log.Errorw("failed to update business", "business_id", businessID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, businessID); err != nil {
			logger.Log.Warnw("failed to evict business from cache", "business_id", businessID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafkaWriter, EventBusinessUpdated, businessID.String(), map[string]string{
		"name": business.Name,
	})

	return svc.withMedia(ctx, business)
}

// Delete soft-deletes a listing; only the owner or an admin may do so.
func (svc *BusinessService) Delete(ctx context.Context, businessID uuid.UUID, actor *jwt.Claims) error {
	business, err := svc.reader.GetByID(ctx, businessID)
	if err != nil {
		logger.Log.Errorw("failed to get business", "err", err)
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}
	if !canManage(business, actor) {
		return ErrForbidden
	}

	if err := svc.writer.SoftDelete(ctx, businessID); err != nil {
		logger.Log.Errorw("failed to delete business", "business_id", businessID, "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Delete(ctx, businessID); err != nil {
			logger.Log.Warnw("failed to evict business from cache", "business_id", businessID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafkaWriter, EventBusinessDeleted, businessID.String(), nil)

	return nil
}

// withMedia maps a row to its DTO with the ordered media list attached.
func (svc *BusinessService) withMedia(ctx context.Context, business *models.BusinessDB) (*models.Business, error) {
	dto := business.ToBusiness()

	media, err := svc.media.ListByBusiness(ctx, business.BusinessID)
	if err != nil {
		logger.Log.Errorw("failed to list business media", "business_id", business.BusinessID, "err", err)
		return nil, err
	}
	for i := range media {
		dto.Media = append(dto.Media, media[i].ToMedia())
	}

	return dto, nil
}
