package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/localbiz/marketplace-api/internal/models"
	"github.com/localbiz/marketplace-api/internal/services"
)

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: "hash"}, nil)

		user, err := svc.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		user, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		_, err := svc.GetProfile(context.Background(), userID)
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	update := services.ProfileUpdate{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+1-555-0100",
		Location:  models.UserLocation{City: "Portland"},
	}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)
		mockWriter.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.UserDB) error {
				assert.Equal(t, "Jane", user.FirstName)
				assert.Equal(t, "Portland", user.Location.City)
				return nil
			})

		user, err := svc.UpdateProfile(context.Background(), userID, update)
		assert.NoError(t, err)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		user, err := svc.UpdateProfile(context.Background(), userID, update)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass12"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.UserDB{UserID: userID, PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, newHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-pass12")))
				return nil
			})

		assert.NoError(t, svc.ChangePassword(context.Background(), userID, "old-pass12", "new-pass12"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(user, nil)

		err := svc.ChangePassword(context.Background(), userID, "not-the-pass", "new-pass12")
		assert.ErrorIs(t, err, services.ErrWrongPassword)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		err := svc.ChangePassword(context.Background(), userID, "old-pass12", "new-pass12")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
