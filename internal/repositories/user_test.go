package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/localbiz/marketplace-api/internal/models"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'consumer',
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		location JSONB NOT NULL DEFAULT '{}',
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)
	ctx := context.Background()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		Role:         models.RoleBusinessOwner,
		FirstName:    "Alice",
		LastName:     "Smith",
		Phone:        "+1-555-0100",
		Location:     models.UserLocation{City: "Portland", Region: "OR"},
	}

	assert.NoError(t, writer.Save(ctx, user))

	got, err := reader.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, models.RoleBusinessOwner, got.Role)
	assert.Equal(t, "Portland", got.Location.City)

	byEmail, err := reader.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, byEmail)
	assert.Equal(t, user.UserID, byEmail.UserID)
}

func TestUserRepository_GetMissingReturnsNil(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	reader := NewUserReadRepository(db)
	ctx := context.Background()

	got, err := reader.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)

	byEmail, err := reader.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, byEmail)
}

func TestUserRepository_UpdateProfileAndPassword(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)
	ctx := context.Background()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        "bob@example.com",
		PasswordHash: "old-hash",
		Role:         models.RoleConsumer,
	}
	assert.NoError(t, writer.Save(ctx, user))

	user.FirstName = "Bob"
	user.Phone = "+1-555-0101"
	user.Location = models.UserLocation{City: "Austin"}
	assert.NoError(t, writer.UpdateProfile(ctx, user))

	assert.NoError(t, writer.UpdatePassword(ctx, user.UserID, "new-hash"))

	got, err := reader.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "Austin", got.Location.City)
	assert.Equal(t, "new-hash", got.PasswordHash)

	// Updating a row that does not exist reports no rows.
	missing := &models.UserDB{UserID: uuid.New()}
	assert.Error(t, writer.UpdateProfile(ctx, missing))
	assert.Error(t, writer.UpdatePassword(ctx, uuid.New(), "x"))
}
