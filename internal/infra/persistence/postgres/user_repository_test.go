package postgres

import (
	"testing"

	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepository(t *testing.T) *userRepository {
	t.Helper()

	return NewUserRepository(setupTestDB(t)).(*userRepository)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := t.Context()

	user := entity.NewUser("Ann@Example.com", "hash", "verify-token")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", byID.Email)
	assert.Equal(t, entity.SubscriptionStarter, byID.Subscription)
	assert.False(t, byID.Verified)
	assert.Equal(t, "verify-token", byID.PendingVerificationToken())
	assert.Equal(t, user.AvatarURL, byID.AvatarURL)

	byEmail, err := repo.FindByEmail(ctx, " ANN@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byToken, err := repo.FindByVerificationToken(ctx, "verify-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byToken.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := t.Context()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByVerificationToken(ctx, "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := t.Context()

	createTestUser(t, repo, "dup@example.com")

	err := repo.Create(ctx, entity.NewUser("DUP@example.com", "hash", "other-token"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestUserRepository_UpdateVerifiesAndClearsToken(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := t.Context()

	user := createTestUser(t, repo, "verify@example.com")
	user.MarkVerified()
	user.Token = "bearer"
	user.Subscription = entity.SubscriptionPro
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Nil(t, stored.VerificationToken)
	assert.Equal(t, "bearer", stored.Token)
	assert.Equal(t, entity.SubscriptionPro, stored.Subscription)

	_, err = repo.FindByVerificationToken(ctx, "token-verify@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdateClearsToken(t *testing.T) {
	repo := newTestUserRepository(t)
	ctx := t.Context()

	user := createTestUser(t, repo, "logout@example.com")
	user.Token = "bearer"
	require.NoError(t, repo.Update(ctx, user))

	user.Token = ""
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Token)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	repo := newTestUserRepository(t)

	user := entity.NewUser("ghost@example.com", "hash", "t")
	user.ID = uuid.New()

	err := repo.Update(t.Context(), user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
