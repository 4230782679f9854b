package postgres

import (
	"testing"
	"time"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRepoFixture struct {
	contacts *contactRepository
	alice    *entity.User
	bob      *entity.User
}

func newContactRepoFixture(t *testing.T) *contactRepoFixture {
	t.Helper()

	db := setupTestDB(t)
	users := NewUserRepository(db).(*userRepository)

	return &contactRepoFixture{
		contacts: NewContactRepository(db).(*contactRepository),
		alice:    createTestUser(t, users, "alice@example.com"),
		bob:      createTestUser(t, users, "bob@example.com"),
	}
}

func (f *contactRepoFixture) add(t *testing.T, owner *entity.User, name string, favorite bool, createdAt time.Time) *entity.Contact {
	t.Helper()

	contact := &entity.Contact{
		OwnerID:   owner.ID,
		Name:      name,
		Email:     name + "@mail.com",
		Phone:     "555-0100",
		Favorite:  favorite,
		CreatedAt: createdAt,
	}
	require.NoError(t, f.contacts.Create(t.Context(), contact))

	return contact
}

func TestContactRepository_ListIsOwnerScoped(t *testing.T) {
	f := newContactRepoFixture(t)
	ctx := t.Context()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := f.add(t, f.alice, "first", false, base)
	second := f.add(t, f.alice, "second", true, base.Add(time.Minute))
	f.add(t, f.bob, "bobs", false, base)

	aliceContacts, err := f.contacts.ListByOwner(ctx, f.alice.ID, repository.ContactFilter{})
	require.NoError(t, err)
	require.Len(t, aliceContacts, 2)
	assert.Equal(t, first.ID, aliceContacts[0].ID)
	assert.Equal(t, second.ID, aliceContacts[1].ID)

	bobContacts, err := f.contacts.ListByOwner(ctx, f.bob.ID, repository.ContactFilter{})
	require.NoError(t, err)
	require.Len(t, bobContacts, 1)
	assert.Equal(t, f.bob.ID, bobContacts[0].OwnerID)

	empty, err := f.contacts.ListByOwner(ctx, uuid.New(), repository.ContactFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestContactRepository_ListFavoriteFilter(t *testing.T) {
	f := newContactRepoFixture(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f.add(t, f.alice, "plain", false, base)
	fav := f.add(t, f.alice, "fav", true, base.Add(time.Minute))

	favorite := true
	contacts, err := f.contacts.ListByOwner(t.Context(), f.alice.ID, repository.ContactFilter{Favorite: &favorite})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, fav.ID, contacts[0].ID)
}

func TestContactRepository_FindAndExistsIgnoreOwner(t *testing.T) {
	f := newContactRepoFixture(t)
	ctx := t.Context()

	contact := f.add(t, f.alice, "shared", false, time.Time{})

	found, err := f.contacts.FindByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "shared", found.Name)
	assert.Equal(t, f.alice.ID, found.OwnerID)

	exists, err := f.contacts.Exists(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.contacts.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = f.contacts.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_UpdateByOwner(t *testing.T) {
	f := newContactRepoFixture(t)
	ctx := t.Context()

	contact := f.add(t, f.alice, "old", false, time.Time{})
	fields := entity.ContactFields{Name: "new", Email: "new@mail.com", Phone: "555-0199"}

	updated, err := f.contacts.UpdateByOwner(ctx, f.alice.ID, contact.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "new@mail.com", updated.Email)
	assert.Equal(t, "555-0199", updated.Phone)

	_, err = f.contacts.UpdateByOwner(ctx, f.bob.ID, contact.ID, fields)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)

	_, err = f.contacts.UpdateByOwner(ctx, f.alice.ID, uuid.New(), fields)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_SetFavoriteByOwner(t *testing.T) {
	f := newContactRepoFixture(t)
	ctx := t.Context()

	contact := f.add(t, f.alice, "star", false, time.Time{})

	updated, err := f.contacts.SetFavoriteByOwner(ctx, f.alice.ID, contact.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Favorite)

	updated, err = f.contacts.SetFavoriteByOwner(ctx, f.alice.ID, contact.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Favorite)

	_, err = f.contacts.SetFavoriteByOwner(ctx, f.bob.ID, contact.ID, true)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_DeleteByOwner(t *testing.T) {
	f := newContactRepoFixture(t)
	ctx := t.Context()

	contact := f.add(t, f.alice, "gone", false, time.Time{})

	// Another owner's delete leaves the row in place.
	require.NoError(t, f.contacts.DeleteByOwner(ctx, f.bob.ID, contact.ID))
	exists, err := f.contacts.Exists(ctx, contact.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, f.contacts.DeleteByOwner(ctx, f.alice.ID, contact.ID))
	exists, err = f.contacts.Exists(ctx, contact.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is not an error.
	require.NoError(t, f.contacts.DeleteByOwner(ctx, f.alice.ID, contact.ID))
}
