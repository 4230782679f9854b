package postgres

import (
	"context"

	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a GORM-backed repository.ContactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// ListByOwner returns the owner's contacts in creation order.
func (repo *contactRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Favorite != nil {
		query = query.Where("favorite = ?", *filter.Favorite)
	}

	var contactMs []model.ContactModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&contactMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactMs))
	for i := range contactMs {
		contacts = append(contacts, toContactDomain(&contactMs[i]))
	}

	return contacts, nil
}

// FindByID looks a contact up by id without checking the owner.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// Exists reports whether a contact with id exists, for any owner.
func (repo *contactRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check contact existence")
	}

	return count > 0, nil
}

// Create persists a new contact and assigns its id when unset.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}

	contactM := fromContactDomain(contact)
	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// UpdateByOwner replaces name, email and phone of the owner's contact.
func (repo *contactRepository) UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, fields entity.ContactFields) (*entity.Contact, error) {
	return repo.updateByOwner(ctx, ownerID, id, map[string]any{
		"name":  fields.Name,
		"email": fields.Email,
		"phone": fields.Phone,
	})
}

// SetFavoriteByOwner sets the favorite flag on the owner's contact.
func (repo *contactRepository) SetFavoriteByOwner(ctx context.Context, ownerID, id uuid.UUID, favorite bool) (*entity.Contact, error) {
	return repo.updateByOwner(ctx, ownerID, id, map[string]any{"favorite": favorite})
}

func (repo *contactRepository) updateByOwner(ctx context.Context, ownerID, id uuid.UUID, values map[string]any) (*entity.Contact, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(values)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to reload contact")
	}

	return toContactDomain(&contactM), nil
}

// DeleteByOwner removes the owner's contact; a missing row is not an error.
func (repo *contactRepository) DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.ContactModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete contact")
	}

	return nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Favorite:  data.Favorite,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Favorite:  data.Favorite,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
