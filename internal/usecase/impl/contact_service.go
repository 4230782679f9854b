package impl

import (
	"context"
	"log/slog"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the owner's contacts.
func (srv *contactService) List(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// GetByID looks the contact up by id alone; ownership is not checked.
func (srv *contactService) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get contact")
	}

	if contact.OwnerID != ownerID {
		srv.log(ctx).Debug("Contact read by non-owner",
			slog.String("contactID", contactID.String()),
			slog.String("userID", ownerID.String()),
		)
	}

	return contact, nil
}

// Create stores a new contact owned by ownerID.
func (srv *contactService) Create(ctx context.Context, ownerID uuid.UUID, input usecase.CreateContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		OwnerID: ownerID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
	}
	if input.Favorite != nil {
		contact.Favorite = *input.Favorite
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		srv.log(ctx).Error("Failed to create contact", slog.Any("error", err))

		return nil, domainerrors.ErrContactCreationFailed.WrapMessage(err.Error())
	}

	return contact, nil
}

// Remove deletes the owner's contact. Existence is checked for any owner,
// so removing another user's contact reports success without deleting it.
func (srv *contactService) Remove(ctx context.Context, ownerID, contactID uuid.UUID) error {
	exists, err := srv.contactRepo.Exists(ctx, contactID)
	if err != nil {
		return errors.Wrap(err, "failed to check contact")
	}
	if !exists {
		return domainerrors.ErrNotFound
	}

	if err := srv.contactRepo.DeleteByOwner(ctx, ownerID, contactID); err != nil {
		return errors.Wrap(err, "failed to delete contact")
	}

	return nil
}

// Update replaces name, email and phone of the owner's contact.
func (srv *contactService) Update(ctx context.Context, ownerID, contactID uuid.UUID, fields entity.ContactFields) (*entity.Contact, error) {
	if !fields.Complete() {
		return nil, domainerrors.ErrMissingFields
	}

	contact, err := srv.contactRepo.UpdateByOwner(ctx, ownerID, contactID, fields)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

// UpdateFavorite sets the favorite flag of the owner's contact.
func (srv *contactService) UpdateFavorite(ctx context.Context, ownerID, contactID uuid.UUID, favorite *bool) (*entity.Contact, error) {
	value := true
	if favorite != nil {
		value = *favorite
	}

	contact, err := srv.contactRepo.SetFavoriteByOwner(ctx, ownerID, contactID, value)
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update favorite")
	}

	return contact, nil
}
