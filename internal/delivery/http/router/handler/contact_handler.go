package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/http/response"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"
	"contactbook/internal/errors"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contactIDParam = "contactId"

type createContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite *bool  `json:"favorite"`
}

type updateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type favoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// contactResponse keeps the `_id` and `owner` field names clients already rely on.
type contactResponse struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
	Owner    string `json:"owner"`
}

func newContactResponse(contact *entity.Contact) contactResponse {
	return contactResponse{
		ID:       contact.ID.String(),
		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		Favorite: contact.Favorite,
		Owner:    contact.OwnerID.String(),
	}
}

// ContactHandler serves the /api/contacts endpoints.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/contacts with an optional ?favorite=true|false filter.
func (h *ContactHandler) List(c echo.Context) error {
	owner, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var filter repository.ContactFilter
	if raw := c.QueryParam("favorite"); raw != "" {
		favorite, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithMessage(`"favorite" must be a boolean`)
		}
		filter.Favorite = &favorite
	}

	contacts, err := h.uc.List(c.Request().Context(), owner.ID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, newContactResponse(contact))
	}

	return response.OK(c, body)
}

// Get handles GET /api/contacts/:contactId.
func (h *ContactHandler) Get(c echo.Context) error {
	owner, contactID, err := h.target(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.GetByID(c.Request().Context(), owner.ID, contactID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newContactResponse(contact))
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	owner, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req createContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.uc.Create(c.Request().Context(), owner.ID, usecase.CreateContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Contact created",
		slog.String("contact_id", contact.ID.String()),
	)

	return response.Created(c, response.ContactCreated(req.Name))
}

// Remove handles DELETE /api/contacts/:contactId.
func (h *ContactHandler) Remove(c echo.Context) error {
	owner, contactID, err := h.target(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), owner.ID, contactID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, response.MsgContactDeleted)
}

// Update handles PUT /api/contacts/:contactId. name, email and phone are all required.
func (h *ContactHandler) Update(c echo.Context) error {
	owner, contactID, err := h.target(c)
	if err != nil {
		return err
	}

	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFields
	}

	contact, err := h.uc.Update(c.Request().Context(), owner.ID, contactID, entity.ContactFields{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newContactResponse(contact))
}

// UpdateFavorite handles PATCH /api/contacts/:contactId/favorite. An absent favorite means true.
func (h *ContactHandler) UpdateFavorite(c echo.Context) error {
	owner, contactID, err := h.target(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingFavorite
	}

	contact, err := h.uc.UpdateFavorite(c.Request().Context(), owner.ID, contactID, req.Favorite)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newContactResponse(contact))
}

// target resolves the acting user and the :contactId path parameter. An id that
// cannot name any contact is reported the same way as a missing one.
func (h *ContactHandler) target(c echo.Context) (*entity.User, uuid.UUID, error) {
	owner, err := authenticatedUser(c)
	if err != nil {
		return nil, uuid.Nil, err
	}

	contactID, err := uuid.Parse(c.Param(contactIDParam))
	if err != nil {
		return nil, uuid.Nil, domainerrors.ErrNotFound
	}

	return owner, contactID, nil
}
