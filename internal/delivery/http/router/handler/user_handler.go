// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/http/response"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/entity"
	"contactbook/internal/errors"
	"contactbook/internal/usecase"
	"contactbook/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const avatarFormField = "avatar"

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Verify   bool   `json:"verify"`
}

type resendVerificationRequest struct {
	Email string `json:"email"`
}

type subscriptionRequest struct {
	Subscription string `json:"subscription" validate:"required,oneof=starter pro business"`
}

// accountResponse is the public view of an account.
type accountResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

type registeredAccountResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
	AvatarURL    string `json:"avatarURL"`
}

type registerResponse struct {
	User registeredAccountResponse `json:"user"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  accountResponse `json:"user"`
}

type avatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

func newAccountResponse(user *entity.User) accountResponse {
	return accountResponse{
		Email:        user.Email,
		Subscription: user.Subscription.String(),
	}
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Usecase usecase.AccountUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	uc            usecase.AccountUsecase
	logger        *slog.Logger
	maxUploadSize int64
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	handler := &UserHandler{
		uc:     params.Usecase,
		logger: params.Logger,
	}
	if params.Config != nil && params.Config.Avatar != nil {
		handler.maxUploadSize = params.Config.Avatar.MaxUploadSize
	}

	return handler
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, registerResponse{
		User: registeredAccountResponse{
			Email:        output.User.Email,
			Subscription: output.User.Subscription.String(),
			AvatarURL:    output.User.AvatarURL,
		},
	})
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Verify:   req.Verify,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, loginResponse{
		Token: output.Token,
		User:  newAccountResponse(output.User),
	})
}

// Logout handles POST /users/logout.
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Current handles GET /users/current.
func (h *UserHandler) Current(c echo.Context) error {
	user, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	current, err := h.uc.Current(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAccountResponse(current))
}

// Protected handles GET /users/protected, a probe for a valid session.
func (h *UserHandler) Protected(c echo.Context) error {
	return response.Message(c, http.StatusOK, response.MsgProtectedRoute)
}

// UpdateSubscription handles PATCH /users.
func (h *UserHandler) UpdateSubscription(c echo.Context) error {
	user, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	var req subscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateSubscription(c.Request().Context(), user.ID, entity.SubscriptionTier(req.Subscription))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newAccountResponse(updated))
}

// UpdateAvatar handles PATCH /users/avatars with a multipart "avatar" file.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user, err := authenticatedUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
			return domainerrors.ErrValidationFailed.WithMessage("missing required field " + avatarFormField)
		}

		return errors.Wrap(err, "failed to read avatar upload")
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		return domainerrors.ErrValidationFailed.WithMessage(
			"avatar must not exceed " + util.FormatBytes(h.maxUploadSize),
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open avatar upload")
	}
	defer file.Close()

	avatarURL, err := h.uc.UpdateAvatar(c.Request().Context(), user.ID, usecase.AvatarUpload{
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, avatarResponse{AvatarURL: avatarURL})
}

// VerifyEmail handles GET /users/verify/:verificationToken.
func (h *UserHandler) VerifyEmail(c echo.Context) error {
	if err := h.uc.VerifyEmail(c.Request().Context(), c.Param("verificationToken")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, response.MsgVerificationSuccess)
}

// ResendVerification handles POST /users/verify.
func (h *UserHandler) ResendVerification(c echo.Context) error {
	var req resendVerificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, response.MsgVerificationSent)
}

// authenticatedUser returns the user resolved by the auth middleware.
func authenticatedUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return nil, domainerrors.ErrNotAuthorized
	}

	return user, nil
}

// bindAndValidate decodes the request body into dst and runs the echo validator.
// Malformed bodies become 400s with the decoder's reason.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if message, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithMessage(message)
			}
		}

		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if c.Echo().Validator == nil {
		return nil
	}

	return c.Validate(dst)
}
