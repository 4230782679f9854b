// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAvatarSize = 250

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo            repository.UserRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	mailDispatcher      service.MailDispatcher
	imageProcessor      service.ImageProcessor
	avatarStorage       service.AvatarStorage
	requireVerification bool
	avatarSize          int
	tmpDir              string
	logger              *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	MailDispatcher service.MailDispatcher
	ImageProcessor service.ImageProcessor
	AvatarStorage  service.AvatarStorage
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		mailDispatcher: params.MailDispatcher,
		imageProcessor: params.ImageProcessor,
		avatarStorage:  params.AvatarStorage,
		avatarSize:     defaultAvatarSize,
		tmpDir:         os.TempDir(),
		logger:         params.Logger,
	}

	if params.Config != nil {
		if params.Config.Auth != nil {
			srv.requireVerification = params.Config.Auth.RequireVerification
		}
		if params.Config.Avatar != nil {
			if params.Config.Avatar.Size > 0 {
				srv.avatarSize = params.Config.Avatar.Size
			}
			if params.Config.Avatar.TmpDir != "" {
				srv.tmpDir = params.Config.Avatar.TmpDir
			}
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified account and sends the verification mail without waiting for it.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmailInUse
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := entity.NewUser(email, passwordHash, uuid.NewString())

	// A concurrent registration that slipped past the lookup is rejected by the unique index.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.dispatchVerification(ctx, user)

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return &usecase.RegisterOutput{User: user}, nil
}

func (srv *accountService) dispatchVerification(ctx context.Context, user *entity.User) {
	mail := service.VerificationMail{To: user.Email, VerificationToken: user.PendingVerificationToken()}
	if err := srv.mailDispatcher.DispatchVerification(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to dispatch verification mail",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)
	}
}

// Login checks credentials, issues a token and stores it on the account.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if (input.Verify || srv.requireVerification) && !user.Verified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	user.Token = token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Logout clears the stored token. Logging out twice is fine.
func (srv *accountService) Logout(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.Token == "" {
		return nil
	}

	user.Token = ""
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to clear token")
	}

	return nil
}

// Current returns the account of the authenticated user.
func (srv *accountService) Current(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

func (srv *accountService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotAuthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// VerifyEmail consumes a verification token.
func (srv *accountService) VerifyEmail(ctx context.Context, verificationToken string) error {
	user, err := srv.userRepo.FindByVerificationToken(ctx, verificationToken)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by verification token")
	}

	if user.Verified {
		return domainerrors.ErrAlreadyVerified
	}

	user.MarkVerified()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark user verified")
	}

	srv.log(ctx).Info("Email verified", slog.String("userID", user.ID.String()))

	return nil
}

// ResendVerification sends the outstanding verification token again.
func (srv *accountService) ResendVerification(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("missing required field email")
	}

	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.Verified {
		return domainerrors.ErrAlreadyVerified
	}

	if user.PendingVerificationToken() == "" {
		token := uuid.NewString()
		user.VerificationToken = &token
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store verification token")
		}
	}

	mail := service.VerificationMail{To: user.Email, VerificationToken: user.PendingVerificationToken()}
	if err := srv.mailDispatcher.DispatchVerification(ctx, mail); err != nil {
		return errors.Wrap(err, "failed to dispatch verification mail")
	}

	return nil
}

// UpdateAvatar crops the upload into a square avatar, stores it and points the account at it.
func (srv *accountService) UpdateAvatar(ctx context.Context, userID uuid.UUID, upload usecase.AvatarUpload) (string, error) {
	if upload.Content == nil {
		return "", domainerrors.ErrValidationFailed.WithMessage("missing required field avatar")
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))

	tmpPath, err := srv.spool(upload.Content)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			srv.log(ctx).Warn("Failed to remove avatar upload", slog.String("path", tmpPath), slog.Any("error", err))
		}
	}()

	var avatar bytes.Buffer
	if err := srv.processAvatar(&avatar, tmpPath, ext); err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	avatarURL, err := srv.avatarStorage.Put(ctx, user.ID.String()+ext, &avatar, contentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to store avatar")
	}

	user.AvatarURL = avatarURL
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to update avatar url")
	}

	return avatarURL, nil
}

// spool copies the upload to a temporary file and returns its path.
func (srv *accountService) spool(content io.Reader) (string, error) {
	tmp, err := os.CreateTemp(srv.tmpDir, "avatar-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, content); err != nil {
		_ = os.Remove(tmp.Name())

		return "", errors.Wrap(err, "failed to spool upload")
	}

	return tmp.Name(), nil
}

func (srv *accountService) processAvatar(dst io.Writer, path, ext string) error {
	src, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open spooled upload")
	}
	defer src.Close()

	if err := srv.imageProcessor.SquareAvatar(dst, src, ext, srv.avatarSize); err != nil {
		return errors.Wrap(err, "failed to process avatar")
	}

	return nil
}

// UpdateSubscription moves the account to another plan.
func (srv *accountService) UpdateSubscription(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) (*entity.User, error) {
	if !tier.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage(`"subscription" must be one of [starter, pro, business]`)
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Subscription = tier
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update subscription")
	}

	return user, nil
}
