package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/infra/mail"
	mockRepo "contactbook/internal/mocks/repository"
	mockSvc "contactbook/internal/mocks/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mailHandlerFixtures struct {
	handler  *MailHandler
	mailer   *mockSvc.MockMailer
	userRepo *mockRepo.MockUserRepository
}

func createTestMailHandler(t *testing.T) mailHandlerFixtures {
	t.Helper()

	fx := mailHandlerFixtures{
		mailer:   mockSvc.NewMockMailer(t),
		userRepo: mockRepo.NewMockUserRepository(t),
	}
	fx.handler = NewMailHandler(MailHandlerParams{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer:   fx.mailer,
		UserRepo: fx.userRepo,
	})

	return fx
}

func newVerificationTask(t *testing.T, to, token string) *asynq.Task {
	t.Helper()

	task, err := mail.NewVerificationTask(service.VerificationMail{To: to, VerificationToken: token})
	require.NoError(t, err)

	return task
}

func pendingUser(email, token string) *entity.User {
	return entity.NewUser(email, "hash", token)
}

func TestMailHandler_HandleVerification_Sends(t *testing.T) {
	fx := createTestMailHandler(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").
		Return(pendingUser("ann@example.com", "tok-1"), nil)
	fx.mailer.EXPECT().SendVerification(mock.Anything, service.VerificationMail{
		To:                "ann@example.com",
		VerificationToken: "tok-1",
	}).Return(nil)

	err := fx.handler.HandleVerification(ctx, newVerificationTask(t, "ann@example.com", "tok-1"))
	assert.NoError(t, err)
}

func TestMailHandler_HandleVerification_MalformedPayloadSkipsRetry(t *testing.T) {
	fx := createTestMailHandler(t)

	err := fx.handler.HandleVerification(context.Background(), asynq.NewTask(mail.TypeVerification, []byte("not json")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestMailHandler_HandleVerification_UnknownUserSkipsRetry(t *testing.T) {
	fx := createTestMailHandler(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.handler.HandleVerification(context.Background(), newVerificationTask(t, "gone@example.com", "tok"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestMailHandler_HandleVerification_SkipsStaleTasks(t *testing.T) {
	verified := pendingUser("ann@example.com", "tok-1")
	verified.MarkVerified()

	tests := []struct {
		name string
		user *entity.User
	}{
		{name: "already verified", user: verified},
		{name: "token replaced", user: pendingUser("ann@example.com", "tok-2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMailHandler(t)

			fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(tt.user, nil)

			err := fx.handler.HandleVerification(context.Background(), newVerificationTask(t, "ann@example.com", "tok-1"))
			assert.NoError(t, err)
			fx.mailer.AssertNotCalled(t, "SendVerification", mock.Anything, mock.Anything)
		})
	}
}

func TestMailHandler_HandleVerification_SendFailureIsRetried(t *testing.T) {
	fx := createTestMailHandler(t)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").
		Return(pendingUser("ann@example.com", "tok-1"), nil)
	fx.mailer.EXPECT().SendVerification(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := fx.handler.HandleVerification(context.Background(), newVerificationTask(t, "ann@example.com", "tok-1"))

	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
	assert.Contains(t, err.Error(), "smtp down")
}

func TestMailHandler_RegisterHandlers(t *testing.T) {
	fx := createTestMailHandler(t)
	mux := asynq.NewServeMux()

	fx.handler.RegisterHandlers(mux)

	_, pattern := mux.Handler(asynq.NewTask(mail.TypeVerification, nil))
	assert.Equal(t, mail.TypeVerification, pattern)
}
