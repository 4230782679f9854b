package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"contactbook/config"
	"contactbook/internal/delivery/http/middleware"
	"contactbook/internal/delivery/http/router"
	"contactbook/internal/delivery/http/router/handler"
	"contactbook/internal/domain/service"
	"contactbook/internal/infra/auth"
	"contactbook/internal/infra/imaging"
	"contactbook/internal/infra/persistence/postgres"
	"contactbook/internal/infra/storage"
	"contactbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingDispatcher keeps verification mail in memory instead of sending it.
type recordingDispatcher struct {
	mu   sync.Mutex
	sent []service.VerificationMail
}

func (d *recordingDispatcher) DispatchVerification(_ context.Context, mail service.VerificationMail) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, mail)

	return nil
}

func (d *recordingDispatcher) Close() error { return nil }

func (d *recordingDispatcher) tokenFor(t *testing.T, email string) string {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := len(d.sent) - 1; i >= 0; i-- {
		if d.sent[i].To == email {
			return d.sent[i].VerificationToken
		}
	}
	t.Fatalf("no verification mail sent to %s", email)

	return ""
}

type testServer struct {
	echo *echo.Echo
	mail *recordingDispatcher
}

// newTestServer wires the real HTTP stack, services and stores on top of an in-memory SQLite database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
		Avatar: &config.AvatarConfig{
			PublicDir:     t.TempDir(),
			URLPrefix:     "/avatars/",
			TmpDir:        t.TempDir(),
			Size:          250,
			MaxUploadSize: 1 << 20,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	appLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	userRepo := postgres.NewUserRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	avatarStorage, err := storage.Open(ctx, "mem://", cfg.Avatar.URLPrefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = avatarStorage.Close() })

	dispatcher := &recordingDispatcher{}

	accountUsecase := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo:       userRepo,
		Hasher:         auth.NewBcryptHasher(cfg),
		TokenService:   tokenService,
		MailDispatcher: dispatcher,
		ImageProcessor: imaging.NewImageProcessor(),
		AvatarStorage:  avatarStorage,
		Config:         cfg,
		Logger:         appLogger,
	})
	contactUsecase := impl.NewContactService(impl.ContactServiceParams{
		ContactRepo: contactRepo,
		Logger:      appLogger,
	})

	e := NewEcho(cfg, appLogger)
	router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			Usecase: accountUsecase,
			Config:  cfg,
			Logger:  appLogger,
		}),
		ContactHandler: handler.NewContactHandler(contactUsecase, appLogger),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: tokenService,
			UserRepo:     userRepo,
			Logger:       appLogger,
		}),
	}).RegisterRoutes(e)

	return &testServer{echo: e, mail: dispatcher}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Verify   bool   `json:"verify,omitempty"`
}

type contactJSON struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
	Owner    string `json:"owner"`
}

// signUp registers, verifies and logs in an account, returning its bearer token.
func (s *testServer) signUp(t *testing.T, email string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/users/register", "", credentials{Email: email, Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/users/verify/"+s.mail.tokenFor(t, email), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/users/login", "", credentials{Email: email, Password: "secret1", Verify: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
}

func TestServer_VerificationScenario(t *testing.T) {
	srv := newTestServer(t)
	login := credentials{Email: "ann@example.com", Password: "secret1", Verify: true}

	rec := srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: "ann@example.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	registered := decode[struct {
		User struct {
			Email        string `json:"email"`
			Subscription string `json:"subscription"`
			AvatarURL    string `json:"avatarURL"`
		} `json:"user"`
	}](t, rec)
	assert.Equal(t, "ann@example.com", registered.User.Email)
	assert.Equal(t, "starter", registered.User.Subscription)
	assert.True(t, strings.HasPrefix(registered.User.AvatarURL, "https://www.gravatar.com/avatar/"))

	rec = srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: "ann@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email in use"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/login", "", login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Email is not verified"}`, rec.Body.String())

	token := srv.mail.tokenFor(t, "ann@example.com")
	rec = srv.do(t, http.MethodGet, "/users/verify/"+token, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Verification successful"}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/users/verify/"+token, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPost, "/users/verify", "", map[string]string{"email": "ann@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Verification has already been passed"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/login", "", login)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	bearer := decode[struct {
		Token string `json:"token"`
	}](t, rec).Token
	assert.NotEmpty(t, bearer)

	rec = srv.do(t, http.MethodGet, "/users/current", bearer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ann@example.com","subscription":"starter"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/login", "", credentials{Email: "ann@example.com", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Email or password is wrong"}`, rec.Body.String())
}

func TestServer_RegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: "six@example.com", Password: "123456"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: "five@example.com", Password: "12345"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), "at least 6")

	long := credentials{Email: "long@example.com", Password: strings.Repeat("x", 80), Verify: true}
	rec = srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: long.Email, Password: long.Password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/users/verify/"+srv.mail.tokenFor(t, long.Email), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/login", "", long)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_ResendVerification(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/users/register", "", credentials{Email: "ann@example.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	first := srv.mail.tokenFor(t, "ann@example.com")

	rec = srv.do(t, http.MethodPost, "/users/verify", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"missing required field email"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/verify", "", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPost, "/users/verify", "", map[string]string{"email": "ann@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Verification email sent"}`, rec.Body.String())
	assert.Equal(t, first, srv.mail.tokenFor(t, "ann@example.com"))
}

func TestServer_AuthAndSession(t *testing.T) {
	srv := newTestServer(t)
	bearer := srv.signUp(t, "ann@example.com")

	for _, path := range []string{"/api/contacts", "/users/current", "/users/protected"} {
		rec := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String(), path)

		rec = srv.do(t, http.MethodGet, path, "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := srv.do(t, http.MethodGet, "/users/protected", bearer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"protected route"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPatch, "/users", bearer, map[string]string{"subscription": "business"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ann@example.com","subscription":"business"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/users/logout", bearer, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodPost, "/users/logout", bearer, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_ContactsAreOwnerScoped(t *testing.T) {
	srv := newTestServer(t)
	ann := srv.signUp(t, "ann@example.com")
	bob := srv.signUp(t, "bob@example.com")

	rec := srv.do(t, http.MethodPost, "/api/contacts", ann, map[string]any{
		"name": "Carol", "email": "carol@example.com", "phone": "555-0101",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `"contact with name:Carol add to data base!"`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/contacts", ann, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	annContacts := decode[[]contactJSON](t, rec)
	require.Len(t, annContacts, 1)
	carol := annContacts[0]
	assert.Equal(t, "Carol", carol.Name)
	assert.False(t, carol.Favorite)
	assert.NotEmpty(t, carol.Owner)

	rec = srv.do(t, http.MethodGet, "/api/contacts", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Another owner's update and favorite calls never touch the contact.
	rec = srv.do(t, http.MethodPut, "/api/contacts/"+carol.ID, bob, map[string]string{
		"name": "Mallory", "email": "m@example.com", "phone": "000",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+carol.ID+"/favorite", bob, map[string]bool{"favorite": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The existence check is not owner-scoped, so this reports success while deleting nothing.
	rec = srv.do(t, http.MethodDelete, "/api/contacts/"+carol.ID, bob, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/contacts/"+carol.ID, ann, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Carol", decode[contactJSON](t, rec).Name)

	rec = srv.do(t, http.MethodGet, "/api/contacts", ann, nil)
	assert.Len(t, decode[[]contactJSON](t, rec), 1)
}

func TestServer_ContactLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ann := srv.signUp(t, "ann@example.com")

	rec := srv.do(t, http.MethodPost, "/api/contacts", ann, map[string]any{
		"name": "Carol", "email": "carol@example.com", "phone": "555-0101", "favorite": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/contacts?favorite=true", ann, nil)
	contacts := decode[[]contactJSON](t, rec)
	require.Len(t, contacts, 1)
	id := contacts[0].ID
	assert.True(t, contacts[0].Favorite)

	rec = srv.do(t, http.MethodGet, "/api/contacts?favorite=false", ann, nil)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = srv.do(t, http.MethodPut, "/api/contacts/"+id, ann, map[string]string{"name": "Carol B", "email": "carol@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Missing fields"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPut, "/api/contacts/"+id, ann, map[string]string{
		"name": "Carol B", "email": "carolb@example.com", "phone": "555-0199",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[contactJSON](t, rec)
	assert.Equal(t, "Carol B", updated.Name)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.True(t, updated.Favorite)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+id+"/favorite", ann, map[string]bool{"favorite": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[contactJSON](t, rec).Favorite)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+id+"/favorite", ann, map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[contactJSON](t, rec).Favorite)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+"00000000-0000-0000-0000-000000000001"+"/favorite", ann, map[string]bool{"favorite": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())

	rec = srv.do(t, http.MethodDelete, "/api/contacts/"+id, ann, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"contact deleted"}`, rec.Body.String())

	rec = srv.do(t, http.MethodDelete, "/api/contacts/"+id, ann, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/contacts/"+id, ann, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateAvatar(t *testing.T) {
	srv := newTestServer(t)
	bearer := srv.signUp(t, "ann@example.com")

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: 80, B: 160, A: 255})
		}
	}
	var pic bytes.Buffer
	require.NoError(t, png.Encode(&pic, img))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "Me.PNG")
	require.NoError(t, err)
	_, err = part.Write(pic.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/users/avatars", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	avatarURL := decode[struct {
		AvatarURL string `json:"avatarURL"`
	}](t, rec).AvatarURL
	assert.True(t, strings.HasPrefix(avatarURL, "/avatars/"))
	assert.True(t, strings.HasSuffix(avatarURL, ".png"))
}

func TestServer_FallbackRoutes(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from Homepage.", rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec = srv.do(t, method, "/no/such/route", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String(), method)
	}

	rec = srv.do(t, http.MethodGet, "/api/contacts/x/y", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/contacts/x", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
