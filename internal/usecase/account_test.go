package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/ShopApp/internal/auth"
	"github.com/GoArmGo/ShopApp/internal/domain"
	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// --- фейки портов ---

type fakeUserStorage struct {
	nextID     uint
	byID       map[uint]*domain.User
	byUsername map[string]*domain.User
	businesses map[uint]*domain.Business // по owner_id

	verifiedCalls int
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{
		nextID:     1,
		byID:       map[uint]*domain.User{},
		byUsername: map[string]*domain.User{},
		businesses: map[uint]*domain.Business{},
	}
}

func (f *fakeUserStorage) CreateWithBusiness(ctx context.Context, user *domain.User) (*domain.Business, error) {
	if _, exists := f.byUsername[user.Username]; exists {
		// как и в настоящем хранилище: транзакция откатывается целиком
		return nil, fmt.Errorf("%w: имя пользователя или email уже заняты", domain.ErrInvalidInput)
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: имя пользователя или email уже заняты", domain.ErrInvalidInput)
		}
	}

	user.ID = f.nextID
	f.nextID++
	f.byID[user.ID] = user
	f.byUsername[user.Username] = user

	business := &domain.Business{ID: user.ID + 100, OwnerID: user.ID}
	f.businesses[user.ID] = business
	return business, nil
}

func (f *fakeUserStorage) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStorage) MarkVerified(ctx context.Context, id uint) error {
	user, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.IsVerified = true
	f.verifiedCalls++
	return nil
}

type fakeMailer struct {
	sendErr    error
	recipients []string
	links      []string
}

func (f *fakeMailer) SendVerification(ctx context.Context, recipient, username, link string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.recipients = append(f.recipients, recipient)
	f.links = append(f.links, link)
	return nil
}

type fakePublisher struct {
	publishErr error
	events     []payloads.ActivityPayload
}

func (f *fakePublisher) PublishActivity(ctx context.Context, payload payloads.ActivityPayload) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, payload)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testSecret = "test-secret"

func newAccountUseCase(store *fakeUserStorage, mailer *fakeMailer, pub *fakePublisher) AccountUseCase {
	return NewAccountUseCase(store, mailer, pub, []byte(testSecret), "http://localhost:8080", discardLogger())
}

// --- тесты ---

func TestRegister_CreatesUserWithBusinessAndSendsEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	mailer := &fakeMailer{}
	pub := &fakePublisher{}
	uc := newAccountUseCase(store, mailer, pub)

	user, err := uc.Register(context.Background(), "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	// пароль хранится только как хэш
	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.True(t, auth.CheckPassword("pw123", user.PasswordHash))
	assert.False(t, user.IsVerified)

	// бизнес создан и принадлежит пользователю
	business, ok := store.businesses[user.ID]
	require.True(t, ok)
	assert.Equal(t, user.ID, business.OwnerID)

	// письмо ушло на email пользователя со ссылкой верификации
	require.Len(t, mailer.recipients, 1)
	assert.Equal(t, "alice@x.com", mailer.recipients[0])
	require.Len(t, mailer.links, 1)
	assert.Contains(t, mailer.links[0], "/verification?token=")

	// событие регистрации опубликовано
	require.Len(t, pub.events, 1)
	assert.Equal(t, payloads.ActivityUserRegistered, pub.events[0].Kind)
}

func TestRegister_VerificationLinkResolvesToUser(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	mailer := &fakeMailer{}
	uc := newAccountUseCase(store, mailer, &fakePublisher{})

	user, err := uc.Register(context.Background(), "bob", "bob@x.com", "pw123")
	require.NoError(t, err)

	// токен из письма — тот же формат, что и bearer-токен
	link, err := url.Parse(mailer.links[0])
	require.NoError(t, err)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	resolved, err := uc.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "bob", resolved.Username)
}

func TestRegister_DuplicateLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	mailer := &fakeMailer{}
	uc := newAccountUseCase(store, mailer, &fakePublisher{})

	_, err := uc.Register(context.Background(), "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "alice", "other@x.com", "pw456")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// ни второго пользователя, ни второго бизнеса, ни второго письма
	assert.Len(t, store.byID, 1)
	assert.Len(t, store.businesses, 1)
	assert.Len(t, mailer.recipients, 1)
}

func TestRegister_MailRelayFailureSurfaces(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	mailer := &fakeMailer{sendErr: fmt.Errorf("smtp: connection refused")}
	uc := newAccountUseCase(store, mailer, &fakePublisher{})

	_, err := uc.Register(context.Background(), "carol", "carol@x.com", "pw123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	// пользователь при этом уже создан — поведение референса
	assert.Len(t, store.byID, 1)
}

func TestIssueToken_SuccessRoundTrip(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	uc := newAccountUseCase(store, &fakeMailer{}, &fakePublisher{})

	user, err := uc.Register(context.Background(), "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	token, err := uc.IssueToken(context.Background(), "alice", "pw123")
	require.NoError(t, err)

	claims, err := auth.ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestIssueToken_UnknownUserAndWrongPasswordSameShape(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	pub := &fakePublisher{}
	uc := newAccountUseCase(store, &fakeMailer{}, pub)

	_, err := uc.Register(context.Background(), "realuser", "real@x.com", "rightpass")
	require.NoError(t, err)

	_, errNoUser := uc.IssueToken(context.Background(), "nouser", "anything")
	_, errWrongPass := uc.IssueToken(context.Background(), "realuser", "wrongpass")

	// различить два случая по ошибке нельзя
	require.Error(t, errNoUser)
	require.Error(t, errWrongPass)
	assert.Equal(t, errNoUser, errWrongPass)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)

	// оба провала отражены в журнале событий одинаково
	var failures int
	for _, ev := range pub.events {
		if ev.Kind == payloads.ActivityLoginFailure {
			failures++
		}
	}
	assert.Equal(t, 2, failures)
}

func TestResolveToken_CollapsesFailures(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	uc := newAccountUseCase(store, &fakeMailer{}, &fakePublisher{})

	// битый токен
	_, errBad := uc.ResolveToken(context.Background(), "not-a-token")
	require.Error(t, errBad)
	assert.ErrorIs(t, errBad, domain.ErrUnauthenticated)

	// валидная подпись, но пользователя нет в хранилище
	ghost, err := auth.GenerateToken(999, "ghost", []byte(testSecret))
	require.NoError(t, err)
	_, errGhost := uc.ResolveToken(context.Background(), ghost)
	require.Error(t, errGhost)

	// наружу оба случая неразличимы
	assert.Equal(t, errBad, errGhost)
}

func TestVerifyEmail_Idempotent(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	mailer := &fakeMailer{}
	uc := newAccountUseCase(store, mailer, &fakePublisher{})

	_, err := uc.Register(context.Background(), "dave", "dave@x.com", "pw123")
	require.NoError(t, err)

	link, err := url.Parse(mailer.links[0])
	require.NoError(t, err)
	token := link.Query().Get("token")

	user, err := uc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Equal(t, 1, store.verifiedCalls)

	// повторный визит по той же ссылке: без ошибки и без второго side effect
	user, err = uc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Equal(t, 1, store.verifiedCalls)
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	t.Parallel()

	uc := newAccountUseCase(newFakeUserStorage(), &fakeMailer{}, &fakePublisher{})

	_, err := uc.VerifyEmail(context.Background(), strings.Repeat("x", 32))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRegister_PublisherFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	store := newFakeUserStorage()
	pub := &fakePublisher{publishErr: fmt.Errorf("amqp: channel closed")}
	uc := newAccountUseCase(store, &fakeMailer{}, pub)

	// публикация событий best effort: регистрация проходит
	_, err := uc.Register(context.Background(), "eve", "eve@x.com", "pw123")
	require.NoError(t, err)
}
