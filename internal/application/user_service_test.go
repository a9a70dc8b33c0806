package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longchau/pharmacy-web/internal/domain/entity"
	repo "github.com/longchau/pharmacy-web/internal/domain/repository"
	"github.com/longchau/pharmacy-web/pkg/helpers"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemRepo() *memRepo { return &memRepo{users: map[string]*entity.User{}} }

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repo.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

var _ repo.UserRepository = (*memRepo)(nil)

var errRepoDown = errors.New("connection refused")

// downRepo simulates an unreachable database: every call fails.
type downRepo struct{}

func (downRepo) Create(context.Context, *entity.User) error { return errRepoDown }
func (downRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, errRepoDown
}
func (downRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, errRepoDown
}
func (downRepo) EmailExists(context.Context, string) (bool, error) { return false, errRepoDown }
func (downRepo) Update(context.Context, *entity.User) error        { return errRepoDown }

var _ repo.UserRepository = downRepo{}

func newTestService() (*Service, *memRepo) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r := newMemRepo()
	return NewService(r, logger), r
}

func TestRegisterHashesAndTrims(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{
		FirstName:  "  Anna ",
		LastName:   " Tran ",
		Email:      " anna@example.com ",
		Phone:      " 0901234567 ",
		Password:   "secret123",
		Newsletter: true,
		AgreeTerms: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "anna@example.com", u.Email)
	assert.Equal(t, "Anna", u.FirstName)
	assert.Equal(t, "Tran", u.LastName)
	assert.Equal(t, "0901234567", u.Phone)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "secret123"))
}

func TestRegisterDuplicate(t *testing.T) {
	svc, r := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "Anna@Example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, r.users, 1)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "anna@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", u.Email)

	// Unknown email and wrong password yield the same error value.
	_, errUnknown := svc.Authenticate(ctx, "nobody@example.com", "secret123")
	_, errWrong := svc.Authenticate(ctx, "anna@example.com", "wrongpass1")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrong)
}

func TestRepositoryFailuresAreNotDomainErrors(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := NewService(downRepo{}, logger)
	ctx := context.Background()

	// A database outage must never look like bad credentials or a
	// missing account; callers branch on the sentinels to decide
	// between the generic and the internal-failure response.
	_, err := svc.Authenticate(ctx, "anna@example.com", "secret123")
	assert.ErrorIs(t, err, errRepoDown)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.GetProfile(ctx, "some-id")
	assert.ErrorIs(t, err, errRepoDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateProfile(ctx, "some-id", UpdateProfileInput{FirstName: "A"})
	assert.ErrorIs(t, err, errRepoDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestEmailExists(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	exists, err := svc.EmailExists(ctx, "anna@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.EmailExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	// Blank or whitespace-only input matches nothing.
	exists, err = svc.EmailExists(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email: "anna@example.com", Password: "secret123",
		FirstName: "Anna", LastName: "Tran", Newsletter: true,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, created.ID, UpdateProfileInput{
		FirstName: " An ", LastName: "Nguyen", Phone: "0909999999", Newsletter: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "An", updated.FirstName)
	assert.Equal(t, "Nguyen", updated.LastName)
	assert.Equal(t, "0909999999", updated.Phone)
	assert.False(t, updated.Newsletter)

	// Credentials are untouched by a profile update.
	assert.Equal(t, "anna@example.com", updated.Email)
	assert.True(t, helpers.CompareHashAndPassword(updated.PasswordHash, "secret123"))
}

func TestUpdateProfileNeverCreates(t *testing.T) {
	svc, r := newTestService()

	_, err := svc.UpdateProfile(context.Background(), "no-such-id", UpdateProfileInput{FirstName: "X"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, r.users)
}

func TestUploadAvatarUnconfigured(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{Email: "anna@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.UploadAvatar(ctx, created.ID, strings.NewReader("img"), "a.png", "image/png")
	assert.Error(t, err)
}

func TestSearchUsersWithoutES(t *testing.T) {
	svc, _ := newTestService()

	hits, err := svc.SearchUsers(context.Background(), "anna", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
