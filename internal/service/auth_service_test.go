package service

import (
	"context"
	"testing"

	"github.com/JhonatanMorais-py/meupdv/internal/config"
	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	u, ok := r.users[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uint(len(r.users) + 1)
	r.users[u.Name] = u
	return nil
}

func testAuthService(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Name:         "admin",
		PasswordHash: string(hash),
	}))
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return NewAuthService(repo, cfg), repo
}

func TestLogin(t *testing.T) {
	svc, _ := testAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Name: "admin", Password: "1234"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Name: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Name: "ghost", Password: "1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
