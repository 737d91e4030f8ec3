package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamhub/internal/adapters/persistence/models"
	"teamhub/internal/config"
	"teamhub/internal/core/authz"
	"teamhub/internal/pkg/password"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByMemberID(_ context.Context, memberID uint) (*models.User, error) {
	for _, u := range r.users {
		if u.MemberID != nil && *u.MemberID == memberID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*models.User, int64, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// fakeRefreshTokenRepo is an in-memory RefreshTokenRepository.
type fakeRefreshTokenRepo struct {
	tokens []*models.RefreshToken
}

func (r *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = uint(len(r.tokens) + 1)
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) Revoke(_ context.Context, id uint) error {
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func newTestAuthService(users ...*models.User) (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo(users...)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessTokenMins = 15
	cfg.JWT.RefreshTokenDays = 7
	return NewAuthService(userRepo, &fakeRefreshTokenRepo{}, cfg), userRepo
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, repo := newTestAuthService()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "newuser",
		Email:    "new@teamhub.local",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Empty(t, repo.users, "no account is created for a rejected password")
}

func TestRegisterForcesDefaultRole(t *testing.T) {
	svc, _ := newTestAuthService()

	out, err := svc.Register(context.Background(), &RegisterInput{
		Username: "newuser",
		Email:    "new@teamhub.local",
		Password: "longenough123",
	})
	require.NoError(t, err)
	assert.Equal(t, string(authz.DefaultRole), out.User.Role)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(&models.User{
		Username: "taken",
		Email:    "taken@teamhub.local",
		Role:     string(authz.RoleMember),
		IsActive: true,
	})

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "taken",
		Email:    "other@teamhub.local",
		Password: "longenough123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestChangePasswordRejectsWeakPassword(t *testing.T) {
	hash, err := password.Hash("oldpassword1")
	require.NoError(t, err)

	userRepo := newFakeUserRepo(&models.User{
		Username: "someone",
		Email:    "someone@teamhub.local",
		Password: hash,
		Role:     string(authz.RoleMember),
		IsActive: true,
	})
	svc := NewUserService(userRepo, newFakeMemberRepo())

	err = svc.ChangePassword(context.Background(), 1, &ChangePasswordInput{
		OldPassword: "oldpassword1",
		NewPassword: "tiny",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)

	err = svc.ChangePassword(context.Background(), 1, &ChangePasswordInput{
		OldPassword: "wrongpassword",
		NewPassword: "longenough123",
	})
	assert.ErrorIs(t, err, ErrOldPasswordWrong)

	err = svc.ChangePassword(context.Background(), 1, &ChangePasswordInput{
		OldPassword: "oldpassword1",
		NewPassword: "longenough123",
	})
	assert.NoError(t, err)
}
