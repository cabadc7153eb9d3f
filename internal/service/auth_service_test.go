package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/jwtutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *jwtutil.JWTUtil, *gorm.DB) {
	t.Helper()
	db := InitTestDB(t)
	tokens := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	svc, err := NewAuthService(repository.NewUserRepository(db), tokens, bcrypt.MinCost)
	require.NoError(t, err)
	return svc, tokens, db
}

func TestRegister(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "spores123", Name: "Grower"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, model.DefaultRole, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "spores123", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("spores123")))

	_, err = svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "other", Name: "Copy"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "spores123", Name: "Grower"})
	require.NoError(t, err)

	_, unknown := svc.Authenticate(ctx, "nobody@farm.test", "spores123")
	_, wrong := svc.Authenticate(ctx, "grower@farm.test", "wrong")

	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	svc, _, db := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "idle@farm.test", Password: "spores123", Name: "Idle"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", u.ID).Update("is_active", false).Error)

	_, err = svc.Authenticate(ctx, "idle@farm.test", "spores123")
	assert.ErrorIs(t, err, ErrInactiveAccount)

	// a wrong password never reveals the account state
	_, err = svc.Authenticate(ctx, "idle@farm.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesTokenForAccount(t *testing.T) {
	svc, tokens, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "spores123", Name: "Grower"})
	require.NoError(t, err)

	token, u, err := svc.Login(ctx, "grower@farm.test", "spores123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "grower@farm.test", claims.Email)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "old-pass", Name: "Grower"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "not-it", "new-pass"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(ctx, u.ID, "old-pass", "new-pass"))

	_, err = svc.Authenticate(ctx, "grower@farm.test", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "grower@farm.test", "new-pass")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, 999, "x", "y"), repository.ErrNotFound)
}

func TestPasswordsOverBcryptLimitAreRejected(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	long := strings.Repeat("é", 37) // 74 bytes

	_, err := svc.Register(ctx, RegisterInput{Email: "long@farm.test", Password: long, Name: "Long"})
	var verr *repository.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)

	u, err := svc.Register(ctx, RegisterInput{Email: "grower@farm.test", Password: "spores123", Name: "Grower"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, u.ID, "spores123", long)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "new_password", verr.Field)
}
