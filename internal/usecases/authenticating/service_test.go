package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository/mocks"
	"github.com/qu18354531302/product-analytics-api/internal/config"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

var testAuthConfig = config.Auth{
	Secret:        "test-secret",
	InviteCode:    "SPRING2025",
	TokenTTLHours: 24,
}

func newAuthService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	svc := &Service{
		userRepo: userRepo,
		cfg:      testAuthConfig,
	}

	return svc, userRepo
}

func TestService_Register(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("alice").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "alice", user.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
			user.ID = 1
			return user, nil
		})

	user, err := svc.Register("alice", "s3cret", "SPRING2025")
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Register_InvalidInviteCode(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("alice", "s3cret", "WRONG")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidInviteCode)
}

func TestService_Register_ExistingUsername(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().
		GetUserByUsername("alice").
		Return(&domain.User{ID: 1, Username: "alice"}, nil)

	user, err := svc.Register("alice", "s3cret", "SPRING2025")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_Register_MissingCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("", "s3cret", "SPRING2025")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Register("alice", "", "SPRING2025")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestService_LoginAndValidateToken(t *testing.T) {
	svc, userRepo := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		GetUserByUsername("alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	token, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		GetUserByUsername("alice").
		Return(&domain.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	token, err := svc.Login("alice", "wrong")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

	token, err := svc.Login("ghost", "s3cret")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ValidateToken_Garbage(t *testing.T) {
	svc, _ := newAuthService(t)

	claims, err := svc.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
