package services_test

import (
	"testing"

	"marche/internal/models"
	"marche/internal/repositories"
	"marche/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAuthService(mockUsers, "test-secret")

	user := &models.User{
		Username:  "AliceMartin",
		FirstName: "Alice",
		LastName:  "Martin",
		Email:     "alice@example.com",
		Password:  "Plaintext1",
	}

	mockUsers.On("GetByUsername", "AliceMartin").Return(nil, repositories.ErrNotFound).Once()
	mockUsers.On("GetByEmail", "alice@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockUsers.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleShopper && u.Active && u.Password != "Plaintext1"
	})).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleShopper, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Plaintext1")))
	mockUsers.AssertExpectations(t)
}

func TestAuthService_RegisterUser_Duplicates(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAuthService(mockUsers, "test-secret")

	existing := &models.User{ID: "u1", Username: "AliceMartin", Email: "alice@example.com"}

	mockUsers.On("GetByUsername", "AliceMartin").Return(existing, nil).Once()
	err := service.RegisterUser(&models.User{Username: "AliceMartin", Email: "other@example.com", Password: "Plaintext1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")

	mockUsers.On("GetByUsername", "BobDupont").Return(nil, repositories.ErrNotFound).Once()
	mockUsers.On("GetByEmail", "alice@example.com").Return(existing, nil).Once()
	err = service.RegisterUser(&models.User{Username: "BobDupont", Email: "alice@example.com", Password: "Plaintext1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAuthService(mockUsers, "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("Plaintext1"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Username: "AliceMartin", Email: "alice@example.com", Password: string(hashed), Role: models.RoleSeller, Active: true}

	// Valid credentials produce a token carrying the role claim.
	mockUsers.On("GetByEmail", "alice@example.com").Return(user, nil).Once()
	token, err := service.LoginUser("alice@example.com", "Plaintext1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, models.RoleSeller, claims["role"])

	// Wrong password.
	mockUsers.On("GetByEmail", "alice@example.com").Return(user, nil).Once()
	_, err = service.LoginUser("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email looks identical to a wrong password.
	mockUsers.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = service.LoginUser("nobody@example.com", "Plaintext1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_LoginUser_Disabled(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAuthService(mockUsers, "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("Plaintext1"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Email: "alice@example.com", Password: string(hashed), Role: models.RoleShopper, Active: false}

	mockUsers.On("GetByEmail", "alice@example.com").Return(user, nil).Once()
	_, err = service.LoginUser("alice@example.com", "Plaintext1")
	assert.ErrorIs(t, err, services.ErrAccountDisabled)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewAuthService(mockUsers, "test-secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret is rejected.
	other := services.NewAuthService(mockUsers, "other-secret")
	hashed, err := bcrypt.GenerateFromPassword([]byte("Plaintext1"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "u1", Email: "alice@example.com", Password: string(hashed), Active: true}
	mockUsers.On("GetByEmail", "alice@example.com").Return(user, nil).Once()
	token, err := other.LoginUser("alice@example.com", "Plaintext1")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
