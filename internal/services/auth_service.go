package services

import (
	"errors"
	"strings"

	"coffeejournal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register normalizes and validates the credentials, hashes the password and
// creates the account.
func (service *AuthService) Register(emailRaw string, passwordRaw string, displayName string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
