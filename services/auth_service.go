package services

import (
	"errors"
	"fmt"

	"github.com/Rambadrinathan/vatika-studio/database"
	"github.com/Rambadrinathan/vatika-studio/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and login against the users table.
type AuthService struct {
	jwtSecretKey []byte
	issueToken   func(userID uint, email string, secret []byte) (string, error)
}

func NewAuthService(jwtSecretKey []byte, issueToken func(uint, string, []byte) (string, error)) *AuthService {
	return &AuthService{jwtSecretKey: jwtSecretKey, issueToken: issueToken}
}

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a user with a bcrypt password hash and returns a signed
// token for immediate use.
func (a *AuthService) Register(email, name, phone, password string) (*models.User, string, error) {
	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, Name: name, Phone: phone, Password: string(hash)}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.issueToken(user.ID, user.Email, a.jwtSecretKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &user, token, nil
}

// Login verifies the password and returns the user with a fresh token.
func (a *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.issueToken(user.ID, user.Email, a.jwtSecretKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &user, token, nil
}
