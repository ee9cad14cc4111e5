package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/terraincognita07/mcycle/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

var (
	ErrAuthInputInvalid   = errors.New("name, email, and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("weak password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	DateOfBirth *time.Time
}

type AuthService struct {
	users AuthUserRepository
	now   func() time.Time
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}

func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeAuthEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return models.User{}, ErrAuthInputInvalid
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		DateOfBirth:  input.DateOfBirth,
		CreatedAt:    service.now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AuthService) Authenticate(rawEmail string, password string) (models.User, error) {
	email := NormalizeAuthEmail(rawEmail)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) FindByEmail(rawEmail string) (models.User, error) {
	email := NormalizeAuthEmail(rawEmail)
	if email == "" {
		return models.User{}, ErrUserNotFound
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ResetPassword stores a new bcrypt hash for the user.
func (service *AuthService) ResetPassword(user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return service.users.Save(user)
}
