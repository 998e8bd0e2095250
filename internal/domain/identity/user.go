package identity

import (
	"strings"

	"github.com/stockpilot/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// User represents a dashboard user account
type User struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(200);not null" json:"name"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(200);not null" json:"-"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(name, email, password string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "User email cannot be empty")
	}
	if len(password) < 6 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}

	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(email)),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to hash password", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks the given password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
