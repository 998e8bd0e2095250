package partner

import (
	"regexp"
	"strings"

	"github.com/stockpilot/backend/internal/domain/shared"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer represents a customer of the store.
// Customers are referenced by inventory purchase entries and joined into
// the sales, items and ledger reports.
type Customer struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	Email   string `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateCustomerEmail(email); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update replaces the customer's mutable fields
func (c *Customer) Update(name, email, phone, address string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if err := validateCustomerEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = phone
	c.Address = address
	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validateCustomerEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Customer email is not a valid address")
	}
	return nil
}
