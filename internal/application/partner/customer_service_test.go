package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stockpilot/backend/internal/domain/partner"
	"github.com/stockpilot/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a testify mock for partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer when email is free", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("FindByEmail", ctx, "ada@example.com").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		assert.Equal(t, "ada@example.com", resp.Email)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		existing, err := partner.NewCustomer("Someone Else", "ada@example.com", "", "")
		require.NoError(t, err)
		repo.On("FindByEmail", ctx, "ada@example.com").Return(existing, nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		})

		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer("Ada Lovelace", "ada@example.com", "", "")
		require.NoError(t, err)

		repo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		repo.On("FindByEmail", ctx, "ada@example.com").Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		resp, err := service.Update(ctx, customer.ID, UpdateCustomerRequest{
			Name:  "Ada King",
			Email: "ada@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada King", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects email held by another customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer("Ada Lovelace", "ada@example.com", "", "")
		require.NoError(t, err)
		other, err := partner.NewCustomer("Grace Hopper", "grace@example.com", "", "")
		require.NoError(t, err)

		repo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		repo.On("FindByEmail", ctx, "grace@example.com").Return(other, nil)

		resp, err := service.Update(ctx, customer.ID, UpdateCustomerRequest{
			Name:  "Ada Lovelace",
			Email: "grace@example.com",
		})

		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		missingID := uuid.New()
		repo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		resp, err := service.Update(ctx, missingID, UpdateCustomerRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customer, err := partner.NewCustomer("Ada Lovelace", "ada@example.com", "", "")
		require.NoError(t, err)

		repo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		repo.On("Delete", ctx, customer.ID).Return(nil)

		assert.NoError(t, service.Delete(ctx, customer.ID))
		repo.AssertExpectations(t)
	})

	t.Run("returns not found without deleting", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		missingID := uuid.New()
		repo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, missingID), shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
