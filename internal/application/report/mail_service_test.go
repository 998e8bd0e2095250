package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stockpilot/backend/internal/domain/report"
	"github.com/stockpilot/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGenerator is a mock implementation of report.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateSalesReport(ctx context.Context, start, end time.Time) (*report.SalesReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SalesReport), args.Error(1)
}

func (m *MockGenerator) GenerateItemsReport(ctx context.Context, category *string) (*report.ItemsReport, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.ItemsReport), args.Error(1)
}

func (m *MockGenerator) GenerateCustomerLedger(ctx context.Context, start, end time.Time) ([]report.CustomerLedgerEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.CustomerLedgerEntry), args.Error(1)
}

// MockTableRenderer is a mock implementation of TableRenderer
type MockTableRenderer struct {
	mock.Mock
}

func (m *MockTableRenderer) RenderTable(ctx context.Context, table Table) ([]byte, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAttachmentMailer is a mock implementation of AttachmentMailer
type MockAttachmentMailer struct {
	mock.Mock
}

func (m *MockAttachmentMailer) SendWithAttachment(to, subject, body, filename string, attachment []byte) error {
	args := m.Called(to, subject, body, filename, attachment)
	return args.Error(0)
}

func TestMailService_SendSalesReport(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("renders and mails the report as a PDF attachment", func(t *testing.T) {
		generator := new(MockGenerator)
		renderer := new(MockTableRenderer)
		mailer := new(MockAttachmentMailer)

		generator.On("GenerateSalesReport", mock.Anything, day, day).
			Return(&report.SalesReport{StartDate: day, EndDate: day}, nil)
		renderer.On("RenderTable", mock.Anything, mock.AnythingOfType("report.Table")).
			Return([]byte("%PDF"), nil)
		mailer.On("SendWithAttachment",
			"ada@example.com", "Sales Report", "Attached is your requested sales report.",
			"sales-report.pdf", []byte("%PDF")).Return(nil)

		svc := NewMailService(generator, renderer, mailer, nil)
		err := svc.SendSalesReport(context.Background(), "ada@example.com", day, day)

		require.NoError(t, err)
		mailer.AssertExpectations(t)
	})

	t.Run("generation failure is returned untouched", func(t *testing.T) {
		generator := new(MockGenerator)
		renderer := new(MockTableRenderer)
		mailer := new(MockAttachmentMailer)

		storageErr := shared.StorageUnavailable(errors.New("down"))
		generator.On("GenerateSalesReport", mock.Anything, day, day).Return(nil, storageErr)

		svc := NewMailService(generator, renderer, mailer, nil)
		err := svc.SendSalesReport(context.Background(), "ada@example.com", day, day)

		assert.Equal(t, storageErr, err)
		renderer.AssertNotCalled(t, "RenderTable", mock.Anything, mock.Anything)
	})

	t.Run("render failure surfaces as RENDER_FAILED", func(t *testing.T) {
		generator := new(MockGenerator)
		renderer := new(MockTableRenderer)
		mailer := new(MockAttachmentMailer)

		generator.On("GenerateSalesReport", mock.Anything, day, day).
			Return(&report.SalesReport{StartDate: day, EndDate: day}, nil)
		renderer.On("RenderTable", mock.Anything, mock.AnythingOfType("report.Table")).
			Return(nil, errors.New("chrome crashed"))

		svc := NewMailService(generator, renderer, mailer, nil)
		err := svc.SendSalesReport(context.Background(), "ada@example.com", day, day)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RENDER_FAILED", domainErr.Code)
		mailer.AssertNotCalled(t, "SendWithAttachment",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail failure surfaces as MAIL_FAILED", func(t *testing.T) {
		generator := new(MockGenerator)
		renderer := new(MockTableRenderer)
		mailer := new(MockAttachmentMailer)

		generator.On("GenerateSalesReport", mock.Anything, day, day).
			Return(&report.SalesReport{StartDate: day, EndDate: day}, nil)
		renderer.On("RenderTable", mock.Anything, mock.AnythingOfType("report.Table")).
			Return([]byte("%PDF"), nil)
		mailer.On("SendWithAttachment",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp refused"))

		svc := NewMailService(generator, renderer, mailer, nil)
		err := svc.SendSalesReport(context.Background(), "ada@example.com", day, day)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MAIL_FAILED", domainErr.Code)
	})
}

func TestMailService_SendItemsReport(t *testing.T) {
	generator := new(MockGenerator)
	renderer := new(MockTableRenderer)
	mailer := new(MockAttachmentMailer)

	category := "Tools"
	generator.On("GenerateItemsReport", mock.Anything, &category).
		Return(&report.ItemsReport{Items: []report.ItemReportEntry{}}, nil)
	renderer.On("RenderTable", mock.Anything, mock.AnythingOfType("report.Table")).
		Return([]byte("%PDF"), nil)
	mailer.On("SendWithAttachment",
		"ada@example.com", "Items Report", "Attached is your requested items report.",
		"items-report.pdf", []byte("%PDF")).Return(nil)

	svc := NewMailService(generator, renderer, mailer, nil)
	err := svc.SendItemsReport(context.Background(), "ada@example.com", &category)

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestMailService_SendCustomerLedger(t *testing.T) {
	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june30 := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	generator := new(MockGenerator)
	renderer := new(MockTableRenderer)
	mailer := new(MockAttachmentMailer)

	generator.On("GenerateCustomerLedger", mock.Anything, june1, june30).
		Return([]report.CustomerLedgerEntry{}, nil)
	renderer.On("RenderTable", mock.Anything, mock.AnythingOfType("report.Table")).
		Return([]byte("%PDF"), nil)
	mailer.On("SendWithAttachment",
		"ada@example.com", "Customer Ledger", "Attached is your requested customer ledger.",
		"customer-ledger.pdf", []byte("%PDF")).Return(nil)

	svc := NewMailService(generator, renderer, mailer, nil)
	err := svc.SendCustomerLedger(context.Background(), "ada@example.com", june1, june30)

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}
