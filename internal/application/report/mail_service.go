package report

import (
	"context"
	"time"

	"github.com/stockpilot/backend/internal/domain/report"
	"github.com/stockpilot/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TableRenderer renders a tabular projection into a PDF document
type TableRenderer interface {
	RenderTable(ctx context.Context, table Table) ([]byte, error)
}

// AttachmentMailer sends an email carrying a single file attachment
type AttachmentMailer interface {
	SendWithAttachment(to, subject, body, filename string, attachment []byte) error
}

// MailService regenerates a report, renders it to PDF and emails it as an
// attachment. It is a pure consumer of the generator's output shapes.
type MailService struct {
	generator report.Generator
	renderer  TableRenderer
	mailer    AttachmentMailer
	logger    *zap.Logger
}

// NewMailService creates a new report mail service
func NewMailService(generator report.Generator, renderer TableRenderer, mailer AttachmentMailer, logger *zap.Logger) *MailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MailService{
		generator: generator,
		renderer:  renderer,
		mailer:    mailer,
		logger:    logger,
	}
}

// SendSalesReport emails the sales report for the given range
func (s *MailService) SendSalesReport(ctx context.Context, to string, start, end time.Time) error {
	r, err := s.generator.GenerateSalesReport(ctx, start, end)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Sales Report", "Attached is your requested sales report.", "sales-report.pdf", SalesReportTable(r))
}

// SendItemsReport emails the items report, optionally category-filtered
func (s *MailService) SendItemsReport(ctx context.Context, to string, category *string) error {
	r, err := s.generator.GenerateItemsReport(ctx, category)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Items Report", "Attached is your requested items report.", "items-report.pdf", ItemsReportTable(r))
}

// SendCustomerLedger emails the customer ledger for the given range
func (s *MailService) SendCustomerLedger(ctx context.Context, to string, start, end time.Time) error {
	entries, err := s.generator.GenerateCustomerLedger(ctx, start, end)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Customer Ledger", "Attached is your requested customer ledger.", "customer-ledger.pdf", CustomerLedgerTable(entries))
}

func (s *MailService) send(ctx context.Context, to, subject, body, filename string, table Table) error {
	pdf, err := s.renderer.RenderTable(ctx, table)
	if err != nil {
		s.logger.Error("Failed to render report PDF", zap.String("report", subject), zap.Error(err))
		return shared.WrapDomainError("RENDER_FAILED", "Failed to render report document", err)
	}

	if err := s.mailer.SendWithAttachment(to, subject, body, filename, pdf); err != nil {
		s.logger.Error("Failed to send report email",
			zap.String("report", subject),
			zap.String("to", to),
			zap.Error(err),
		)
		return shared.WrapDomainError("MAIL_FAILED", "Failed to send report email", err)
	}

	s.logger.Info("Report emailed", zap.String("report", subject), zap.String("to", to))
	return nil
}
