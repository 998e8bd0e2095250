package printing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/stockpilot/backend/internal/application/report"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 30 * time.Second

// a4 dimensions in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
	margin   = 0.5
)

var tableTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #222; }
h1 { font-size: 16px; margin-bottom: 12px; }
table { width: 100%; border-collapse: collapse; }
th { background: #f0f0f0; text-align: left; }
th, td { border: 1px solid #ccc; padding: 4px 6px; }
tr:nth-child(even) td { background: #fafafa; }
.empty { margin-top: 16px; color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Rows}}
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{else}}
<p class="empty">No records in this report.</p>
{{end}}
</body>
</html>`))

// Config contains settings for the PDF renderer
type Config struct {
	// RenderTimeout bounds a single render operation
	RenderTimeout time.Duration
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// Logger for debug output
	Logger *zap.Logger
}

// ChromeRenderer renders report tables to PDF through a headless Chrome
// instance via the DevTools protocol. One allocator is shared across
// renders; each render gets its own browser context.
type ChromeRenderer struct {
	timeout     time.Duration
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

var _ report.TableRenderer = (*ChromeRenderer)(nil)

// NewChromeRenderer creates a new Chrome-backed PDF renderer
func NewChromeRenderer(cfg Config) *ChromeRenderer {
	timeout := cfg.RenderTimeout
	if timeout == 0 {
		timeout = defaultRenderTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromeRenderer{
		timeout:     timeout,
		logger:      logger,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// RenderTable renders a report table into a PDF document
func (r *ChromeRenderer) RenderTable(ctx context.Context, table report.Table) ([]byte, error) {
	var html bytes.Buffer
	if err := tableTemplate.Execute(&html, table); err != nil {
		return nil, fmt.Errorf("failed to build report HTML: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	start := time.Now()
	var pdfData []byte

	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html.String()).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithMarginTop(margin).
				WithMarginRight(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("PDF rendering timed out after %v: %w", r.timeout, err)
		}
		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("generated PDF is empty")
	}

	r.logger.Info("Report PDF rendered",
		zap.String("title", table.Title),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(start)),
	)

	return pdfData, nil
}

// Close releases the Chrome allocator
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
