package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	reportapp "github.com/stockpilot/backend/internal/application/report"
	"github.com/stockpilot/backend/internal/domain/report"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	generator   report.Generator
	mailService *reportapp.MailService
	authMW      gin.HandlerFunc
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(generator report.Generator, mailService *reportapp.MailService, authMW gin.HandlerFunc) *ReportHandler {
	return &ReportHandler{
		generator:   generator,
		mailService: mailService,
		authMW:      authMW,
	}
}

// RegisterRoutes registers reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/report", h.authMW)
	{
		reports.GET("/sales", h.SalesReport)
		reports.GET("/items", h.ItemsReport)
		reports.GET("/ledger", h.CustomerLedger)
		reports.POST("/sales/email", h.EmailSalesReport)
		reports.POST("/items/email", h.EmailItemsReport)
		reports.POST("/ledger/email", h.EmailCustomerLedger)
	}
}

// dateRangeQuery carries the start/end query parameters of range reports
type dateRangeQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// emailRangeRequest asks for a range report to be emailed
type emailRangeRequest struct {
	To        string `json:"to" binding:"required,email"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// emailItemsRequest asks for the items report to be emailed
type emailItemsRequest struct {
	To       string  `json:"to" binding:"required,email"`
	Category *string `json:"category"`
}

// parseDate accepts a plain date or a full RFC 3339 timestamp
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *ReportHandler) parseRange(c *gin.Context, startStr, endStr string) (time.Time, time.Time, bool) {
	start, err := parseDate(startStr)
	if err != nil {
		h.Error(c, 400, "INVALID_DATE", "start_date must be YYYY-MM-DD or RFC 3339")
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDate(endStr)
	if err != nil {
		h.Error(c, 400, "INVALID_DATE", "end_date must be YYYY-MM-DD or RFC 3339")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// SalesReport returns the sales report for a date range
func (h *ReportHandler) SalesReport(c *gin.Context) {
	var query dateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "start_date and end_date are required")
		return
	}
	start, end, ok := h.parseRange(c, query.StartDate, query.EndDate)
	if !ok {
		return
	}

	result, err := h.generator.GenerateSalesReport(c.Request.Context(), start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// ItemsReport returns the items report, optionally category-filtered
func (h *ReportHandler) ItemsReport(c *gin.Context) {
	var category *string
	if value, ok := c.GetQuery("category"); ok {
		category = &value
	}

	result, err := h.generator.GenerateItemsReport(c.Request.Context(), category)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// CustomerLedger returns the customer ledger for a date range
func (h *ReportHandler) CustomerLedger(c *gin.Context) {
	var query dateRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "start_date and end_date are required")
		return
	}
	start, end, ok := h.parseRange(c, query.StartDate, query.EndDate)
	if !ok {
		return
	}

	entries, err := h.generator.GenerateCustomerLedger(c.Request.Context(), start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}

// EmailSalesReport renders the sales report to PDF and emails it
func (h *ReportHandler) EmailSalesReport(c *gin.Context) {
	var req emailRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	start, end, ok := h.parseRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	if err := h.mailService.SendSalesReport(c.Request.Context(), req.To, start, end); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Sales report sent", "to": req.To})
}

// EmailItemsReport renders the items report to PDF and emails it
func (h *ReportHandler) EmailItemsReport(c *gin.Context) {
	var req emailItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.mailService.SendItemsReport(c.Request.Context(), req.To, req.Category); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Items report sent", "to": req.To})
}

// EmailCustomerLedger renders the customer ledger to PDF and emails it
func (h *ReportHandler) EmailCustomerLedger(c *gin.Context) {
	var req emailRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}
	start, end, ok := h.parseRange(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	if err := h.mailService.SendCustomerLedger(c.Request.Context(), req.To, start, end); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Customer ledger sent", "to": req.To})
}
