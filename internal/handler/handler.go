// Package handler exposes the invoice pipeline over HTTP.
package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
	"github.com/velotrack/sku-resolver/internal/domain/ingest/parser"
	"github.com/velotrack/sku-resolver/internal/domain/process"
	"github.com/velotrack/sku-resolver/internal/domain/report"
	"github.com/velotrack/sku-resolver/internal/domain/resolution"
	"github.com/velotrack/sku-resolver/pkg/storage"
)

const (
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultMaxUpload  = 32 << 20
	defaultTimeout    = 5 * time.Minute
	defaultSearchSize = 10
)

// Handler serves the invoice processing and SKU resolution endpoints.
type Handler struct {
	processor *process.Service
	writer    *report.Writer
	store     storage.Storage
	resolver  *resolution.Resolver
	search    *resolution.CatalogSearch
	logger    *slog.Logger
	maxUpload int64
	timeout   time.Duration
}

func New(processor *process.Service, writer *report.Writer, store storage.Storage, resolver *resolution.Resolver, search *resolution.CatalogSearch, logger *slog.Logger) *Handler {
	return &Handler{
		processor: processor,
		writer:    writer,
		store:     store,
		resolver:  resolver,
		search:    search,
		logger:    logger,
		maxUpload: defaultMaxUpload,
		timeout:   defaultTimeout,
	}
}

// WithLimits overrides the upload size cap and per-invoice processing timeout.
func (h *Handler) WithLimits(maxUpload int64, timeout time.Duration) *Handler {
	if maxUpload > 0 {
		h.maxUpload = maxUpload
	}
	if timeout > 0 {
		h.timeout = timeout
	}
	return h
}

// Register attaches all routes to the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.health)

	v1 := r.Group("/api/v1")
	v1.POST("/invoices", h.processInvoice)
	v1.GET("/reports", h.listReports)
	v1.GET("/reports/:name", h.downloadReport)
	v1.POST("/skus/resolve", h.resolveSKU)
	v1.GET("/skus/search", h.searchCatalog)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"catalog_size":  h.resolver.Catalog().Len(),
		"cache_entries": h.resolver.Cache().Len(),
	})
}

// processInvoice accepts a multipart invoice upload, runs the pipeline and
// stores the generated report.
func (h *Handler) processInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}
	if !parser.Supported(fileHeader.Filename) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error":     "unsupported file format",
			"supported": parser.SupportedExtensions,
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	// Archive the original upload; failure is logged but never blocks
	// processing.
	if _, err := h.store.SaveUpload(c.Request.Context(), fileHeader.Filename, bytes.NewReader(data)); err != nil {
		h.logger.Warn("failed to archive upload",
			slog.String("file", fileHeader.Filename),
			slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.processor.ProcessFile(ctx, fileHeader.Filename, data)
	if err != nil {
		h.respondProcessError(c, fileHeader.Filename, err)
		return
	}

	reportName := fmt.Sprintf("report_%s_%s.xlsx", result.InvoiceNumber, result.JobID.String()[:8])
	workbook, err := h.writer.Write(result.Items)
	if err != nil {
		h.logger.Error("report rendering failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report rendering failed"})
		return
	}
	if _, err := h.store.SaveReport(c.Request.Context(), reportName, workbook); err != nil {
		h.logger.Error("report storage failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report storage failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id":         result.JobID,
		"invoice_number": result.InvoiceNumber,
		"codes_found":    result.CodesFound,
		"resolved_count": result.ResolvedCount,
		"partial":        result.Partial,
		"items":          result.Items,
		"report_file":    reportName,
	})
}

func (h *Handler) respondProcessError(c *gin.Context, fileName string, err error) {
	switch {
	case errors.Is(err, parser.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported file format"})
	case errors.Is(err, parser.ErrEmptyFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "file has no content"})
	case errors.Is(err, parser.ErrCorruptContent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "file content could not be decoded"})
	default:
		h.logger.Error("invoice processing failed",
			slog.String("file", fileName),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "processing failed"})
	}
}

func (h *Handler) listReports(c *gin.Context) {
	reports, err := h.store.ListReports(c.Request.Context())
	if err != nil {
		h.logger.Error("listing reports failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) downloadReport(c *gin.Context) {
	name := c.Param("name")

	r, info, err := h.store.OpenReport(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		h.logger.Error("opening report failed",
			slog.String("report", name),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open report"})
		return
	}
	defer r.Close()

	c.DataFromReader(http.StatusOK, info.Size, xlsxContentType, r, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", info.Name),
	})
}

type resolveRequest struct {
	Code    string `json:"code" binding:"required"`
	Context string `json:"context"`
}

// resolveSKU resolves a single product code outside any invoice.
func (h *Handler) resolveSKU(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}
	if !extract.IsValidCode(req.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a plausible product code"})
		return
	}

	record := h.resolver.Resolve(c.Request.Context(), req.Code, req.Context)
	c.JSON(http.StatusOK, gin.H{
		"code":     req.Code,
		"record":   record,
		"resolved": record.Resolved(),
	})
}

// searchCatalog runs a fuzzy full-text search over the curated catalog and
// suggests near-miss codes.
func (h *Handler) searchCatalog(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}

	limit := defaultSearchSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	results, err := h.search.Search(query, limit)
	if err != nil {
		h.logger.Error("catalog search failed",
			slog.String("query", query),
			slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"results":     results,
		"suggestions": h.search.Suggest(query, limit),
	})
}
