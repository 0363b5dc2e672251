package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotrack/sku-resolver/internal/domain/ingest/parser"
	"github.com/velotrack/sku-resolver/internal/domain/process"
	"github.com/velotrack/sku-resolver/internal/domain/report"
	"github.com/velotrack/sku-resolver/internal/domain/resolution"
	"github.com/velotrack/sku-resolver/pkg/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	catalog := resolution.DefaultCatalog()
	resolver := resolution.NewResolver(catalog, resolution.NewCache(time.Hour), nil, logger)
	search, err := resolution.NewCatalogSearch(catalog)
	require.NoError(t, err)
	t.Cleanup(func() { search.Close() })

	processor := process.NewService(parser.NewParser(logger), resolver, logger)
	h := New(processor, report.NewWriter(logger), store, resolver, search, logger).
		WithLimits(1<<20, 10*time.Second)

	r := gin.New()
	h.Register(r)
	return r
}

func multipartBody(t *testing.T, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestProcessInvoice(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "invoice_155.csv",
		"Item Number,Description,Qty\n581633,AEOLUS COMP SADDLE,1\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		InvoiceNumber string                `json:"invoice_number"`
		CodesFound    int                   `json:"codes_found"`
		ResolvedCount int                   `json:"resolved_count"`
		Items         []resolution.LineItem `json:"items"`
		ReportFile    string                `json:"report_file"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "155", resp.InvoiceNumber)
	assert.Equal(t, 1, resp.CodesFound)
	assert.Equal(t, 1, resp.ResolvedCount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "581633", resp.Items[0].Code)
	assert.Contains(t, resp.ReportFile, "report_155_")

	// The stored report is immediately downloadable.
	dl := httptest.NewRecorder()
	r.ServeHTTP(dl, httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+resp.ReportFile, nil))
	assert.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, xlsxContentType, dl.Header().Get("Content-Type"))
}

func TestProcessInvoice_MissingFile(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessInvoice_UnsupportedFormat(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "invoice.docx", "whatever")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestProcessInvoice_EmptyFile(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "invoice.csv", "\n\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessInvoice_CorruptExcel(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBody(t, "invoice.xlsx", "not a zip archive")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResolveSKU(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skus/resolve",
		strings.NewReader(`{"code":"5320014"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Code     string                   `json:"code"`
		Record   resolution.ProductRecord `json:"record"`
		Resolved bool                     `json:"resolved"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5320014", resp.Code)
	assert.Equal(t, resolution.ProvenanceDatabase, resp.Record.Provenance)
	assert.True(t, resp.Resolved)
}

func TestResolveSKU_InvalidCode(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skus/resolve",
		strings.NewReader(`{"code":"12"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveSKU_MissingBody(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skus/resolve", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchCatalog(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/skus/search?q=sele", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results     []resolution.CatalogSearchResult `json:"results"`
		Suggestions []string                         `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Results)
}

func TestSearchCatalog_MissingQuery(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/skus/search", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadReport_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing.xlsx", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
