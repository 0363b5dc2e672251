// Package process orchestrates the invoice pipeline: parse, extract codes,
// associate context, resolve each code, assemble line items.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velotrack/sku-resolver/internal/domain/extract"
	"github.com/velotrack/sku-resolver/internal/domain/resolution"
	"github.com/velotrack/sku-resolver/pkg/metrics"
)

// Delay between per-code resolutions so remote lookups for large invoices
// stay polite.
const defaultCodeDelay = 50 * time.Millisecond

// DocumentParser decodes an uploaded file into the document model.
type DocumentParser interface {
	Parse(fileName string, data []byte) (*extract.Document, error)
}

// Result is the outcome of processing one invoice file. A file with zero
// extractable codes is a valid empty result, not an error.
type Result struct {
	JobID         uuid.UUID              `json:"job_id"`
	FileName      string                 `json:"file_name"`
	InvoiceNumber string                 `json:"invoice_number"`
	Items         []resolution.LineItem  `json:"items"`
	CodesFound    int                    `json:"codes_found"`
	ResolvedCount int                    `json:"resolved_count"`
	Partial       bool                   `json:"partial"`
	Elapsed       time.Duration          `json:"elapsed_ns"`
}

// Service wires the parser and resolver into the end-to-end pipeline.
type Service struct {
	parser    DocumentParser
	resolver  *resolution.Resolver
	metrics   *metrics.Metrics
	logger    *slog.Logger
	codeDelay time.Duration
}

func NewService(parser DocumentParser, resolver *resolution.Resolver, logger *slog.Logger) *Service {
	return &Service{
		parser:    parser,
		resolver:  resolver,
		logger:    logger,
		codeDelay: defaultCodeDelay,
	}
}

// WithMetrics attaches Prometheus instrumentation.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// ProcessFile runs the full pipeline on one uploaded file. Every extracted
// code yields exactly one line item; when the context deadline passes
// mid-file, remaining codes resolve without remote lookups and the result is
// marked partial.
func (s *Service) ProcessFile(ctx context.Context, fileName string, data []byte) (*Result, error) {
	start := time.Now()

	doc, err := s.parser.Parse(fileName, data)
	if err != nil {
		s.metrics.DocumentFailed()
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	codes := extract.ExtractCodes(doc)
	contexts := extract.AssociateContext(doc, codes)
	invoiceNumber := extract.InvoiceNumber(doc)

	result := &Result{
		JobID:         uuid.New(),
		FileName:      fileName,
		InvoiceNumber: invoiceNumber,
		Items:         make([]resolution.LineItem, 0, len(codes)),
		CodesFound:    len(codes),
	}
	s.metrics.CodesExtracted(len(codes))

	if len(codes) == 0 {
		s.logger.Warn("no product codes found in document",
			slog.String("file", fileName),
			slog.String("invoice", invoiceNumber))
		s.metrics.DocumentProcessed()
		result.Elapsed = time.Since(start)
		return result, nil
	}

	for i, code := range codes {
		if ctx.Err() != nil {
			result.Partial = true
		}

		record := s.resolver.Resolve(ctx, code, contexts[code])
		s.metrics.Resolution(string(record.Provenance))

		resolved := record.Resolved()
		if resolved {
			result.ResolvedCount++
		}
		result.Items = append(result.Items, resolution.LineItem{
			InvoiceNumber: invoiceNumber,
			Code:          code,
			Context:       contexts[code],
			Record:        record,
			Resolved:      resolved,
		})

		if i < len(codes)-1 && ctx.Err() == nil {
			select {
			case <-time.After(s.codeDelay):
			case <-ctx.Done():
			}
		}
	}

	result.Elapsed = time.Since(start)
	s.metrics.DocumentProcessed()
	s.metrics.ProcessingDuration(result.Elapsed)

	s.logger.Info("invoice processed",
		slog.String("file", fileName),
		slog.String("invoice", invoiceNumber),
		slog.String("job_id", result.JobID.String()),
		slog.Int("codes", result.CodesFound),
		slog.Int("resolved", result.ResolvedCount),
		slog.Bool("partial", result.Partial),
		slog.Duration("elapsed", result.Elapsed))
	return result, nil
}
