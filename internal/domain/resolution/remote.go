package resolution

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cloudflare/ahocorasick"
	"github.com/sethvargo/go-retry"

	"github.com/velotrack/sku-resolver/pkg/metrics"
)

const (
	defaultBaseURL     = "https://www.trekbikes.com"
	defaultRequestWait = 500 * time.Millisecond
	rateLimitWait      = 2 * time.Second
	maxRateLimitTries  = 3
	maxBodyBytes       = 4 << 20
	maxAncestorLevels  = 5
	minTitleLength     = 5
	maxTitleLength     = 150
)

// Locale-specific boilerplate that marks an empty search result page.
var noResultsPhrases = []string{
	"no results",
	"keine ergebnisse",
	"no products found",
	"sorry, we couldn't find",
	"leider konnten wir keine",
	"try broadening your search",
	"check spelling",
}

var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "cross-site",
	"Cache-Control":             "max-age=0",
	"DNT":                       "1",
}

var titleClassRe = regexp.MustCompile(`(?i)title|name|product|heading`)

// Doer abstracts the HTTP client so lookup sequencing is testable without
// network access.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// lookupURL is one candidate request in a code's lookup plan.
type lookupURL struct {
	URL    string
	Locale string
}

// RemoteResolver looks product codes up on the vendor catalog site and
// classifies whatever title it can extract from the returned page.
type RemoteResolver struct {
	client   Doer
	patterns *PatternClassifier
	logger   *slog.Logger
	baseURL  string
	wait     time.Duration
	rateWait time.Duration
	matcher  *ahocorasick.Matcher
	metrics  *metrics.Metrics
}

// NewRemoteResolver wires a resolver around the given HTTP client. baseURL
// overrides the catalog site origin when non-empty (used by tests and
// configuration).
func NewRemoteResolver(client Doer, patterns *PatternClassifier, logger *slog.Logger, baseURL string, wait time.Duration) *RemoteResolver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if wait <= 0 {
		wait = defaultRequestWait
	}
	return &RemoteResolver{
		client:   client,
		patterns: patterns,
		logger:   logger,
		baseURL:  baseURL,
		wait:     wait,
		rateWait: rateLimitWait,
		matcher:  ahocorasick.NewStringMatcher(noResultsPhrases),
	}
}

// WithMetrics enables lookup instrumentation. A nil m records nothing.
func (r *RemoteResolver) WithMetrics(m *metrics.Metrics) *RemoteResolver {
	r.metrics = m
	return r
}

// lookupPlan builds the ordered candidate URLs for a code. Numeric codes try
// the bike listing pages of the historically most successful locales first;
// W-prefixed codes try component pages; anything else falls back to search.
func (r *RemoteResolver) lookupPlan(code string) []lookupURL {
	switch {
	case strings.HasPrefix(code, "W"):
		return []lookupURL{
			{fmt.Sprintf("%s/de/de_DE/equipment/fahrradkomponenten/fahrradzughalter--ausfallenden/trek-schaltauge-mtb/freizeitr%%C3%%A4der/p/%s/", r.baseURL, code), "de_DE"},
			{fmt.Sprintf("%s/us/en_US/equipment/bike-accessories/components/p/%s/", r.baseURL, code), "en_US"},
		}
	case isDigits(code):
		return []lookupURL{
			{fmt.Sprintf("%s/de/de_DE/bikes/%s/", r.baseURL, code), "de_DE"},
			{fmt.Sprintf("%s/us/en_US/bikes/%s/", r.baseURL, code), "en_US"},
			{fmt.Sprintf("%s/de/de_DE/search?q=%s", r.baseURL, url.QueryEscape(code)), "de_DE"},
		}
	default:
		return []lookupURL{
			{fmt.Sprintf("%s/de/de_DE/search?q=%s", r.baseURL, url.QueryEscape(code)), "de_DE"},
			{fmt.Sprintf("%s/us/en_US/search?q=%s", r.baseURL, url.QueryEscape(code)), "en_US"},
		}
	}
}

// Resolve tries each candidate URL until one yields a classifiable product
// title. Network failures of any kind advance to the next URL; a total miss
// returns false rather than an error.
func (r *RemoteResolver) Resolve(ctx context.Context, code, codeContext string) (ProductRecord, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	plan := r.lookupPlan(code)
	r.metrics.RemoteAttempt()

	for i, candidate := range plan {
		if ctx.Err() != nil {
			r.metrics.RemoteFailure()
			return ProductRecord{}, false
		}
		record, ok, err := r.tryURL(ctx, candidate, code)
		if err != nil {
			r.logger.Debug("remote lookup attempt failed",
				slog.String("code", code),
				slog.String("url", candidate.URL),
				slog.Any("error", err))
		}
		if ok {
			r.logger.Info("remote lookup hit",
				slog.String("code", code),
				slog.String("url", candidate.URL),
				slog.String("name", record.Name))
			return record, true
		}
		// Courtesy delay between URL attempts for the same code.
		if i < len(plan)-1 {
			select {
			case <-time.After(r.wait):
			case <-ctx.Done():
				r.metrics.RemoteFailure()
				return ProductRecord{}, false
			}
		}
	}
	r.metrics.RemoteFailure()
	return ProductRecord{}, false
}

func (r *RemoteResolver) tryURL(ctx context.Context, candidate lookupURL, code string) (ProductRecord, bool, error) {
	var body []byte

	backoff := retry.WithMaxRetries(maxRateLimitTries-1, retry.NewConstant(r.rateWait))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate.URL, nil)
		if err != nil {
			return err
		}
		for k, v := range browserHeaders {
			req.Header.Set(k, v)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return retry.RetryableError(fmt.Errorf("rate limited: %s", candidate.URL))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return err
	})
	if err != nil {
		return ProductRecord{}, false, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return ProductRecord{}, false, fmt.Errorf("parsing response: %w", err)
	}

	pageText := doc.Text()
	pageLower := strings.ToLower(pageText)
	if r.matcher.Contains([]byte(pageLower)) {
		return ProductRecord{}, false, nil
	}
	if !strings.Contains(pageLower, strings.ToLower(code)) {
		return ProductRecord{}, false, nil
	}

	if title := findProductTitle(doc, code); title != "" {
		record := r.classifyTitle(title, pageText)
		record.SourceURL = candidate.URL
		return record, true, nil
	}

	// Code is on the page but no usable title: classify from the code shape
	// with the page text as context.
	if record, ok := r.patterns.Classify(code, pageLower); ok {
		record.Provenance = ProvenanceRemote
		record.SourceURL = candidate.URL
		return record, true, nil
	}
	return ProductRecord{}, false, nil
}

// classifyTitle re-runs heuristic classification with the retrieved title as
// context, falling back to the broader title keyword rules.
func (r *RemoteResolver) classifyTitle(title, pageText string) ProductRecord {
	if record, ok := ClassifyContext(title); ok {
		record.Name = title
		record.Provenance = ProvenanceRemote
		return record
	}
	return ClassifyTitle(title, pageText)
}

// findProductTitle locates the code's text node in the page and walks up a
// bounded number of ancestors looking for a heading-like element with a
// plausible product name.
func findProductTitle(doc *goquery.Document, code string) string {
	var title string
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Children().Length() > 0 || !strings.Contains(s.Text(), code) {
			return true
		}
		node := s
		for level := 0; level < maxAncestorLevels && node.Length() > 0; level++ {
			if t := titleFromElement(node); t != "" {
				title = t
				return false
			}
			node = node.Parent()
		}
		return true
	})
	return title
}

func titleFromElement(node *goquery.Selection) string {
	var title string
	node.Find("h1, h2, h3, h4, a, span").EachWithBreak(func(_ int, c *goquery.Selection) bool {
		class, _ := c.Attr("class")
		if !titleClassRe.MatchString(class) {
			return true
		}
		text := strings.TrimSpace(c.Text())
		if len(text) > minTitleLength && len(text) < maxTitleLength {
			title = text
			return false
		}
		return true
	})
	return title
}
