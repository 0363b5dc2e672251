package resolution

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotrack/sku-resolver/pkg/metrics"
)

// fakeTransport serves canned responses by URL substring and records the
// request order.
type fakeTransport struct {
	responses []fakeResponse
	requests  []string
}

type fakeResponse struct {
	urlContains string
	status      int
	body        string
	// remaining rate-limited responses before the real one
	rateLimits int
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	url := req.URL.String()
	f.requests = append(f.requests, url)
	for i := range f.responses {
		r := &f.responses[i]
		if !strings.Contains(url, r.urlContains) {
			continue
		}
		if r.rateLimits > 0 {
			r.rateLimits--
			return httpResponse(http.StatusTooManyRequests, ""), nil
		}
		return httpResponse(r.status, r.body), nil
	}
	return httpResponse(http.StatusNotFound, ""), nil
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func productPage(code, title string) string {
	return fmt.Sprintf(`<html><body>
		<div class="product-detail">
			<h1 class="product-title">%s</h1>
			<div><span class="sku-value">%s</span></div>
		</div>
	</body></html>`, title, code)
}

func newTestRemote(client Doer) *RemoteResolver {
	r := NewRemoteResolver(client, NewPatternClassifier(DefaultCatalog()), testLogger(), "https://example.test", time.Millisecond)
	r.rateWait = time.Millisecond
	return r
}

func TestLookupPlan(t *testing.T) {
	r := newTestRemote(&fakeTransport{})

	t.Run("component urls for W codes", func(t *testing.T) {
		plan := r.lookupPlan("W599999")
		require.Len(t, plan, 2)
		assert.Contains(t, plan[0].URL, "de_DE")
		assert.Contains(t, plan[0].URL, "W599999")
		assert.Contains(t, plan[1].URL, "en_US")
	})

	t.Run("bike urls then search for numeric codes", func(t *testing.T) {
		plan := r.lookupPlan("5320999")
		require.Len(t, plan, 3)
		assert.Contains(t, plan[0].URL, "/de/de_DE/bikes/5320999/")
		assert.Contains(t, plan[1].URL, "/us/en_US/bikes/5320999/")
		assert.Contains(t, plan[2].URL, "search?q=5320999")
	})

	t.Run("search urls for other shapes", func(t *testing.T) {
		plan := r.lookupPlan("AB12CD")
		require.Len(t, plan, 2)
		assert.Contains(t, plan[0].URL, "search?q=AB12CD")
		assert.Contains(t, plan[1].URL, "search?q=AB12CD")
	})
}

func TestRemoteResolve_TitleFound(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: productPage("W599999", "Bontrager Ion 200 RT Front Bike Light")},
	}}
	r := newTestRemote(transport)

	record, ok := r.Resolve(context.Background(), "W599999", "")

	require.True(t, ok)
	assert.Equal(t, "Bontrager Ion 200 RT Front Bike Light", record.Name)
	assert.Equal(t, "Bisiklet Aydınlatması", record.Category)
	assert.Equal(t, ProvenanceRemote, record.Provenance)
	assert.Contains(t, record.SourceURL, "de_DE")
	assert.True(t, record.Resolved())
}

func TestRemoteResolve_NoResultsPageSkipped(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: `<html><body>Keine Ergebnisse für W599999</body></html>`},
		{urlContains: "en_US", status: http.StatusOK, body: productPage("W599999", "Bontrager Elite Seatpost Saddle Clamp")},
	}}
	r := newTestRemote(transport)

	record, ok := r.Resolve(context.Background(), "W599999", "")

	require.True(t, ok)
	assert.Contains(t, record.SourceURL, "en_US")
	assert.Equal(t, "Bisiklet Selesi", record.Category)
}

func TestRemoteResolve_AllMiss(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: `<html><body>no results</body></html>`},
		{urlContains: "en_US", status: http.StatusOK, body: `<html><body>Sorry, we couldn't find anything</body></html>`},
	}}
	r := newTestRemote(transport)

	_, ok := r.Resolve(context.Background(), "QQ000Q1", "")

	assert.False(t, ok)
	assert.Len(t, transport.requests, 2, "every candidate URL is attempted")
}

func TestRemoteResolve_RateLimitRetriesSameURL(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, rateLimits: 2, body: productPage("W599999", "Bontrager Pro Handlebar Mount Bracket")},
	}}
	r := newTestRemote(transport)

	record, ok := r.Resolve(context.Background(), "W599999", "")

	require.True(t, ok)
	assert.Equal(t, "Bisiklet Gidon", record.Category)
	// Two 429 responses plus the successful retry of the same URL.
	assert.GreaterOrEqual(t, len(transport.requests), 3)
	assert.Equal(t, transport.requests[0], transport.requests[1])
}

func TestRemoteResolve_ServerErrorAdvances(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusInternalServerError},
		{urlContains: "en_US", status: http.StatusOK, body: productPage("W599999", "Trek Carbon Seatpost Saddle Kit")},
	}}
	r := newTestRemote(transport)

	record, ok := r.Resolve(context.Background(), "W599999", "")

	require.True(t, ok)
	assert.Contains(t, record.SourceURL, "en_US")
}

func TestRemoteResolve_PatternFallbackWhenNoTitle(t *testing.T) {
	// Code appears on the page but no heading-like element qualifies.
	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: `<html><body><p>SKU 5310001 in stock</p></body></html>`},
	}}
	r := newTestRemote(transport)

	record, ok := r.Resolve(context.Background(), "5310001", "")

	require.True(t, ok)
	assert.Equal(t, "Bisiklet Parçası", record.Category)
	assert.Equal(t, ProvenanceRemote, record.Provenance)
	assert.NotEmpty(t, record.SourceURL)
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestRemoteResolve_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	transport := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: productPage("W599999", "Bontrager Elite Seatpost Saddle Clamp")},
	}}
	r := newTestRemote(transport).WithMetrics(m)

	_, ok := r.Resolve(context.Background(), "W599999", "")
	require.True(t, ok)
	assert.Equal(t, 1.0, counterValue(t, reg, "skuresolver_remote_attempts_total"))
	assert.Equal(t, 0.0, counterValue(t, reg, "skuresolver_remote_failures_total"))

	miss := &fakeTransport{responses: []fakeResponse{
		{urlContains: "de_DE", status: http.StatusOK, body: `<html><body>no results</body></html>`},
		{urlContains: "en_US", status: http.StatusOK, body: `<html><body>no results</body></html>`},
	}}
	r = newTestRemote(miss).WithMetrics(m)

	_, ok = r.Resolve(context.Background(), "QQ000Q1", "")
	assert.False(t, ok)
	assert.Equal(t, 2.0, counterValue(t, reg, "skuresolver_remote_attempts_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "skuresolver_remote_failures_total"))
}

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		resolved bool
	}{
		{"light", "Bontrager Ion 200 RT Front Bike Light", "Bisiklet Aydınlatması", true},
		{"helmet", "Trek Velocis Mips Road Helmet", "Bisiklet Kask", true},
		{"wheel", "Aeolus Pro 37 TLR Disc Road Wheel", "Bisiklet Tekerlek/Lastik", true},
		{"frame", "Trek Slash C Frameset", "Bisiklet Kadrosu", true},
		{"unmatched title is generic", "Gift Card Digital Code", "Trek Ürünü", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := ClassifyTitle(tt.title, "")
			assert.Equal(t, tt.category, record.Category)
			assert.Equal(t, ProvenanceRemote, record.Provenance)
			assert.Equal(t, tt.resolved, record.Resolved())
		})
	}
}

func TestSeriesFromName(t *testing.T) {
	assert.Equal(t, "Fuel Exe", seriesFromName("Trek Fuel EXe 9.8 GX AXS"))
	assert.Equal(t, "Domane", seriesFromName("Trek Domane SL 6"))
	assert.Equal(t, "Trek", seriesFromName("Generic Part 123"))
}
