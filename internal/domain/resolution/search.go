package resolution

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CatalogDocument is the searchable projection of a catalog entry.
type CatalogDocument struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Turkish     string `json:"turkish"`
	Series      string `json:"series"`
	Description string `json:"description"`
}

// CatalogSearchResult is one search hit with its relevance score.
type CatalogSearchResult struct {
	Document CatalogDocument
	Score    float64
}

// CatalogSearch provides full-text search over the curated catalog, backed
// by an in-memory bleve index built at startup.
type CatalogSearch struct {
	index   bleve.Index
	indexMu sync.RWMutex
	codes   []string
}

// NewCatalogSearch builds the search index from the catalog entries.
func NewCatalogSearch(catalog *Catalog) (*CatalogSearch, error) {
	index, err := bleve.NewMemOnly(buildCatalogMapping())
	if err != nil {
		return nil, fmt.Errorf("creating catalog index: %w", err)
	}

	batch := index.NewBatch()
	for _, entry := range catalog.Entries() {
		doc := CatalogDocument{
			Code:        entry.Code,
			Name:        entry.Name,
			Category:    entry.Category,
			Turkish:     entry.Turkish,
			Series:      entry.Series,
			Description: fmt.Sprintf("%s %s %s %s", entry.Code, entry.Name, entry.Category, entry.Turkish),
		}
		if err := batch.Index(entry.Code, doc); err != nil {
			return nil, fmt.Errorf("indexing catalog entry %s: %w", entry.Code, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("building catalog index: %w", err)
	}

	return &CatalogSearch{index: index, codes: catalog.Codes()}, nil
}

func buildCatalogMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("code", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("category", textFieldMapping)
	docMapping.AddFieldMappingsAt("turkish", textFieldMapping)
	docMapping.AddFieldMappingsAt("series", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("description", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// Search runs a fuzziness-tolerant match query over the catalog.
func (cs *CatalogSearch) Search(query string, limit int) ([]CatalogSearchResult, error) {
	cs.indexMu.RLock()
	defer cs.indexMu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetFuzziness(1)

	searchRequest := bleve.NewSearchRequest(matchQuery)
	searchRequest.Size = limit
	searchRequest.Fields = []string{"*"}

	searchResults, err := cs.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	results := make([]CatalogSearchResult, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		doc := CatalogDocument{Code: hit.ID}
		if name, ok := hit.Fields["name"].(string); ok {
			doc.Name = name
		}
		if category, ok := hit.Fields["category"].(string); ok {
			doc.Category = category
		}
		if turkish, ok := hit.Fields["turkish"].(string); ok {
			doc.Turkish = turkish
		}
		if series, ok := hit.Fields["series"].(string); ok {
			doc.Series = series
		}
		results = append(results, CatalogSearchResult{Document: doc, Score: hit.Score})
	}
	return results, nil
}

// Suggest returns catalog codes close to a code that missed the catalog,
// ranked by edit distance. Useful for "did you mean" hints on typoed codes.
func (cs *CatalogSearch) Suggest(code string, limit int) []string {
	if limit <= 0 {
		limit = 3
	}
	ranked := fuzzy.RankFindFold(strings.ToUpper(strings.TrimSpace(code)), cs.codes)
	sort.Sort(ranked)

	suggestions := make([]string, 0, limit)
	for _, r := range ranked {
		suggestions = append(suggestions, r.Target)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}

// DocumentCount returns the number of indexed catalog entries.
func (cs *CatalogSearch) DocumentCount() (uint64, error) {
	cs.indexMu.RLock()
	defer cs.indexMu.RUnlock()
	return cs.index.DocCount()
}

// Close releases the index.
func (cs *CatalogSearch) Close() error {
	cs.indexMu.Lock()
	defer cs.indexMu.Unlock()
	return cs.index.Close()
}
