package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ChecklistMapper/internal/config"
	"ChecklistMapper/internal/domain"
	"ChecklistMapper/internal/ports"
)

// HTMLSource reads the four raw tables from checklist pages published as
// HTML tables, one URL + CSS selector per table.
type HTMLSource struct {
	cfg    config.HTMLSourceConfig
	client *http.Client
	logger *slog.Logger
}

var _ ports.ChecklistSource = (*HTMLSource)(nil)

// NewHTMLSource wires an HTTP client; a nil client gets a sane default.
func NewHTMLSource(cfg config.HTMLSourceConfig, client *http.Client, log *slog.Logger) *HTMLSource {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &HTMLSource{cfg: cfg, client: client, logger: log}
}

// Fetch downloads and decodes all four tables.
func (s *HTMLSource) Fetch(ctx context.Context) (domain.RawTables, error) {
	var tables domain.RawTables

	dist, err := s.fetchTable(ctx, s.cfg.Distribution)
	if err != nil {
		return tables, fmt.Errorf("distribution table: %w", err)
	}
	if tables.Distribution, err = decodeDistribution(dist); err != nil {
		return tables, err
	}

	taxa, err := s.fetchTable(ctx, s.cfg.Taxon)
	if err != nil {
		return tables, fmt.Errorf("taxon table: %w", err)
	}
	if tables.Taxa, err = decodeTaxa(taxa); err != nil {
		return tables, err
	}

	regions, err := s.fetchTable(ctx, s.cfg.Region)
	if err != nil {
		return tables, fmt.Errorf("region table: %w", err)
	}
	if tables.Regions, err = decodeRegions(regions); err != nil {
		return tables, err
	}

	refs, err := s.fetchTable(ctx, s.cfg.Reference)
	if err != nil {
		return tables, fmt.Errorf("reference table: %w", err)
	}
	if tables.References, err = decodeReferences(refs); err != nil {
		return tables, err
	}

	if s.logger != nil {
		s.logger.Debug("html source loaded",
			"distribution", len(tables.Distribution),
			"taxa", len(tables.Taxa),
			"regions", len(tables.Regions),
			"references", len(tables.References))
	}

	return tables, nil
}

func (s *HTMLSource) fetchTable(ctx context.Context, table config.HTMLTableConfig) (rawTable, error) {
	doc, err := s.fetchDocument(ctx, table.URL)
	if err != nil {
		return rawTable{}, err
	}
	return extractTable(doc, table.Selector)
}

func (s *HTMLSource) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "ChecklistMapper/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractTable converts the first table matching the selector into cells.
// The first row supplies the header; both th and td cells are accepted.
func extractTable(doc *goquery.Document, selector string) (rawTable, error) {
	if selector == "" {
		selector = "table"
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return rawTable{}, fmt.Errorf("no table matches selector %q", selector)
	}

	var header []string
	var rows [][]string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if header == nil {
			header = cells
			return
		}
		rows = append(rows, cells)
	})

	if header == nil {
		return rawTable{}, fmt.Errorf("table matched by %q has no rows", selector)
	}

	return newRawTable(header, rows), nil
}
