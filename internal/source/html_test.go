package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"ChecklistMapper/internal/config"
)

func TestExtractTable(t *testing.T) {
	t.Parallel()

	html := `
	<div id="checklist">
	  <table class="distribution">
	    <tr><th>scientific_name_regional</th><th>scientific_name</th><th>region_code</th><th>status</th><th>rlc</th><th>comments</th></tr>
	    <tr><td>Pieris brassicae</td><td>Pieris brassicae</td><td>BE</td><td>P</td><td>LC</td><td></td></tr>
	    <tr><td>Vanessa atalanta</td><td>Vanessa atalanta</td><td>BE</td><td>M</td><td>NE</td><td>migrant</td></tr>
	  </table>
	</div>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	table, err := extractTable(doc, "table.distribution")
	if err != nil {
		t.Fatalf("extractTable error: %v", err)
	}

	records, err := decodeDistribution(table)
	if err != nil {
		t.Fatalf("decodeDistribution error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ScientificName != "Pieris brassicae" {
		t.Fatalf("unexpected name: %s", records[0].ScientificName)
	}
	if records[1].Comments != "migrant" {
		t.Fatalf("unexpected comments: %s", records[1].Comments)
	}
}

func TestExtractTableNoMatch(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<p>no tables here</p>"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	if _, err := extractTable(doc, "table"); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestHTMLSourceFetch(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"/distribution": `<table>
			<tr><th>scientific_name_regional</th><th>scientific_name</th><th>region_code</th><th>status</th><th>rlc</th><th>comments</th></tr>
			<tr><td>Pieris brassicae</td><td>Pieris brassicae</td><td>BE</td><td>P</td><td>LC</td><td></td></tr>
		</table>`,
		"/taxon": `<table>
			<tr><th>scientific_name</th><th>family</th><th>genus</th><th>specific_epithet</th><th>authorship</th><th>english_name</th></tr>
			<tr><td>Pieris brassicae</td><td>Pieridae</td><td>Pieris</td><td>brassicae</td><td>(Linnaeus, 1758)</td><td>Large White</td></tr>
		</table>`,
		"/region": `<table>
			<tr><th>region_code</th><th>region_name</th><th>country_code</th><th>country_name</th></tr>
			<tr><td>BE</td><td></td><td>BE</td><td>Belgium</td></tr>
		</table>`,
		"/reference": `<table>
			<tr><th>region_code</th><th>citation</th><th>citation_type</th></tr>
			<tr><td>BE</td><td>Maes 2019</td><td>species</td></tr>
		</table>`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	cfg := config.HTMLSourceConfig{
		Distribution: config.HTMLTableConfig{URL: server.URL + "/distribution"},
		Taxon:        config.HTMLTableConfig{URL: server.URL + "/taxon"},
		Region:       config.HTMLTableConfig{URL: server.URL + "/region"},
		Reference:    config.HTMLTableConfig{URL: server.URL + "/reference"},
	}

	tables, err := NewHTMLSource(cfg, server.Client(), nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if len(tables.Distribution) != 1 || len(tables.Taxa) != 1 || len(tables.Regions) != 1 || len(tables.References) != 1 {
		t.Fatalf("unexpected table sizes: %d/%d/%d/%d",
			len(tables.Distribution), len(tables.Taxa), len(tables.Regions), len(tables.References))
	}
	if tables.Taxa[0].EnglishName != "Large White" {
		t.Fatalf("unexpected english name: %s", tables.Taxa[0].EnglishName)
	}
	if tables.References[0].Citation != "Maes 2019" {
		t.Fatalf("unexpected citation: %s", tables.References[0].Citation)
	}
}
