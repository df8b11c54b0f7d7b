package siasisten

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PageKind names the portal pages the adapter knows how to read.
type PageKind int

const (
	VacancyList PageKind = iota
	LogList
	FinanceList
)

func (k PageKind) String() string {
	switch k {
	case VacancyList:
		return "daftar lowongan"
	case LogList:
		return "daftar log"
	case FinanceList:
		return "daftar pembayaran"
	default:
		return "halaman tidak dikenal"
	}
}

// Schema describes the column order of one page's table. When Match is set
// the page carries several tables and only the one whose header contains
// every Match entry is read.
type Schema struct {
	Kind    PageKind
	Columns []string
	Match   []string
}

var (
	vacancySchema = Schema{
		Kind:    VacancyList,
		Columns: []string{"No", "Mata Kuliah", "Semester", "Tahun Ajaran", "Dosen", "Log"},
	}
	logSchema = Schema{
		Kind:    LogList,
		Columns: []string{"No", "Tanggal", "Jam", "Kategori", "Deskripsi Tugas", "Status", "Operasi", "Pesan"},
	}
	financeSchema = Schema{
		Kind:    FinanceList,
		Columns: []string{"NPM", "Asisten", "Bulan", "Mata Kuliah", "Jumlah Jam", "Honor Per Jam", "Jumlah Pembayaran", "Status"},
		Match:   []string{"NPM", "Asisten"},
	}
)

// Row gives positional, bounds-checked access to one data row.
type Row struct {
	schema Schema
	index  int
	cells  *goquery.Selection
}

func (r Row) cell(i int) (*goquery.Selection, error) {
	if i < 0 || i >= r.cells.Length() {
		return nil, r.fail(i, "kolom tidak ada")
	}
	return r.cells.Eq(i), nil
}

func (r Row) fail(i int, reason string) *ParseError {
	field := ""
	if i >= 0 && i < len(r.schema.Columns) {
		field = r.schema.Columns[i]
	}
	return &ParseError{Page: r.schema.Kind, Row: r.index, Field: field, Reason: reason}
}

// Text is the trimmed text of cell i.
func (r Row) Text(i int) (string, error) {
	c, err := r.cell(i)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(cellText(c)), nil
}

// Href returns the href of the first anchor in cell i and the id parsed from
// it. A missing anchor is an error.
func (r Row) Href(i int) (string, string, error) {
	href, id, err := r.OptionalHref(i)
	if err != nil {
		return "", "", err
	}
	if href == "" {
		return "", "", r.fail(i, "tautan tidak ditemukan")
	}
	return href, id, nil
}

// OptionalHref is Href for columns where an absent anchor is normal; both
// results are empty then.
func (r Row) OptionalHref(i int) (string, string, error) {
	c, err := r.cell(i)
	if err != nil {
		return "", "", err
	}
	href, ok := c.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", "", nil
	}
	href = strings.TrimSpace(href)
	id := IDFromLink(href)
	if id == "" {
		return "", "", r.fail(i, "id tidak bisa dibaca dari tautan "+href)
	}
	return href, id, nil
}

// IDFromLink takes the second-to-last path segment of a portal link, so
// "/log/listLogMahasiswa/123/" yields "123".
func IDFromLink(href string) string {
	parts := strings.Split(href, "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// ExtractRows finds the schema's table in doc, validates its header and maps
// every row after the header through mapRow. The first mapping error aborts
// the whole page.
func ExtractRows[T any](doc *goquery.Document, schema Schema, mapRow func(Row) (T, error)) ([]T, error) {
	table, err := findTable(doc, schema)
	if err != nil {
		return nil, err
	}

	rows := table.Find("tr")
	header := rows.First().Find("th, td")
	if header.Length() < len(schema.Columns) {
		return nil, &ParseError{
			Page:   schema.Kind,
			Reason: "jumlah kolom header tidak sesuai",
		}
	}

	records := []T{}
	var parseErr error
	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		row := Row{schema: schema, index: i + 1, cells: tr.Find("td")}
		if row.cells.Length() < len(schema.Columns) {
			parseErr = &ParseError{Page: schema.Kind, Row: row.index, Reason: "jumlah kolom kurang"}
			return false
		}
		rec, err := mapRow(row)
		if err != nil {
			parseErr = err
			return false
		}
		records = append(records, rec)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return records, nil
}

func findTable(doc *goquery.Document, schema Schema) (*goquery.Selection, error) {
	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil, &ParseError{Page: schema.Kind, Reason: "tabel tidak ditemukan"}
	}
	if len(schema.Match) == 0 {
		return tables.First(), nil
	}

	var found *goquery.Selection
	tables.EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if headerMatches(t, schema.Match) {
			found = t
			return false
		}
		return true
	})
	if found == nil {
		return nil, &ParseError{
			Page:   schema.Kind,
			Reason: "tabel dengan kolom " + strings.Join(schema.Match, ", ") + " tidak ditemukan",
		}
	}
	return found, nil
}

func headerMatches(table *goquery.Selection, want []string) bool {
	var names []string
	table.Find("tr").First().Find("th, td").Each(func(_ int, c *goquery.Selection) {
		names = append(names, strings.ToLower(strings.TrimSpace(c.Text())))
	})
	for _, w := range want {
		w = strings.ToLower(w)
		ok := false
		for _, n := range names {
			if strings.Contains(n, w) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// cellText concatenates the text under a cell, rendering <br> as a newline so
// multi-line cells keep their line structure.
func cellText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}
