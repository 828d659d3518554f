package models

// Table is the flat tabular structure both pipelines hand to the exporter:
// a header row plus data rows, every cell already rendered as text.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ScrapedLaunchRow maps a table header name to the extracted cell text.
type ScrapedLaunchRow map[string]string

// ScrapedTable is the wiki pipeline's intermediate shape. Headers keeps
// the document order of the columns, which the row maps do not.
type ScrapedTable struct {
	Headers []string
	Rows    []ScrapedLaunchRow
}

// Table renders the scraped rows into the exportable tabular shape,
// columns in scrape order. Cells missing from a row come out empty.
func (s *ScrapedTable) Table() *Table {
	t := &Table{Columns: s.Headers}
	for _, row := range s.Rows {
		cells := make([]string, len(s.Headers))
		for i, h := range s.Headers {
			cells[i] = row[h]
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}
