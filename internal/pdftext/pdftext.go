// Package pdftext renders a PDF document to the page-by-page text lines
// the statement parser consumes. It is the only package that touches
// document files; everything downstream works on materialized text.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/statement"
)

var log = logging.GetLogger()

// ExtractPages reads a PDF and returns one line slice per page. Text
// fragments on the same visual row are joined with single spaces, which
// is the layout the line grammars expect. A page that fails to render
// becomes an empty page rather than failing the document.
func ExtractPages(path string) ([]statement.Page, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}

	numPages := r.NumPage()
	pages := make([]statement.Page, 0, numPages)

	for no := 1; no <= numPages; no++ {
		page := r.Page(no)
		if page.V.IsNull() {
			pages = append(pages, statement.Page{})
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			log.WithError(err).Warn("page text extraction failed",
				logging.Field{Key: logging.FieldFile, Value: path},
				logging.Field{Key: logging.FieldPage, Value: no})
			pages = append(pages, statement.Page{})
			continue
		}

		lines := make(statement.Page, 0, len(rows))
		for _, row := range rows {
			var builder strings.Builder
			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}
			if line := builder.String(); strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}

	log.Debug("pdf rendered to text",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldPage, Value: numPages})
	return pages, nil
}
