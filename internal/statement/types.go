// Package statement implements the statement-text extraction engine: it
// consumes the page-by-page text of one financial statement document and
// produces structured card metadata plus a normalized transaction list.
//
// The engine is a best-effort heuristic classifier. Lines that fail to
// parse are dropped locally; no single line ever aborts a document.
package statement

// Page is the text of one statement page, one entry per line.
type Page []string

// Document is the input for one parse pass: the per-page line sequences
// produced by the external text-extraction step, plus a name used in logs
// and error messages.
type Document struct {
	Name  string
	Pages []Page
}
