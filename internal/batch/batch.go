// Package batch fans independent document parses out across workers and
// folds the per-document results into one deduplicated, categorized
// transaction list.
package batch

import (
	"context"
	"runtime"
	"sync"

	"raj/stmt-extract/internal/logging"
	"raj/stmt-extract/internal/models"
	"raj/stmt-extract/internal/statement"
)

var log = logging.GetLogger()

// DocumentResult is the outcome of parsing one document. Err is set when
// the document yielded nothing usable; Card may still carry whatever
// metadata was recognized before the parse came up empty.
type DocumentResult struct {
	Document     string
	Card         models.CardInfo
	Transactions []models.Transaction
	Err          error
}

// sequentialThreshold is the document count below which the worker pool
// costs more than it saves.
const sequentialThreshold = 2

// ParseAll parses every document and returns one result per document, in
// input order. Each parse owns its state, so documents are handed to a
// worker pool with no shared mutable data. Workers drain early when ctx
// is cancelled; unprocessed documents report the cancellation error.
func ParseAll(ctx context.Context, docs []statement.Document, workerCount int) []DocumentResult {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if len(docs) < sequentialThreshold || workerCount == 1 {
		return parseSequential(docs)
	}
	return parseConcurrent(ctx, docs, workerCount)
}

func parseSequential(docs []statement.Document) []DocumentResult {
	results := make([]DocumentResult, len(docs))
	for i, doc := range docs {
		results[i] = parseOne(doc)
	}
	return results
}

func parseConcurrent(ctx context.Context, docs []statement.Document, workerCount int) []DocumentResult {
	if workerCount > len(docs) {
		workerCount = len(docs)
	}

	// Results are written by index, so workers never touch the same slot.
	results := make([]DocumentResult, len(docs))
	indexChan := make(chan int, workerCount)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				results[i] = parseOne(docs[i])
			}
		}()
	}

	for i := range docs {
		select {
		case indexChan <- i:
		case <-ctx.Done():
			results[i] = DocumentResult{Document: docs[i].Name, Card: models.NewCardInfo(), Err: ctx.Err()}
		}
	}
	close(indexChan)
	wg.Wait()

	log.Debug("documents parsed",
		logging.Field{Key: logging.FieldCount, Value: len(docs)},
		logging.Field{Key: "workers", Value: workerCount})
	return results
}

func parseOne(doc statement.Document) DocumentResult {
	card, txs, err := statement.Parse(doc)
	if err != nil {
		log.WithError(err).Warn("document yielded no transactions",
			logging.Field{Key: logging.FieldDocument, Value: doc.Name})
	}
	return DocumentResult{Document: doc.Name, Card: card, Transactions: txs, Err: err}
}
