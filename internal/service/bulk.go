package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-match/internal/analyzer"
)

// BulkItem is the outcome for one document of a bulk run. Exactly one
// of Result and Err is set.
type BulkItem struct {
	ID       string
	Document string
	Result   *analyzer.MatchResult
	Err      error
}

// AnalyzeBulk fans the documents out over the worker pool and collects
// one item per document. A failing document only marks its own item;
// the rest of the batch proceeds. Items come back sorted by descending
// score, with errored items last, ties keeping input order.
func (s *Service) AnalyzeBulk(ctx context.Context, docs []Document, jobDescription string) []BulkItem {
	items := make([]BulkItem, len(docs))

	pool := NewWorkerPool(s.workers, len(docs))
	results := pool.Run(ctx)

	for i, doc := range docs {
		items[i] = BulkItem{ID: uuid.NewString(), Document: doc.Name}
		pool.Submit(func(taskCtx context.Context) error {
			result, err := s.Analyze(taskCtx, doc, jobDescription)
			if err != nil {
				items[i].Err = err
				s.log.Warn("bulk item failed",
					zap.String("id", items[i].ID),
					zap.String("document", doc.Name),
					zap.Error(err))
				return err
			}
			items[i].Result = result
			return nil
		})
	}
	pool.Close()

	for range results {
	}

	sort.SliceStable(items, func(a, b int) bool {
		ia, ib := items[a], items[b]
		if (ia.Result == nil) != (ib.Result == nil) {
			return ia.Result != nil
		}
		if ia.Result == nil {
			return false
		}
		return ia.Result.Score > ib.Result.Score
	})

	s.log.Info("bulk analysis complete",
		zap.Int("documents", len(docs)),
		zap.Int("workers", s.workers))
	return items
}
