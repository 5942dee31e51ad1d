// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen runs the paper screening pipeline: search PubMed for
// candidate IDs, fetch each article's metadata, classify author
// affiliations, and keep only papers with at least one pharmaceutical or
// biotech company author.
package screen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/classify"
	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

// Searcher returns candidate PubMed IDs for a query, most relevant first.
type Searcher interface {
	SearchIDs(ctx context.Context, query string, maxResults int) ([]string, error)
}

// Fetcher retrieves the raw metadata for a single article.
type Fetcher interface {
	FetchArticle(ctx context.Context, pmid string) (*types.RawPaper, error)
}

// Summary holds the outcome of one screening run. The three counters are
// disjoint per-identifier outcomes.
type Summary struct {
	Kept    int // papers with at least one company affiliation
	Dropped int // fetched papers that failed the company gate
	Failed  int // identifiers whose fetch or parse failed
}

// Total returns the number of identifiers processed.
func (s Summary) Total() int {
	return s.Kept + s.Dropped + s.Failed
}

// HasFailures reports whether any identifiers failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// SearchPapers runs the full pipeline for a query. A search failure aborts
// the run; per-identifier fetch or parse failures are printed and skipped so
// one bad record never sinks the batch. An empty ID list is not an error.
// Output order follows the search result order regardless of fetch
// concurrency. Status lines go to w; debug adds per-identifier detail.
func SearchPapers(ctx context.Context, searcher Searcher, fetcher Fetcher, cls *classify.Classifier, query string, cfg types.SearchConfig, debug bool, w io.Writer) ([]types.PaperRecord, Summary, error) {
	var summary Summary

	ids, err := searcher.SearchIDs(ctx, query, cfg.MaxResults)
	if err != nil {
		return nil, summary, fmt.Errorf("searching PubMed: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No papers found for the given query")
		return nil, summary, nil
	}
	if debug {
		fmt.Fprintf(w, "found %d candidate IDs\n", len(ids))
	}

	var outcomes []screenOutcome
	if cfg.FetchWorkers > 1 {
		outcomes = screenParallel(ctx, fetcher, cls, ids, cfg.FetchWorkers)
	} else {
		outcomes, err = screenSequential(ctx, fetcher, cls, ids, cfg.FetchDelay)
	}

	records := make([]types.PaperRecord, 0, len(outcomes))
	for i, out := range outcomes {
		switch {
		case out.err != nil:
			fmt.Fprintf(w, "failed:  %s (%v)\n", ids[i], out.err)
			summary.Failed++
		case out.record == nil:
			summary.Dropped++
			if debug {
				fmt.Fprintf(w, "dropped: %s (no company affiliation)\n", ids[i])
			}
		default:
			summary.Kept++
			records = append(records, *out.record)
			if debug {
				fmt.Fprintf(w, "kept:    %s (%s)\n", ids[i], strings.Join(out.record.CompanyAffiliations, "; "))
			}
		}
	}

	fmt.Fprintf(w, "\nScreening summary: %d kept, %d dropped, %d failed (total: %d)\n",
		summary.Kept, summary.Dropped, summary.Failed, summary.Total())

	if err != nil {
		return records, summary, err
	}
	return records, summary, nil
}

// screenOutcome is the per-identifier result: exactly one of record and err
// is meaningful, and a nil record with nil err means the paper was dropped
// by the inclusion gate.
type screenOutcome struct {
	record *types.PaperRecord
	err    error
}

// screenOne fetches and screens a single identifier.
func screenOne(ctx context.Context, fetcher Fetcher, cls *classify.Classifier, pmid string) screenOutcome {
	raw, err := fetcher.FetchArticle(ctx, pmid)
	if err != nil {
		return screenOutcome{err: err}
	}
	res := Resolve(raw.Authors, cls)
	return screenOutcome{record: BuildRecord(raw, res)}
}

// screenSequential processes identifiers one at a time with a pause between
// consecutive fetches. On cancellation it returns the outcomes gathered so
// far together with ctx.Err(); callers still report the partial batch.
func screenSequential(ctx context.Context, fetcher Fetcher, cls *classify.Classifier, ids []string, delay time.Duration) ([]screenOutcome, error) {
	outcomes := make([]screenOutcome, 0, len(ids))
	for i, id := range ids {
		select {
		case <-ctx.Done():
			return outcomes, ctx.Err()
		default:
		}
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		outcomes = append(outcomes, screenOne(ctx, fetcher, cls, id))
	}
	return outcomes, nil
}

// screenParallel fans identifiers out to a fixed pool of workers. Results
// land in identifier order, not completion order.
func screenParallel(ctx context.Context, fetcher Fetcher, cls *classify.Classifier, ids []string, workers int) []screenOutcome {
	if workers > len(ids) {
		workers = len(ids)
	}

	outcomes := make([]screenOutcome, len(ids))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = screenOne(ctx, fetcher, cls, ids[i])
			}
		}()
	}

	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
