package pastpaper

import (
	"sync"

	"github.com/tsawler/pastpaper/model"
)

// PaperInput is one (question paper, mark scheme) pair in a batch.
type PaperInput struct {
	// ID identifies the paper in results (file name, reference code)
	ID string

	// QPPages are the question paper pages
	QPPages []model.Page

	// MSPages are the mark scheme pages
	MSPages []model.Page
}

// BatchResult is the outcome for one paper in a batch.
type BatchResult struct {
	// ID is the input's identifier
	ID string

	// Result is the paper's segmentation result; partial when Err is
	// non-nil
	Result *Result

	// Err is the paper's fatal error, if any. One paper failing never
	// aborts the batch.
	Err error
}

// ProcessBatch processes independent papers concurrently. Each paper's
// state is fully paper-local, so the fan-out shares nothing but the
// worker pool itself. Results are returned in input order regardless
// of completion order. workers < 1 means one worker per paper.
func ProcessBatch(papers []PaperInput, workers int) []BatchResult {
	results := make([]BatchResult, len(papers))
	if len(papers) == 0 {
		return results
	}
	if workers < 1 || workers > len(papers) {
		workers = len(papers)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				paper := papers[i]
				result, err := NewPaper(paper.QPPages, paper.MSPages).Process()
				results[i] = BatchResult{ID: paper.ID, Result: result, Err: err}
			}
		}()
	}

	for i := range papers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
