package visualdiff

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// Options tunes the visual change detector. The zero value means "use
// defaults" for every field.
type Options struct {
	// Workers bounds the page-diff worker pool. Defaults to runtime.NumCPU().
	Workers int
	// PixelThreshold is the 8-bit intensity delta above which a pixel counts
	// as changed. Defaults to DefaultPixelThreshold.
	PixelThreshold uint8
	// MinRegionArea is the noise floor in pixels for changed regions.
	// Defaults to DefaultMinRegionArea.
	MinRegionArea int
	// SignificantPct marks a page significant when its change percentage
	// exceeds it. Defaults to DefaultSignificantPct.
	SignificantPct float64
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.PixelThreshold == 0 {
		o.PixelThreshold = DefaultPixelThreshold
	}
	if o.MinRegionArea == 0 {
		o.MinRegionArea = DefaultMinRegionArea
	}
	if o.SignificantPct == 0 {
		o.SignificantPct = DefaultSignificantPct
	}
	return o
}

// Detect compares the overlapping page prefix of two documents. Page diffs
// run on a bounded worker pool, one task per page pair; results are restored
// to page order before aggregation.
//
// A nil page on either side is skipped and recorded, not fatal. When ctx is
// cancelled the finished pages are kept, unfinished pages are recorded as
// skipped, and ctx's error is returned alongside the partial report.
func Detect(ctx context.Context, oldPages, newPages []image.Image, opts Options) (*types.VisualChangeReport, error) {
	opts = opts.withDefaults()

	report := &types.VisualChangeReport{PageResults: []types.PageDiffResult{}}

	pageCount := len(oldPages)
	if len(newPages) < pageCount {
		pageCount = len(newPages)
	}
	if len(oldPages) != len(newPages) {
		report.PageCountMismatch = fmt.Sprintf(
			"page count mismatch: %d vs %d; compared first %d page(s)",
			len(oldPages), len(newPages), pageCount)
	}

	results := make([]*types.PageDiffResult, pageCount)
	skipped := make([]bool, pageCount)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < pageCount; i++ {
		i := i
		g.Go(func() error {
			if gCtx.Err() != nil {
				skipped[i] = true
				return nil
			}
			if oldPages[i] == nil || newPages[i] == nil {
				skipped[i] = true
				return nil
			}
			result := ComparePage(oldPages[i], newPages[i], i+1, opts)
			results[i] = &result
			return nil
		})
	}
	// Workers never return errors; Wait is for completion only.
	_ = g.Wait()

	var totalPct float64
	compared := 0
	for i := 0; i < pageCount; i++ {
		if skipped[i] || results[i] == nil {
			report.SkippedPages = append(report.SkippedPages, i+1)
			continue
		}
		report.PageResults = append(report.PageResults, *results[i])
		report.TotalChanges += results[i].ChangeCount
		totalPct += results[i].ChangePercentage
		compared++
	}
	sort.Ints(report.SkippedPages)
	if compared > 0 {
		report.AverageChangePercentage = round2(totalPct / float64(compared))
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}
