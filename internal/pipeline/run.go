// Package pipeline provides the high-level orchestration for a full document analysis.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/doc-intelligence/internal/compliance"
	"github.com/jonathan/doc-intelligence/internal/observability"
	"github.com/jonathan/doc-intelligence/internal/rules"
	"github.com/jonathan/doc-intelligence/internal/textdiff"
	"github.com/jonathan/doc-intelligence/internal/types"
	"github.com/jonathan/doc-intelligence/internal/visualdiff"
)

// RunOptions holds the inputs for a full analysis. Engines whose inputs are
// absent are skipped; at least one engine must be runnable.
type RunOptions struct {
	OldText string // Original text version ("" with NewText set means new content baseline)
	NewText string
	HasText bool // Set when the text pair should be analyzed

	OldPages []image.Image
	NewPages []image.Image

	Category string         // Document category for compliance; "" skips the engine
	Fields   map[string]any // Extracted fields for compliance

	Catalog    *rules.Catalog     // nil means the default catalog
	VisualOpts visualdiff.Options // Zero value means engine defaults
	Now        time.Time          // Zero value means time.Now(); injected for determinism

	Verbose bool
}

// Run executes the applicable engines concurrently against one document pair
// and merges their outputs. The three engines share no state, so they run in
// independent errgroup branches; cancellation propagates through ctx.
func Run(ctx context.Context, opts RunOptions) (*types.AnalysisReport, error) {
	runVisual := len(opts.OldPages) > 0 || len(opts.NewPages) > 0
	runCompliance := opts.Category != ""
	if !opts.HasText && !runVisual && !runCompliance {
		return nil, fmt.Errorf("no analysis inputs provided")
	}

	report := &types.AnalysisReport{
		RunID:    uuid.New().String(),
		Category: opts.Category,
	}

	printer := observability.NewPrinter(os.Stdout)

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex // Protects report assignments and notices

	if opts.HasText {
		g.Go(func() error {
			changes, err := textdiff.NewDetector().Detect(opts.OldText, opts.NewText)
			if err != nil {
				return fmt.Errorf("text change detection failed: %w", err)
			}
			mu.Lock()
			report.TextChanges = changes
			mu.Unlock()
			return nil
		})
	}

	if runVisual {
		g.Go(func() error {
			visual, err := visualdiff.Detect(gCtx, opts.OldPages, opts.NewPages, opts.VisualOpts)
			if err != nil {
				return fmt.Errorf("visual change detection failed: %w", err)
			}
			mu.Lock()
			report.VisualChanges = visual
			if visual.PageCountMismatch != "" {
				report.Notices = append(report.Notices, visual.PageCountMismatch)
			}
			if len(visual.SkippedPages) > 0 {
				report.Notices = append(report.Notices, fmt.Sprintf("skipped %d page(s) that could not be compared", len(visual.SkippedPages)))
			}
			mu.Unlock()
			return nil
		})
	}

	if runCompliance {
		g.Go(func() error {
			engine := compliance.NewEngine(opts.Catalog)
			now := opts.Now
			if now.IsZero() {
				now = time.Now()
			}
			result := engine.CheckAt(opts.Category, opts.Fields, now)
			mu.Lock()
			report.Compliance = result
			if !engine.KnownCategory(opts.Category) {
				report.Notices = append(report.Notices, fmt.Sprintf("unknown category %q: compliance checks passed vacuously", opts.Category))
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintTextChanges(report.TextChanges)
		printer.PrintVisualChanges(report.VisualChanges)
		printer.PrintComplianceReport(report.Compliance)
	}

	return report, nil
}
