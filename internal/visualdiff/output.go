package visualdiff

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// WriteHighlightedPages persists each page's highlighted overlay as a PNG in
// dir, named page_0001.png, page_0002.png, ... by page number. Assembling
// the pages back into a PDF is the document layer's job, not ours.
func WriteHighlightedPages(report *types.VisualChangeReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, page := range report.PageResults {
		if page.Highlighted == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("page_%04d.png", page.PageNumber))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := png.Encode(f, page.Highlighted); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", path, err)
		}
	}
	return nil
}
