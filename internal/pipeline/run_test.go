package pipeline

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-intelligence/internal/types"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func whitePage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestRun_TextOnly(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		OldText: "Purchase Price: $450,000.00",
		NewText: "Purchase Price: $475,000.00",
		HasText: true,
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(report.RunID)
	assert.NoError(t, parseErr)

	require.NotNil(t, report.TextChanges)
	assert.Len(t, report.TextChanges.Modifications, 1)
	assert.Nil(t, report.VisualChanges)
	assert.Nil(t, report.Compliance)
}

func TestRun_NoInputs(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{})
	assert.ErrorContains(t, err, "no analysis inputs provided")
}

func TestRun_AllEngines(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		OldText:  "line one",
		NewText:  "line one",
		HasText:  true,
		OldPages: []image.Image{whitePage(50, 50)},
		NewPages: []image.Image{whitePage(50, 50)},
		Category: "DEED",
		Fields: map[string]any{
			"grantor_name":         "John Doe",
			"grantee_name":         "Jane Smith",
			"property_description": "Lot 5, Block 2 of Sunrise Estates, Plat Book 12",
			"consideration_amount": 450000.0,
			"execution_date":       "2023-12-15",
			"signatures": []any{
				map[string]any{"type": "grantor"},
				map[string]any{"type": "notary"},
			},
			"clauses":           []any{"Full legal description attached as Exhibit A."},
			"legal_description": "Lot 5, Block 2 of Sunrise Estates, Plat Book 12",
		},
		Now: testNow,
	})
	require.NoError(t, err)

	require.NotNil(t, report.TextChanges)
	require.NotNil(t, report.VisualChanges)
	require.NotNil(t, report.Compliance)
	assert.Equal(t, types.StatusCompliant, report.Compliance.OverallStatus)
	assert.Equal(t, "DEED", report.Category)
	assert.Empty(t, report.Notices)
}

func TestRun_UnknownCategoryNotice(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		Category: "XYZ",
		Fields:   map[string]any{},
		Now:      testNow,
	})
	require.NoError(t, err)

	require.Len(t, report.Notices, 1)
	assert.Contains(t, report.Notices[0], `unknown category "XYZ"`)
	assert.Equal(t, types.StatusCompliant, report.Compliance.OverallStatus)
}

func TestRun_PageCountMismatchNotice(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		OldPages: []image.Image{whitePage(50, 50), whitePage(50, 50)},
		NewPages: []image.Image{whitePage(50, 50)},
	})
	require.NoError(t, err)

	require.NotNil(t, report.VisualChanges)
	require.Len(t, report.Notices, 1)
	assert.Contains(t, report.Notices[0], "page count mismatch")
}

func TestRun_InvalidTextFails(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		OldText: string([]byte{0xff, 0xfe}),
		NewText: "valid",
		HasText: true,
	})
	assert.ErrorContains(t, err, "text change detection failed")
}

func TestRun_DistinctRunIDs(t *testing.T) {
	opts := RunOptions{OldText: "a", NewText: "a", HasText: true}

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
