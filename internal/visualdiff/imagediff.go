// Package visualdiff compares page raster images of two document versions
// and highlights changed regions.
package visualdiff

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/jonathan/doc-intelligence/internal/types"
)

// Default thresholds, preserved from the production tuning. They are
// reasonable defaults rather than derived values; Options lets callers
// override them.
const (
	DefaultPixelThreshold = 30  // 8-bit intensity delta above which a pixel counts as changed
	DefaultMinRegionArea  = 100 // pixels; smaller regions are noise
	DefaultSignificantPct = 5.0 // page change percentage above which the page is significant
	highlightBoxThickness = 3   // pixels
)

// highlightColor is the box color drawn around changed regions.
var highlightColor = color.RGBA{R: 255, A: 255}

// ComparePage diffs a single page pair and returns the page result with the
// highlighted overlay. The new image is resampled to the old image's
// dimensions when they differ; pixel-perfect registration is out of scope.
func ComparePage(oldImg, newImg image.Image, pageNumber int, opts Options) types.PageDiffResult {
	opts = opts.withDefaults()

	oldBounds := oldImg.Bounds()
	w, h := oldBounds.Dx(), oldBounds.Dy()

	if nb := newImg.Bounds(); nb.Dx() != w || nb.Dy() != h {
		newImg = resample(newImg, w, h)
	}

	mask, changedPixels := diffMask(oldImg, newImg, opts.PixelThreshold)

	regions := connectedRegions(mask, w, h, opts.MinRegionArea)

	highlighted := drawHighlights(newImg, regions)

	totalPixels := w * h
	pct := 0.0
	if totalPixels > 0 {
		pct = round2(float64(changedPixels) / float64(totalPixels) * 100)
	}

	return types.PageDiffResult{
		PageNumber:       pageNumber,
		ChangeCount:      len(regions),
		ChangePercentage: pct,
		Significant:      pct > opts.SignificantPct,
		Highlighted:      highlighted,
	}
}

// resample scales img to w x h using bilinear interpolation.
func resample(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// diffMask computes the thresholded absolute-difference mask between two
// equally sized images and the count of changed pixels. Intensity is the
// standard luma reduction of the per-channel absolute difference.
func diffMask(oldImg, newImg image.Image, threshold uint8) ([]bool, int) {
	ob, nb := oldImg.Bounds(), newImg.Bounds()
	w, h := ob.Dx(), ob.Dy()
	mask := make([]bool, w*h)
	changed := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			or, og, obl, _ := oldImg.At(ob.Min.X+x, ob.Min.Y+y).RGBA()
			nr, ng, nbl, _ := newImg.At(nb.Min.X+x, nb.Min.Y+y).RGBA()

			dr := absDiff8(or, nr)
			dg := absDiff8(og, ng)
			db := absDiff8(obl, nbl)

			// Luma-weighted intensity of the channel differences.
			intensity := (299*dr + 587*dg + 114*db) / 1000
			if intensity > uint32(threshold) {
				mask[y*w+x] = true
				changed++
			}
		}
	}
	return mask, changed
}

// absDiff8 returns |a-b| reduced from 16-bit to 8-bit channel depth.
func absDiff8(a, b uint32) uint32 {
	a >>= 8
	b >>= 8
	if a > b {
		return a - b
	}
	return b - a
}

// region is a connected blob of changed pixels reported as its bounding box.
type region struct {
	bounds image.Rectangle
	area   int
}

// connectedRegions labels 8-connected components in the mask and returns the
// bounding boxes of components larger than minArea, in scan order.
func connectedRegions(mask []bool, w, h, minArea int) []region {
	visited := make([]bool, len(mask))
	var regions []region
	var queue []int

	for start := range mask {
		if !mask[start] || visited[start] {
			continue
		}

		visited[start] = true
		queue = append(queue[:0], start)
		minX, minY := start%w, start/w
		maxX, maxY := minX, minY
		area := 0

		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			area++
			x, y := idx%w, idx/w

			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nIdx := ny*w + nx
					if mask[nIdx] && !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}
		}

		if area > minArea {
			regions = append(regions, region{
				bounds: image.Rect(minX, minY, maxX+1, maxY+1),
				area:   area,
			})
		}
	}
	return regions
}

// drawHighlights copies img into an RGBA canvas and draws a box around each
// region.
func drawHighlights(img image.Image, regions []region) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)

	for _, r := range regions {
		drawRect(dst, r.bounds, highlightBoxThickness)
	}
	return dst
}

// drawRect draws a hollow rectangle of the given border thickness, clamped
// to the image bounds.
func drawRect(dst *image.RGBA, r image.Rectangle, thickness int) {
	clamped := r.Intersect(dst.Bounds())
	for t := 0; t < thickness; t++ {
		top := clamped.Min.Y + t
		bottom := clamped.Max.Y - 1 - t
		for x := clamped.Min.X; x < clamped.Max.X; x++ {
			if top < clamped.Max.Y {
				dst.SetRGBA(x, top, highlightColor)
			}
			if bottom >= clamped.Min.Y {
				dst.SetRGBA(x, bottom, highlightColor)
			}
		}
		left := clamped.Min.X + t
		right := clamped.Max.X - 1 - t
		for y := clamped.Min.Y; y < clamped.Max.Y; y++ {
			if left < clamped.Max.X {
				dst.SetRGBA(left, y, highlightColor)
			}
			if right >= clamped.Min.X {
				dst.SetRGBA(right, y, highlightColor)
			}
		}
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
