package main

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	// Register the decoders page images are commonly rendered to.
	_ "image/jpeg"
	_ "image/png"

	"github.com/jonathan/doc-intelligence/internal/config"
)

// loadText reads a text file for diffing.
func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// loadFields reads an extracted-fields JSON file into the nested map shape
// the compliance engine consumes.
func loadFields(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file %s: %w", path, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse fields JSON %s: %w", path, err)
	}
	return fields, nil
}

// loadPages decodes every image in dir, sorted by filename so page order is
// stable. A file that fails to decode becomes a nil page, which the visual
// engine records as skipped instead of failing the run.
func loadPages(dir string) ([]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read page directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var pages []image.Image
	for _, name := range names {
		img, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping page %s: %v\n", name, err)
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, img)
	}
	return pages, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// mergeConfig loads the optional config file and overlays it under the
// already-bound flag values.
func mergeConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, nil
	}
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return flags, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return flags, err
	}
	return merged, nil
}
