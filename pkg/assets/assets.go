// Package assets exports rendered preview images for scaffolded components
// through the Figma render endpoint.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/amelkic/fe-init/pkg/figma"
	"github.com/amelkic/fe-init/pkg/naming"
	"github.com/amelkic/fe-init/pkg/tokens"
)

// ExportConfig holds the render settings for preview export.
type ExportConfig struct {
	Format    string  // "png", "svg", "jpg"
	Scale     float64 // render scale factor
	OutputDir string
}

// Preview is one downloaded component preview.
type Preview struct {
	ComponentID string
	Name        string
	FileName    string
}

// Result holds downloaded previews and non-fatal per-download failures.
type Result struct {
	Previews []Preview
	Errors   []error
}

const maxNodesPerRequest = 100
const maxParallelDownloads = 5

// Export renders preview images for the given components and downloads them
// into cfg.OutputDir. Per-image download failures are collected in the
// result; only the render API call itself is fatal.
func Export(ctx context.Context, client *figma.Client, fileID string, components []tokens.Component, cfg ExportConfig) (*Result, error) {
	if cfg.Format == "" {
		cfg.Format = "png"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create preview directory %q: %w", cfg.OutputDir, err)
	}

	byID := make(map[string]tokens.Component, len(components))
	ids := make([]string, 0, len(components))
	for _, c := range components {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	result := &Result{}

	for start := 0; start < len(ids); start += maxNodesPerRequest {
		end := start + maxNodesPerRequest
		if end > len(ids) {
			end = len(ids)
		}

		imgResp, err := client.GetImages(ctx, fileID, ids[start:end], cfg.Format, cfg.Scale)
		if err != nil {
			return nil, fmt.Errorf("render previews: %w", err)
		}

		var wg sync.WaitGroup
		sem := make(chan struct{}, maxParallelDownloads)
		var mu sync.Mutex

		for nodeID, imageURL := range imgResp.Images {
			if imageURL == "" {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("no image URL for component %s", byID[nodeID].Name))
				mu.Unlock()
				continue
			}

			wg.Add(1)
			go func(id, url string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				c := byID[id]
				fileName := previewFileName(c, cfg.Format)
				destPath := filepath.Join(cfg.OutputDir, fileName)

				if err := download(ctx, url, destPath); err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, fmt.Errorf("download preview for %s: %w", c.Name, err))
					mu.Unlock()
					return
				}

				mu.Lock()
				result.Previews = append(result.Previews, Preview{
					ComponentID: id,
					Name:        c.Name,
					FileName:    fileName,
				})
				mu.Unlock()
			}(nodeID, imageURL)
		}

		wg.Wait()
	}

	return result, nil
}

func previewFileName(c tokens.Component, format string) string {
	name := naming.Kebab(c.Name)
	if name == "" {
		name = naming.Kebab(c.ID)
	}
	if name == "" {
		name = "component"
	}
	return name + "." + format
}

func download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	return nil
}
