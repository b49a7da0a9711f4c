package figmasync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amelkic/fe-init/pkg/assets"
	"github.com/amelkic/fe-init/pkg/config"
	"github.com/amelkic/fe-init/pkg/figma"
	"github.com/amelkic/fe-init/pkg/scaffold"
	"github.com/amelkic/fe-init/pkg/scss"
	"github.com/amelkic/fe-init/pkg/tokens"
)

// Options configures a sync run.
type Options struct {
	Config *config.Config

	Brand        string // restrict to one brand key; empty = all configured
	TokensOnly   bool   // skip component scaffolding
	ScaffoldOnly bool   // skip token generation
	Component    string // scaffold only the named component

	ExportPreviews bool   // download rendered previews for created components
	PreviewDir     string // default: <scaffold dir>/_previews

	Logger Logger           // nil = silent
	Client *figma.Client    // nil = client from the configured access token
	Now    func() time.Time // injectable clock for the generated-file banner
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result summarizes a sync run.
type Result struct {
	FileName     string
	Brands       []string
	FilesWritten []string

	ColorsFound     int
	TextStylesFound int

	ComponentsCreated int
	ComponentsSkipped int
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the sync pipeline: validate configuration, fetch file data,
// extract and generate tokens per brand, write shared token files, then
// scaffold components. The first unrecovered error aborts the remainder of
// the run; files already written stay on disk.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("figmasync: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	brands, err := cfg.ResolveBrands(opts.Brand)
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = figma.NewClient(cfg.AccessToken)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	generatedAt := now()

	result := &Result{Brands: brands}

	opts.logInfo("Fetching file %s...", cfg.FileID)
	fileResp, err := client.GetFile(ctx, cfg.FileID)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	result.FileName = fileResp.Name
	opts.logInfo("File: %s", fileResp.Name)

	if !opts.ScaffoldOnly {
		if err := syncTokens(ctx, &opts, client, fileResp, brands, generatedAt, result); err != nil {
			return nil, err
		}
	}

	if !opts.TokensOnly {
		if err := syncComponents(ctx, &opts, client, fileResp, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func syncTokens(ctx context.Context, opts *Options, client *figma.Client, fileResp *figma.FileResponse, brands []string, generatedAt time.Time, result *Result) error {
	cfg := opts.Config

	// The Variables API is the preferred color source, but smaller plans
	// answer it with a 403. That is expected: fall back to the swatch and
	// styles strategies with an empty result.
	opts.logInfo("Fetching local variables...")
	varColors, err := fetchVariableColors(ctx, opts, client)
	if err != nil {
		return err
	}

	for _, brandKey := range brands {
		brand := cfg.Brands[brandKey]
		opts.logInfo("Syncing brand %s...", brandKey)

		root := &fileResp.Document
		styleTable := fileResp.Styles
		if brand.NodeID != "" {
			nodesResp, err := client.GetFileNodes(ctx, cfg.FileID, []string{brand.NodeID})
			if err != nil {
				return fmt.Errorf("fetch nodes for brand %s: %w", brandKey, err)
			}
			nodeData, ok := nodesResp.Nodes[brand.NodeID]
			if !ok {
				return fmt.Errorf("brand %s: node %s not in response", brandKey, brand.NodeID)
			}
			doc := nodeData.Document
			root = &doc
			if len(nodeData.Styles) > 0 {
				styleTable = nodeData.Styles
			}
		}

		styleRecords := tokens.ExtractStyles(styleTable, root)

		colors := varColors
		if len(colors) == 0 {
			colors = tokens.ExtractSwatches(root)
		}
		if len(colors) == 0 {
			colors = styleRecords.Colors
		}
		result.ColorsFound += len(colors)

		brandDir := filepath.Join(cfg.OutDir, brandKey)

		if len(colors) == 0 {
			opts.logWarn("Brand %s: no colors found", brandKey)
		} else {
			path := filepath.Join(brandDir, cfg.TokenFiles.Colors)
			if err := writeFile(opts, result, path, scss.ColorVariables(colors, generatedAt)); err != nil {
				return err
			}
		}

		if len(brand.Semantic) > 0 {
			path := filepath.Join(brandDir, cfg.TokenFiles.Semantic)
			if err := writeFile(opts, result, path, scss.Semantic(brandKey, brand.Semantic, generatedAt)); err != nil {
				return err
			}
		}

		if err := writeTypography(opts, result, brandKey, brand, styleRecords.Texts, brandDir, generatedAt); err != nil {
			return err
		}

		radii := tokens.ExtractRadii(root)
		if len(styleRecords.Strokes) > 0 || len(radii) > 0 {
			path := filepath.Join(brandDir, cfg.TokenFiles.Borders)
			if err := writeFile(opts, result, path, scss.Borders(styleRecords.Strokes, radii, generatedAt)); err != nil {
				return err
			}
		}
	}

	// Shared, non-brand token files from the manual tables.
	if len(cfg.Spacing) > 0 {
		path := filepath.Join(cfg.OutDir, cfg.TokenFiles.Spacing)
		if err := writeFile(opts, result, path, scss.Scale("space", cfg.Spacing, generatedAt)); err != nil {
			return err
		}
	}
	if len(cfg.Radius) > 0 {
		path := filepath.Join(cfg.OutDir, cfg.TokenFiles.Radius)
		if err := writeFile(opts, result, path, scss.Scale("radius", cfg.Radius, generatedAt)); err != nil {
			return err
		}
	}
	if len(cfg.Neutrals) > 0 {
		path := filepath.Join(cfg.OutDir, cfg.TokenFiles.Neutrals)
		if err := writeFile(opts, result, path, scss.Neutrals(cfg.Neutrals, generatedAt)); err != nil {
			return err
		}
	}

	return nil
}

// fetchVariableColors queries the Variables API and degrades a 403 to an
// empty result so the caller falls back to another extraction strategy.
func fetchVariableColors(ctx context.Context, opts *Options, client *figma.Client) ([]tokens.Color, error) {
	varsResp, err := client.GetLocalVariables(ctx, opts.Config.FileID)
	if err != nil {
		var apiErr *figma.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
			opts.logWarn("Variables API not available on this plan, using node-tree extraction")
			return nil, nil
		}
		return nil, fmt.Errorf("fetch variables: %w", err)
	}
	return tokens.ExtractVariables(varsResp), nil
}

func writeTypography(opts *Options, result *Result, brandKey string, brand config.Brand, apiStyles []tokens.TextStyle, brandDir string, generatedAt time.Time) error {
	cfg := opts.Config
	path := filepath.Join(brandDir, cfg.TokenFiles.Typography)

	if brand.TypographyKey != "" {
		table, ok := cfg.Typography[brand.TypographyKey]
		if !ok {
			opts.logWarn("Brand %s: typography key %q not in token table", brandKey, brand.TypographyKey)
		} else {
			for _, styles := range table {
				result.TextStylesFound += len(styles)
			}
			return writeFile(opts, result, path, scss.Typography(brandKey, brand.FontFamily, table, cfg.WeightValue, generatedAt))
		}
	}

	if len(apiStyles) == 0 {
		opts.logWarn("Brand %s: no text styles found", brandKey)
		return nil
	}
	result.TextStylesFound += len(apiStyles)
	return writeFile(opts, result, path, scss.TextStyleMixins(apiStyles, generatedAt))
}

func syncComponents(ctx context.Context, opts *Options, client *figma.Client, fileResp *figma.FileResponse, result *Result) error {
	cfg := opts.Config

	discovered := tokens.ExtractComponents(fileResp.Components, cfg.Scaffold.Exclude)
	if opts.Component != "" {
		filtered := discovered[:0]
		for _, c := range discovered {
			if strings.EqualFold(c.Name, opts.Component) {
				filtered = append(filtered, c)
			}
		}
		discovered = filtered
		if len(discovered) == 0 {
			opts.logWarn("No component named %q found", opts.Component)
			return nil
		}
	}

	if len(discovered) == 0 {
		opts.logWarn("No scaffolding candidates found")
		return nil
	}

	opts.logInfo("Scaffolding %d component(s) into %s...", len(discovered), cfg.Scaffold.Dir)

	var created []tokens.Component
	for _, c := range discovered {
		ok, err := scaffold.Component(cfg.Scaffold.Dir, c)
		if err != nil {
			return fmt.Errorf("scaffold %s: %w", c.Name, err)
		}
		if ok {
			result.ComponentsCreated++
			created = append(created, c)
			opts.logInfo("Created %s", c.Name)
		} else {
			result.ComponentsSkipped++
			opts.logInfo("Skipped %s (already exists)", c.Name)
		}
	}

	if opts.ExportPreviews && len(created) > 0 {
		previewDir := opts.PreviewDir
		if previewDir == "" {
			previewDir = filepath.Join(cfg.Scaffold.Dir, "_previews")
		}
		opts.logInfo("Exporting %d preview(s) to %s...", len(created), previewDir)
		exportResult, err := assets.Export(ctx, client, cfg.FileID, created, assets.ExportConfig{OutputDir: previewDir})
		if err != nil {
			return fmt.Errorf("export previews: %w", err)
		}
		for _, dlErr := range exportResult.Errors {
			opts.logWarn("%v", dlErr)
		}
	}

	return nil
}

// writeFile writes a generated token file, creating parent directories as
// needed. Writes are whole-file overwrites.
func writeFile(opts *Options, result *Result, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	opts.logInfo("Wrote %s", path)
	result.FilesWritten = append(result.FilesWritten, path)
	return nil
}
