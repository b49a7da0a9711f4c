// Package config holds the brand, token and file-path configuration for the
// sync pipeline. Configuration is layered from defaults, an optional
// figma-sync.yaml, FIGMA_-prefixed environment variables and CLI flags.
package config

import (
	"fmt"
	"sort"
)

// Placeholder credential values shipped in the example config. Running with
// these still in place is a configuration error.
const (
	PlaceholderToken  = "YOUR_FIGMA_TOKEN"
	PlaceholderFileID = "YOUR_FILE_ID"
)

// Config is the root configuration, constructed once at start-up and passed
// explicitly to every stage that needs it.
type Config struct {
	AccessToken  string           `koanf:"access_token"`
	FileID       string           `koanf:"file_id"`
	OutDir       string           `koanf:"out_dir"`
	DefaultBrand string           `koanf:"default_brand"`
	Brands       map[string]Brand `koanf:"brands"`

	TokenFiles TokenFiles `koanf:"token_files"`
	Scaffold   Scaffold   `koanf:"scaffold"`

	// Typography is the manually maintained token table:
	// typography key -> mode (desktop/mobile) -> style name -> values.
	Typography map[string]map[string]map[string]TextTokens `koanf:"typography"`

	// FontWeights maps weight names ("bold", "medium") to numeric values.
	FontWeights map[string]float64 `koanf:"font_weights"`

	// Spacing and Radius are the shared, non-brand token scales.
	Spacing map[string]float64 `koanf:"spacing"`
	Radius  map[string]float64 `koanf:"radius"`

	// Neutrals are shared neutral colors emitted alongside the scales.
	Neutrals map[string]string `koanf:"neutrals"`
}

// Brand describes one brand target in the Figma file.
type Brand struct {
	NodeID        string `koanf:"node_id"`
	TypographyKey string `koanf:"typography_key"`
	FontFamily    string `koanf:"font_family"`

	// Semantic maps role names (primary, danger, success, ...) onto
	// brand-specific token names.
	Semantic map[string]string `koanf:"semantic"`
}

// TokenFiles names the generated stylesheet files.
type TokenFiles struct {
	Colors     string `koanf:"colors"`
	Semantic   string `koanf:"semantic"`
	Typography string `koanf:"typography"`
	Borders    string `koanf:"borders"`
	Spacing    string `koanf:"spacing"`
	Radius     string `koanf:"radius"`
	Neutrals   string `koanf:"neutrals"`
}

// Scaffold configures component scaffolding.
type Scaffold struct {
	Dir string `koanf:"dir"`

	// Exclude lists name substrings; matching components are skipped.
	Exclude []string `koanf:"exclude"`
}

// TextTokens is one row of the typography token table.
type TextTokens struct {
	Size          float64 `koanf:"size"`
	LineHeight    float64 `koanf:"line_height"`
	LetterSpacing float64 `koanf:"letter_spacing"`
	Weight        string  `koanf:"weight"`
}

// Validate checks that required credentials are present and not placeholders.
func (c *Config) Validate() error {
	if c.AccessToken == "" || c.AccessToken == PlaceholderToken {
		return fmt.Errorf("access token missing: set FIGMA_ACCESS_TOKEN or access_token in figma-sync.yaml")
	}
	if c.FileID == "" || c.FileID == PlaceholderFileID {
		return fmt.Errorf("file id missing: set FIGMA_FILE_ID or file_id in figma-sync.yaml")
	}
	return nil
}

// ResolveBrands returns the brand keys a run should target: the explicit
// selection if given, otherwise every configured brand, otherwise the default.
func (c *Config) ResolveBrands(selected string) ([]string, error) {
	if selected != "" {
		if _, ok := c.Brands[selected]; !ok {
			return nil, fmt.Errorf("unknown brand %q (configured: %v)", selected, c.BrandKeys())
		}
		return []string{selected}, nil
	}

	if len(c.Brands) > 0 {
		return c.BrandKeys(), nil
	}

	if c.DefaultBrand != "" {
		return []string{c.DefaultBrand}, nil
	}
	return nil, nil
}

// BrandKeys returns the configured brand keys in sorted order.
func (c *Config) BrandKeys() []string {
	keys := make([]string, 0, len(c.Brands))
	for k := range c.Brands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WeightValue resolves a weight name against the weight table, defaulting
// to 400 when the name is unknown or empty.
func (c *Config) WeightValue(name string) float64 {
	if w, ok := c.FontWeights[name]; ok {
		return w
	}
	return 400
}
