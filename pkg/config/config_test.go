package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{AccessToken: "figd_abc", FileID: "F123"}, false},
		{"missing token", Config{FileID: "F123"}, true},
		{"placeholder token", Config{AccessToken: PlaceholderToken, FileID: "F123"}, true},
		{"missing file id", Config{AccessToken: "figd_abc"}, true},
		{"placeholder file id", Config{AccessToken: "figd_abc", FileID: PlaceholderFileID}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveBrands(t *testing.T) {
	cfg := Config{
		Brands: map[string]Brand{
			"hellofresh": {NodeID: "1:2"},
			"greenchef":  {NodeID: "3:4"},
		},
	}

	brands, err := cfg.ResolveBrands("greenchef")
	require.NoError(t, err)
	assert.Equal(t, []string{"greenchef"}, brands)

	brands, err = cfg.ResolveBrands("")
	require.NoError(t, err)
	assert.Equal(t, []string{"greenchef", "hellofresh"}, brands)

	_, err = cfg.ResolveBrands("nope")
	assert.Error(t, err)

	empty := Config{DefaultBrand: "hellofresh"}
	brands, err = empty.ResolveBrands("")
	require.NoError(t, err)
	assert.Equal(t, []string{"hellofresh"}, brands)
}

func TestWeightValue(t *testing.T) {
	cfg := Config{FontWeights: map[string]float64{"bold": 700}}

	assert.Equal(t, float64(700), cfg.WeightValue("bold"))
	assert.Equal(t, float64(400), cfg.WeightValue("unknown"))
	assert.Equal(t, float64(400), cfg.WeightValue(""))
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "figma-sync.yaml")
	yaml := `
access_token: from-file
file_id: F123
out_dir: custom/out
brands:
  hellofresh:
    node_id: "1:2"
    font_family: "HF Sans"
    semantic:
      primary: green-500
      danger: red-600
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0644))

	// Env overrides file.
	t.Setenv("FIGMA_ACCESS_TOKEN", "from-env")

	// Flags override env.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", "", "")
	require.NoError(t, flags.Parse([]string{"--out", "flag/out"}))

	cfg, err := Load(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AccessToken)
	assert.Equal(t, "F123", cfg.FileID)
	assert.Equal(t, "flag/out", cfg.OutDir)
	assert.Equal(t, "1:2", cfg.Brands["hellofresh"].NodeID)
	assert.Equal(t, "green-500", cfg.Brands["hellofresh"].Semantic["primary"])

	// Defaults survive partial files.
	assert.Equal(t, "_colors.scss", cfg.TokenFiles.Colors)
	assert.Equal(t, float64(700), cfg.FontWeights["bold"])
	assert.NotEmpty(t, cfg.Spacing)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"), nil)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
