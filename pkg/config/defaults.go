package config

// Default file locations and scales. Everything here can be overridden in
// figma-sync.yaml.
const (
	DefaultConfigFile = "figma-sync.yaml"
	DefaultOutDir     = "src/scss/generated"
	DefaultScaffold   = "src/components"
)

func defaults() map[string]any {
	return map[string]any{
		"out_dir": DefaultOutDir,

		"token_files.colors":     "_colors.scss",
		"token_files.semantic":   "_semantic.scss",
		"token_files.typography": "_typography.scss",
		"token_files.borders":    "_borders.scss",
		"token_files.spacing":    "_spacing.scss",
		"token_files.radius":     "_radius.scss",
		"token_files.neutrals":   "_neutrals.scss",

		"scaffold.dir": DefaultScaffold,

		"font_weights": map[string]float64{
			"thin":       100,
			"extralight": 200,
			"light":      300,
			"regular":    400,
			"medium":     500,
			"semibold":   600,
			"bold":       700,
			"extrabold":  800,
			"black":      900,
		},

		"spacing": map[string]float64{
			"xs":  4,
			"sm":  8,
			"md":  16,
			"lg":  24,
			"xl":  32,
			"2xl": 48,
			"3xl": 64,
		},

		"radius": map[string]float64{
			"sm":   4,
			"md":   8,
			"lg":   16,
			"pill": 9999,
		},
	}
}
