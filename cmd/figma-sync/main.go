package main

import (
	"context"
	"fmt"
	"os"

	figmasync "github.com/amelkic/fe-init"
	"github.com/amelkic/fe-init/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "1.2.0"

var (
	cfgFile        string
	brandKey       string
	componentName  string
	tokensOnly     bool
	scaffoldOnly   bool
	exportPreviews bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-sync",
		Short: "Sync design tokens and component scaffolds from Figma",
		Long:  "Pulls brand color, typography and border tokens from a Figma file into generated SCSS, and scaffolds skeleton files for published components",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file (default figma-sync.yaml)")
	rootCmd.Flags().StringVarP(&brandKey, "brand", "b", "", "Sync a single brand")
	rootCmd.Flags().StringVar(&componentName, "component", "", "Scaffold only the named component")
	rootCmd.Flags().BoolVar(&tokensOnly, "tokens-only", false, "Generate tokens, skip scaffolding")
	rootCmd.Flags().BoolVar(&scaffoldOnly, "scaffold-only", false, "Scaffold components, skip token generation")
	rootCmd.Flags().BoolVar(&exportPreviews, "previews", false, "Download rendered previews for created components")
	rootCmd.Flags().String("token", "", "Figma personal access token (overrides config/env)")
	rootCmd.Flags().String("file", "", "Figma file id (overrides config/env)")
	rootCmd.Flags().String("out", "", "Output directory for generated SCSS")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-sync version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Token Sync")
	cyan.Println("===================")
	cyan.Println()

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	result, err := figmasync.Run(context.Background(), figmasync.Options{
		Config:         cfg,
		Brand:          brandKey,
		Component:      componentName,
		TokensOnly:     tokensOnly,
		ScaffoldOnly:   scaffoldOnly,
		ExportPreviews: exportPreviews,
		Logger:         &cliLogger{},
	})
	if err != nil {
		return err
	}

	cyan.Println("\n📊 Sync Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	if len(result.Brands) > 0 {
		fmt.Printf("  • Brands: %v\n", result.Brands)
	}
	if !scaffoldOnly {
		fmt.Printf("  • Colors: %d\n", result.ColorsFound)
		fmt.Printf("  • Text Styles: %d\n", result.TextStylesFound)
		fmt.Printf("  • Files Written: %d\n", len(result.FilesWritten))
	}
	if !tokensOnly {
		fmt.Printf("  • Components: %d created, %d skipped\n", result.ComponentsCreated, result.ComponentsSkipped)
	}

	green.Println("\n✨ Sync complete")
	return nil
}

// cliLogger implements figmasync.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
