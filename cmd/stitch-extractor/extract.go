package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	stitchextractor "github.com/kataras/stitch-extractor"
	"github.com/kataras/stitch-extractor/pkg/formatter"
)

var (
	projectID    string
	screenID     string
	outputFile   string
	jsonFile     string
	exportAssets bool
	assetDir     string
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the design context of a screen",
		Run:   runExtract,
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Stitch project id (required unless --screen is a full resource name)")
	cmd.Flags().StringVarP(&screenID, "screen", "s", "", "Screen id or projects/{p}/screens/{s} (required)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "STITCH_DESIGN_CONTEXT.md", "Output markdown file")
	cmd.Flags().StringVar(&jsonFile, "json", "", "Also write the design context as JSON to this file")
	cmd.Flags().BoolVar(&exportAssets, "export-assets", false, "Download the screen HTML, CSS and screenshot")
	cmd.Flags().StringVar(&assetDir, "asset-dir", "", "Output directory for exported assets (default from config)")

	cmd.MarkFlagRequired("screen")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Stitch Design Extractor")
	cyan.Println("===========================")
	cyan.Println()

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	ctx, stop := signalContext()
	defer stop()

	result, err := stitchextractor.Run(ctx, stitchextractor.Options{
		Config:       *cfg,
		ProjectID:    projectID,
		ScreenID:     screenID,
		ExportAssets: exportAssets,
		AssetDir:     assetDir,
		Logger:       &cliLogger{w: os.Stdout},
	})
	if err != nil {
		fail(err)
	}

	// Display extracted stats.
	dc := result.Context
	cyan.Println("\n📊 Extraction Summary:")
	fmt.Printf("  • Colors: %d\n", len(dc.Colors))
	fmt.Printf("  • Fonts: %d\n", len(dc.Fonts))
	if len(dc.Fonts) > 0 {
		fmt.Printf("  • Primary Font: %s\n", dc.Fonts[0].Family)
	}
	fmt.Printf("  • Spacing Values: %d\n", len(dc.Spacing))
	fmt.Printf("  • Layout Patterns: %d\n", len(dc.Layouts))
	if len(result.Assets) > 0 {
		fmt.Printf("  • Exported Assets: %d\n", len(result.Assets))
	}

	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, []byte(result.Markdown), 0644); err != nil {
		red.Printf("✗\n")
		fail(err)
	}
	green.Println("✓")

	if jsonFile != "" {
		data, err := formatter.ToJSON(dc)
		if err != nil {
			fail(err)
		}
		green.Printf("💾 Writing to %s... ", jsonFile)
		if err := os.WriteFile(jsonFile, []byte(data+"\n"), 0644); err != nil {
			red.Printf("✗\n")
			fail(err)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Successfully extracted design context to %s\n\n", outputFile)
}
