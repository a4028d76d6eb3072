package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	stitchextractor "github.com/kataras/stitch-extractor"
	"github.com/kataras/stitch-extractor/pkg/config"
	"github.com/kataras/stitch-extractor/pkg/mcpserver"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List Stitch projects",
		Run: func(cmd *cobra.Command, args []string) {
			client, _, err := newClient()
			if err != nil {
				fail(err)
			}

			ctx, stop := signalContext()
			defer stop()

			resp, err := client.ListProjects(ctx)
			if err != nil {
				fail(err)
			}

			cyan := color.New(color.FgCyan)
			for _, p := range resp.Projects {
				cyan.Printf("%s", p.ID())
				fmt.Printf("  %s\n", p.Title)
			}
		},
	}
}

func newScreensCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "screens",
		Short: "List the screens of a Stitch project",
		Run: func(cmd *cobra.Command, args []string) {
			client, _, err := newClient()
			if err != nil {
				fail(err)
			}

			ctx, stop := signalContext()
			defer stop()

			resp, err := client.ListScreens(ctx, project)
			if err != nil {
				fail(err)
			}

			printScreens(resp.Screens)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Stitch project id (required)")
	cmd.MarkFlagRequired("project")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		project string
		req     stitch.GenerateRequest
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate screens from a text prompt",
		Run: func(cmd *cobra.Command, args []string) {
			client, _, err := newClient()
			if err != nil {
				fail(err)
			}

			ctx, stop := signalContext()
			defer stop()

			logger := &cliLogger{w: os.Stdout}
			logger.Infof("Generating screens, this may take a few minutes...")

			resp, err := client.GenerateScreen(ctx, project, req)
			if err != nil {
				fail(err)
			}

			color.New(color.FgGreen).Printf("✨ Generated %d screen(s)\n", len(resp.Screens))
			printScreens(resp.Screens)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Stitch project id (required)")
	cmd.Flags().StringVar(&req.Prompt, "prompt", "", "Description of the screen to generate (required)")
	cmd.Flags().StringVar(&req.DeviceType, "device", "", "Target device: MOBILE, DESKTOP or TABLET")
	cmd.Flags().StringVar(&req.ModelID, "model", "", "Generation model id")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("prompt")

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve Stitch tools over MCP stdio",
		Run: func(cmd *cobra.Command, args []string) {
			client, cfg, err := newClient()
			if err != nil {
				fail(err)
			}

			// stdout carries the MCP protocol.
			var logger stitchextractor.Logger
			if cfg.LogToolCalls {
				logger = &cliLogger{w: os.Stderr}
			}

			srv := mcpserver.NewServer(client, cfg.CacheSize, logger)
			if err := srv.ServeStdio(); err != nil {
				fail(err)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				fail(err)
			}

			path := configPath
			if path == "" {
				path = config.Path()
			}
			if err := config.Save(cfg, path); err != nil {
				fail(err)
			}

			color.New(color.FgGreen).Printf("✓ Configuration written to %s\n", path)
		},
	}

	cmd.AddCommand(initCmd)
	return cmd
}

func printScreens(screens []stitch.Screen) {
	cyan := color.New(color.FgCyan)
	for _, s := range screens {
		cyan.Printf("%s", s.ID())
		fmt.Printf("  %s", s.Title)
		if s.DeviceType != "" {
			fmt.Printf(" (%s)", s.DeviceType)
		}
		fmt.Println()
	}
}
