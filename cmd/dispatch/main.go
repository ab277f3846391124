package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dispatch"
	"github.com/dmitrymomot/dispatch/pkg/logger"
)

var (
	envFile   string
	dryRun    bool
	subject   string
	serveAddr string
)

var rootCmd = &cobra.Command{
	Use:           "dispatch",
	Short:         "Send a personalized newsletter to a spreadsheet contact list",
	Long:          "Without a subcommand dispatch shows a menu: preview, test send or broadcast.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withController(cmd, func(ctx context.Context, c *dispatch.Controller) error {
			return c.Menu(ctx)
		})
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write the message for a placeholder name to a local HTML file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withController(cmd, func(ctx context.Context, c *dispatch.Controller) error {
			if err := c.Run(ctx, dispatch.ModePreview); err != nil {
				return err
			}
			if serveAddr != "" {
				return c.ServePreview(ctx, serveAddr)
			}
			return nil
		})
	},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Send one message to the configured test address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withController(cmd, func(ctx context.Context, c *dispatch.Controller) error {
			return c.Run(ctx, dispatch.ModeTestSend)
		})
	},
}

var broadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Send to every recipient in the spreadsheet after confirmation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withController(cmd, func(ctx context.Context, c *dispatch.Controller) error {
			return c.Run(ctx, dispatch.ModeBroadcast)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "build every message but do not deliver")
	rootCmd.PersistentFlags().StringVar(&subject, "subject", "", "override the broadcast subject")
	previewCmd.Flags().StringVar(&serveAddr, "serve", "", "serve the preview over HTTP on this address, e.g. :8080")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(broadcastCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func withController(cmd *cobra.Command, fn func(context.Context, *dispatch.Controller) error) error {
	cfg, err := dispatch.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry,
		logger.RunIDExtractor(),
		logger.RecipientExtractor(),
	)
	defer logger.Flush(2 * time.Second)

	ctrl, err := dispatch.New(cfg,
		dispatch.WithLogger(log),
		dispatch.WithDryRun(dryRun),
		dispatch.WithSubject(subject),
		dispatch.WithInput(cmd.InOrStdin()),
		dispatch.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return fn(ctx, ctrl)
}
