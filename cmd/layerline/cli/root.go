// Package cli implements the layerline command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/convergeci/layerline"
	"github.com/convergeci/layerline/cmd/layerline/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	flagRegion         string
	flagS3Endpoint     string
	flagLambdaEndpoint string
	verbose            bool
)

var rootCmd = &cobra.Command{
	Use:   "layerline",
	Short: "Reconcile AWS Lambda layers against S3-backed bundles",
	Long: `Layerline converges named Lambda layers to a desired state: it uploads
a bundle to S3 only when its checksum differs from the stored one,
publishes a new layer version only when no published version already
matches the content and runtime list, and tears every version down
when the layer should not exist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "AWS region (defaults to environment/shared config)")
	rootCmd.PersistentFlags().StringVar(&flagS3Endpoint, "s3-endpoint", "", "Override the S3 endpoint")
	rootCmd.PersistentFlags().StringVar(&flagLambdaEndpoint, "lambda-endpoint", "", "Override the Lambda endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// newClient creates a layerline client, layering flags over config file
// and environment.
func newClient(ctx context.Context) (*layerline.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagRegion != "" {
		cfg.Region = flagRegion
	}
	if flagS3Endpoint != "" {
		cfg.S3Endpoint = flagS3Endpoint
	}
	if flagLambdaEndpoint != "" {
		cfg.LambdaEndpoint = flagLambdaEndpoint
	}

	opts := []layerline.ClientOption{}
	if cfg.Region != "" {
		opts = append(opts, layerline.WithRegion(cfg.Region))
	}
	if cfg.S3Endpoint != "" {
		opts = append(opts, layerline.WithS3Endpoint(cfg.S3Endpoint))
	}
	if cfg.LambdaEndpoint != "" {
		opts = append(opts, layerline.WithLambdaEndpoint(cfg.LambdaEndpoint))
	}
	if cfg.MetadataKey != "" {
		opts = append(opts, layerline.WithMetadataKey(cfg.MetadataKey))
	}
	if cfg.Retry.Attempts > 0 {
		opts = append(opts, layerline.WithRetryPolicy(layerline.RetryPolicy{
			MaxAttempts: cfg.Retry.Attempts,
			Interval:    cfg.Retry.Interval,
		}))
	}
	if verbose {
		opts = append(opts, layerline.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}
	return layerline.NewClient(ctx, opts...)
}

// signalContext returns a context that is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// formatError converts layerline errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, layerline.ErrNotFound):
		return fmt.Sprintf("Error: not found: %v", err)
	case errors.Is(err, layerline.ErrBundleRequired):
		return "Error: --path is required when state is present"
	case errors.Is(err, layerline.ErrMissingLocation):
		return "Error: --bucket and --key are required when state is present"
	case errors.Is(err, layerline.ErrRetriesExhausted):
		return fmt.Sprintf("Error: gave up after repeated failures: %v", err)
	case errors.Is(err, context.Canceled):
		return "Error: operation canceled"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
