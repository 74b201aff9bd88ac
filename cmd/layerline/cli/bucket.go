package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage deployment buckets",
	Long: `Bucket manages the throwaway S3 buckets IaC pipelines stage layer
bundles in.`,
}

var bucketEnsureCmd = &cobra.Command{
	Use:   "ensure <bucket>",
	Short: "Create the bucket if it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runBucketEnsure,
}

var bucketDestroyCmd = &cobra.Command{
	Use:   "destroy <bucket>",
	Short: "Drain every object version and delete the bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runBucketDestroy,
}

func init() {
	bucketCmd.AddCommand(bucketEnsureCmd)
	bucketCmd.AddCommand(bucketDestroyCmd)
	rootCmd.AddCommand(bucketCmd)
}

func runBucketEnsure(_ *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	changed, err := client.EnsureBucket(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("bucket:  %s\nchanged: %t\n", args[0], changed)
	return nil
}

func runBucketDestroy(_ *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	if err := client.DestroyBucket(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("bucket:  %s\nchanged: true\n", args[0])
	return nil
}
