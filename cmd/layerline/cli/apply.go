package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/convergeci/layerline"
)

var (
	applyName          string
	applyBucket        string
	applyKey           string
	applyObjectVersion string
	applyPath          string
	applyState         string
	applyRuntimes      []string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge a layer to its desired state",
	Long: `Apply reconciles a named layer against a local bundle.

With --state present (the default), the bundle is uploaded and a new
version published only when needed; re-running with an unchanged bundle
is a no-op. With --state absent, every published version is deleted.

Examples:
  layerline apply --name my-layer --bucket generic-s3-bucket \
    --key bundle/my-layer.zip --path ./layer.zip --runtime ruby2.5
  layerline apply --name my-layer --state absent`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyName, "name", "", "Layer name (required)")
	applyCmd.Flags().StringVar(&applyBucket, "bucket", "", "Bucket holding the layer bundle")
	applyCmd.Flags().StringVar(&applyKey, "key", "", "Object key of the layer bundle")
	applyCmd.Flags().StringVar(&applyObjectVersion, "object-version", "", "Pin a specific object version")
	applyCmd.Flags().StringVar(&applyPath, "path", "", "Path to the local bundle")
	applyCmd.Flags().StringVar(&applyState, "state", "present", "Desired state (present, absent)")
	applyCmd.Flags().StringArrayVar(&applyRuntimes, "runtime", nil, "Compatible runtime (repeatable)")
	_ = applyCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	if applyPath != "" {
		if info, statErr := os.Stat(applyPath); statErr == nil {
			fmt.Fprintf(os.Stderr, "bundle %s (%s)\n", applyPath, humanize.Bytes(uint64(info.Size())))
		}
	}

	result, err := client.Reconcile(ctx, layerline.DesiredState{
		Name:          applyName,
		Bucket:        applyBucket,
		Key:           applyKey,
		ObjectVersion: applyObjectVersion,
		Path:          applyPath,
		State:         layerline.State(applyState),
		Runtimes:      applyRuntimes,
	})
	if err != nil {
		// report the fields that were resolved before the failure
		var reconcileErr *layerline.ReconcileError
		if errors.As(err, &reconcileErr) {
			printResult(reconcileErr.Result)
		}
		return err
	}

	printResult(result)
	return nil
}

func printResult(r *layerline.Result) {
	fmt.Printf("name:             %s\n", r.Name)
	fmt.Printf("changed:          %t\n", r.Changed)
	if r.VersionArn == "" {
		return
	}
	fmt.Printf("arn:              %s\n", r.Arn)
	fmt.Printf("version:          %d\n", r.Version)
	fmt.Printf("version_arn:      %s\n", r.VersionArn)
	fmt.Printf("version_checksum: %s\n", r.VersionChecksum)
	if r.ObjectVersion != "" {
		fmt.Printf("object_version:   %s\n", r.ObjectVersion)
	}
	fmt.Printf("downloaded:       %t\n", r.Downloaded)
}
