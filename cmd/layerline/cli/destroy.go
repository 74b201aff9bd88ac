package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy <name>",
	Short: "Delete every published version of a layer",
	Long: `Destroy deletes all published versions of the named layer.

Destroying a layer with no versions is a no-op.

Examples:
  layerline destroy my-layer`,
	Args: cobra.ExactArgs(1),
	RunE: runDestroy,
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(_ *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	changed, err := client.Destroy(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("name:    %s\nchanged: %t\n", args[0], changed)
	return nil
}
