package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/convergeci/layerline"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Look up the newest published version of a layer",
	Long: `Search prints details about the newest version of the named layer.

Examples:
  layerline search my-layer`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	layer, err := client.Search(ctx, args[0])
	if errors.Is(err, layerline.ErrNotFound) {
		fmt.Printf("name:  %s\nfound: false\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("name:             %s\n", layer.LayerName)
	fmt.Printf("found:            true\n")
	fmt.Printf("arn:              %s\n", layer.LayerArn)
	fmt.Printf("version:          %d\n", layer.Version)
	fmt.Printf("version_arn:      %s\n", layer.VersionArn)
	fmt.Printf("version_checksum: %s\n", layer.Checksum)
	if len(layer.Runtimes) > 0 {
		fmt.Printf("runtimes:         %s\n", strings.Join(layer.Runtimes, ", "))
	}
	return nil
}
