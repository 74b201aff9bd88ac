// Command layerline reconciles AWS Lambda layers against S3-backed bundles.
package main

import (
	"os"

	"github.com/convergeci/layerline/cmd/layerline/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
