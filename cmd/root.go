package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-viewer",
	Short: "Medical record file preview service",
	Long: `file-viewer renders the medical record preview modal: a full-screen overlay
showing a best-effort preview of a PDF, DICOM/image or lab report file together
with its download actions.

It can serve the modal over HTTP for stored records or render a single
descriptor to an HTML fragment from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion wires Cobra's --version flag.
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
}
