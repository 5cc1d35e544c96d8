// Package cmd implements the motiontool command line.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "motiontool",
	Short: "Inspect numpad notation, move lists and recorded sessions",
	Long: `motiontool - offline tooling for the motion interpreter
  - parse and expand numpad notation (236a, 623c, hj9, 66)
  - check a move list file
  - run a recorded session through the interpreter`,
	SilenceUsage:     true,
	PersistentPreRun: setupLogging,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(movelistCmd)
	rootCmd.AddCommand(replayCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
}
