package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minikomi/fifths/internal/circle"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "fifths",
	Short: "Walk the C major scale around the circle of fifths",
	Long: `fifths prints the C major scale, then transposes it by a fifth twelve
times, printing the tonic degree and the scale's note names at each step.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return circle.Run(cmd.OutOrStdout(), logger)
	},
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("fifths failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
