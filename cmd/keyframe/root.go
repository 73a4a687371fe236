package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbosityFlag string

	ctx := newCommandContext(&configFlag, &verbosityFlag)

	rootCmd := &cobra.Command{
		Use:           "keyframe",
		Short:         "Keyframe animation toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureSession()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&verbosityFlag, "verbosity", "v", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
