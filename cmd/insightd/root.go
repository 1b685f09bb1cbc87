package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "insightd",
		Short:         "Journal text-analysis service",
		Long:          "insightd turns free-form business-journal text into structured mood, energy, category, heading, and insight data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newAnalyzeCommand(),
		newStatusCommand(),
	)
	return root
}
