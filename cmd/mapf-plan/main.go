package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mapf-sat/planner/cmd/mapf-plan/solve"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mapf-plan",
		Short: "mapf-plan",
		Long:  `A CLI tool to solve multi-agent path finding problems via SAT.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solve.NewCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
