package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGraphCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file>",
		Short: "Export the question dependencies",
		Long:  `Outputs a Mermaid diagram (graph TD) with one node per question and one edge per dependency.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			return session.RunGraph(args[0])
		},
	}
}
