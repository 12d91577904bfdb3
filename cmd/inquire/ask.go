package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/inquire/pkg/terminal"
)

func newAskCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <file>",
		Short: "Ask the questions of a YAML or JSON file",
		Long: `Asks every question of the file in order and prints the answers to stdout.
Prompts are written to stderr. Closing the input early exits with status 130.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}

			signals := terminal.NewSignalManager(cmd.Context())
			defer signals.Stop()

			return session.RunAsk(signals.Context(), args[0])
		},
	}
}
