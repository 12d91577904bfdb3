package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/inquire/pkg/terminal"
)

func newConfirmCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <message>",
		Short: "Ask a yes/no question",
		Long:  `Exits with 0 for yes (the default), 1 for no and 130 when the input is closed.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}

			signals := terminal.NewSignalManager(cmd.Context())
			defer signals.Stop()

			return session.RunConfirm(signals.Context(), strings.Join(args, " "))
		},
	}
}
