package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a question file for consistency",
		Long:  `Parses the file and reports unknown keys, bad regexes and dependencies on missing or later fields.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			return session.RunValidate(args[0])
		},
	}
}
