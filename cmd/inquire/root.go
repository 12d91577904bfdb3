package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/inquire/internal/cli"
)

// newRootCmd builds the command tree. Every flag is bound into cfg so that
// INQUIRE_* variables and inquire.yaml can provide it as well.
func newRootCmd(cfg *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "inquire",
		Short:         "Ask structured questions on the terminal",
		Long:          `inquire reads a question file, asks each question in order and prints the validated answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("format", "f", cli.FormatJSON, "Answer output format (json|yaml)")
	flags.Bool("debug", false, "Log engine events to stderr")
	flags.Bool("no-color", false, "Disable styled output")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file when done")
	flags.Bool("banner", false, "Print the banner before asking")

	_ = cfg.BindPFlag("format", flags.Lookup("format"))
	_ = cfg.BindPFlag("debug", flags.Lookup("debug"))
	_ = cfg.BindPFlag("no_color", flags.Lookup("no-color"))
	_ = cfg.BindPFlag("metrics_file", flags.Lookup("metrics-file"))
	_ = cfg.BindPFlag("banner", flags.Lookup("banner"))

	rootCmd.AddCommand(
		newAskCmd(cfg),
		newConfirmCmd(cfg),
		newValidateCmd(cfg),
		newGraphCmd(cfg),
		newVersionCmd(),
	)
	return rootCmd
}

// newSession resolves the configuration for the running command.
func newSession(cmd *cobra.Command, cfg *viper.Viper) (*cli.Session, error) {
	opts, err := cli.LoadOptions(cfg)
	if err != nil {
		return nil, &cli.ExitError{Code: cli.ExitFailure, Err: err}
	}
	return cli.NewSession(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
}

// Execute runs the CLI and exits with the code the command asked for.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rootCmd := newRootCmd(cli.NewConfig())
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitOK
	}

	var exit *cli.ExitError
	if errors.As(err, &exit) {
		if exit.Err != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", exit.Err)
		}
		return exit.Code
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return cli.ExitFailure
}
