package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ocltools/internal/cl"
	"github.com/cwbudde/ocltools/internal/cli"
	"github.com/cwbudde/ocltools/internal/inspect"
)

type deps struct {
	open func() (cl.Runtime, error)
}

func newRootCmd(d deps) *cobra.Command {
	var (
		logLevel    string
		verbose     bool
		list        bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "oclq",
		Short: "Print OpenCL platform and device information",
		Long: `oclq enumerates every OpenCL platform on the host and prints its
attributes followed by the attributes of each of its devices.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(cli.NewLogger(logLevel, cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), cli.VersionLine("oclq"))
				return nil
			}

			rt, err := d.open()
			if err != nil {
				return err
			}

			in := &inspect.Inspector{Runtime: rt, Verbose: verbose}
			if list {
				return in.Summary(cmd.OutOrStdout())
			}
			return in.Report(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print extended device attributes")
	flags.BoolVar(&list, "list", false, "Print one summary row per device")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version information")
	cli.AddLogFlags(cmd.PersistentFlags(), &logLevel)

	return cmd
}
