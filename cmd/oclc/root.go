package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ocltools/internal/cl"
	"github.com/cwbudde/ocltools/internal/cli"
	"github.com/cwbudde/ocltools/internal/compile"
)

const defaultOutput = "out.clx"

type deps struct {
	open func() (cl.Runtime, error)
}

func newRootCmd(d deps) *cobra.Command {
	var (
		logLevel    string
		output      string
		options     string
		verbose     bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "oclc [options] kernel.cl...",
		Short: "Compile OpenCL C sources into a device binary",
		Long: `oclc builds the given sources as one program for every device of the
first OpenCL platform and writes the binary of the first device.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logLevel
			if verbose && !cmd.Flags().Changed("log-level") {
				level = "debug"
			}
			slog.SetDefault(cli.NewLogger(level, cmd.ErrOrStderr()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), cli.VersionLine("oclc"))
				return nil
			}
			if len(args) == 0 {
				return cl.UsageError("no input file")
			}

			sources, err := compile.LoadSources(args)
			if err != nil {
				return err
			}

			rt, err := d.open()
			if err != nil {
				return err
			}

			compiler := &compile.Compiler{Runtime: rt, Options: options}
			result, err := compiler.Build(sources)
			if err != nil {
				return err
			}

			slog.Info("Writing binary", "path", output, "bytes", len(result.First()))
			return compile.WriteBinary(output, result.First())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", defaultOutput, "Output file name")
	flags.StringVar(&options, "options", "", "Build options passed to the OpenCL compiler")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log each build step as debug JSON on stderr (raises --log-level to debug unless set)")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version information")
	cli.AddLogFlags(cmd.PersistentFlags(), &logLevel)

	return cmd
}
