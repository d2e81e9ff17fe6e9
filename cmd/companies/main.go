package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected at build time
	Version = "dev"
	// ProgramName is injected at build time
	ProgramName = "companies"
)

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, ProgramName, args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		exit(1)
	}
}

// Execute builds the command tree and runs it with args.
func Execute(version, programName string, args []string, out io.Writer) error {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Company directory for a job board",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, serveOptions{})
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
	rootCmd.SetOut(out)
	opts.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newServeCmd(opts),
		newDirectoryCmd(opts),
		newURLCmd(opts),
		newSeedCmd(opts),
	)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}
