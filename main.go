// Package main implements a CLI tool to propagate a version number into the
// gmio build configuration, README and CI configuration.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fougue/gmio-bumpversion/internal/log"
	bumpversion "github.com/fougue/gmio-bumpversion/pkg"
)

const longDesc = `Bumps the gmio version in CMakeLists.txt, README.md and appveyor.yml.

The project root defaults to the parent of the directory holding this
executable, so a binary installed in <project>/scripts updates <project>.

Examples:
  gmio-bumpversion 0.4.1
  gmio-bumpversion --root ~/src/gmio --dry 0.5.0
`

// reportedError marks an error whose message was already printed.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

type options struct {
	root      string
	dryRun    bool
	strict    bool
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "gmio-bumpversion [flags] <major.minor.patch>",
		Short:         "Propagate a version number into the gmio project files",
		Long:          longDesc,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Project root containing the files to bump (default: parent of the executable's directory)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry", false, "Perform a dry run without modifying any files")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject versions that are not valid semver")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", log.EnvOr(log.LevelEnv, "warn"), "Set the log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", log.EnvOr(log.FormatEnv, log.TextFormat), "Set the log format (text, logfmt, json)")

	if err := cmd.MarkFlagDirname("root"); err != nil {
		panic(err)
	}

	cmd.PreRunE = func(cc *cobra.Command, _ []string) error {
		return log.Setup(cc.ErrOrStderr(), opts.logLevel, opts.logFormat)
	}
	cmd.RunE = func(cc *cobra.Command, args []string) error {
		return run(cc, args, opts)
	}

	return cmd
}

func run(cc *cobra.Command, args []string, opts *options) error {
	out := cc.OutOrStdout()

	v, err := bumpversion.ParseArgs(args)
	if err == nil && opts.strict {
		err = v.Strict()
	}
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return reportedError{err}
	}
	if len(args) > 1 {
		slog.Debug("ignoring extra arguments", "args", args[1:])
	}

	fmt.Fprintf(out, "Major: %s\n", v.Major)
	fmt.Fprintf(out, "Minor: %s\n", v.Minor)
	fmt.Fprintf(out, "Patch: %s\n", v.Patch)

	root := opts.root
	if root == "" {
		if root, err = bumpversion.DefaultRoot(); err != nil {
			fmt.Fprintln(cc.ErrOrStderr(), "Error:", err)
			return reportedError{err}
		}
	}
	slog.Debug("resolved project root", "root", root)

	var meta bumpversion.Meta
	b := bumpversion.New(root)
	if opts.dryRun {
		meta, err = b.DryRun(v)
	} else {
		meta, err = b.Run(v)
	}
	if err != nil {
		fmt.Fprintln(cc.ErrOrStderr(), "Error:", err)
		return reportedError{err}
	}

	for _, f := range meta.UpdatedFiles {
		if opts.dryRun {
			fmt.Fprintf(out, "Would bump %s\n", f)
		} else {
			fmt.Fprintf(out, "Bumped %s\n", f)
		}
	}
	slog.Info("version propagated", "old", meta.OldVersion, "new", meta.NewVersion, "dry", opts.dryRun)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
