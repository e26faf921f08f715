package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions carries the global flags and the terminal of every command.
type rootOptions struct {
	configFile string
	debugMode  bool
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	rootCommand := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	rootCommand := &cobra.Command{
		Use:           "hskquiz",
		Short:         "HSK vocabulary flashcard quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)
	rootCommand.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&opts.debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newPlayCommand(opts),
		newLevelsCommand(opts),
		newVocabCommand(opts),
	)
	return rootCommand
}
