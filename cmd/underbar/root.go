package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errBadInput = errors.New("underbar: bad input")
	errShape    = errors.New("underbar: unexpected document shape")
)

// app carries the state shared by all sub-commands of one invocation.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "underbar",
		Short:         "Collection, object and array helpers over JSON documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.verbose {
				a.logger = newCLILogger(cmd)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log decisions to stderr")

	root.AddCommand(
		a.uniqCmd(),
		a.flattenCmd(),
		a.zipCmd(),
		a.setCmd("intersection", "Values of the first array present in every other array"),
		a.setCmd("difference", "Values of the first array present in no other array"),
		a.shuffleCmd(),
		a.sortByCmd(),
		a.pluckCmd(),
		a.edgeCmd("first"),
		a.edgeCmd("last"),
		a.containsCmd(),
		a.mergeCmd("extend", "Copy every property of the sources onto the first object, later sources win"),
		a.mergeCmd("defaults", "Fill properties the first object lacks from the sources, earlier sources win"),
	)
	return root
}

// newCLILogger builds a development-style console logger on the command's
// stderr.
func newCLILogger(cmd *cobra.Command) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named(cmd.Name())
}

// emit writes v as one JSON document to the command's stdout.
func emit(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// guard runs fn and turns a panic from the helpers (they fail fast on
// malformed input) into an error wrapping errBadInput.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errBadInput, r)
		}
	}()
	return fn()
}
