package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rfn/internal/contract"
	"github.com/roach88/rfn/internal/repr"
)

// CheckResult is the output of a passing check.
type CheckResult struct {
	Contract string   `json:"contract" yaml:"contract"`
	Word     int64    `json:"word" yaml:"word"`
	Layouts  []string `json:"layouts" yaml:"layouts"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <contract>",
		Short: "Check local layouts against a boundary contract",
		Long: `Check the layouts built into this binary against a CUE boundary contract.

The contract may be a single .cue file or a directory holding one CUE
package. Every layout the contract names must exist locally and match it
field for field.

Exit codes:
  0 - All layouts match
  1 - One or more layouts are missing or differ
  2 - Command error (unreadable or invalid contract)

Examples:
  rfn check contract/amd64.cue
  rfn check ./contract --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	c, err := loadContract(path)
	if err != nil {
		code := CodeContractLoad
		if contract.IsSchemaError(err) {
			code = CodeContractSchema
		}
		_ = out.Error(code, "failed to load contract", []string{err.Error()})
		return WrapExitError(ExitCommandError, "load contract", err)
	}
	slog.Debug("contract loaded", "path", path, "word", c.Word, "layouts", len(c.Layouts))

	if err := c.Check(repr.Catalog()); err != nil {
		details := joinedMessages(err)
		_ = out.Error(CodeLayoutMismatch, fmt.Sprintf("%d layout(s) do not match %s", len(details), path), details)
		return WrapExitError(ExitFailure, "layout mismatch", err)
	}

	result := CheckResult{Contract: path, Word: c.Word, Layouts: c.Names()}
	return out.Success(result, func(w io.Writer) {
		for _, name := range result.Layouts {
			fmt.Fprintf(w, "✓ %s\n", name)
		}
		fmt.Fprintf(w, "%d layout(s) match %s\n", len(result.Layouts), path)
	})
}

func loadContract(path string) (*contract.Contract, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("contract not found: %s", path)
	}
	if info.IsDir() {
		return contract.LoadDir(path)
	}
	return contract.LoadFile(path)
}

// joinedMessages flattens an errors.Join result into one message per error.
func joinedMessages(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}
