package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rfn/internal/contract"
	"github.com/roach88/rfn/internal/layout"
	"github.com/roach88/rfn/internal/repr"
)

// LayoutOptions holds flags for the layout command.
type LayoutOptions struct {
	*RootOptions
	Emit bool // print a CUE contract instead of a report
}

// LayoutReport is one representation's descriptor with its fingerprint.
type LayoutReport struct {
	layout.Descriptor `yaml:",inline"`
	Fingerprint       string `json:"fingerprint" yaml:"fingerprint"`
	WordAligned       bool   `json:"word_aligned" yaml:"word_aligned"`
}

// LayoutResult is the output of the layout command.
type LayoutResult struct {
	Word    int64          `json:"word" yaml:"word"`
	Layouts []LayoutReport `json:"layouts" yaml:"layouts"`
}

// Misaligned lists layouts that are not a whole number of word-sized fields.
func (r LayoutResult) Misaligned() []string {
	var names []string
	for _, l := range r.Layouts {
		if !l.WordAligned {
			names = append(names, l.Name)
		}
	}
	return names
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout of every representation",
		Long: `Print the stable layout declared by every boundary-safe representation
built into this binary, with the fingerprint an external certifier can pin.
Every layout must be a whole number of word-sized fields; the command exits
1 when one is not.

With --emit, print the layouts as a CUE contract instead. The emitted
contract is accepted by "rfn check".

Examples:
  rfn layout
  rfn layout --format json
  rfn layout --emit > contract/amd64.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Emit, "emit", false, "print a CUE contract for the local layouts")

	return cmd
}

func runLayout(opts *LayoutOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	descs := repr.Catalog()

	if opts.Emit {
		src, err := contract.Emit(descs)
		if err != nil {
			out := &OutputFormatter{Format: opts.Format, Writer: w}
			_ = out.Error(CodeContractEmission, "failed to emit contract", []string{err.Error()})
			return WrapExitError(ExitCommandError, "emit contract", err)
		}
		_, err = w.Write(src)
		return err
	}

	result, err := buildLayoutResult(descs)
	if err != nil {
		return WrapExitError(ExitCommandError, "describe layouts", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: w}
	if err := out.Success(result, func(w io.Writer) { writeLayoutText(w, result) }); err != nil {
		return err
	}
	if bad := result.Misaligned(); len(bad) > 0 {
		return NewExitError(ExitFailure, "layouts not word-aligned: "+strings.Join(bad, ", "))
	}
	return nil
}

func buildLayoutResult(descs []layout.Descriptor) (LayoutResult, error) {
	result := LayoutResult{Word: layout.Word, Layouts: make([]LayoutReport, 0, len(descs))}
	for _, d := range descs {
		fp, err := d.Fingerprint()
		if err != nil {
			return LayoutResult{}, fmt.Errorf("fingerprint %s: %w", d.Name, err)
		}
		aligned := d.WordAligned()
		slog.Debug("layout described", "name", d.Name, "size", d.Size, "word_aligned", aligned, "fingerprint", fp)
		result.Layouts = append(result.Layouts, LayoutReport{Descriptor: d, Fingerprint: fp, WordAligned: aligned})
	}
	return result, nil
}

func writeLayoutText(w io.Writer, result LayoutResult) {
	fmt.Fprintf(w, "word: %d bytes\n", result.Word)
	for _, r := range result.Layouts {
		fields := make([]string, len(r.Fields))
		for i, f := range r.Fields {
			fields[i] = fmt.Sprintf("%s:%s@%d", f.Name, f.Kind, f.Offset)
		}
		fmt.Fprintf(w, "%-10s %-4s %-8s size=%-3d align=%-2d %s\n",
			r.Name, r.Discipline, r.Ownership, r.Size, r.Align, strings.Join(fields, " "))
		fmt.Fprintf(w, "  fingerprint %s\n", r.Fingerprint)
		if !r.WordAligned {
			fmt.Fprintln(w, "  not word-aligned")
		}
	}
}
