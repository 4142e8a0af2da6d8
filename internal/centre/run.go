// Package centre runs the epoch-centring transform end to end: read one
// par file, recentre its binary epoch, and write the result.
package centre

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/pulsarkit/parcentre/internal/epoch"
	"github.com/pulsarkit/parcentre/internal/messages"
	"github.com/pulsarkit/parcentre/internal/par"
)

// DefaultOutputName is the output path used when none is given. The tool
// never overwrites the input in place by default.
const DefaultOutputName = "updated.par"

const outputFileMode = 0o644

// Options configures one transform run.
type Options struct {
	// Input is the path of the par file to read.
	Input string
	// Output is the path to write; empty means DefaultOutputName.
	Output string
	// Epoch is the target epoch in MJD; nil selects the START/FINISH midpoint.
	Epoch *float64
	// Ignore extends the built-in list of pass-through parameter names.
	Ignore []string
	// Diff prints a unified diff of the change to Out.
	Diff bool
	// DiffMaxLines caps the diff output; zero selects DefaultDiffMaxLines.
	DiffMaxLines int
	// DryRun computes and reports without writing the output file.
	DryRun bool
	// Quiet suppresses the summary lines.
	Quiet bool
	// System supplies filesystem access; nil selects RealSystem.
	System System
	// Out receives the summary and diff output; nil discards it.
	Out io.Writer
}

// Run executes the transform described by opts.
func Run(opts Options) (epoch.Result, error) {
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	output := opts.Output
	if output == "" {
		output = DefaultOutputName
	}

	data, err := sys.ReadFile(opts.Input)
	if err != nil {
		return epoch.Result{}, fmt.Errorf(messages.CentreReadInputFmt, opts.Input, err)
	}
	file, err := par.Parse(string(data), opts.Ignore)
	if err != nil {
		return epoch.Result{}, fmt.Errorf(messages.CentreParseInputFmt, opts.Input, err)
	}

	target, err := epoch.ResolveTarget(file, opts.Epoch)
	if err != nil {
		return epoch.Result{}, err
	}
	result, err := epoch.Recentre(file, target)
	if err != nil {
		return epoch.Result{}, err
	}
	rendered := file.Render()

	if !opts.Quiet {
		writeSummary(out, result)
	}
	if opts.Diff {
		preview, _ := renderTruncatedUnifiedDiff(opts.Input, output, string(data), rendered, opts.DiffMaxLines)
		_, _ = fmt.Fprint(out, preview)
	}
	if opts.DryRun {
		if !opts.Quiet {
			_, _ = fmt.Fprintln(out, color.YellowString(messages.DryRunNote))
		}
		return result, nil
	}

	if err := sys.WriteFileAtomic(output, []byte(rendered), outputFileMode); err != nil {
		return epoch.Result{}, fmt.Errorf(messages.CentreWriteOutputFmt, output, err)
	}
	if !opts.Quiet {
		_, _ = fmt.Fprintln(out, color.GreenString(messages.WroteFileFmt, output))
	}
	return result, nil
}

// writeSummary prints the one-line account of what the transform did.
func writeSummary(out io.Writer, result epoch.Result) {
	if !result.Changed() {
		_, _ = fmt.Fprintf(out, messages.UnchangedSummaryFmt,
			result.Field, formatMJD(result.Old), formatMJD(result.Target))
		return
	}
	_, _ = fmt.Fprintf(out, messages.CentredSummaryFmt,
		result.Field, formatMJD(result.Old), formatMJD(result.New),
		result.Orbits, formatMJD(result.Target))
}

// formatMJD renders an epoch in the shortest round-trip form.
func formatMJD(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
