// Package par models pulsar-timing parameter (.par) files. A file is an
// ordered sequence of lines; parameter lines carry NAME VALUE [UNCERTAINTY]
// [FIT_FLAG] tokens separated by whitespace. Rendering preserves every input
// byte except the value tokens explicitly rewritten through SetValue.
package par

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pulsarkit/parcentre/internal/messages"
)

// ErrParse wraps malformed-line and malformed-value failures.
// Callers use errors.Is(err, ErrParse) to distinguish them from I/O errors.
var ErrParse = errors.New("par parse error")

// DefaultIgnore lists parameter names whose lines pass through unparsed.
// These are multi-token or model-control entries that do not follow the
// NAME VALUE token layout. Names ending in "_" match as prefixes (DM_0001).
var DefaultIgnore = []string{
	"DMMODEL", "DMOFF", "DM_", "CM_", "CONSTRAIN", "JUMP", "NITS",
	"NTOA", "CORRECT_TROPOSPHERE", "PLANET_SHAPIRO", "DILATEFREQ",
	"TIMEEPH", "MODE", "TZRMJD", "TZRSITE", "TZRFRQ", "EPHVER",
	"T2CMETHOD",
}

// Line is one line of a par file. Raw always holds the original text
// (without the trailing newline). Name is the canonical parameter name,
// empty for comments, blank lines, and ignored parameters.
type Line struct {
	Raw     string
	Name    string
	Value   float64
	Numeric bool
}

// File is an ordered par file. Lines preserve input order; Render
// reconstructs the input byte-for-byte until a value is rewritten.
type File struct {
	Lines []Line

	// noFinalNewline records that the input did not end with a newline,
	// so Render can reproduce it exactly.
	noFinalNewline bool
}

// Parse reads par content into a File. ignore extends DefaultIgnore with
// additional parameter names to pass through unparsed; nil means the
// default list only.
func Parse(content string, ignore []string) (*File, error) {
	skip := make(map[string]bool, len(DefaultIgnore)+len(ignore))
	var skipPrefixes []string
	for _, name := range append(append([]string{}, DefaultIgnore...), ignore...) {
		if strings.HasSuffix(name, "_") {
			skipPrefixes = append(skipPrefixes, name)
		}
		skip[name] = true
	}

	file := &File{noFinalNewline: content != "" && !strings.HasSuffix(content, "\n")}
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, err := parseLine(scanner.Text(), skip, skipPrefixes)
		if err != nil {
			return nil, fmt.Errorf(messages.ParLineErrorFmt, lineNo, err)
		}
		file.Lines = append(file.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.ParReadFailedFmt, err)
	}
	return file, nil
}

// Render returns the file content. Every line not rewritten through
// SetValue is emitted exactly as read.
func (f *File) Render() string {
	var b strings.Builder
	for i, line := range f.Lines {
		b.WriteString(line.Raw)
		if i < len(f.Lines)-1 || !f.noFinalNewline {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Index returns the position of the first parsed line named name, or -1.
func (f *File) Index(name string) int {
	for i, line := range f.Lines {
		if line.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether a parsed parameter named name is present.
func (f *File) Has(name string) bool {
	return f.Index(name) >= 0
}

// Float returns the numeric value of the named parameter. The second
// result reports presence; a present but non-numeric value is an ErrParse.
func (f *File) Float(name string) (float64, bool, error) {
	idx := f.Index(name)
	if idx < 0 {
		return 0, false, nil
	}
	line := f.Lines[idx]
	if !line.Numeric {
		return 0, true, fmt.Errorf("%w: "+messages.ParBadValueFmt, ErrParse, name, valueToken(line.Raw))
	}
	return line.Value, true, nil
}

// SetValue rewrites the value token of the line at idx, leaving the name,
// uncertainty, and fit-flag tokens and all spacing untouched. The value
// renders in shortest round-trip form.
func (f *File) SetValue(idx int, value float64) {
	line := &f.Lines[idx]
	line.Raw = spliceValueToken(line.Raw, strconv.FormatFloat(value, 'f', -1, 64))
	line.Value = value
	line.Numeric = true
}

// parseLine classifies a single line. Comments (# or C), blank lines, and
// ignored parameters keep Raw only.
func parseLine(raw string, skip map[string]bool, skipPrefixes []string) (Line, error) {
	line := Line{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == 'C' {
		return line, nil
	}

	fields := strings.Fields(trimmed)
	name := fields[0]
	if skip[name] || hasIgnoredPrefix(name, skipPrefixes) {
		return line, nil
	}
	if len(fields) < 2 {
		return Line{}, fmt.Errorf("%w: "+messages.ParExpectedNameValue, ErrParse)
	}
	// Legacy alias used by some ephemerides.
	if name == "E" {
		name = "ECC"
	}
	line.Name = name

	if value, err := strconv.ParseFloat(normalizeExponent(fields[1]), 64); err == nil {
		line.Value = value
		line.Numeric = true
	}
	return line, nil
}

func hasIgnoredPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// normalizeExponent rewrites Fortran-style exponents (1.5D-3) to the form
// strconv understands.
func normalizeExponent(token string) string {
	return strings.ReplaceAll(strings.ReplaceAll(token, "D", "E"), "d", "e")
}

// valueToken returns the second whitespace-separated token of raw.
func valueToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// spliceValueToken replaces the second token of raw with value, preserving
// every other byte of the line including inter-token spacing.
func spliceValueToken(raw string, value string) string {
	start, end := tokenBounds(raw, 1)
	if start < 0 {
		return raw
	}
	return raw[:start] + value + raw[end:]
}

// tokenBounds returns the byte range [start, end) of the n-th (0-based)
// whitespace-separated token of raw, or (-1, -1) when absent.
func tokenBounds(raw string, n int) (int, int) {
	inToken := false
	index := -1
	start := -1
	for i, r := range raw {
		if unicode.IsSpace(r) {
			if inToken && index == n {
				return start, i
			}
			inToken = false
			continue
		}
		if !inToken {
			inToken = true
			index++
			start = i
		}
	}
	if inToken && index == n {
		return start, len(raw)
	}
	return -1, -1
}
