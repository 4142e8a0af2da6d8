package messages

// Par file and transform messages.
const (
	// ParLineErrorFmt formats per-line parse errors.
	ParLineErrorFmt = "line %d: %w"
	// ParReadFailedFmt formats scanner failures.
	ParReadFailedFmt = "failed to read par content: %w"
	// ParExpectedNameValue indicates a parameter line with no value token.
	ParExpectedNameValue = "expected NAME VALUE"
	// ParBadValueFmt indicates a non-numeric value for a numeric parameter.
	ParBadValueFmt = "parameter %s: value %q is not numeric"

	// EpochMissingRange indicates START/FINISH are needed but absent.
	EpochMissingRange = "no target epoch given and START/FINISH not both present in the par file"
	// EpochMissingPeriod indicates a binary epoch without PB or FB0.
	EpochMissingPeriod = "binary epoch present but neither PB nor FB0 is set"
	// EpochAmbiguousModel indicates both T0 and TASC are present.
	EpochAmbiguousModel = "both T0 and TASC present; the timing model is invalid"
	// EpochMissingBinary indicates no binary epoch to recentre.
	EpochMissingBinary = "no T0 or TASC in the par file; nothing to centre"
	// EpochNonPositivePeriodFmt indicates a zero or negative orbital period.
	EpochNonPositivePeriodFmt = "orbital period must be positive, got %s days"

	// CentreReadInputFmt formats input read failures.
	CentreReadInputFmt = "read %s: %w"
	// CentreWriteOutputFmt formats output write failures.
	CentreWriteOutputFmt = "write %s: %w"
	// CentreParseInputFmt formats parse failures for an input path.
	CentreParseInputFmt = "parse %s: %w"
)
