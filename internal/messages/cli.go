package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "parcentre"
	// RootShort is the short description for the root command.
	RootShort = "Centre the binary epoch of a pulsar .par file"
	// RootLong is the long description for the root command.
	RootLong = "parcentre shifts the binary reference epoch (T0 or TASC) of a pulsar-timing\n" +
		"parameter file to the orbital cycle nearest a target epoch, keeping the timing\n" +
		"model equivalent. Binary derivatives are not adjusted; refit with pulse numbers\n" +
		"and TRACK -2 after centring."

	RootFlagInput     = "Input .par file"
	RootFlagOutput    = "Output .par file"
	RootFlagEpoch     = "Target centre epoch (MJD); default is the START/FINISH midpoint"
	RootFlagDiff      = "Print a unified diff of the change"
	RootFlagDiffLines = "Maximum number of diff lines to show"
	RootFlagDryRun    = "Compute and report without writing the output file"
	RootFlagConfig    = "Optional parcentre.toml config file"
	RootFlagQuiet     = "Suppress the summary line"

	RootInputRequired = "input file is required (use -i)"

	// CentredSummaryFmt reports the recentred epoch: field, old value, new value, cycles.
	CentredSummaryFmt = "%s %s -> %s (%+d orbits, target %s)\n"
	// UnchangedSummaryFmt reports that the epoch already sits on the nearest cycle.
	UnchangedSummaryFmt = "%s %s already centred on target %s\n"
	// DryRunNote marks output that was computed but not written.
	DryRunNote = "dry run: no file written"
	// WroteFileFmt reports the output path.
	WroteFileFmt = "wrote %s"

	// ExpandPathFmt formats home-directory expansion errors.
	ExpandPathFmt = "expand path %s: %w"
)
