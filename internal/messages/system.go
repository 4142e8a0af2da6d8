package messages

// System messages for internal operations.
const (
	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"

	// ConfigMissingFileFmt formats config read failures.
	ConfigMissingFileFmt = "failed to read %s: %w"
	// ConfigInvalidConfigFmt formats TOML syntax errors.
	ConfigInvalidConfigFmt = "invalid config %s: %w"
	// ConfigUnrecognizedKeysFmt formats strict-decode failures.
	ConfigUnrecognizedKeysFmt = "config %s has unrecognized keys: %v"
	// ConfigDiffLinesInvalidFmt formats a non-positive diff-lines value.
	ConfigDiffLinesInvalidFmt = "config %s: diff-lines must be positive, got %d"
)
