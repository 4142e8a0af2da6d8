// Package testutil provides par-file fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePar writes content to name under dir and returns the full path.
// t is the active test; dir is usually t.TempDir().
func WritePar(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write par fixture: %v", err)
	}
	return path
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// BinaryPar is a small eccentric-orbit par file with T0 set.
// START/FINISH give a 58500.0 midpoint.
const BinaryPar = `PSRJ           J1713+0747
RAJ            17:13:49.53
DECJ           +07:47:37.5
F0             218.8118438476
PEPOCH         55000
START          58000
FINISH         59000
T0             56000.0  5.3e-4  1
PB             1.5  1.1e-7  1
OM             176.2
E              0.000074
JUMP -MJD_58925_58965_gap 0 0.0 0
`

// CircularPar is a near-circular par file with TASC set and no PB; the
// period comes from FB0.
const CircularPar = `PSRJ           J0437-4715
START          58000
FINISH         59000
TASC           56000.0
FB0            1.2345679e-5
`
