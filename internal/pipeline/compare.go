package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// FilesMatch reports whether two files have byte-identical contents.
func FilesMatch(f1, f2 string) (bool, error) {
	b1, err := os.ReadFile(f1)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %v", f1, err)
	}
	b2, err := os.ReadFile(f2)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %v", f2, err)
	}
	return bytes.Equal(b1, b2), nil
}

// DirsMatch reports whether two directories list the same file names and
// every listed file is byte-identical between them. Nested directories are
// not supported and count as a comparison error.
func DirsMatch(d1, d2 string) (bool, error) {
	entries1, err := os.ReadDir(d1)
	if err != nil {
		return false, fmt.Errorf("failed to list %s: %v", d1, err)
	}
	entries2, err := os.ReadDir(d2)
	if err != nil {
		return false, fmt.Errorf("failed to list %s: %v", d2, err)
	}

	if len(entries1) != len(entries2) {
		return false, nil
	}
	names2 := make(map[string]bool, len(entries2))
	for _, e := range entries2 {
		names2[e.Name()] = true
	}

	for _, e := range entries1 {
		if !names2[e.Name()] {
			return false, nil
		}
		if e.IsDir() {
			return false, fmt.Errorf("cannot compare directory entry %s", e.Name())
		}

		same, err := FilesMatch(filepath.Join(d1, e.Name()), filepath.Join(d2, e.Name()))
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}
	return true, nil
}

// BamsMatch compares two BAM alignments with the external diff tool, which
// prints one record per difference. A clean exit with empty output means
// the alignments agree.
func BamsMatch(r Runner, diffTool, f1, f2 string) (bool, error) {
	out, err := r.Run(diffTool, "diff",
		"--all",
		"--in1", f1,
		"--in2", f2,
	)
	if err != nil {
		return false, err
	}
	return len(out) == 0, nil
}
