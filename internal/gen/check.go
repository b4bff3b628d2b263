package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Check compares files against their counterparts in dir. It returns an
// error wrapping ErrStale, with a line diff per differing file, when any
// file is missing or differs.
func Check(dir string, files []File) error {
	var stale []string
	for _, f := range files {
		have, err := os.ReadFile(filepath.Join(dir, f.Name))
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, fmt.Sprintf("%s: missing", f.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", f.Name, err)
		}
		if string(have) == string(f.Content) {
			continue
		}
		stale = append(stale, fmt.Sprintf("%s:\n%s", f.Name, LineDiff(string(have), string(f.Content))))
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w\n%s", ErrStale, strings.Join(stale, "\n"))
	}
	return nil
}

// LineDiff renders a line-oriented diff from a to b. Removed lines are
// prefixed with "-", added lines with "+" and unchanged lines with a space.
func LineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
