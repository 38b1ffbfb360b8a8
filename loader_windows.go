//go:build windows

package ircdconf

import (
	"path/filepath"
	"sort"
)

// expandIncludePattern resolves an include pattern on Windows by
// enumerating files in the pattern's directory prefix, since Windows has no
// native glob(3). Results are sorted for the same stability reason as the
// POSIX path.
func expandIncludePattern(pattern string) ([]string, error) {
	dir := filepath.Dir(pattern)
	base := filepath.Base(pattern)
	entries, err := filepath.Glob(filepath.Join(dir, base))
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}
