//go:build !windows

package ircdconf

import "path/filepath"

// expandIncludePattern resolves an include pattern on POSIX using
// filepath.Glob. filepath.Glob always returns matches in sorted
// (lexicographic) order, so include expansion is stable across repeated
// runs with no extra sorting needed here.
func expandIncludePattern(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
