package check

import (
	"context"
	"sort"
	"strings"
)

// IgnoredFiles lists files excluded from version control by the standard
// exclude rules. Directory entries are dropped; the result is deduplicated
// and sorted lexicographically.
func IgnoredFiles(ctx context.Context, g Runner) []string {
	out, err := g.Output(ctx, "ls-files", "--others", "--ignored", "--exclude-standard")
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" || strings.HasSuffix(line, "/") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		files = append(files, line)
	}

	sort.Strings(files)
	return files
}
