package check

import (
	"os"
	"path/filepath"
)

// operationMarkers maps metadata marker files to suspended operations.
// Order matters: merge takes precedence over rebase, rebase over
// cherry-pick, and only the first match is reported.
var operationMarkers = []struct {
	marker string
	state  string
}{
	{"MERGE_HEAD", "Merge in progress"},
	{"rebase-merge", "Rebase in progress"},
	{"rebase-apply", "Rebase in progress"},
	{"CHERRY_PICK_HEAD", "Cherry-pick in progress"},
}

// InProgress detects a suspended merge, rebase or cherry-pick by probing
// marker files inside the repository metadata directory.
func InProgress(target Target) Result {
	gitDir := filepath.Join(target.Path, ".git")
	for _, m := range operationMarkers {
		if _, err := os.Stat(filepath.Join(gitDir, m.marker)); err == nil {
			return Result{Found: true, Detail: m.state}
		}
	}
	return Result{}
}
