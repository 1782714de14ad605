package check

import (
	"context"
	"encoding/json"
)

// Report is the aggregate result of a full evaluation. It is produced
// fresh per invocation and never mutated afterwards. MarshalJSON defines
// the machine-readable output contract.
type Report struct {
	Path           string
	IsRepo         bool
	Clean          bool
	Issues         []string
	Uncommitted    string
	StashInfo      string
	Operation      string
	SyncStatus     string
	IgnoredFiles   []string
	IgnoredCount   int
	ImportantFiles []string
	ImportantCount int
	FileCount      int
	TotalSize      int64
	TotalSizeHuman string
}

// MarshalJSON emits one of two fixed key sets. Non-repositories carry
// directory statistics instead of check results. Repositories always
// carry the sync status and the ignored listing, even when empty; the
// per-check detail keys appear only when their check found something.
func (r Report) MarshalJSON() ([]byte, error) {
	if !r.IsRepo {
		return json.Marshal(struct {
			Path           string   `json:"repo_path"`
			IsRepo         bool     `json:"is_git"`
			Clean          bool     `json:"is_clean"`
			Issues         []string `json:"issues"`
			FileCount      int      `json:"file_count"`
			TotalSize      int64    `json:"total_size"`
			TotalSizeHuman string   `json:"total_size_human"`
		}{r.Path, r.IsRepo, r.Clean, r.Issues, r.FileCount, r.TotalSize, r.TotalSizeHuman})
	}

	files := r.IgnoredFiles
	if files == nil {
		files = []string{}
	}
	return json.Marshal(struct {
		Path           string   `json:"repo_path"`
		IsRepo         bool     `json:"is_git"`
		Clean          bool     `json:"is_clean"`
		Issues         []string `json:"issues"`
		Uncommitted    string   `json:"uncommitted_changes,omitempty"`
		StashInfo      string   `json:"stash_info,omitempty"`
		Operation      string   `json:"operation_in_progress,omitempty"`
		SyncStatus     string   `json:"sync_status"`
		IgnoredFiles   []string `json:"ignored_files"`
		IgnoredCount   int      `json:"ignored_count"`
		ImportantFiles []string `json:"important_ignored_files,omitempty"`
		ImportantCount int      `json:"important_ignored_count,omitempty"`
	}{r.Path, r.IsRepo, r.Clean, r.Issues, r.Uncommitted, r.StashInfo, r.Operation,
		r.SyncStatus, files, r.IgnoredCount, r.ImportantFiles, r.ImportantCount})
}

// Evaluate runs all checks against the target and merges their results.
//
// Non-repository targets short-circuit to a degraded report with file
// count and total size only. Otherwise the checks run in fixed order
// (working tree, stash, in-progress operation, remote sync) and each
// appends its issue only when it found a problem. The ignored-file
// listing and classification never affect the clean flag.
func Evaluate(ctx context.Context, target Target, g Runner, rules Rules) Report {
	report := Report{
		Path:   target.Path,
		IsRepo: target.IsRepo,
		Clean:  true,
		Issues: []string{},
	}

	if !target.IsRepo {
		report.Clean = false
		report.Issues = append(report.Issues, "Not a Git repository")
		stats := CollectStats(target.Path)
		report.FileCount = stats.FileCount
		report.TotalSize = stats.TotalSize
		report.TotalSizeHuman = FormatSize(stats.TotalSize)
		return report
	}

	if res := Uncommitted(ctx, g); res.Found {
		report.Clean = false
		report.Issues = append(report.Issues, "Uncommitted changes found")
		report.Uncommitted = res.Detail
	}

	if res := Stashed(ctx, g); res.Found {
		report.Clean = false
		report.Issues = append(report.Issues, "Stashed changes exist")
		report.StashInfo = res.Detail
	}

	if res := InProgress(target); res.Found {
		report.Clean = false
		report.Issues = append(report.Issues, res.Detail)
		report.Operation = res.Detail
	}

	sync := RemoteSync(ctx, g)
	report.SyncStatus = sync.Detail
	if sync.Found {
		report.Clean = false
		report.Issues = append(report.Issues, "Not in sync with remote")
	}

	files := IgnoredFiles(ctx, g)
	report.IgnoredFiles = files
	report.IgnoredCount = len(files)

	important := rules.Important(files)
	report.ImportantFiles = important
	report.ImportantCount = len(important)

	return report
}
