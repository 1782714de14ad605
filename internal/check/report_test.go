package check

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// cleanRunner fakes a repository with nothing to report.
func cleanRunner() *fakeRunner {
	return syncedRunner("0", "0")
}

func TestEvaluate_CleanRepo(t *testing.T) {
	t.Parallel()
	target := repoDir(t)

	report := Evaluate(context.Background(), target, cleanRunner(), DefaultRules())
	if !report.Clean {
		t.Errorf("Clean = false, issues: %v", report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %v, want none", report.Issues)
	}
	if report.SyncStatus != "Local branch is in sync with remote" {
		t.Errorf("SyncStatus = %q", report.SyncStatus)
	}
	if !report.IsRepo {
		t.Error("IsRepo = false")
	}
}

func TestEvaluate_IssueOrdering(t *testing.T) {
	t.Parallel()
	target := repoDir(t)
	writeMarker(t, target, "MERGE_HEAD")

	g := syncedRunner("2", "0")
	g.out["diff --cached --name-only"] = "staged.go\n"
	g.out["stash list"] = "stash@{0}: WIP\n"

	report := Evaluate(context.Background(), target, g, DefaultRules())
	want := []string{
		"Uncommitted changes found",
		"Stashed changes exist",
		"Merge in progress",
		"Not in sync with remote",
	}
	if !reflect.DeepEqual(report.Issues, want) {
		t.Errorf("Issues = %v, want %v", report.Issues, want)
	}
	if report.Clean {
		t.Error("Clean = true with issues present")
	}
	if report.Uncommitted == "" || report.StashInfo == "" || report.Operation == "" {
		t.Errorf("detail fields missing: %+v", report)
	}
}

func TestEvaluate_NotARepository(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for i, size := range []int{1000, 500, 300, 148, 100} {
		name := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(name, make([]byte, size), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	target := Target{Path: dir, IsRepo: false}

	report := Evaluate(context.Background(), target, nil, DefaultRules())
	if report.Clean {
		t.Error("a non-repository is never clean")
	}
	if !reflect.DeepEqual(report.Issues, []string{"Not a Git repository"}) {
		t.Errorf("Issues = %v", report.Issues)
	}
	if report.FileCount != 5 {
		t.Errorf("FileCount = %d, want 5", report.FileCount)
	}
	if report.TotalSizeHuman != "2.0 KB" {
		t.Errorf("TotalSizeHuman = %q, want %q", report.TotalSizeHuman, "2.0 KB")
	}
	if report.SyncStatus != "" {
		t.Errorf("SyncStatus = %q, want empty for non-repository", report.SyncStatus)
	}
}

func TestEvaluate_IgnoredClassification(t *testing.T) {
	t.Parallel()
	target := repoDir(t)

	g := cleanRunner()
	g.out["ls-files --others --ignored --exclude-standard"] = ".env\nnode_modules/secret.key\nout.log\n"

	report := Evaluate(context.Background(), target, g, DefaultRules())
	if report.IgnoredCount != 3 {
		t.Errorf("IgnoredCount = %d, want 3", report.IgnoredCount)
	}
	if !reflect.DeepEqual(report.ImportantFiles, []string{".env"}) {
		t.Errorf("ImportantFiles = %v, want [.env]", report.ImportantFiles)
	}
	// The ignored listing never affects the verdict.
	if !report.Clean {
		t.Errorf("Clean = false, issues: %v", report.Issues)
	}
}

func TestEvaluate_CleanInvariant(t *testing.T) {
	t.Parallel()
	target := repoDir(t)

	runners := []*fakeRunner{
		cleanRunner(),
		syncedRunner("3", "0"),
		{out: map[string]string{"remote": ""}},
		{out: map[string]string{"stash list": "stash@{0}: WIP\n"}},
	}
	for _, g := range runners {
		report := Evaluate(context.Background(), target, g, DefaultRules())
		if report.Clean != (report.IsRepo && len(report.Issues) == 0) {
			t.Errorf("invariant violated: clean=%v, isRepo=%v, issues=%v",
				report.Clean, report.IsRepo, report.Issues)
		}
	}
}

func marshalToMap(t *testing.T, report Report) map[string]any {
	t.Helper()
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return m
}

func TestReportJSON_RepoAlwaysCarriesIgnoredKeys(t *testing.T) {
	t.Parallel()
	target := repoDir(t)

	// Zero ignored files must still produce the listing keys.
	m := marshalToMap(t, Evaluate(context.Background(), target, cleanRunner(), DefaultRules()))
	files, ok := m["ignored_files"]
	if !ok {
		t.Error("ignored_files key missing")
	}
	if arr, ok := files.([]any); !ok || len(arr) != 0 {
		t.Errorf("ignored_files = %v, want empty list", files)
	}
	if count, ok := m["ignored_count"]; !ok || count != float64(0) {
		t.Errorf("ignored_count = %v (present=%v), want 0", count, ok)
	}
	if _, ok := m["sync_status"]; !ok {
		t.Error("sync_status key missing")
	}
	for _, key := range []string{
		"uncommitted_changes", "stash_info", "operation_in_progress",
		"important_ignored_files", "important_ignored_count",
		"file_count", "total_size", "total_size_human",
	} {
		if _, ok := m[key]; ok {
			t.Errorf("%s should be omitted from a clean repository report", key)
		}
	}
}

func TestReportJSON_NonRepoCarriesStats(t *testing.T) {
	t.Parallel()

	// An empty directory still reports its (zero) statistics.
	m := marshalToMap(t, Evaluate(context.Background(), Target{Path: t.TempDir()}, nil, DefaultRules()))
	if count, ok := m["file_count"]; !ok || count != float64(0) {
		t.Errorf("file_count = %v (present=%v), want 0", count, ok)
	}
	if size, ok := m["total_size"]; !ok || size != float64(0) {
		t.Errorf("total_size = %v (present=%v), want 0", size, ok)
	}
	if human := m["total_size_human"]; human != "0.0 B" {
		t.Errorf("total_size_human = %v, want %q", human, "0.0 B")
	}
	for _, key := range []string{"sync_status", "ignored_files", "ignored_count"} {
		if _, ok := m[key]; ok {
			t.Errorf("%s should be omitted from a non-repository report", key)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()
	target := repoDir(t)

	g1 := syncedRunner("1", "2")
	g1.out["stash list"] = "stash@{0}: WIP\n"
	g2 := syncedRunner("1", "2")
	g2.out["stash list"] = "stash@{0}: WIP\n"

	first := Evaluate(context.Background(), target, g1, DefaultRules())
	second := Evaluate(context.Background(), target, g2, DefaultRules())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
