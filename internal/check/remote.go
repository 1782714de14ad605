package check

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// RemoteSync compares the current branch against its upstream. Found is set
// whenever local history is not fully backed by a remote; Detail always
// carries the reason, including the success message when synced.
//
// The decision sequence is fixed: no remotes, detached HEAD, missing
// upstream, comparison failure, then the ahead/behind verdict. Each step
// returns as soon as it applies.
func RemoteSync(ctx context.Context, g Runner) Result {
	remotes, err := g.Output(ctx, "remote")
	if err != nil || strings.TrimSpace(string(remotes)) == "" {
		return noRemoteResult(ctx, g)
	}

	// Refresh remote-tracking knowledge without touching local state.
	// The probe is best effort; stale tracking data still yields an answer.
	_, _ = g.Output(ctx, "fetch", "--dry-run")

	branch := ""
	if out, err := g.Output(ctx, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		branch = strings.TrimSpace(string(out))
	}
	if branch == "" || branch == "HEAD" {
		return Result{Found: true, Detail: "Not on any branch (detached HEAD state)"}
	}

	upstreamOut, err := g.Output(ctx, "rev-parse", "--abbrev-ref", branch+"@{upstream}")
	if err != nil {
		return noUpstreamResult(ctx, g, branch)
	}
	upstream := strings.TrimSpace(string(upstreamOut))

	ahead, aheadErr := countRange(ctx, g, upstream+".."+branch)
	behind, behindErr := countRange(ctx, g, branch+".."+upstream)
	if aheadErr != nil || behindErr != nil {
		return Result{Found: true, Detail: "Could not compare with remote branch"}
	}

	switch {
	case ahead == 0 && behind == 0:
		return Result{Detail: "Local branch is in sync with remote"}
	case ahead > 0 && behind > 0:
		return Result{Found: true, Detail: fmt.Sprintf("Diverged: %d commits ahead, %d commits behind remote", ahead, behind)}
	case ahead > 0:
		return Result{Found: true, Detail: fmt.Sprintf("Local branch is %d commits ahead of remote (need to push)", ahead)}
	default:
		return Result{Found: true, Detail: fmt.Sprintf("Local branch is %d commits behind remote (need to pull)", behind)}
	}
}

// noRemoteResult reports a repository with no remotes configured. A count
// that cannot be read or parsed is treated as zero.
func noRemoteResult(ctx context.Context, g Runner) Result {
	count := 0
	if out, err := g.Output(ctx, "rev-list", "--count", "HEAD"); err == nil {
		if n, perr := strconv.Atoi(strings.TrimSpace(string(out))); perr == nil {
			count = n
		}
	}

	if count > 0 {
		return Result{Found: true, Detail: fmt.Sprintf("No remote repository configured (%d local commits will be lost)", count)}
	}
	return Result{Found: true, Detail: "Empty repository with no remote configured"}
}

// noUpstreamResult reports a branch without a configured upstream. A
// matching remote-tracking branch means the upstream link is just missing;
// otherwise the message depends on whether other local branches exist.
func noUpstreamResult(ctx context.Context, g Runner, branch string) Result {
	if out, err := g.Output(ctx, "branch", "-r"); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if strings.Contains(line, "/"+branch) {
				return Result{Found: true, Detail: fmt.Sprintf(
					"Branch %q exists on remote but upstream is not set\nFix: git branch --set-upstream-to=origin/%s",
					branch, branch)}
			}
		}
	}

	locals := ""
	if out, err := g.Output(ctx, "branch"); err == nil {
		locals = strings.TrimSpace(string(out))
	}
	if locals != "" && len(strings.Split(locals, "\n")) == 1 {
		return Result{Found: true, Detail: fmt.Sprintf("Branch %q not pushed to remote yet", branch)}
	}
	return Result{Found: true, Detail: fmt.Sprintf("Branch %q has no remote tracking branch", branch)}
}

// countRange counts commits in a rev-list range like "upstream..branch".
func countRange(ctx context.Context, g Runner, spec string) (int, error) {
	out, err := g.Output(ctx, "rev-list", "--count", spec)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
