package check

import (
	"context"
	"strings"
)

// Uncommitted reports staged, unstaged and untracked changes in the working
// tree. Ignored files are never counted as untracked. A failing git
// invocation degrades to an empty change set rather than an error.
func Uncommitted(ctx context.Context, g Runner) Result {
	staged := outputOrEmpty(ctx, g, "diff", "--cached", "--name-only")
	unstaged := outputOrEmpty(ctx, g, "diff", "--name-only")
	untracked := outputOrEmpty(ctx, g, "ls-files", "--others", "--exclude-standard")

	var sections []string
	if strings.TrimSpace(staged) != "" {
		sections = append(sections, "Staged files:\n"+staged)
	}
	if strings.TrimSpace(unstaged) != "" {
		sections = append(sections, "Modified files:\n"+unstaged)
	}
	if strings.TrimSpace(untracked) != "" {
		sections = append(sections, "Untracked files:\n"+untracked)
	}

	return Result{
		Found:  len(sections) > 0,
		Detail: strings.TrimRight(strings.Join(sections, "\n"), "\n"),
	}
}

// outputOrEmpty runs a git command and treats failure as empty output.
func outputOrEmpty(ctx context.Context, g Runner, args ...string) string {
	out, err := g.Output(ctx, args...)
	if err != nil {
		return ""
	}
	return string(out)
}
