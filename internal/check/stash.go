package check

import (
	"context"
	"fmt"
	"strings"
)

// Stashed counts saved stash entries. Any entry is a problem: stashed work
// is lost with the repository.
func Stashed(ctx context.Context, g Runner) Result {
	list := strings.TrimSpace(outputOrEmpty(ctx, g, "stash", "list"))
	if list == "" {
		return Result{}
	}

	count := len(strings.Split(list, "\n"))
	return Result{Found: true, Detail: fmt.Sprintf("%d stashed changes", count)}
}
