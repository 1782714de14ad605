package check

import (
	"context"
	"fmt"
	"strings"
)

// fakeRunner fakes the git command capability. Output is looked up by the
// joined argument list; unmapped commands succeed with empty output unless
// listed in errs.
type fakeRunner struct {
	out   map[string]string
	errs  map[string]bool
	calls []string
}

func (f *fakeRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if f.errs[key] {
		return nil, fmt.Errorf("git %s failed", key)
	}
	return []byte(f.out[key]), nil
}
