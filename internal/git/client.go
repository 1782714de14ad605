package git

import (
	"context"
)

// Client runs git commands against a single repository directory.
type Client struct {
	dir string
}

// NewClient returns a Client bound to the given repository directory.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// Output runs a git command in the client's repository and returns stdout.
func (c *Client) Output(ctx context.Context, args ...string) ([]byte, error) {
	return outputGit(ctx, c.dir, args...)
}
