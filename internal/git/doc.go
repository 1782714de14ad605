// Package git wraps the git command-line interface.
//
// All repository state is read by invoking the git binary with an explicit
// working directory (git -C <dir> ...). The package never mutates repository
// state; the only network-facing call issued through it is a dry-run fetch.
//
// Client binds a repository directory and satisfies check.Runner, so the
// evaluation core stays decoupled from the real binary and can be tested
// against a fake runner.
package git
