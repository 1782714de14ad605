// Package check implements the sync-state evaluation core of gitok.
//
// A directory is evaluated by a fixed sequence of independent checks:
// working-tree changes, stashed work, suspended merge/rebase/cherry-pick
// operations, and synchronization of the current branch with its upstream.
// Ignored files are listed and classified so that sensitive or
// irreplaceable ones are called out before the directory is deleted.
//
// Checks that talk to git do so through the Runner capability, which makes
// each check a pure function of the target and the command output; tests
// substitute a fake runner. Paths that are not repositories short-circuit
// to a degraded report containing only file count and total size.
//
// Evaluate aggregates all check results into a Report. A Report is clean
// exactly when the target is a repository and no check found an issue.
package check
