package check

import "strings"

// Rules is the data-driven policy for flagging ignored files that look
// sensitive or irreplaceable. The zero value flags nothing; use
// DefaultRules for the built-in policy.
type Rules struct {
	// Patterns are substrings matched against the lowercase path.
	Patterns []string
	// Extensions are suffixes that always mark a file as important.
	Extensions []string
	// ExcludeDirs are directory names (with trailing slash) whose contents
	// are never flagged, at any depth.
	ExcludeDirs []string
	// SourceExtensions are source-code suffixes that demote a pattern
	// match: such files are only flagged via the allowlist.
	SourceExtensions []string
	// SourceAllowlist are exact filename suffixes of source files that are
	// flagged despite SourceExtensions. Suffix match is intentionally
	// narrow; do not generalize to globs.
	SourceAllowlist []string
}

// DefaultRules returns the built-in classification policy.
func DefaultRules() Rules {
	return Rules{
		Patterns:         []string{".env", "secret", "credential", "key", "password", ".local", "config.local"},
		Extensions:       []string{".db", ".sqlite", ".sqlite3", ".pem", ".key", ".cert", ".crt", ".pfx", ".p12"},
		ExcludeDirs:      []string{"node_modules/", ".next/", "dist/", "build/", ".venv/", "__pycache__/", ".cache/"},
		SourceExtensions: []string{".py", ".js", ".ts", ".map"},
		SourceAllowlist:  []string{".env.py", ".env.js", "secrets.py", "secrets.js"},
	}
}

// Important returns the subset of files matching the rule table, preserving
// input order. A file is important when it lies under no excluded directory
// and either carries a sensitive extension or its lowercase path contains a
// sensitive pattern; pattern matches on ordinary source files only count
// when the filename is on the allowlist.
func (r Rules) Important(files []string) []string {
	var important []string
	for _, f := range files {
		if r.excluded(f) {
			continue
		}

		if hasAnySuffix(f, r.Extensions) {
			important = append(important, f)
			continue
		}

		if !containsAny(strings.ToLower(f), r.Patterns) {
			continue
		}

		if hasAnySuffix(f, r.SourceExtensions) {
			if hasAnySuffix(f, r.SourceAllowlist) {
				important = append(important, f)
			}
			continue
		}
		important = append(important, f)
	}
	return important
}

func (r Rules) excluded(path string) bool {
	for _, dir := range r.ExcludeDirs {
		if strings.HasPrefix(path, dir) || strings.Contains(path, "/"+dir) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
