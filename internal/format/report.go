// Package format renders a check.Report as a human-readable text report.
package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitok/internal/check"
)

// Listing truncation limits for --show-ignored.
const (
	maxImportantListed = 10
	maxOtherListed     = 20
)

// Options control which file listings are included in the report.
type Options struct {
	ShowIgnored   bool
	ImportantOnly bool
}

// Renderer renders reports, optionally with color.
type Renderer struct {
	color bool
}

// NewRenderer returns a Renderer. Color should be disabled when stdout is
// not a terminal.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// Render produces the full multi-section text report.
func (r *Renderer) Render(rep check.Report, opts Options) string {
	var b strings.Builder
	sep := strings.Repeat("=", 60)

	if !rep.IsRepo {
		fmt.Fprintf(&b, "Directory: %s\n%s\n", rep.Path, sep)
		b.WriteString(r.styled(errorStyle, "✗ Not a git repository") + "\n\n")
		fmt.Fprintf(&b, "All %d files (%s) are not backed up.\n", rep.FileCount, rep.TotalSizeHuman)
		b.WriteString(r.styled(mutedStyle, "To initialize git: git init") + "\n")
		b.WriteString(sep + "\n\n")
		b.WriteString(r.styled(warnStyle, "⚠ This directory has no backup whatsoever.") + "\n")
		b.WriteString("  Any file deletion or disk failure means permanent data loss.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Repository: %s\n%s\n", rep.Path, sep)
	if rep.Clean {
		b.WriteString(r.styled(successStyle, "✓ Repository is clean and synced") + "\n")
	} else {
		b.WriteString(r.styled(warnStyle, "⚠ Issues found:") + "\n")
		for _, issue := range rep.Issues {
			fmt.Fprintf(&b, "  • %s\n", issue)
		}
	}

	if rep.SyncStatus != "" {
		b.WriteString("\nSync status:\n")
		writeIndented(&b, rep.SyncStatus)
	}
	if rep.Uncommitted != "" {
		b.WriteString("\nUncommitted changes:\n")
		writeIndented(&b, rep.Uncommitted)
	}
	if rep.StashInfo != "" {
		fmt.Fprintf(&b, "\nStash: %s\n", rep.StashInfo)
	}
	if rep.Operation != "" {
		fmt.Fprintf(&b, "\nOperation: %s\n", rep.Operation)
	}

	fmt.Fprintf(&b, "\nIgnored files: %d\n", rep.IgnoredCount)
	if rep.ImportantCount > 0 {
		b.WriteString(r.styled(warnStyle,
			fmt.Sprintf("  ⚠ %d important config/secret files", rep.ImportantCount)) + "\n")
	}

	switch {
	case opts.ImportantOnly && rep.ImportantCount > 0:
		b.WriteString("  Important files that would be lost:\n")
		for _, f := range rep.ImportantFiles {
			fmt.Fprintf(&b, "    ⚠ %s\n", f)
		}
	case opts.ShowIgnored && rep.IgnoredCount > 0:
		r.writeIgnoredListing(&b, rep)
	}

	b.WriteString(sep + "\n")

	if !rep.Clean {
		b.WriteString("\n" + r.styled(warnStyle, "⚠ This repository has unsynced changes.") + "\n")
		b.WriteString("  Review the above before deleting it.\n")
	}
	return b.String()
}

// writeIgnoredListing prints important files first, then the rest, each
// list truncated with an overflow count.
func (r *Renderer) writeIgnoredListing(b *strings.Builder, rep check.Report) {
	important := make(map[string]struct{}, len(rep.ImportantFiles))
	for _, f := range rep.ImportantFiles {
		important[f] = struct{}{}
	}

	if len(rep.ImportantFiles) > 0 {
		b.WriteString("  Important config/secret files:\n")
		for i, f := range rep.ImportantFiles {
			if i == maxImportantListed {
				fmt.Fprintf(b, "    ... and %d more important files\n", len(rep.ImportantFiles)-maxImportantListed)
				break
			}
			fmt.Fprintf(b, "    • %s\n", f)
		}
	}

	var others []string
	for _, f := range rep.IgnoredFiles {
		if _, ok := important[f]; !ok {
			others = append(others, f)
		}
	}
	if len(others) > 0 {
		b.WriteString("  Other ignored files:\n")
		for i, f := range others {
			if i == maxOtherListed {
				fmt.Fprintf(b, "    ... and %d more\n", len(others)-maxOtherListed)
				break
			}
			fmt.Fprintf(b, "    • %s\n", f)
		}
	}
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(b, "  %s\n", line)
	}
}
