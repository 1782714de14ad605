package check

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// DirStats describes a directory without version control: everything in it
// would be lost on deletion.
type DirStats struct {
	FileCount int
	TotalSize int64
}

// CollectStats recursively counts regular files and sums their sizes.
// Unreadable entries are skipped; a file whose size cannot be read is
// counted with its size omitted.
func CollectStats(root string) DirStats {
	var stats DirStats
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		stats.FileCount++
		if info, err := d.Info(); err == nil {
			stats.TotalSize += info.Size()
		}
		return nil
	})
	return stats
}

// FormatSize renders a byte count using binary units (1024-based) with one
// decimal place.
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
