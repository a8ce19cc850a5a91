package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/streamarchive/catalogd/internal/domain"
	"github.com/streamarchive/catalogd/internal/logger"
)

// Scan enumerates the direct children of dir and returns the visible
// entries, most recent first.
//
// Only candidate files are considered: name ends in ".json" and the stem
// contains no further dot ("foo.meta.json" is reserved for sidecar data).
// Candidates that fail to load are logged and skipped; they never fail
// the scan. Hidden entries are filtered out. An unreadable directory
// fails the whole scan with a single error.
func Scan(dir string, log logger.Logger) ([]domain.Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection directory: %w", err)
	}

	entries := make([]domain.Entry, 0, len(children))
	for _, child := range children {
		if child.IsDir() || !isCandidate(child.Name()) {
			continue
		}

		entry, err := LoadEntry(filepath.Join(dir, child.Name()))
		if err != nil {
			log.Debug("skipping unloadable entry file",
				logger.String("file", child.Name()),
				logger.Error(err))
			continue
		}
		if entry.IsHidden() {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

// isCandidate reports whether a directory child name is eligible to be
// parsed as an entry.
func isCandidate(name string) bool {
	stem, ok := strings.CutSuffix(name, ".json")
	return ok && stem != "" && !strings.Contains(stem, ".")
}
