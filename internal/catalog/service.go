package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/streamarchive/catalogd/internal/domain"
	"github.com/streamarchive/catalogd/internal/logger"
)

// ErrNotFound is returned by Get when no file exists for the requested id.
// A file that exists but cannot be loaded returns a different error so the
// HTTP layer can map the two cases to 404 and 500 respectively.
var ErrNotFound = errors.New("entry not found")

// Service is the catalog boundary consumed by the HTTP layer. It is
// stateless: every call re-reads the filesystem, so concurrent requests
// need no synchronization.
type Service struct {
	root        string
	collections []string
	log         logger.Logger
}

// NewService creates a catalog service rooted at root, one subdirectory
// per collection name.
func NewService(root string, collections []string, log logger.Logger) *Service {
	return &Service{
		root:        root,
		collections: collections,
		log:         log,
	}
}

// Collections returns the known collection names.
func (s *Service) Collections() []string {
	out := make([]string, len(s.collections))
	copy(out, s.collections)
	return out
}

// List returns the visible entries of a collection, most recent first.
func (s *Service) List(kind string) ([]domain.Entry, error) {
	if !validSegment(kind) {
		return nil, fmt.Errorf("invalid collection name %q", kind)
	}
	return Scan(filepath.Join(s.root, kind), s.log)
}

// Get returns a single entry by id, hidden or not.
//
// Existence is checked before loading: the loader itself collapses a
// missing file and a broken file into one error, and the distinction
// matters here (404 vs 500).
func (s *Service) Get(kind, id string) (domain.Entry, error) {
	if !validSegment(kind) || !validSegment(id) {
		return domain.Entry{}, ErrNotFound
	}

	path := filepath.Join(s.root, kind, id+".json")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return domain.Entry{}, ErrNotFound
		}
		return domain.Entry{}, fmt.Errorf("failed to stat entry file: %w", err)
	}

	return LoadEntry(path)
}

// validSegment rejects path segments that could escape the data directory
// or smuggle an extension. Dots are banned outright: entry stems are
// dotless by the candidate rule, so a dotted id can never name an entry.
func validSegment(seg string) bool {
	return seg != "" && !strings.ContainsAny(seg, `./\`)
}
