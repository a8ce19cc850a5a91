package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/streamarchive/catalogd/internal/domain"
)

// LoadEntry reads and parses a single entry description file.
// The entry id is derived from the filename stem, never from the payload.
//
// Any failure (I/O, malformed JSON, missing required key, undecodable
// duration) is returned as a single error; callers that need to tell a
// missing file from a broken one must stat the path themselves first.
func LoadEntry(path string) (domain.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("failed to read entry file: %w", err)
	}

	var file entryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Entry{}, fmt.Errorf("failed to parse entry json: %w", err)
	}

	return mapEntry(entryID(path), file)
}

// entryID extracts the id from a file path: "vods/abc.json" -> "abc".
func entryID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mapEntry converts the on-disk shape to a domain.Entry, enforcing
// required keys and decoding the flexible duration encoding.
func mapEntry(id string, file entryFile) (domain.Entry, error) {
	if file.Title == nil {
		return domain.Entry{}, fmt.Errorf("entry %q: missing title", id)
	}
	if file.CreatedAt == nil {
		return domain.Entry{}, fmt.Errorf("entry %q: missing created_at", id)
	}
	if len(file.Duration) == 0 {
		return domain.Entry{}, fmt.Errorf("entry %q: missing duration", id)
	}

	duration, err := decodeDuration(file.Duration)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("entry %q: %w", id, err)
	}

	return domain.Entry{
		ID:          id,
		Title:       *file.Title,
		Description: file.Description,
		CreatedAt:   file.CreatedAt.UTC(),
		Duration:    duration,
		Hidden:      file.Hidden,
	}, nil
}

// decodeDuration accepts the two source encodings: a JSON number counted
// as fractional seconds, or a compact human duration string. Anything
// else, including an explicit null, is a decode error.
func decodeDuration(raw json.RawMessage) (time.Duration, error) {
	// Unmarshal treats null as a no-op, which would smuggle in a zero
	// duration for a key the schema requires.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, fmt.Errorf("duration must not be null")
	}

	var secs float64
	if err := json.Unmarshal(raw, &secs); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative duration %v", secs)
		}
		if math.IsNaN(secs) || secs > math.MaxInt64/float64(time.Second) {
			return 0, fmt.Errorf("duration seconds out of range: %v", secs)
		}
		return domain.DurationFromSeconds(secs), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("duration must be a number or a string")
	}
	return domain.ParseFlexibleDuration(s)
}
