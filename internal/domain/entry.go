package domain

import (
	"encoding/json"
	"time"
)

// Entry represents the canonical record of one media item.
//
// It is NOT tied to the on-disk JSON shape or the HTTP layer.
// An Entry is immutable once loaded and lives for a single request;
// the backing file is re-read on every access.
//
// An Entry is uniquely identified within its collection by ID.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier within a collection.
	// Derived from the filename stem, never from the file payload.
	// Example: "2024-spring-finale" for 2024-spring-finale.json
	ID string

	// ─────────────────────────────
	// Descriptive metadata
	// ─────────────────────────────

	// Title is the display title. The key is required in the source
	// file; an empty value is accepted.
	Title string

	// Description is optional free text. Defaults to empty.
	Description string

	// ─────────────────────────────
	// Ordering & playback
	// ─────────────────────────────

	// CreatedAt is the publication timestamp, normalized to UTC.
	// Listings are ordered by this field, most recent first.
	CreatedAt time.Time

	// Duration is the media runtime. Source files may encode it as
	// fractional seconds or a compact string; the API always emits
	// the compact XhYmZs form.
	Duration time.Duration

	// ─────────────────────────────
	// Visibility
	// ─────────────────────────────

	// Hidden excludes the entry from listings when true. It stays
	// fetchable by direct id. Nil means the key was absent in the
	// source file; the distinction is preserved so the API can omit
	// the field rather than invent a false.
	Hidden *bool
}

// IsHidden reports whether the entry is excluded from listings.
func (e Entry) IsHidden() bool {
	return e.Hidden != nil && *e.Hidden
}

// entryWire is the API output shape. Input decoding lives with the
// catalog loader; this only controls what the service emits.
type entryWire struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Duration    string    `json:"duration"`
	Hidden      *bool     `json:"hidden,omitempty"`
}

// MarshalJSON emits the canonical API representation: created_at as
// ISO-8601 UTC, duration in compact form, hidden only when it was
// present in the source file.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryWire{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt.UTC(),
		Duration:    FormatCompactDuration(e.Duration),
		Hidden:      e.Hidden,
	})
}
