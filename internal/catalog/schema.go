package catalog

import (
	"encoding/json"
	"time"
)

// entryFile is the on-disk shape of one entry description file.
// Required keys use pointers so a missing key is distinguishable from a
// zero value; unknown keys are ignored (files are hand-written and may
// carry extra metadata).
type entryFile struct {
	Title       *string         `json:"title"`
	Description string          `json:"description"`
	CreatedAt   *time.Time      `json:"created_at"`
	Duration    json.RawMessage `json:"duration"`
	Hidden      *bool           `json:"hidden"`
}
