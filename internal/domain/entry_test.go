package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEntryMarshalJSON(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	hidden := true

	tests := []struct {
		name       string
		entry      Entry
		wantFields map[string]interface{}
		wantHidden bool // whether the hidden key must be present
	}{
		{
			name: "hidden absent is omitted",
			entry: Entry{
				ID:        "ep1",
				Title:     "Episode 1",
				CreatedAt: createdAt,
				Duration:  3661 * time.Second,
			},
			wantFields: map[string]interface{}{
				"id":          "ep1",
				"title":       "Episode 1",
				"description": "",
				"created_at":  "2024-03-15T18:30:00Z",
				"duration":    "1h1m1s",
			},
		},
		{
			name: "hidden true is emitted",
			entry: Entry{
				ID:        "secret",
				Title:     "Secret",
				CreatedAt: createdAt,
				Duration:  90 * time.Second,
				Hidden:    &hidden,
			},
			wantFields: map[string]interface{}{
				"duration": "1m30s",
				"hidden":   true,
			},
			wantHidden: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.entry)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			var got map[string]interface{}
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			for key, want := range tt.wantFields {
				if got[key] != want {
					t.Errorf("field %q = %v, want %v", key, got[key], want)
				}
			}

			if _, present := got["hidden"]; present != tt.wantHidden {
				t.Errorf("hidden key present = %v, want %v", present, tt.wantHidden)
			}
		})
	}
}

func TestEntryMarshalNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*3600)
	e := Entry{
		ID:        "tz",
		Title:     "Timezones",
		CreatedAt: time.Date(2024, 6, 1, 14, 0, 0, 0, loc),
		Duration:  time.Minute,
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["created_at"] != "2024-06-01T12:00:00Z" {
		t.Errorf("created_at = %v, want 2024-06-01T12:00:00Z", got["created_at"])
	}
}

func TestEntryIsHidden(t *testing.T) {
	truthy := true
	falsy := false

	tests := []struct {
		name   string
		hidden *bool
		want   bool
	}{
		{name: "nil", hidden: nil, want: false},
		{name: "false", hidden: &falsy, want: false},
		{name: "true", hidden: &truthy, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Hidden: tt.hidden}
			if got := e.IsHidden(); got != tt.want {
				t.Errorf("IsHidden() = %v, want %v", got, tt.want)
			}
		})
	}
}
