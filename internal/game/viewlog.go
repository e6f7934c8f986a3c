package game

import (
	"fmt"
	"strings"
)

// ViewLogEntry is one recorded interaction event during a headless run.
type ViewLogEntry struct {
	Tick     int
	Subject  string  // POI label e.g. "POI-3", or "--" for camera/gesture events
	Category string  // camera, gesture, select, status
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] POI-3 select  tap_hit         d=11.3
func (e ViewLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-8s %-18s %s",
		e.Tick, e.Subject, e.Category, e.Key, e.Value)
}

// ViewLog collects structured events during a headless run. Unlike the
// on-screen ticker (bounded ring buffer), ViewLog is unbounded and
// machine-readable; tests and the headless report query it.
type ViewLog struct {
	entries []ViewLogEntry
	verbose bool
}

// NewViewLog creates a ViewLog. If verbose is true, per-tick camera
// position/scale entries are also recorded.
func NewViewLog(verbose bool) *ViewLog {
	return &ViewLog{verbose: verbose}
}

// Add records a new entry.
func (vl *ViewLog) Add(tick int, subject, category, key, value string, numVal float64) {
	vl.entries = append(vl.entries, ViewLogEntry{
		Tick:     tick,
		Subject:  subject,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (vl *ViewLog) AddVerbose(tick int, subject, category, key, value string, numVal float64) {
	if !vl.verbose {
		return
	}
	vl.Add(tick, subject, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (vl *ViewLog) Entries() []ViewLogEntry { return vl.entries }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (vl *ViewLog) Filter(category, key string) []ViewLogEntry {
	var out []ViewLogEntry
	for _, e := range vl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (vl *ViewLog) Count(category, key string) int {
	return len(vl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false
// if none.
func (vl *ViewLog) LastOf(category, key string) (ViewLogEntry, bool) {
	entries := vl.Filter(category, key)
	if len(entries) == 0 {
		return ViewLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key,
// and value substring.
func (vl *ViewLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range vl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (vl *ViewLog) Format() string {
	var sb strings.Builder
	for _, e := range vl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func poiLabel(id int) string {
	return fmt.Sprintf("POI-%d", id)
}
