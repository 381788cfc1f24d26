package game

import (
	"fmt"
	"strings"
)

// DefaultLogLimit bounds the live game's event log so an endless session
// does not grow without limit. Counts stay exact after entries roll off.
const DefaultLogLimit = 512

// SimLogEntry is one recorded gameplay event.
type SimLogEntry struct {
	Frame    int
	Clock    float64 // session seconds
	Category string  // fire, spawn, hit, kill, state
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042 t=  0.70] kill   enemy        at (412,300) score 10
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d t=%6.2f] %-6s %-12s %s",
		e.Frame, e.Clock, e.Category, e.Key, e.Value)
}

// SimLog collects structured gameplay events. With a limit it keeps only the
// most recent entries.
type SimLog struct {
	entries []SimLogEntry
	limit   int
	verbose bool
	counts  map[string]int
}

// NewSimLog creates a log keeping at most limit entries (0 = unbounded).
func NewSimLog(limit int) *SimLog {
	return &SimLog{limit: limit, counts: make(map[string]int)}
}

// SetVerbose toggles recording of high-frequency events such as shots.
func (sl *SimLog) SetVerbose(v bool) {
	sl.verbose = v
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, clock float64, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	sl.counts[category+"/"+key]++
	if sl.limit > 0 && len(sl.entries) >= sl.limit {
		copy(sl.entries, sl.entries[1:])
		sl.entries = sl.entries[:len(sl.entries)-1]
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Clock:    clock,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, clock float64, category, key, value string, numVal float64) {
	if sl == nil || !sl.verbose {
		return
	}
	sl.Add(frame, clock, category, key, value, numVal)
}

// Entries returns the retained entries, oldest first.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
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

// Count returns how many events of category/key were ever recorded,
// including entries that have rolled off.
func (sl *SimLog) Count(category, key string) int {
	return sl.counts[category+"/"+key]
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Tail returns up to n of the newest entries, oldest first.
func (sl *SimLog) Tail(n int) []SimLogEntry {
	if n >= len(sl.entries) {
		return sl.entries
	}
	return sl.entries[len(sl.entries)-n:]
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatPoint(x, y float64) string {
	return fmt.Sprintf("(%.0f,%.0f)", x, y)
}
