package game

import (
	"fmt"
	"strings"
)

// Summary is a flat record of one session, for reports and the clipboard.
type Summary struct {
	SessionID string
	State     State
	Score     int
	Survived  float64 // seconds
	Stats     Stats
	Enemies   int // alive at the time of the summary
}

// Accuracy is kills per shot, 0 when nothing was fired.
func (sm Summary) Accuracy() float64 {
	if sm.Stats.Shots == 0 {
		return 0
	}
	return float64(sm.Stats.Kills) / float64(sm.Stats.Shots)
}

// Summarize captures the session's current totals.
func (s *Session) Summarize() Summary {
	return Summary{
		SessionID: s.ID.String(),
		State:     s.State,
		Score:     s.Score,
		Survived:  s.clock,
		Stats:     s.Stats,
		Enemies:   len(s.Store.Enemies),
	}
}

// String formats the summary as a short multi-line report.
func (sm Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "session  %s (%s)\n", sm.SessionID, sm.State)
	fmt.Fprintf(&sb, "score    %d\n", sm.Score)
	fmt.Fprintf(&sb, "survived %.2fs over %d frames\n", sm.Survived, sm.Stats.Frames)
	fmt.Fprintf(&sb, "kills    %d / %d shots (%.0f%%)\n", sm.Stats.Kills, sm.Stats.Shots, sm.Accuracy()*100)
	fmt.Fprintf(&sb, "enemies  %d spawned, %d alive\n", sm.Stats.Spawned, sm.Enemies)
	fmt.Fprintf(&sb, "hits     %d taken\n", sm.Stats.HitsTaken)
	return sb.String()
}
