package game

import (
	"strings"
	"testing"
)

func TestSummary_Accuracy(t *testing.T) {
	if got := (Summary{}).Accuracy(); got != 0 {
		t.Fatalf("accuracy with no shots = %v, want 0", got)
	}
	sm := Summary{Stats: Stats{Shots: 8, Kills: 2}}
	if got := sm.Accuracy(); got != 0.25 {
		t.Fatalf("accuracy = %v, want 0.25", got)
	}
}

func TestSummarize_ReflectsSession(t *testing.T) {
	ts := NewTestSim(
		WithSpawnDelay(noSpawns),
		WithEnemy(500, 300, 20, 0),
		WithBullet(470, 300, 800, 0, 1),
	)
	ts.RunSteps(6)

	sm := ts.Session.Summarize()
	if sm.SessionID != ts.Session.ID.String() {
		t.Errorf("SessionID = %q", sm.SessionID)
	}
	if sm.Score != 10 || sm.Stats.Kills != 1 || sm.Enemies != 0 {
		t.Errorf("summary = %+v", sm)
	}
	if sm.Survived != ts.Session.Clock() {
		t.Errorf("Survived = %v, want %v", sm.Survived, ts.Session.Clock())
	}

	out := sm.String()
	for _, want := range []string{"score    10", "(playing)", "kills    1 / 0 shots"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary text missing %q:\n%s", want, out)
		}
	}
}
