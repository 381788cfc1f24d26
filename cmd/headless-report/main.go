package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/circle-siege/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstSpawnFrame int
	firstKillFrame  int
	firstHitFrame   int
	gameOverFrame   int

	spawnsByEdge map[string]int
	restarts     int

	summary game.Summary
}

func main() {
	var runs int
	var seconds float64
	var seedBase int64
	var seedStep int64
	var health int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.Float64Var(&seconds, "seconds", 60, "simulated seconds per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&health, "health", game.PlayerHealth, "starting player health")
	flag.BoolVar(&verbose, "v", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if seconds <= 0 {
		fmt.Println("error: -seconds must be > 0")
		return
	}
	if health <= 0 {
		fmt.Println("error: -health must be > 0")
		return
	}

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("runs=%d seconds=%.0f health=%d seed_base=%d seed_step=%d\n\n", runs, seconds, health, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := runAutopilot(seed, seconds, health)
		stats := collect(i+1, seed, ts.Session)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(ts.Session.Log.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

// runAutopilot plays one session until game over or the time limit.
func runAutopilot(seed int64, seconds float64, health int) *game.TestSim {
	ts := game.NewTestSim(
		game.WithViewport(800, 600),
		game.WithSeed(seed),
		game.WithPilot(game.NewAutopilot().Decide),
		game.WithPlayerHealth(health),
	)
	maxSteps := int(seconds/ts.DT + 0.5)
	ts.RunUntil((*game.Session).GameOver, maxSteps)
	return ts
}

func collect(runIndex int, seed int64, s *game.Session) runStats {
	entries := s.Log.Entries()
	byEdge := map[string]int{}
	for _, e := range entries {
		if e.Category == "spawn" {
			byEdge[e.Key]++
		}
	}
	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		firstSpawnFrame: firstFrame(entries, "spawn", ""),
		firstKillFrame:  firstFrame(entries, "kill", "enemy"),
		firstHitFrame:   firstFrame(entries, "hit", "player"),
		gameOverFrame:   firstFrame(entries, "state", "game_over"),
		spawnsByEdge:    byEdge,
		restarts:        s.Log.Count("state", "restart"),
		summary:         s.Summarize(),
	}
}

func firstFrame(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key == "" || e.Key == key {
			return e.Frame
		}
	}
	return -1
}

func printRun(rs runStats) {
	sm := rs.summary
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(sm.String())
	fmt.Printf("phase_markers: first_spawn=%d first_kill=%d first_hit=%d game_over=%d\n",
		rs.firstSpawnFrame, rs.firstKillFrame, rs.firstHitFrame, rs.gameOverFrame)
	fmt.Printf("spawns_by_edge: %s\n", formatCounts(rs.spawnsByEdge))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalKills := 0
	totalShots := 0
	totalHits := 0
	totalSpawned := 0
	totalSurvived := 0.0
	gameOvers := 0
	best := 0

	killFrames := make([]int, 0, len(all))
	overFrames := make([]int, 0, len(all))
	edges := map[string]int{}

	for _, rs := range all {
		sm := rs.summary
		totalScore += sm.Score
		totalKills += sm.Stats.Kills
		totalShots += sm.Stats.Shots
		totalHits += sm.Stats.HitsTaken
		totalSpawned += sm.Stats.Spawned
		totalSurvived += sm.Survived
		if sm.State == game.StateGameOver {
			gameOvers++
		}
		if sm.Score > best {
			best = sm.Score
		}
		if rs.firstKillFrame >= 0 {
			killFrames = append(killFrames, rs.firstKillFrame)
		}
		if rs.gameOverFrame >= 0 {
			overFrames = append(overFrames, rs.gameOverFrame)
		}
		for k, v := range rs.spawnsByEdge {
			edges[k] += v
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d game_overs=%d best_score=%d\n", n, gameOvers, best)
	fmt.Printf("avg_per_run: score=%.1f kills=%.1f shots=%.1f hits_taken=%.1f spawned=%.1f survived=%.1fs\n",
		avg(totalScore, n), avg(totalKills, n), avg(totalShots, n), avg(totalHits, n), avg(totalSpawned, n), totalSurvived/float64(n))
	fmt.Printf("accuracy=%.1f%%\n", 100*ratio(totalKills, totalShots))
	fmt.Printf("phase_marker_avg_frames: first_kill=%s game_over=%s\n",
		avgFrameString(killFrames), avgFrameString(overFrames))
	fmt.Printf("spawns_by_edge: %s (top=%s)\n", formatCounts(edges), topKey(edges))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topKey returns the most frequent key with its count; ties go to the
// alphabetically first key.
func topKey(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	best := ""
	bestN := 0
	for _, k := range sortedKeys(counts) {
		if counts[k] > bestN {
			best = k
			bestN = counts[k]
		}
	}
	return fmt.Sprintf("%s(%d)", best, bestN)
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(counts))
	for _, k := range sortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
