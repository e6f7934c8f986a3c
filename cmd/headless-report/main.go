package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/Lepiozdyx/GRiver-sub001/internal/game"
	"github.com/gookit/color"
)

// runStats summarizes one headless interaction run.
type runStats struct {
	runIndex int
	seed     int64

	taps            int
	tapHits         int
	panEvents       int
	pinchSessions   int
	statusRefreshes int
	selections      int
	deselections    int

	constraintViolations int
	scaleViolations      int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless interaction runs")
	flag.IntVar(&ticks, "ticks", 2000, "interaction steps per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		color.Red.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		color.Red.Println("error: -ticks must be > 0")
		return
	}

	color.Bold.Println("=== Headless Map Interaction Report ===")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	violations := 0
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runRandomInteraction(i+1, seed, ticks)
		all = append(all, rs)
		printRun(rs)
		violations += rs.constraintViolations + rs.scaleViolations
	}

	printAggregate(all)
	if violations == 0 {
		color.Green.Println("\nall camera invariants held")
	} else {
		color.Red.Printf("\n%d invariant violations\n", violations)
	}
}

// runRandomInteraction drives a seeded random mix of drags, pinches,
// taps, focus and reset commands and status flips against the harness,
// checking the camera invariants after every action.
func runRandomInteraction(runIndex int, seed int64, ticks int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- report tool
	tv := game.NewTestView(
		game.WithMapSize(2048, 1536),
		game.WithViewportSize(640, 480),
		game.WithPOI(1, 320, 280, game.POIBase),
		game.WithPOI(2, 780, 420, game.POIVillage),
		game.WithPOI(3, 1210, 330, game.POIWarehouse),
		game.WithPOI(4, 1630, 610, game.POIStation),
		game.WithPOI(5, 520, 900, game.POIFactory),
	)

	rs := runStats{runIndex: runIndex, seed: seed}
	vp := game.Size{W: 640, H: 480}
	randPt := func() (float64, float64) {
		return rng.Float64() * vp.W, rng.Float64() * vp.H
	}

	for t := 0; t < ticks; t++ {
		switch rng.Intn(10) {
		case 0, 1, 2, 3: // drag
			x0, y0 := randPt()
			x1, y1 := randPt()
			tv.Drag(x0, y0, x1, y1, 1+rng.Intn(5))
		case 4, 5: // pinch with an extreme ratio now and then
			cx, cy := vp.W/2, vp.H/2
			spread := 10 + rng.Float64()*200
			tv.Pinch(
				game.Vec2{X: cx - 20, Y: cy}, game.Vec2{X: cx + 20, Y: cy},
				game.Vec2{X: cx - spread, Y: cy}, game.Vec2{X: cx + spread, Y: cy},
				1+rng.Intn(4))
		case 6, 7: // tap
			x, y := randPt()
			tv.Tap(x, y)
		case 8: // command surface
			if rng.Intn(2) == 0 {
				tv.View.ResetCamera(false)
			} else {
				tv.View.FocusOn(1+rng.Intn(5), false)
			}
		case 9: // external status flip
			tv.Map.SetStatus(1+rng.Intn(5), game.POIStatus(rng.Intn(3)))
			tv.RunTicks(1)
		}
		rs.checkInvariants(tv.View.Camera())
	}

	st := tv.View.Stats()
	rs.taps = st.Taps
	rs.tapHits = st.TapHits
	rs.panEvents = st.PanEvents
	rs.pinchSessions = st.PinchSessions
	rs.statusRefreshes = st.StatusRefreshes
	rs.selections = tv.Log.Count("select", "tap_hit")
	rs.deselections = tv.Log.Count("select", "tap_miss")
	return rs
}

func (rs *runStats) checkInvariants(c *game.Camera) {
	if c.Scale < c.MinScale-1e-9 || c.Scale > c.MaxScale+1e-9 {
		rs.scaleViolations++
	}
	p := c.Constrain(c.Position)
	if math.Abs(p.X-c.Position.X) > 1e-9 || math.Abs(p.Y-c.Position.Y) > 1e-9 {
		rs.constraintViolations++
	}
}

func printRun(rs runStats) {
	color.Bold.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("gestures: pan_events=%d pinch_sessions=%d taps=%d (hits=%d)\n",
		rs.panEvents, rs.pinchSessions, rs.taps, rs.tapHits)
	fmt.Printf("selection: hits=%d misses=%d  status_refreshes=%d\n",
		rs.selections, rs.deselections, rs.statusRefreshes)
	if rs.constraintViolations+rs.scaleViolations == 0 {
		color.Green.Println("invariants: ok")
	} else {
		color.Red.Printf("invariants: constrain=%d scale=%d\n",
			rs.constraintViolations, rs.scaleViolations)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalTaps, totalHits, totalPans, totalPinches, totalRefreshes := 0, 0, 0, 0, 0
	for _, rs := range all {
		totalTaps += rs.taps
		totalHits += rs.tapHits
		totalPans += rs.panEvents
		totalPinches += rs.pinchSessions
		totalRefreshes += rs.statusRefreshes
	}
	color.Bold.Println("=== Aggregate ===")
	fmt.Printf("avg_per_run: pan_events=%.1f pinch_sessions=%.1f taps=%.1f hits=%.1f refreshes=%.1f\n",
		avg(totalPans, len(all)), avg(totalPinches, len(all)),
		avg(totalTaps, len(all)), avg(totalHits, len(all)), avg(totalRefreshes, len(all)))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
