package game

import (
	"fmt"
	"strings"
)

// InteractionStats collects per-run interaction counters for the
// headless report and the debug snapshot.
type InteractionStats struct {
	Taps            int
	TapHits         int
	PanEvents       int
	PinchSessions   int
	StatusRefreshes int
}

func NewInteractionStats() *InteractionStats {
	return &InteractionStats{}
}

// HitRate returns tap hits as a fraction of all taps, 0 when no taps
// were recorded.
func (st *InteractionStats) HitRate() float64 {
	if st.Taps == 0 {
		return 0
	}
	return float64(st.TapHits) / float64(st.Taps)
}

// Format renders the counters as a short report block.
func (st *InteractionStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "taps=%d hits=%d hit_rate=%.0f%%\n", st.Taps, st.TapHits, st.HitRate()*100)
	fmt.Fprintf(&sb, "pan_events=%d pinch_sessions=%d status_refreshes=%d\n",
		st.PanEvents, st.PinchSessions, st.StatusRefreshes)
	return sb.String()
}
