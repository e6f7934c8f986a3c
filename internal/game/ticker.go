package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tickerCap   = 9 // visible lines
	tickerW     = 210
	tickerLineH = 14
)

// Ticker is the on-screen ring buffer of recent map events (selection
// changes, status updates). Oldest entries fall off the top.
type Ticker struct {
	lines []string
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// Push appends a line, discarding the oldest past capacity.
func (t *Ticker) Push(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > tickerCap {
		t.lines = t.lines[len(t.lines)-tickerCap:]
	}
}

// onEvent is the bus handler feeding the ticker.
func (t *Ticker) onEvent(e Event) {
	switch e.Type {
	case EvtPOISelected:
		t.Push(fmt.Sprintf("selected %s", poiLabel(e.POIID)))
	case EvtPOIDeselected:
		t.Push("deselected")
	}
}

// Draw renders the ticker panel anchored to the top-right corner.
func (t *Ticker) Draw(screen *ebiten.Image, screenW int) {
	if len(t.lines) == 0 {
		return
	}
	x := screenW - tickerW - 8
	h := len(t.lines)*tickerLineH + 10
	vector.FillRect(screen, float32(x), 8, tickerW, float32(h),
		color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeRect(screen, float32(x), 8, tickerW, float32(h), 1.0,
		color.RGBA{R: 55, G: 80, B: 55, A: 255}, false)
	for i, line := range t.lines {
		ebitenutil.DebugPrintAt(screen, line, x+6, 12+i*tickerLineH)
	}
}
