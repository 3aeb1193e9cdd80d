package systems

import (
	"image/color"
	"math"
	"testing"
)

func TestChickHop(t *testing.T) {
	t.Run("跳跃起止点高度为零", func(t *testing.T) {
		if h := chickHop(0); h != 0 {
			t.Errorf("expected 0 at start, got %v", h)
		}
		if h := chickHop(chickHopPeriod); math.Abs(h) > 1e-9 {
			t.Errorf("expected 0 after a full hop, got %v", h)
		}
	})

	t.Run("跳跃中点达到最高", func(t *testing.T) {
		h := chickHop(chickHopPeriod / 2)
		if math.Abs(h-chickHopHeight) > 1e-9 {
			t.Errorf("expected peak %v, got %v", chickHopHeight, h)
		}
		for _, ts := range []float64{0.05, 0.1, 0.3, 0.4} {
			if got := chickHop(ts); got < 0 || got > chickHopHeight+1e-9 {
				t.Errorf("hop(%v)=%v out of range", ts, got)
			}
		}
	})
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0)
	if c != (color.RGBA{}) {
		t.Errorf("zero alpha should give a transparent color, got %v", c)
	}
	c = withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 255)
	if c.R != 200 || c.G != 100 || c.B != 50 || c.A != 255 {
		t.Errorf("full alpha should keep the color, got %v", c)
	}
}
