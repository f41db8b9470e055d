package components

import (
	"math"
	"testing"

	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

func TestPositionTranslate(t *testing.T) {
	p := &PositionComponent{X: 100, Y: 520}
	p.Translate(types.DirectionDown.Mask().Mul(types.Vec2{X: 10, Y: 15}))
	if p.X != 100 || p.Y != 505 {
		t.Errorf("expected (100, 505), got (%f, %f)", p.X, p.Y)
	}
}

func TestExplosionRadiusAndAlpha(t *testing.T) {
	tests := []struct {
		elapsed    float64
		wantRadius float64
		wantAlpha  float64
	}{
		{0, 5, 1},
		{0.25, 10, 0.5},
		{0.5, 15, 0},
	}

	for _, tt := range tests {
		e := &ExplosionComponent{
			Timer:     utils.NewTimer(0.5, utils.TimerOnce),
			MinRadius: 5,
			MaxRadius: 15,
		}
		e.Timer.Tick(tt.elapsed)
		if math.Abs(e.Radius()-tt.wantRadius) > 1e-9 {
			t.Errorf("elapsed %v: radius = %f, want %f", tt.elapsed, e.Radius(), tt.wantRadius)
		}
		if math.Abs(e.Alpha()-tt.wantAlpha) > 1e-9 {
			t.Errorf("elapsed %v: alpha = %f, want %f", tt.elapsed, e.Alpha(), tt.wantAlpha)
		}
	}
}
