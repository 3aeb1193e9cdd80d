package utils

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		v         Vec2
		magnitude float64
		want      Vec2
	}{
		{"单位化X轴", Vec2{3, 0}, 1, Vec2{1, 0}},
		{"3-4-5三角形", Vec2{3, 4}, 10, Vec2{6, 8}},
		{"负长度反向", Vec2{0, 2}, -3, Vec2{0, -3}},
		{"零向量回退到X轴", Vec2{0, 0}, 5, Vec2{5, 0}},
		{"零向量负长度", Vec2{0, 0}, -1, Vec2{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.v, tt.magnitude)
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.v, tt.magnitude, got, tt.want)
			}
		})
	}
}

func TestNormalizeMagnitudeLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		m := rng.Float64() * 50
		if i%50 == 0 {
			v = Vec2{}
		}
		got := Magnitude(Normalize(v, m))
		if math.Abs(got-m) > 1e-6 {
			t.Fatalf("|Normalize(%v, %v)| = %v", v, m, got)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if got := Add(a, b); got != (Vec2{5, 8}) {
		t.Errorf("Add = %v", got)
	}
	if got := Sub(b, a); got != (Vec2{3, 4}) {
		t.Errorf("Sub = %v", got)
	}
	if got := Scale(a, 3); got != (Vec2{3, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := Distance(a, b); math.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := DistanceSq(a, b); math.Abs(got-25) > epsilon {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
}

func TestAngleVec(t *testing.T) {
	v := AngleVec(0)
	if math.Abs(v.X) > epsilon || math.Abs(v.Y-1) > epsilon {
		t.Errorf("AngleVec(0) = %v, want (0, 1)", v)
	}
	v = AngleVec(math.Pi / 2)
	if math.Abs(v.X-1) > epsilon || math.Abs(v.Y) > epsilon {
		t.Errorf("AngleVec(pi/2) = %v, want (1, 0)", v)
	}
}

func TestClampMagnitude(t *testing.T) {
	if got := ClampMagnitude(Vec2{30, 40}, 5); math.Abs(Magnitude(got)-5) > epsilon {
		t.Errorf("ClampMagnitude should shrink to 5, got %v", got)
	}
	if got := ClampMagnitude(Vec2{1, 1}, 5); got != (Vec2{1, 1}) {
		t.Errorf("ClampMagnitude should keep short vectors, got %v", got)
	}
}

func TestCollidingIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := Vec2{rng.Float64() * 4, rng.Float64() * 4}
		b := Vec2{rng.Float64() * 4, rng.Float64() * 4}
		ra := rng.Float64()
		rb := rng.Float64()
		if Colliding(a, ra, b, rb) != Colliding(b, rb, a, ra) {
			t.Fatalf("Colliding not symmetric for %v/%v and %v/%v", a, ra, b, rb)
		}
	}
}

func TestCollidingBoundary(t *testing.T) {
	// 恰好相切不算碰撞（严格小于）
	if Colliding(Vec2{0, 0}, 0.5, Vec2{1, 0}, 0.5) {
		t.Error("Touching circles should not collide")
	}
	if !Colliding(Vec2{0, 0}, 0.5, Vec2{0.99, 0}, 0.5) {
		t.Error("Overlapping circles should collide")
	}
}
