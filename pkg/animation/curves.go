package animation

import "math"

// A curve maps linear progress in [0, 1] to eased progress. Assign one
// to an [AnimationController]'s Curve field; [CubicBezier] builds custom
// curves from CSS cubic-bezier() control points.

// LinearCurve applies no easing.
func LinearCurve(t float64) float64 {
	return t
}

// Ease matches CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn matches CSS ease-in. Starts slow, good for surfaces leaving
// the screen.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut matches CSS ease-out. Starts fast, good for surfaces entering
// the screen.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut matches CSS ease-in-out. Slow ends with a fast middle; the
// default for timed overlay transitions.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier builds an easing function from the two control points of
// a CSS cubic-bezier() curve. The curve runs from (0,0) to (1,1);
// (x1,y1) and (x2,y2) shape it in between.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierAt(y1, y2, solveParam(x1, x2, t))
	}
}

// solveParam finds the curve parameter u where the bezier's x component
// equals t. Newton-Raphson usually converges in a few rounds; bisection
// backstops the flat regions where the derivative vanishes.
func solveParam(x1, x2, t float64) float64 {
	u := t
	for i := 0; i < 8; i++ {
		x := bezierAt(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			return clamp01(u)
		}
		dx := bezierSlope(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for i := 0; i < 12; i++ {
		x := bezierAt(x1, x2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

// bezierAt evaluates one component of the cubic bezier at parameter t,
// with implicit anchors at 0 and 1.
func bezierAt(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
