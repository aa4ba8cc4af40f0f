package sheet

import (
	"github.com/go-drift/sheet/pkg/rendering"
)

// CornerMask maintains the rounded-corner clip path for a block of
// composed content. The path depends on concrete pixel bounds, so it is
// recomputed on every layout pass rather than from intrinsic size.
//
// Recomputation is idempotent: identical bounds yield the identical
// path, and the cached path is reused untouched while bounds are stable.
type CornerMask struct {
	spec   rendering.CornerSpec
	bounds rendering.Rect
	path   *rendering.Path
}

// NewCornerMask creates a mask with the given corner mode and radius.
func NewCornerMask(mode rendering.CornerMode, radius float64) *CornerMask {
	return &CornerMask{spec: rendering.CornerSpec{Mode: mode, Radius: radius}}
}

// Recompute rebuilds the clip path for the given bounds and returns it.
// It returns nil when the mask does not round (mode none or a radius of
// zero), meaning no clip applies. Unchanged bounds return the previously
// computed path.
func (m *CornerMask) Recompute(bounds rendering.Rect) *rendering.Path {
	if !m.spec.IsRounded() {
		return nil
	}
	if m.path != nil && bounds == m.bounds {
		return m.path
	}
	path := rendering.NewPath()
	path.AddRRect(m.spec.RRect(bounds))
	m.bounds = bounds
	m.path = path
	return path
}

// Path returns the clip path from the last Recompute, or nil when no
// clip applies.
func (m *CornerMask) Path() *rendering.Path {
	if !m.spec.IsRounded() {
		return nil
	}
	return m.path
}
