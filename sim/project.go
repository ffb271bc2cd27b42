package sim

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/fireworks/config"
)

// Camera holds the view rotation in radians
type Camera struct {
	Yaw   float64
	Pitch float64
}

// CameraFor combines the autonomous yaw drift with the pointer's offset from
// the center of a width x height surface.
func CameraFor(cfg config.CameraConfig, pointerX, pointerY, width, height, drift float64) Camera {
	return Camera{
		Yaw:   (pointerX-width/2)*cfg.PointerSensitivity + drift,
		Pitch: (pointerY-height/2)*cfg.PointerSensitivity + cfg.BasePitch,
	}
}

// Projection is a scene point mapped onto the surface
type Projection struct {
	X, Y  float64 // surface pixels
	Depth float64 // rotated z; larger is farther
	Scale float64
}

// Projector rotates scene points by the camera (yaw, then pitch) and applies
// a perspective divide around the surface center.
type Projector struct {
	fov, pushBack, nearZ float64
	cx, cy               float64
	sinYaw, cosYaw       float64
	sinPitch, cosPitch   float64
}

func NewProjector(cfg config.CameraConfig, cam Camera, width, height float64) Projector {
	return Projector{
		fov:      cfg.FOV,
		pushBack: cfg.PushBack,
		nearZ:    cfg.NearZ,
		cx:       width / 2,
		cy:       height / 2,
		sinYaw:   math.Sin(cam.Yaw),
		cosYaw:   math.Cos(cam.Yaw),
		sinPitch: math.Sin(cam.Pitch),
		cosPitch: math.Cos(cam.Pitch),
	}
}

// Rotate applies yaw about the Y axis, then pitch about the X axis
func (p Projector) Rotate(v Vec3) Vec3 {
	x := v.X*p.cosYaw - v.Z*p.sinYaw
	z := v.Z*p.cosYaw + v.X*p.sinYaw
	y := v.Y*p.cosPitch - z*p.sinPitch
	z = z*p.cosPitch + v.Y*p.sinPitch
	return Vec3{x, y, z}
}

// Project maps v onto the surface. It reports false for points too close to
// or behind the camera; the cull runs on the rotated depth before the divide.
func (p Projector) Project(v Vec3) (Projection, bool) {
	r := p.Rotate(v)
	if r.Z <= p.nearZ {
		return Projection{}, false
	}
	denom := p.fov + p.pushBack + r.Z
	if denom <= 0 {
		return Projection{}, false
	}
	scale := p.fov / denom
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Projection{}, false
	}
	return Projection{
		X:     p.cx + r.X*scale,
		Y:     p.cy + r.Y*scale,
		Depth: r.Z,
		Scale: scale,
	}, true
}

// ItemKind tags a render item
type ItemKind uint8

const (
	ItemShell ItemKind = iota
	ItemSpark
	ItemGlyph
)

func (k ItemKind) String() string {
	switch k {
	case ItemShell:
		return "shell"
	case ItemSpark:
		return "spark"
	case ItemGlyph:
		return "glyph"
	}
	return "unknown"
}

// RenderItem is one projected entity. Shells carry Hue; particles carry
// Color, Alpha and Size.
type RenderItem struct {
	Kind ItemKind
	Projection
	Hue   float64
	Color color.RGBA
	Alpha float64
	Size  float64
}

// AppendRenderList projects every live shell and particle, appends the
// visible ones to dst, and sorts dst back-to-front. The sort is stable, so
// items at equal depth keep shells-then-particles insertion order.
func (p Projector) AppendRenderList(dst []RenderItem, st *State) []RenderItem {
	dst = slices.Grow(dst[:0], len(st.Shells)+len(st.Particles))

	for i := range st.Shells {
		sh := &st.Shells[i]
		proj, ok := p.Project(sh.Pos)
		if !ok {
			continue
		}
		dst = append(dst, RenderItem{
			Kind:       ItemShell,
			Projection: proj,
			Hue:        sh.Hue,
			Alpha:      1,
		})
	}

	for i := range st.Particles {
		pt := &st.Particles[i]
		proj, ok := p.Project(pt.Pos)
		if !ok {
			continue
		}
		kind := ItemSpark
		if pt.Kind == ParticleGlyph {
			kind = ItemGlyph
		}
		dst = append(dst, RenderItem{
			Kind:       kind,
			Projection: proj,
			Color:      pt.Color,
			Alpha:      pt.Alpha,
			Size:       pt.Size,
		})
	}

	slices.SortStableFunc(dst, func(a, b RenderItem) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return dst
}
