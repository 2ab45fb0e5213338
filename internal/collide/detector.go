package collide

import (
	"math"

	"github.com/partix-sim/partix/internal/vec"
)

// degenerateDistance is the center separation below which two spheres no
// longer define a contact direction.
const degenerateDistance = 1e-9

// fallbackNormal is reported when geometry degenerates to a point; an
// arbitrary fixed axis keeps the resolver NaN-free.
var fallbackNormal = vec.New(1, 0, 0)

// narrowFn tests one ordered shape pair. The produced contact has A set to
// the first argument and its normal oriented from B toward A.
type narrowFn func(a, b *Shape) (Contact, bool)

type pairKey struct {
	a, b Kind
}

// narrowPhase maps a kind pair to its test. Each pairwise algorithm exists
// exactly once; Detect swaps arguments for the mirrored pair instead of
// duplicating the entry.
var narrowPhase = map[pairKey]narrowFn{
	{KindSphere, KindSphere}: sphereSphere,
	{KindSphere, KindPlane}:  spherePlane,
}

// Detector enumerates every unordered shape pair once per pass and runs
// the narrow-phase test selected by the pair of shape kinds.
type Detector struct {
	shapes   []*Shape
	contacts []Contact
}

func NewDetector() *Detector {
	return &Detector{}
}

func (d *Detector) Add(s *Shape) { d.shapes = append(d.shapes, s) }

// Remove drops a shape from the pass. It is a no-op for unknown shapes.
func (d *Detector) Remove(s *Shape) {
	for i, existing := range d.shapes {
		if existing == s {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			return
		}
	}
}

func (d *Detector) Shapes() []*Shape { return d.shapes }

// Detect returns the contacts for the current shape positions. The slice
// is reused between passes; callers must consume it before the next call.
func (d *Detector) Detect() []Contact {
	d.contacts = d.contacts[:0]

	for i := 0; i < len(d.shapes); i++ {
		for j := i + 1; j < len(d.shapes); j++ {
			a, b := d.shapes[i], d.shapes[j]

			fn, ok := narrowPhase[pairKey{a.Kind, b.Kind}]
			if !ok {
				// Mirrored pair: same algorithm, swapped arguments.
				fn, ok = narrowPhase[pairKey{b.Kind, a.Kind}]
				if !ok {
					continue
				}
				a, b = b, a
			}

			if c, hit := fn(a, b); hit {
				d.contacts = append(d.contacts, c)
			}
		}
	}

	return d.contacts
}

func sphereSphere(a, b *Shape) (Contact, bool) {
	mid := a.Center().Sub(b.Center())
	sum := a.Radius + b.Radius

	// Squared-distance early out; the sqrt happens at most once per pair
	// and only for actual contacts.
	distSq := mid.LenSq()
	if distSq >= sum*sum {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)

	normal := fallbackNormal
	if dist > degenerateDistance {
		normal = mid.Scale(1 / dist)
	}

	return Contact{
		A:           a,
		B:           b,
		Normal:      normal,
		Penetration: sum - dist,
	}, true
}

func spherePlane(sphere, plane *Shape) (Contact, bool) {
	dist := plane.Normal.Dot(sphere.Center()) - plane.Offset
	pen := sphere.Radius - dist
	if pen <= 0 {
		return Contact{}, false
	}

	return Contact{
		A:           sphere,
		B:           plane,
		Normal:      plane.Normal,
		Penetration: pen,
	}, true
}
