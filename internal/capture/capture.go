package capture

import (
	"github.com/AK301382/maser/internal/apperrors"
	"github.com/AK301382/maser/internal/geo"
)

// Tracker accumulates map clicks while the user is in drawing mode. It does
// no I/O; the finalized sequence is what gets handed to the submission call.
// Not safe for concurrent use; a drawing session belongs to one goroutine.
type Tracker struct {
	points [][]float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Add appends one clicked coordinate. Out-of-range points are rejected and
// the sequence is left unchanged.
func (t *Tracker) Add(lat, lng float64) error {
	if err := geo.ValidatePoint(lat, lng); err != nil {
		return err
	}
	t.points = append(t.points, []float64{lat, lng})
	return nil
}

// Reset drops everything drawn so far. Valid at any time before submission.
func (t *Tracker) Reset() {
	t.points = nil
}

// Len returns the number of captured points.
func (t *Tracker) Len() int {
	return len(t.points)
}

// Points returns a copy of the captured sequence.
func (t *Tracker) Points() [][]float64 {
	out := make([][]float64, len(t.points))
	for i, p := range t.points {
		out[i] = []float64{p[0], p[1]}
	}
	return out
}

// Length returns the drawn path length in meters.
func (t *Tracker) Length() float64 {
	return geo.PathLength(t.points)
}

// Finalize gates advancing to the descriptive form: fewer than 2 points is a
// validation failure and nothing is submitted.
func (t *Tracker) Finalize() ([][]float64, error) {
	if len(t.points) < 2 {
		return nil, apperrors.NewValidation("coordinates", "draw at least 2 points before continuing")
	}
	return t.Points(), nil
}
