package capture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AK301382/maser/internal/apperrors"
)

func TestFinalizeRequiresTwoPoints(t *testing.T) {
	tr := NewTracker()

	_, err := tr.Finalize()
	require.True(t, apperrors.IsValidation(err))

	require.NoError(t, tr.Add(35.70, 51.40))
	_, err = tr.Finalize()
	require.True(t, apperrors.IsValidation(err))

	require.NoError(t, tr.Add(35.71, 51.41))
	coords, err := tr.Finalize()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{35.70, 51.40}, {35.71, 51.41}}, coords)
}

func TestResetAlwaysEmpties(t *testing.T) {
	tr := NewTracker()
	tr.Reset()
	require.Zero(t, tr.Len())

	for i := 0; i < 5; i++ {
		require.NoError(t, tr.Add(35.0+float64(i)*0.01, 51.0))
	}
	require.Equal(t, 5, tr.Len())

	tr.Reset()
	require.Zero(t, tr.Len())
	_, err := tr.Finalize()
	require.True(t, apperrors.IsValidation(err))
}

func TestAddRejectsOutOfRange(t *testing.T) {
	tr := NewTracker()
	require.Error(t, tr.Add(91.0, 51.0))
	require.Error(t, tr.Add(35.0, 181.0))
	require.Zero(t, tr.Len())
}

func TestPointsReturnsCopy(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Add(35.70, 51.40))
	require.NoError(t, tr.Add(35.71, 51.41))

	pts := tr.Points()
	pts[0][0] = 0

	again := tr.Points()
	require.Equal(t, 35.70, again[0][0])
}

func TestLength(t *testing.T) {
	tr := NewTracker()
	require.Zero(t, tr.Length())
	require.NoError(t, tr.Add(35.0, 51.0))
	require.NoError(t, tr.Add(36.0, 51.0))
	require.InDelta(t, 111195, tr.Length(), 200)
}
