package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaxonomyMatching(t *testing.T) {
	val := NewValidation("name", "too short")
	notFound := &NotFoundError{Kind: "road", ID: 3}
	invalid := &InvalidStateError{Kind: "road", ID: 3, Status: "approved"}
	side := &SideEffectError{Op: "road approved", Err: errors.New("notify failed")}

	require.True(t, IsValidation(val))
	require.False(t, IsValidation(notFound))

	require.True(t, IsNotFound(notFound))
	require.False(t, IsNotFound(invalid))

	require.True(t, IsInvalidState(invalid))
	require.False(t, IsInvalidState(side))

	require.True(t, IsSideEffect(side))
	require.False(t, IsSideEffect(val))
}

func TestMatchingThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("approve failed: %w", &InvalidStateError{Kind: "poi", ID: 9, Status: "rejected"})
	require.True(t, IsInvalidState(wrapped))

	side := &SideEffectError{Op: "road approved", Err: errors.New("boom")}
	require.EqualError(t, errors.Unwrap(side), "boom")
}

func TestMessages(t *testing.T) {
	require.Equal(t, "validation failed on name: too short", NewValidation("name", "too short").Error())
	require.Equal(t, "validation failed: bad input", NewValidation("", "bad input").Error())
	require.Equal(t, "road 3 not found", (&NotFoundError{Kind: "road", ID: 3}).Error())
	require.Equal(t, "road 3 already approved", (&InvalidStateError{Kind: "road", ID: 3, Status: "approved"}).Error())
}
