package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrUnknownTarget, "looking up profile")
	assert.True(t, Is(err, ErrUnknownTarget))
	assert.False(t, Is(err, ErrParseUnavailable))
}

func TestNewUnknownTargetError(t *testing.T) {
	err := NewUnknownTargetError("klingon")
	require.Error(t, err)
	assert.True(t, IsUnknownTargetError(err))
	assert.Contains(t, err.Error(), "klingon")
}

func TestNewUnknownSourceError(t *testing.T) {
	err := NewUnknownSourceError(".xyz")
	require.Error(t, err)
	assert.True(t, Is(err, ErrUnknownSource))
	assert.Contains(t, err.Error(), ".xyz")
}

func TestIsParseUnavailableError(t *testing.T) {
	err := Wrapf(ErrParseUnavailable, "file %s", "broken.src")
	assert.True(t, IsParseUnavailableError(err))

	other := New("some other failure")
	assert.False(t, IsParseUnavailableError(other))
}

func TestWrapPreservesMessage(t *testing.T) {
	base := New("inner failure")
	wrapped := Wrap(base, "outer context")
	assert.Contains(t, wrapped.Error(), "inner failure")
	assert.Contains(t, wrapped.Error(), "outer context")
}
