package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 14, Offset: 42}
	assert.Equal(t, "line 3, column 14", p.String())
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{}.IsValid(), "the zero Position means no location recorded")
}

func TestSpanContains(t *testing.T) {
	s := Span{
		Start: Position{Line: 1, Column: 5, Offset: 4},
		End:   Position{Line: 1, Column: 10, Offset: 9},
	}
	assert.False(t, s.Contains(3))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(9), "the end offset is exclusive")
}

func TestSpanIsValid(t *testing.T) {
	valid := Position{Line: 1, Column: 1}
	assert.True(t, Span{Start: valid, End: valid}.IsValid())
	assert.False(t, Span{Start: valid}.IsValid())
	assert.False(t, Span{}.IsValid())
}
