package merge

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeString_ThreeWayMarkers(t *testing.T) {
	ancestor := "C"
	r := Conflicted("A", "B", &ancestor)

	assert.Equal(t,
		"<<<<< ours\nA\n||||| ancestor\nC\n=====\nB\n>>>>> theirs",
		r.MergeString(5))
}

func TestMergeString_TwoWayMarkers(t *testing.T) {
	r := Conflicted("A", "B", nil)

	assert.Equal(t,
		"<<<<<<< ours\nA\n=======\nB\n>>>>>>> theirs",
		r.MergeString(DefaultMarkerLength))
}

func TestMergeString_Resolved(t *testing.T) {
	assert.Equal(t, "12 ", Resolved("12 ").MergeString(7))
	assert.Equal(t, "3", Resolved(3).MergeString(7))
}

func TestMap_PreservesShape(t *testing.T) {
	resolved := Map(Resolved(4), strconv.Itoa)
	v, ok := resolved.Value()
	require.True(t, ok)
	assert.Equal(t, "4", v)

	ancestor := 1
	conflict := Map(Conflicted(2, 3, &ancestor), strconv.Itoa)
	c, ok := conflict.Conflict()
	require.True(t, ok)
	assert.Equal(t, "2", c.Ours)
	assert.Equal(t, "3", c.Theirs)
	require.NotNil(t, c.Ancestor)
	assert.Equal(t, "1", *c.Ancestor)

	twoWay := Map(Conflicted(2, 3, nil), strconv.Itoa)
	c, ok = twoWay.Conflict()
	require.True(t, ok)
	assert.Nil(t, c.Ancestor)
}

func TestMapConflict(t *testing.T) {
	pickTheirs := func(c Conflict[int]) Result[int] { return Resolved(c.Theirs) }

	r := Conflicted(1, 2, nil).MapConflict(pickTheirs)
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	r = Resolved(5).MapConflict(pickTheirs)
	v, _ = r.Value()
	assert.Equal(t, 5, v)
}

func TestAccessors(t *testing.T) {
	r := Resolved("x")
	assert.False(t, r.IsConflict())
	_, ok := r.Conflict()
	assert.False(t, ok)

	c := Conflicted("x", "y", nil)
	assert.True(t, c.IsConflict())
	_, ok = c.Value()
	assert.False(t, ok)
}
