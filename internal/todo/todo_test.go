package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveRoundTrip(t *testing.T) {
	l := New("water plants")
	before := l.Items()

	require.True(t, l.Add("buy milk"))
	assert.Equal(t, []string{"water plants", "buy milk"}, l.Items())

	require.True(t, l.Remove("buy milk"))
	assert.Equal(t, before, l.Items())
}

func TestAddIgnoresBlank(t *testing.T) {
	l := New()
	for _, text := range []string{"", " ", "\t\n"} {
		assert.False(t, l.Add(text), "blank %q", text)
	}
	assert.Zero(t, l.Len())
}

func TestAddTrimsAndRejectsDuplicates(t *testing.T) {
	l := New()
	require.True(t, l.Add("  call mom "))
	assert.False(t, l.Add("call mom"))
	assert.Equal(t, []string{"call mom"}, l.Items())
}

func TestRemoveMissing(t *testing.T) {
	l := New("a", "b")
	assert.False(t, l.Remove("c"))
	assert.False(t, l.Remove(" a"))
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestRemoveKeepsOrder(t *testing.T) {
	l := New("a", "b", "c")
	require.True(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, l.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	l := New("a")
	items := l.Items()
	items[0] = "changed"
	assert.Equal(t, []string{"a"}, l.Items())
}
