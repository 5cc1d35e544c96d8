package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFrame_ButtonLifecycle(t *testing.T) {
	a := NewButtonSet(ButtonA)

	f1 := NextFrame(Frame{}, RawState{Right: true, Buttons: a})
	assert.Equal(t, Right, f1.Axis)
	assert.Equal(t, JustPressed, f1.Buttons[ButtonA])
	assert.Equal(t, a, f1.JustPressed())

	f2 := NextFrame(f1, RawState{Buttons: a})
	assert.Equal(t, Neutral, f2.Axis)
	assert.Equal(t, Pressed, f2.Buttons[ButtonA])
	assert.True(t, f2.JustPressed().IsEmpty())
	assert.Equal(t, a, f2.Held())

	f3 := NextFrame(f2, RawState{})
	assert.Equal(t, JustReleased, f3.Buttons[ButtonA])
	assert.True(t, f3.Held().IsEmpty())

	f4 := NextFrame(f3, RawState{})
	assert.Equal(t, Released, f4.Buttons[ButtonA])
}

func TestRawFromFrame(t *testing.T) {
	f := NewFrame(DownLeft).WithButtons(NewButtonSet(ButtonC), Pressed)
	raw := RawFromFrame(f)

	assert.Equal(t, RawState{Down: true, Left: true, Buttons: NewButtonSet(ButtonC)}, raw)
	assert.Equal(t, DownLeft, NextFrame(Frame{}, raw).Axis)
}

func TestHistory_PushEvictsOldest(t *testing.T) {
	h := NewHistory(3)

	h.Push(RawState{Left: true})
	h.Push(RawState{Down: true})
	h.Push(RawState{Right: true})
	h.Push(RawState{Up: true})

	frames := h.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, Down, frames[0].Axis)
	assert.Equal(t, Right, frames[1].Axis)
	assert.Equal(t, Up, frames[2].Axis)

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, Up, latest.Axis)
	assert.Equal(t, 3, h.Capacity())
}

func TestHistory_FramesIsCopy(t *testing.T) {
	h := NewHistory(2)
	h.Push(RawState{Left: true})

	frames := h.Frames()
	frames[0].Axis = Up

	assert.Equal(t, Left, h.Frames()[0].Axis)
}

func TestHistory_TracksLifecycleAcrossPushes(t *testing.T) {
	h := NewHistory(4)
	b := NewButtonSet(ButtonB)

	assert.Equal(t, JustPressed, h.Push(RawState{Buttons: b}).Buttons[ButtonB])
	assert.Equal(t, Pressed, h.Push(RawState{Buttons: b}).Buttons[ButtonB])

	h.Reset()
	assert.Equal(t, 0, h.Len())
	_, ok := h.Latest()
	assert.False(t, ok)
	assert.Equal(t, JustPressed, h.Push(RawState{Buttons: b}).Buttons[ButtonB])
}

func TestNewHistory_ClampsCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(RawState{})
	h.Push(RawState{})
	assert.Equal(t, 1, h.Len())
}
