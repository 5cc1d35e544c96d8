package notation

import (
	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
)

// Format renders an input in numpad notation. Format and ParseAll are inverses
// for every input the runtime interpreter produces.
func Format(in motion.Input) string {
	switch v := in.(type) {
	case motion.Idle:
		return string(v.Axis.Numpad())
	case motion.DoubleTap:
		return string([]byte{v.Axis.Numpad(), v.Axis.Numpad()})
	case motion.QuarterCircle:
		if v.Direction == motion.Forward {
			return "236" + v.Buttons.String()
		}
		return "214" + v.Buttons.String()
	case motion.DragonPunch:
		if v.Direction == motion.Forward {
			return "623" + v.Buttons.String()
		}
		return "421" + v.Buttons.String()
	case motion.SuperJump:
		return "hj" + string(v.Axis.Numpad())
	case motion.PressButton:
		return string(v.Axis.Numpad()) + v.Buttons.String()
	default:
		return ""
	}
}

// Expand returns a canonical frame sequence (oldest first) that the interpreter
// recognizes as in, holding each motion step for hold frames.
// Buttons are pressed on the final frame.
func Expand(in motion.Input, hold int) []input.Frame {
	if hold < 1 {
		hold = 1
	}

	var frames []input.Frame
	step := func(a input.Axis) {
		for i := 0; i < hold; i++ {
			frames = append(frames, input.NewFrame(a))
		}
	}
	press := func(b input.ButtonSet) {
		last := len(frames) - 1
		frames[last] = frames[last].WithButtons(b, input.JustPressed)
	}

	switch v := in.(type) {
	case motion.Idle:
		frames = append(frames, input.NewFrame(v.Axis))
	case motion.DoubleTap:
		step(v.Axis)
		step(input.Neutral)
		step(v.Axis)
	case motion.QuarterCircle:
		toward := v.Direction.Axis()
		step(input.Down)
		step(input.Down.Add(toward))
		step(toward)
		press(v.Buttons)
	case motion.DragonPunch:
		toward := v.Direction.Axis()
		step(toward)
		step(input.Down)
		step(input.Down.Add(toward))
		press(v.Buttons)
	case motion.SuperJump:
		step(input.Down)
		step(v.Axis)
	case motion.PressButton:
		frames = append(frames, input.NewFrame(v.Axis))
		press(v.Buttons)
	}

	return frames
}

// ExpandFacing is Expand with the stick mirrored when facing left, giving the
// frames a player on that side would actually input
func ExpandFacing(in motion.Input, hold int, facing motion.Facing) []input.Frame {
	frames := Expand(in, hold)
	if facing == motion.FacingLeft {
		for i := range frames {
			frames[i].Axis = frames[i].Axis.Invert()
		}
	}
	return frames
}
