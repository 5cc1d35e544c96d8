package motion

import (
	c "github.com/younwookim/fightstick/internal/domain/combinator"
	"github.com/younwookim/fightstick/internal/domain/input"
)

// Recognizer parses a motion input from the newest end of a frame buffer
type Recognizer = c.Parser[Input]

func axisIs(a input.Axis) func(input.Frame) bool {
	return func(f input.Frame) bool { return f.Axis == a }
}

func axisMatches(a input.Axis) func(input.Frame) bool {
	return func(f input.Frame) bool { return f.Axis.MatchesCardinal(a) }
}

func anyFrame(input.Frame) bool { return true }

func frameAxis(f input.Frame) input.Axis { return f.Axis }

// hold consumes a run of frames whose axis is exactly a
func hold(a input.Axis, minN, motionSize int) c.Parser[[]input.Frame] {
	return c.TakeWhileMN(minN, motionSize, axisIs(a))
}

// currentAxis reads the newest axis without consuming it
func currentAxis() c.Parser[input.Axis] {
	return c.Peek(c.Map(c.Next(), frameAxis))
}

// IdleRecognizer reports the newest frame's axis
func IdleRecognizer() Recognizer {
	return c.Map(c.Next(), func(f input.Frame) Input { return Idle{Axis: f.Axis} })
}

// DoubleTapRecognizer matches a cardinal direction held, released, and held again.
// The gap may contain any axis that does not carry the tapped direction.
func DoubleTapRecognizer(motionSize int) Recognizer {
	start := c.Verify(currentAxis(), input.Axis.IsCardinal)
	return c.FlatMap(start, func(a input.Axis) Recognizer {
		gap := c.TakeWhileMN(1, motionSize, func(f input.Frame) bool { return !f.Axis.MatchesCardinal(a) })
		return c.Value(Input(DoubleTap{Axis: a}), c.Seq3(
			hold(a, 1, motionSize),
			gap,
			hold(a, 1, motionSize),
		))
	})
}

// DragonPunchRecognizer matches 623 (or 421) with the extended approach variants.
// The forward branch is tried first.
func DragonPunchRecognizer(buttons input.ButtonSet, motionSize int) Recognizer {
	branch := func(d Direction) Recognizer {
		toward := d.Axis()
		upToward := input.Up.Add(toward)
		downToward := input.Down.Add(toward)
		return c.Value(Input(DragonPunch{Direction: d, Buttons: buttons}), c.Seq2(
			c.Seq3(
				hold(upToward, 0, motionSize),
				hold(toward, 0, motionSize),
				hold(downToward, 1, motionSize),
			),
			c.Seq3(
				hold(input.Down, 1, motionSize),
				hold(downToward, 0, motionSize),
				hold(toward, 1, motionSize),
			),
		))
	}
	return c.Alt(branch(Forward), branch(Backward))
}

// QuarterCircleRecognizer matches 236 (or 214), optionally rolled up into 9 (or 7).
// The forward branch is tried first.
func QuarterCircleRecognizer(buttons input.ButtonSet, motionSize int) Recognizer {
	branch := func(d Direction) Recognizer {
		toward := d.Axis()
		return c.Value(Input(QuarterCircle{Direction: d, Buttons: buttons}), c.Seq4(
			hold(input.Up.Add(toward), 0, motionSize),
			hold(toward, 1, motionSize),
			hold(input.Down.Add(toward), 1, motionSize),
			hold(input.Down, 1, motionSize),
		))
	}
	return c.Alt(branch(Forward), branch(Backward))
}

// SuperJumpRecognizer matches a down to up motion, reporting the up axis it ends on.
// Frames carrying neither up nor down may separate the two runs.
func SuperJumpRecognizer(motionSize int) Recognizer {
	start := c.Verify(currentAxis(), func(a input.Axis) bool { return a.MatchesCardinal(input.Up) })
	coast := func(f input.Frame) bool {
		return !f.Axis.MatchesCardinal(input.Up) && !f.Axis.MatchesCardinal(input.Down)
	}
	return c.FlatMap(start, func(a input.Axis) Recognizer {
		return c.Value(Input(SuperJump{Axis: a}), c.Seq3(
			c.TakeWhileMN(1, motionSize, axisMatches(input.Up)),
			c.TakeWhileMN(0, motionSize, coast),
			c.TakeWhileMN(1, motionSize, axisMatches(input.Down)),
		))
	})
}

// ButtonsRecognizer peeks the buttons pressed on the newest frame, merged with
// presses on the gracePeriod-1 frames before it. Panics if gracePeriod is zero.
func ButtonsRecognizer(gracePeriod int) c.Parser[input.ButtonSet] {
	if gracePeriod < 1 {
		panic("motion: grace period must be at least 1")
	}
	return c.Peek(c.Map(c.TakeWhileMN(1, gracePeriod, anyFrame), func(window []input.Frame) input.ButtonSet {
		var s input.ButtonSet
		for _, f := range window {
			s = s.Union(f.JustPressed())
		}
		return s
	}))
}

// PressRecognizer pairs buttons with the newest frame's axis
func PressRecognizer(buttons input.ButtonSet) Recognizer {
	return c.Map(currentAxis(), func(a input.Axis) Input {
		return PressButton{Buttons: buttons, Axis: a}
	})
}
