// Package training provides the input training scene.
//
// The scene samples the stick and buttons every tick (from the keyboard,
// a replay file or a scripted demo), runs the motion interpreter over the
// frame history and shows which moves of the loaded move list came out.
package training

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/fightstick/internal/application/replay"
	"github.com/younwookim/fightstick/internal/application/scene"
	"github.com/younwookim/fightstick/internal/application/scene/movelist"
	"github.com/younwookim/fightstick/internal/application/state"
	"github.com/younwookim/fightstick/internal/application/system"
	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/domain/notation"
	"github.com/younwookim/fightstick/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorGrid    = color.RGBA{60, 60, 80, 255}
	colorStick   = color.RGBA{100, 200, 100, 255}
	colorPressed = color.RGBA{255, 215, 0, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

const (
	maxMoveLog  = 8
	historyShow = 24
	defaultHold = 2
)

// demoKeys start a demo of the matching move list entry
var demoKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Options configures where the scene takes its input from
type Options struct {
	RecordPath string             // Record fed frames to this file, empty to disable
	Replay     *replay.ReplayData // Play this replay before going live
	Facing     motion.Facing
	DemoHold   int // Frames per motion step in demos
}

// MoveLogEntry is a move that came out on a frame
type MoveLogEntry struct {
	Frame int
	Move  string
	Input motion.Input
}

// Training is the input training scene
type Training struct {
	inputSystem *system.InputSystem
	moves       *system.MoveSelector
	mode        state.Mode
	resume      state.Mode // Mode to return to after a demo
	unpause     state.Mode
	facing      motion.Facing
	screenW     int
	screenH     int

	// Per-frame results
	inputs   []motion.Input
	intent   system.Intent
	lastMove string
	moveLog  []MoveLogEntry

	// Input sources
	replayer *replay.Replayer
	demo     []input.RawState
	demoHold int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Training scene
func New(cfg *config.AppConfig, opts Options) (*Training, error) {
	inputSystem, err := system.NewInputSystem(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to create input system: %w", err)
	}
	moves, err := system.NewMoveSelector(cfg.MoveList)
	if err != nil {
		return nil, fmt.Errorf("failed to compile move list: %w", err)
	}

	t := &Training{
		inputSystem:    inputSystem,
		moves:          moves,
		mode:           state.ModeLive,
		resume:         state.ModeLive,
		unpause:        state.ModeLive,
		facing:         opts.Facing,
		screenW:        cfg.Input.Display.ScreenWidth,
		screenH:        cfg.Input.Display.ScreenHeight,
		demoHold:       opts.DemoHold,
		recordFilename: opts.RecordPath,
	}
	if t.demoHold < 1 {
		t.demoHold = defaultHold
	}

	if opts.Replay != nil {
		t.replayer = replay.NewReplayer(*opts.Replay)
		if opts.Replay.FacingLeft {
			t.facing = motion.FacingLeft
		}
		t.mode = state.ModeReplay
		log.Printf("Replaying %d frames (character: %s)", len(opts.Replay.Frames), opts.Replay.Character)
	}

	if t.recordFilename != "" {
		t.recorder = replay.NewRecorder(moves.Character(), t.facing == motion.FacingLeft)
		log.Printf("Recording enabled: %s", t.recordFilename)
	}

	return t, nil
}

// OnEnter implements scene.Scene
func (t *Training) OnEnter() {}

// OnExit implements scene.Scene
func (t *Training) OnExit() {}

// Update proceeds the scene by one tick (implements scene.Scene)
func (t *Training) Update(frame int) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		t.TogglePause()
	}
	if t.mode == state.ModePaused {
		return nil, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return movelist.New(t.moves, t, t.screenW, t.screenH), nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		t.FlipFacing()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		t.Clear()
	}
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		t.SaveRecording()
	}
	for i, k := range demoKeys {
		if inpututil.IsKeyJustPressed(k) && i < len(t.moves.Moves()) {
			t.StartDemo(t.moves.Moves()[i].Input)
		}
	}

	t.tick(frame)
	return nil, nil
}

// tick feeds one frame from the current source
func (t *Training) tick(frame int) {
	if !t.mode.Feeds() {
		return
	}
	t.Step(frame, t.nextRaw())
}

// nextRaw reads the current source, falling back to live input once it runs out
func (t *Training) nextRaw() input.RawState {
	switch t.mode {
	case state.ModeReplay:
		if raw, ok := t.replayer.GetInput(); ok {
			return raw
		}
		log.Printf("Replay finished (%d frames)", t.replayer.TotalFrames())
		t.mode = state.ModeLive
	case state.ModeDemo:
		if len(t.demo) > 0 {
			raw := t.demo[0]
			t.demo = t.demo[1:]
			return raw
		}
		t.mode = t.resume
		return t.nextRaw()
	}
	return t.inputSystem.GetInput()
}

// Step records and interprets one frame of raw input
func (t *Training) Step(frame int, raw input.RawState) system.Intent {
	if t.recorder != nil {
		t.recorder.RecordFrame(raw)
	}

	t.inputs = t.inputSystem.Update(raw, t.facing)
	t.intent = t.moves.Decide(frame, t.inputs)

	mi, ok := t.intent.(system.MoveIntent)
	if !ok {
		t.lastMove = ""
		return t.intent
	}
	if t.fresh(mi) {
		t.logMove(MoveLogEntry{Frame: frame, Move: mi.Move, Input: mi.Input})
	}
	t.lastMove = mi.Move
	return t.intent
}

// fresh reports whether the move came out on this frame rather than being
// carried over by the input buffer. Button moves come out on a press,
// motion-only moves when they first match.
func (t *Training) fresh(mi system.MoveIntent) bool {
	switch mi.Input.(type) {
	case motion.QuarterCircle, motion.DragonPunch, motion.PressButton:
		f, ok := t.inputSystem.History().Latest()
		return ok && !f.JustPressed().IsEmpty()
	default:
		return mi.Move != t.lastMove
	}
}

func (t *Training) logMove(e MoveLogEntry) {
	log.Printf("frame %d: %s (%s)", e.Frame, e.Move, notation.Format(e.Input))
	t.moveLog = append(t.moveLog, e)
	if len(t.moveLog) > maxMoveLog {
		t.moveLog = t.moveLog[len(t.moveLog)-maxMoveLog:]
	}
}

// StartDemo queues the canonical frames of in, mirrored for the current facing
func (t *Training) StartDemo(in motion.Input) {
	switch t.mode {
	case state.ModeLive, state.ModeReplay:
		t.resume = t.mode
	}
	t.demo = DemoInputs(in, t.demoHold, t.facing)
	t.inputSystem.Reset()
	t.mode = state.ModeDemo
	log.Printf("Demo: %s", notation.Format(in))
}

// DemoInputs converts a facing-relative input into raw stick states, ending with a release
func DemoInputs(in motion.Input, hold int, facing motion.Facing) []input.RawState {
	frames := notation.ExpandFacing(in, hold, facing)
	raws := make([]input.RawState, 0, len(frames)+1)
	for _, f := range frames {
		raws = append(raws, input.RawFromFrame(f))
	}
	return append(raws, input.RawState{})
}

// TogglePause pauses or resumes input feeding
func (t *Training) TogglePause() {
	if t.mode == state.ModePaused {
		t.mode = t.unpause
		return
	}
	t.unpause = t.mode
	t.mode = state.ModePaused
}

// FlipFacing switches the side the character faces
func (t *Training) FlipFacing() {
	if t.facing == motion.FacingLeft {
		t.facing = motion.FacingRight
	} else {
		t.facing = motion.FacingLeft
	}
}

// Clear drops the frame history and the move log
func (t *Training) Clear() {
	t.inputSystem.Reset()
	t.inputs = nil
	t.intent = nil
	t.lastMove = ""
	t.moveLog = nil
}

// SaveRecording saves the current recording to file
func (t *Training) SaveRecording() {
	if t.recorder == nil {
		return
	}

	filename := t.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := t.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, t.recorder.FrameCount())
	}
}

// Mode returns where the scene currently takes input from
func (t *Training) Mode() state.Mode {
	return t.mode
}

// Facing returns the current facing
func (t *Training) Facing() motion.Facing {
	return t.facing
}

// Inputs returns the inputs recognized on the last fed frame
func (t *Training) Inputs() []motion.Input {
	return t.inputs
}

// MoveLog returns the most recent moves, oldest first
func (t *Training) MoveLog() []MoveLogEntry {
	return t.moveLog
}

// Draw renders the training screen
func (t *Training) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	t.drawStick(screen, 16, 40)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s | Facing %s | %s", t.mode, t.facing, t.moves.Character()))
	ebitenutil.DebugPrintAt(screen, "History: "+t.historyLine(), 80, 40)
	ebitenutil.DebugPrintAt(screen, "Inputs:  "+t.inputsLine(), 80, 56)

	y := 90
	for i := len(t.moveLog) - 1; i >= 0; i-- {
		e := t.moveLog[i]
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-16s %s", e.Frame, e.Move, notation.Format(e.Input)), 16, y)
		y += 14
	}

	ebitenutil.DebugPrintAt(screen, "ESC: Pause | TAB: Moves | F2: Flip | 1-9: Demo | BS: Clear", 4, t.screenH-16)

	if t.mode == state.ModePaused {
		ebitenutil.DrawRect(screen, 0, 0, float64(t.screenW), float64(t.screenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", t.screenW/2-50, t.screenH/2-20)
	}
}

// drawStick draws the numpad grid with the current stick position
func (t *Training) drawStick(screen *ebiten.Image, x, y float64) {
	const cell = 14.0
	current := input.Neutral
	var pressed bool
	if f, ok := t.inputSystem.History().Latest(); ok {
		current = f.Axis
		pressed = !f.Held().IsEmpty()
	}

	for digit := byte('1'); digit <= '9'; digit++ {
		a, _ := input.AxisFromNumpad(digit)
		i := int(digit - '1')
		cx := x + float64(i%3)*cell
		cy := y + float64(2-i/3)*cell
		c := colorGrid
		if a == current {
			c = colorStick
			if pressed {
				c = colorPressed
			}
		}
		ebitenutil.DrawRect(screen, cx, cy, cell-2, cell-2, c)
	}
}

// historyLine renders the newest frames as numpad digits, newest last
func (t *Training) historyLine() string {
	frames := t.inputSystem.History().Frames()
	if len(frames) > historyShow {
		frames = frames[len(frames)-historyShow:]
	}
	var sb strings.Builder
	for _, f := range frames {
		sb.WriteByte(f.Axis.Numpad())
		if b := f.JustPressed(); !b.IsEmpty() {
			sb.WriteString(b.String())
		}
	}
	return sb.String()
}

func (t *Training) inputsLine() string {
	parts := make([]string, 0, len(t.inputs))
	for _, in := range t.inputs {
		parts = append(parts, notation.Format(in))
	}
	return strings.Join(parts, " ")
}
