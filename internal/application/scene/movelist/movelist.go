// Package movelist provides the scene listing a character's moves.
package movelist

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/fightstick/internal/application/scene"
	"github.com/younwookim/fightstick/internal/application/system"
	"github.com/younwookim/fightstick/internal/domain/notation"
)

var colorBG = color.RGBA{20, 20, 36, 255}

const lineHeight = 14

// MoveList shows the compiled move list and returns to the previous scene on TAB or ESC
type MoveList struct {
	moves   *system.MoveSelector
	back    scene.Scene
	screenW int
	screenH int
	scroll  int
}

// New creates a move list scene that returns to back
func New(moves *system.MoveSelector, back scene.Scene, screenW, screenH int) *MoveList {
	return &MoveList{
		moves:   moves,
		back:    back,
		screenW: screenW,
		screenH: screenH,
	}
}

func (m *MoveList) OnEnter() { m.scroll = 0 }

func (m *MoveList) OnExit() {}

// Update handles scrolling and leaving (implements scene.Scene)
func (m *MoveList) Update(_ int) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return m.back, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		m.Scroll(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		m.Scroll(-1)
	}
	return nil, nil
}

// Scroll moves the first visible line, clamped to the list
func (m *MoveList) Scroll(delta int) {
	m.scroll += delta
	if last := len(m.moves.Moves()) - m.visible(); m.scroll > last {
		m.scroll = last
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// Lines returns the rendered move list rows
func (m *MoveList) Lines() []string {
	moves := m.moves.Moves()
	lines := make([]string, 0, len(moves))
	for i, mv := range moves {
		key := " "
		if i < 9 {
			key = fmt.Sprint(i + 1)
		}
		lines = append(lines, fmt.Sprintf("%s %-18s %s", key, mv.Name, notation.Format(mv.Input)))
	}
	return lines
}

func (m *MoveList) visible() int {
	n := (m.screenH - 40) / lineHeight
	if n < 1 {
		n = 1
	}
	return n
}

// Draw renders the move list
func (m *MoveList) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrint(screen, m.moves.Character()+" move list")

	lines := m.Lines()
	end := m.scroll + m.visible()
	if end > len(lines) {
		end = len(lines)
	}
	y := 20
	for _, line := range lines[m.scroll:end] {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += lineHeight
	}

	ebitenutil.DebugPrintAt(screen, "TAB/ESC: Back | Up/Down: Scroll", 4, m.screenH-16)
}
