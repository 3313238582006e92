package game

import (
	"fmt"

	"github.com/vovakirdan/garden-defense/internal/core"
)

// Display characters.
const (
	GardenerChar     = '@'
	SquirrelChar     = 's'
	SquirrelLoadChar = 'S'
	RaccoonChar      = 'r'
	RaccoonLoadChar  = 'R'
	DropletChar      = '·'
	TapChar          = 'T'
)

// hudHeight is the number of rows above the field.
const hudHeight = 1

// Render draws the session into dst: a status line and the fenced field
// scaled to the remaining cells.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < hudHeight+3 {
		return
	}

	water := "ON"
	if !s.tap.DisplayOn() {
		water = "OFF"
	}
	hud := fmt.Sprintf(" Score: %d  Round: %d  Time: %d  Veggies: %d  Water: %s ",
		s.score, s.round, s.timer.TimeLeft(), s.veg.Left(), water)
	dst.DrawText(0, 0, hud, core.ColorHUD)

	box := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	dst.DrawBox(box, core.ColorBorder)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	tapColor := core.ColorWater
	if !s.tap.DisplayOn() {
		tapColor = core.ColorTapOff
	}
	s.plot(dst, inner, s.tap.Pos, TapChar, tapColor)

	for _, v := range s.reg.Vegetables() {
		switch v.Status {
		case StatusInPlay:
			s.plot(dst, inner, v.Pos, v.Variety.Glyph(), core.ColorVegetable)
		case StatusCarried:
			s.plot(dst, inner, v.Pos, v.Variety.Glyph(), core.ColorCarried)
		}
	}

	for _, d := range s.reg.Droplets() {
		s.plot(dst, inner, d.Pos, DropletChar, core.ColorWater)
	}

	for _, a := range s.reg.Animals() {
		glyph, color := animalGlyph(a)
		s.plot(dst, inner, a.Pos, glyph, color)
	}

	s.plot(dst, inner, s.gardener.Pos, GardenerChar, core.ColorGardener)

	switch {
	case s.orch.phase == PhaseGameOver:
		s.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.score))
	case s.paused:
		s.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !s.gameStarted:
		s.drawCenteredMessage(dst, "GARDEN DEFENSE", "Press R to start")
	}
}

func animalGlyph(a *Animal) (rune, core.Color) {
	if a.Kind == KindRaccoon {
		if a.HasCargo() {
			return RaccoonLoadChar, core.ColorRaccoon
		}
		return RaccoonChar, core.ColorRaccoon
	}
	if a.HasCargo() {
		return SquirrelLoadChar, core.ColorSquirrel
	}
	return SquirrelChar, core.ColorSquirrel
}

// plot maps a world position into the field rectangle. Anything outside the
// field is not drawn.
func (s *Session) plot(dst *core.Screen, area core.Rect, pos core.Vec, r rune, c core.Color) {
	if !s.field.Contains(pos) || area.W <= 0 || area.H <= 0 {
		return
	}
	x := area.X + core.Clamp(int(pos.X/s.field.Width()*float64(area.W)), 0, area.W-1)
	y := area.Y + core.Clamp(int(pos.Y/s.field.Height()*float64(area.H)), 0, area.H-1)
	dst.SetColored(x, y, r, c)
}

func (s *Session) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, " "+title+" ", core.ColorMessage)
	dst.DrawTextCentered(y+1, " "+subtitle+" ", core.ColorHUD)
}
