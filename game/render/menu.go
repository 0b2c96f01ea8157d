// This file is part of Hungry Balls.
//
// Hungry Balls is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hungry Balls is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hungry Balls.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"image"

	"github.com/jetsetilly/hungryballs/game/menu"
	"github.com/jetsetilly/hungryballs/hardware/display"
)

// Prompt selects the question asked by the menu.
type Prompt int

// List of valid Prompt values.
const (
	StartPrompt Prompt = iota
	PlayAgainPrompt
)

func (p Prompt) String() string {
	if p == PlayAgainPrompt {
		return "play again"
	}
	return "start"
}

// position of the YES and NO text. the leading space leaves room for the
// highlight rectangle
const (
	optionX = 10
	yesY    = 80
	noY     = 120
	yesText = " YES"
	noText  = " NO"
)

// Highlights is the rectangle drawn around each option for each player.
// Player 1's rectangle is inside player 2's rectangle so that both can be
// seen when both players have chosen the same option. The rectangles are
// inclusive of the Max point.
var Highlights = [2][2]image.Rectangle{
	{
		menu.Yes: image.Rect(5, 76, 170, 97),
		menu.No:  image.Rect(5, 116, 170, 137),
	},
	{
		menu.Yes: image.Rect(2, 73, 173, 100),
		menu.No:  image.Rect(2, 113, 173, 140),
	},
}

// Menu draws the YES/NO prompt.
type Menu struct {
	disp   display.Display
	prompt Prompt
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu(disp display.Display) *Menu {
	return &Menu{disp: disp}
}

// Prompt returns the prompt most recently drawn by Begin().
func (m *Menu) Prompt() Prompt {
	return m.prompt
}

// Begin clears the display and draws the complete menu.
func (m *Menu) Begin(prompt Prompt, sel *menu.Menu) {
	m.prompt = prompt

	m.disp.Clear()
	m.disp.SetFont(display.Large)

	switch prompt {
	case StartPrompt:
		m.disp.DrawText(5, 10, "Do you want to", textColor)
		m.disp.DrawText(5, 35, "START the Game?", textColor)
	case PlayAgainPrompt:
		m.disp.DrawText(5, 10, "Play Again?", textColor)
	}

	m.options()
	m.highlights(sel)

	if prompt == StartPrompt {
		m.disp.SetFont(display.Medium)
		m.disp.DrawText(10, 164, "Player1 -> RED", PlayerColors[0])
		m.disp.DrawText(10, 190, "Player2 -> BLUE", PlayerColors[1])
	}
}

// Update redraws the options and highlights after the selection of either
// player has changed.
func (m *Menu) Update(sel *menu.Menu) {
	for _, p := range Highlights {
		for _, r := range p {
			m.disp.FillRectangle(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, background)
		}
	}
	m.options()
	m.highlights(sel)
}

func (m *Menu) options() {
	m.disp.SetFont(display.Large)
	m.disp.DrawText(optionX, yesY, yesText, textColor)
	m.disp.DrawText(optionX, noY, noText, textColor)
}

func (m *Menu) highlights(sel *menu.Menu) {
	for i, s := range sel.Players {
		r := Highlights[i][s.Option]
		m.disp.DrawRectangle(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, PlayerColors[i])
	}
}
