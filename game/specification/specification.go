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

// Package specification contains the rules of the game. Every dimension,
// speed and timing used by the game is defined here.
//
// The rules are fixed when the game is built. The Default specification is the
// one used by the game console. Tests are free to make a modified copy, for
// example with shorter dwell times.
package specification

// MaxCoins is the number of coin slots. The slots are reused in turn so there
// can never be more than this number of coins in play.
const MaxCoins = 3

// NumPlayers is the number of players of the game.
const NumPlayers = 2

// Spec defines the rules of the game.
type Spec struct {
	ID string

	// size of the play field in pixels
	ScreenWidth  int
	ScreenHeight int

	BallRadius int
	CoinRadius int

	// horizontal starting position of each ball. balls always start on the
	// ground
	BallStartX [NumPlayers]int

	// number of pixels moved per encoder edge before the speed multiplier is
	// applied
	BaseSpeed int

	// maximum horizontal movement of a ball in a single tick
	MaxMovement int

	// pixels per tick that a ball rises while the button is held and falls
	// while it is released
	JumpSpeed int
	Gravity   int

	// the y coordinate of the ground line
	GroundLevel int

	// height of the band at the top of the play field reserved for the
	// scoreboard. balls can not rise into it
	ScoreboardBand int

	// the y coordinate of the line separating the scoreboard from the play
	// field
	SeparatorLine int

	// length of a match in seconds
	MatchDuration int

	// milliseconds between coins appearing
	CoinInterval int64

	// coins appear inside this area. the minimum values are inclusive and the
	// maximum values exclusive
	CoinMinX int
	CoinMaxX int
	CoinMinY int
	CoinMaxY int

	// milliseconds between unconditional redraws of the ground line
	GroundRedrawInterval int64

	// a ball closer to the ground line than this many pixels causes the ground
	// line to be redrawn
	GroundProximity int

	// backlight brightness of the display
	Backlight uint8

	// milliseconds the game loop sleeps at the end of every iteration
	PollInterval int64

	// dwell times in milliseconds of the scripted screens
	SplashShapes  int64
	SplashWelcome int64
	GameStarts    int64
	Results       int64
	Farewell      int64

	// buzzer tones. frequencies in Hz and durations in milliseconds
	CoinTone      [NumPlayers]int
	CoinToneLen   int
	StartTone     int
	StartToneLen  int
	FinishTone    int
	FinishToneLen int

	// derived values. see init()
	MinX int
	MaxX int
	MinY int
	MaxY int
}

// Default is the specification of the game console.
var Default Spec

// Derive recalculates the derived values of the specification. Should be
// called whenever a copy of a specification is modified.
func (spec *Spec) Derive() {
	spec.MinX = spec.BallRadius
	spec.MaxX = spec.ScreenWidth - spec.BallRadius
	spec.MinY = spec.BallRadius + spec.ScoreboardBand
	spec.MaxY = spec.GroundLevel - spec.BallRadius
}

func init() {
	Default = Spec{
		ID:                   "HUNGRY BALLS",
		ScreenWidth:          176,
		ScreenHeight:         220,
		BallRadius:           10,
		CoinRadius:           4,
		BallStartX:           [NumPlayers]int{40, 136},
		BaseSpeed:            20,
		MaxMovement:          100,
		JumpSpeed:            30,
		Gravity:              30,
		GroundLevel:          200,
		ScoreboardBand:       25,
		SeparatorLine:        20,
		MatchDuration:        60,
		CoinInterval:         2500,
		CoinMinX:             20,
		CoinMaxX:             160,
		CoinMinY:             50,
		CoinMaxY:             180,
		GroundRedrawInterval: 100,
		GroundProximity:      2,
		Backlight:            200,
		PollInterval:         1,
		SplashShapes:         300,
		SplashWelcome:        1500,
		GameStarts:           500,
		Results:              3000,
		Farewell:             2000,
		CoinTone:             [NumPlayers]int{880, 660},
		CoinToneLen:          60,
		StartTone:            1320,
		StartToneLen:         200,
		FinishTone:           220,
		FinishToneLen:        600,
	}
	Default.Derive()
}
