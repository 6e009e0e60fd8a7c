/*
Package game contains the data model of one play session and the SessionOrchestrator,
the turn-by-turn state machine that drives guesses against a remote judge.
*/
package game

import (
	"fmt"

	"wbrcli/internal/app/api"
)

// SessionState is a resumable snapshot of one in-progress game.
type SessionState struct {
	// Custom is true for a custom game, false for the normal game.
	Custom bool

	// SessionKey is the normal game's correlation id, or the custom game's owner id.
	SessionKey string

	// PrevTerm is the term the next guess has to beat.
	PrevTerm string

	// PrevEmblem is the decorative string shown next to PrevTerm.
	PrevEmblem string

	// Score counts consecutive correct guesses.
	Score uint64
}

// TurnOutcome is the judge's answer to one guess.
type TurnOutcome struct {
	Accepted     bool
	ResultEmblem string
	Rationale    string
	// PopularityCount is how many other players made the same guess; nil means "first to guess".
	PopularityCount *uint64
}

// GameResult summarizes a lost game.
type GameResult struct {
	Score      uint64
	Guess      string
	Emblem     string
	PrevTerm   string
	PrevEmblem string
}

// LeaderboardText renders the result the way the leaderboard displays it.
func (r GameResult) LeaderboardText() string {
	return fmt.Sprintf("%s %s did not beat %s %s", r.Guess, r.Emblem, r.PrevTerm, r.PrevEmblem)
}

// Mode carries the per-mode parameters of a run. They change display text and one
// boolean, never the state machine.
type Mode struct {
	// Custom selects custom-mode persistence and display.
	Custom bool

	// SessionKey is sent with every judging call.
	SessionKey string

	// Title names the game in the opening line; empty for the normal game.
	Title string

	// StartTerm and StartEmblem seed a fresh run.
	StartTerm   string
	StartEmblem string

	// WinPhrase and LossPhrase complete "<guess> <phrase> <prev>".
	WinPhrase  string
	LossPhrase string

	// ShowPopularity displays how many others made the same accepted guess.
	ShowPopularity bool
}

// Normal game defaults.
const (
	NormalStartTerm   = "rock"
	NormalStartEmblem = "🪨"
)

// NormalMode returns the parameters of the canonical shared game.
func NormalMode(gid string) Mode {
	return Mode{
		SessionKey:     gid,
		StartTerm:      NormalStartTerm,
		StartEmblem:    NormalStartEmblem,
		WinPhrase:      "beats",
		LossPhrase:     "does not beat",
		ShowPopularity: true,
	}
}

// CustomMode returns the parameters of the user-authored game g owned by ownerID.
func CustomMode(ownerID string, g api.CustomGame) Mode {
	return Mode{
		Custom:      true,
		SessionKey:  ownerID,
		Title:       g.Title,
		StartTerm:   g.StartWord,
		StartEmblem: g.StartEmoji,
		WinPhrase:   g.JudgingCriteria,
		LossPhrase:  g.JudgingCriteriaLoss,
	}
}
