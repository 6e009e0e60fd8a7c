package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"wbrcli/internal/app/console"
	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/logx"
)

// ExitCommand is the guess that ends a run without judging it.
const ExitCommand = "EXIT"

// ErrExitRequested is returned by Run when the player typed ExitCommand.
// The caller is expected to end the process with a success status.
var ErrExitRequested = errors.New("game: exit requested")

// UI is the terminal surface the orchestrator talks to. *console.Console implements it.
type UI interface {
	Ask(prompt string) (string, error)
	Confirm(question string, defaultYes bool) bool
	Info(format string, args ...any)
	Success(format string, args ...any)
	Failure(format string, args ...any)
	Error(label string, err error)
}

// Orchestrator drives the turn loop of one game.
type Orchestrator struct {
	judge  Judge
	saver  Saver
	ui     UI
	logger zerolog.Logger
}

// NewOrchestrator creates an orchestrator. saver receives the snapshot when the player
// exits and chooses to save.
func NewOrchestrator(judge Judge, saver Saver, ui UI) *Orchestrator {
	return &Orchestrator{
		judge:  judge,
		saver:  saver,
		ui:     ui,
		logger: logx.Component("game"),
	}
}

// Run plays turns until a guess is rejected, and returns the result of the lost game.
// A non-nil resume continues a saved session instead of starting from mode's start term.
//
// Judge failures are shown and the same turn is asked again. Typing ExitCommand offers
// to save and then returns ErrExitRequested, or the save failure.
func (o *Orchestrator) Run(ctx context.Context, mode Mode, resume *SessionState) (GameResult, error) {
	state := SessionState{
		Custom:     mode.Custom,
		SessionKey: mode.SessionKey,
		PrevTerm:   mode.StartTerm,
		PrevEmblem: mode.StartEmblem,
	}
	if resume != nil {
		state.PrevTerm = resume.PrevTerm
		state.PrevEmblem = resume.PrevEmblem
		state.Score = resume.Score
	}

	o.logger.Debug().
		Bool("custom", state.Custom).
		Str("session_key", state.SessionKey).
		Uint64("score", state.Score).
		Msg("Game started")

	for {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}

		guess, err := o.ui.Ask(o.prompt(mode, state))
		if err != nil {
			return GameResult{}, err
		}

		if guess == ExitCommand {
			return GameResult{}, o.exit(state)
		}
		if guess == "" {
			o.ui.Failure("%s", errs.Message(errs.NewError(errs.ErrEmptyGuess)))
			continue
		}

		outcome, err := o.judge.Judge(ctx, guess, state.PrevTerm)
		if err != nil {
			o.logger.Warn().Err(err).Str("guess", guess).Msg("Judging failed, retrying turn")
			o.ui.Error("API error:", err)
			continue
		}

		if !outcome.Accepted {
			o.ui.Failure("%s %s %s %s %s!", guess, outcome.ResultEmblem, mode.LossPhrase, state.PrevTerm, state.PrevEmblem)
			o.ui.Failure("%s", outcome.Rationale)
			o.ui.Info("You made %d correct guesses", state.Score)
			return GameResult{
				Score:      state.Score,
				Guess:      guess,
				Emblem:     outcome.ResultEmblem,
				PrevTerm:   state.PrevTerm,
				PrevEmblem: state.PrevEmblem,
			}, nil
		}

		o.ui.Success("%s %s %s %s %s!", guess, outcome.ResultEmblem, mode.WinPhrase, state.PrevTerm, state.PrevEmblem)
		o.ui.Success("%s", outcome.Rationale)
		if mode.ShowPopularity {
			if outcome.PopularityCount != nil {
				o.ui.Success("%d others guessed this too!", *outcome.PopularityCount)
			} else {
				o.ui.Success("You're the first person to guess this!")
			}
		}

		state.Score++
		state.PrevTerm = guess
		state.PrevEmblem = outcome.ResultEmblem
	}
}

func (o *Orchestrator) prompt(mode Mode, state SessionState) string {
	return fmt.Sprintf("What %s %s %s? ", mode.WinPhrase, console.Bold(state.PrevTerm), console.Bold(state.PrevEmblem))
}

func (o *Orchestrator) exit(state SessionState) error {
	if !o.ui.Confirm("Save game?", false) {
		o.logger.Debug().Msg("Exit without saving")
		return ErrExitRequested
	}

	if err := o.saver.Save(state); err != nil {
		return err
	}
	o.ui.Info("Game saved. Run again to continue with %d correct guesses.", state.Score)
	return ErrExitRequested
}
