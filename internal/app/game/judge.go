package game

import (
	"context"

	"wbrcli/internal/app/api"
)

// Guesser is the part of api.Client the judges need.
type Guesser interface {
	Guess(ctx context.Context, in api.GuessRequest) (api.GuessResult, error)
	CustomGuess(ctx context.Context, in api.CustomGuessRequest) (api.GuessResult, error)
}

// NormalJudge binds judging calls to one normal-game run.
type NormalJudge struct {
	client Guesser
	gid    string
}

// NewNormalJudge creates a judge keyed by the run's correlation id.
func NewNormalJudge(client Guesser, gid string) *NormalJudge {
	return &NormalJudge{client: client, gid: gid}
}

// Judge implements Judge.
func (j *NormalJudge) Judge(ctx context.Context, guess, previous string) (TurnOutcome, error) {
	res, err := j.client.Guess(ctx, api.GuessRequest{Gid: j.gid, Guess: guess, Prev: previous})
	if err != nil {
		return TurnOutcome{}, err
	}
	return outcome(res), nil
}

// CustomJudge binds judging calls to one custom game.
type CustomJudge struct {
	client Guesser
	oid    string
}

// NewCustomJudge creates a judge keyed by the custom game's owner id.
func NewCustomJudge(client Guesser, oid string) *CustomJudge {
	return &CustomJudge{client: client, oid: oid}
}

// Judge implements Judge.
func (j *CustomJudge) Judge(ctx context.Context, guess, previous string) (TurnOutcome, error) {
	res, err := j.client.CustomGuess(ctx, api.CustomGuessRequest{Oid: j.oid, Guess: guess, Prev: previous})
	if err != nil {
		return TurnOutcome{}, err
	}
	return outcome(res), nil
}

func outcome(res api.GuessResult) TurnOutcome {
	return TurnOutcome{
		Accepted:        res.GuessWins,
		ResultEmblem:    res.GuessEmoji,
		Rationale:       res.Reason,
		PopularityCount: res.CacheCount,
	}
}
