package game

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=ports.go -destination=ports_mock.go -package=game

import "context"

// Judge decides whether guess beats previous. A returned error never ends the game.
type Judge interface {
	Judge(ctx context.Context, guess, previous string) (TurnOutcome, error)
}

// Saver persists a snapshot of an unfinished session.
type Saver interface {
	Save(state SessionState) error
}
