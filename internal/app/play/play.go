/*
Package play wires the pieces of one program run together: it recovers the player's
account, offers to resume a saved game, runs games until the player stops, and handles
the leaderboard and like prompts after each lost game.
*/
package play

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"wbrcli/internal/app/api"
	"wbrcli/internal/app/auth"
	"wbrcli/internal/app/game"
	"wbrcli/internal/app/storage"
	"wbrcli/internal/app/user"
	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/logx"
	"wbrcli/internal/pkg/randx"
)

// InitialsLength is the exact number of characters of anonymous leaderboard initials.
const InitialsLength = 3

// GameAPI is the part of api.Client the bootstrap flow uses.
type GameAPI interface {
	game.Guesser
	SubmitScore(ctx context.Context, in api.LeaderboardRequest) error
	SubmitScoreAuthenticated(ctx context.Context, in api.AuthenticatedLeaderboardRequest) error
	LikeCustomGame(ctx context.Context, oid string) error
	CustomGame(ctx context.Context, oid string) (api.CustomGame, error)
	ProfileByHandle(ctx context.Context, handle string) (api.Profile, error)
	HasAuthCookie() bool
}

// Identity discovers and selects the player's account. *auth.Resolver implements it.
type Identity interface {
	Discover(ctx context.Context) ([]user.AuthInfo, error)
	Select(p auth.Prompter, candidates []user.AuthInfo) (*user.AuthInfo, error)
}

// UI is the terminal surface of the whole flow. *console.Console implements it.
type UI interface {
	game.UI
	auth.Prompter
}

// Deps holds the collaborators of a Session.
type Deps struct {
	API GameAPI
	// Identity is nil when account discovery is disabled.
	Identity Identity
	Store    storage.SaveStore
	UI       UI
}

// Options are the per-run choices of the player.
type Options struct {
	// CustomHandle selects the custom game of that account instead of the normal game.
	CustomHandle string
}

// Session runs the bootstrap flow.
type Session struct {
	deps      Deps
	newGameID func() string
	logger    zerolog.Logger
}

// New creates a Session.
func New(deps Deps) *Session {
	return &Session{
		deps:      deps,
		newGameID: randx.GameID,
		logger:    logx.Component("play"),
	}
}

// Run plays games until the player declines to play again.
// It returns game.ErrExitRequested when the player left mid-game.
func (s *Session) Run(ctx context.Context, opts Options) error {
	account, err := s.login(ctx)
	if err != nil {
		return err
	}

	mode, resume, err := s.start(ctx, opts)
	if err != nil {
		return err
	}

	for {
		if mode.Custom {
			s.deps.UI.Info("Playing custom game %q", mode.Title)
		}

		orch := game.NewOrchestrator(s.judge(mode), s.deps.Store, s.deps.UI)
		result, err := orch.Run(ctx, mode, resume)
		if err != nil {
			return err
		}
		resume = nil

		if err := s.afterGame(ctx, mode, account, result); err != nil {
			return err
		}

		if !s.deps.UI.Confirm("Play again?", false) {
			return nil
		}
		if !mode.Custom {
			mode = game.NormalMode(s.newGameID())
			s.logger.Debug().Str("gid", mode.SessionKey).Msg("Restarting normal game")
		}
	}
}

// login returns the chosen account, or nil to play anonymously.
func (s *Session) login(ctx context.Context) (*user.AuthInfo, error) {
	if s.deps.Identity == nil {
		return nil, nil
	}

	candidates, err := s.deps.Identity.Discover(ctx)
	if err != nil {
		s.deps.UI.Error("Could not look for logged in accounts:", err)
		candidates = nil
	}

	return s.deps.Identity.Select(s.deps.UI, candidates)
}

// start decides the first game: a resumed snapshot, a custom game or a new normal game.
func (s *Session) start(ctx context.Context, opts Options) (game.Mode, *game.SessionState, error) {
	saved, err := s.deps.Store.LoadAndClear()
	if err != nil {
		return game.Mode{}, nil, err
	}

	if saved != nil {
		s.deps.UI.Info("Found saved game with %d correct guesses (last term: %s %s).", saved.Score, saved.PrevTerm, saved.PrevEmblem)
		if s.deps.UI.Confirm("Resume saved game?", true) {
			mode, err := s.resumeMode(ctx, saved)
			if err != nil {
				return game.Mode{}, nil, err
			}
			return mode, saved, nil
		}
		s.logger.Debug().Msg("Saved game discarded")
	}

	if opts.CustomHandle != "" {
		profile, err := s.deps.API.ProfileByHandle(ctx, opts.CustomHandle)
		if err != nil {
			return game.Mode{}, nil, err
		}
		mode, err := s.customMode(ctx, profile.ID)
		return mode, nil, err
	}

	return game.NormalMode(s.newGameID()), nil, nil
}

func (s *Session) resumeMode(ctx context.Context, saved *game.SessionState) (game.Mode, error) {
	if saved.Custom {
		return s.customMode(ctx, saved.SessionKey)
	}
	if !randx.IsValidGameID(saved.SessionKey) {
		return game.Mode{}, errs.NewError(errs.ErrSaveCorrupt, s.deps.Store.Path())
	}
	return game.NormalMode(saved.SessionKey), nil
}

func (s *Session) customMode(ctx context.Context, ownerID string) (game.Mode, error) {
	g, err := s.deps.API.CustomGame(ctx, ownerID)
	if err != nil {
		return game.Mode{}, err
	}
	return game.CustomMode(ownerID, g), nil
}

func (s *Session) judge(mode game.Mode) game.Judge {
	if mode.Custom {
		return game.NewCustomJudge(s.deps.API, mode.SessionKey)
	}
	return game.NewNormalJudge(s.deps.API, mode.SessionKey)
}

// afterGame offers the leaderboard for normal games and the like button for custom ones.
// Remote failures are shown and do not end the run.
func (s *Session) afterGame(ctx context.Context, mode game.Mode, account *user.AuthInfo, result game.GameResult) error {
	if mode.Custom {
		// Likes are attributed through the session cookie alone.
		if account == nil || !s.deps.API.HasAuthCookie() || !s.deps.UI.Confirm("Like this custom game?", false) {
			return nil
		}
		if err := s.deps.API.LikeCustomGame(ctx, mode.SessionKey); err != nil {
			s.deps.UI.Error("Could not like the game:", err)
			return nil
		}
		s.deps.UI.Success("Liked %q!", mode.Title)
		return nil
	}

	if !s.deps.UI.Confirm("Would you like to submit to the leaderboard?", false) {
		return nil
	}

	var err error
	if account != nil {
		err = s.deps.API.SubmitScoreAuthenticated(ctx, api.AuthenticatedLeaderboardRequest{
			Gid:   mode.SessionKey,
			Score: result.Score,
			Text:  result.LeaderboardText(),
		})
	} else {
		initials, askErr := s.askInitials()
		if askErr != nil {
			return askErr
		}
		err = s.deps.API.SubmitScore(ctx, api.LeaderboardRequest{
			Gid:      mode.SessionKey,
			Initials: initials,
			Score:    result.Score,
			Text:     result.LeaderboardText(),
		})
	}

	if err != nil {
		s.deps.UI.Error("Could not submit score:", err)
		return nil
	}
	s.deps.UI.Success("Score submitted!")
	return nil
}

func (s *Session) askInitials() (string, error) {
	for {
		initials, err := s.deps.UI.Ask("Enter leaderboard initials (3 characters): ")
		if err != nil {
			return "", err
		}
		initials = norm.NFC.String(initials)
		if utf8.RuneCountInString(initials) == InitialsLength {
			return initials, nil
		}
		s.deps.UI.Failure("%s", errs.Message(errs.NewError(errs.ErrInvalidInitials)))
	}
}
