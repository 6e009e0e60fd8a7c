package auth

import (
	"wbrcli/internal/app/user"
)

// Prompter is the terminal surface used to pick an account. *console.Console implements it.
type Prompter interface {
	Info(format string, args ...any)
	Confirm(question string, defaultYes bool) bool
	Choose(prompt string, max int) (int, error)
}

// Select lets the player pick one of candidates, or none. Duplicate sessions of the same
// account are shown once. The chosen account's cookie is attached to outgoing game calls;
// when nothing is chosen any cookie left by Discover is removed.
func (r *Resolver) Select(p Prompter, candidates []user.AuthInfo) (*user.AuthInfo, error) {
	chosen, err := choose(p, user.Unique(candidates))
	if err != nil {
		return nil, err
	}

	if chosen == nil {
		r.remote.ClearAuthCookie()
		return nil, nil
	}

	r.remote.SetAuthCookie(chosen.AuthCookie)
	r.logger.Debug().Str("user_id", chosen.UserID).Msg("Playing as signed-in account")
	return chosen, nil
}

func choose(p Prompter, candidates []user.AuthInfo) (*user.AuthInfo, error) {
	switch len(candidates) {
	case 0:
		p.Info("No logged in account found, playing anonymously.")
		return nil, nil

	case 1:
		p.Info("Found logged in account: %s", candidates[0])
		if !p.Confirm("Use this account?", true) {
			return nil, nil
		}
		return &candidates[0], nil
	}

	p.Info("Found multiple logged in accounts:")
	for i, c := range candidates {
		p.Info("[%d]: %s", i+1, c)
	}

	n, err := p.Choose("Enter account number (0 for no account): ", len(candidates))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return &candidates[n-1], nil
}
