package api

// GuessRequest is the judging request of a normal game.
type GuessRequest struct {
	Gid   string `json:"gid"`
	Guess string `json:"guess"`
	Prev  string `json:"prev"`
}

// CustomGuessRequest is the judging request of a custom game, keyed by the owner id.
type CustomGuessRequest struct {
	Oid   string `json:"oid"`
	Guess string `json:"guess"`
	Prev  string `json:"prev"`
}

// GuessResult is the judge's verdict on one guess.
type GuessResult struct {
	GuessWins  bool   `json:"guess_wins"`
	GuessEmoji string `json:"guess_emoji"`
	Reason     string `json:"reason"`
	// CacheCount is how many other players made the same guess; nil for a first guess.
	CacheCount *uint64 `json:"cache_count"`
}

// verdict is the wire shape of GuessResult. Pointer fields detect missing keys.
type verdict struct {
	GuessWins  *bool   `json:"guess_wins"`
	GuessEmoji *string `json:"guess_emoji"`
	Reason     *string `json:"reason"`
	CacheCount *uint64 `json:"cache_count"`
}

func (v verdict) result() (GuessResult, bool) {
	if v.GuessWins == nil || v.GuessEmoji == nil || v.Reason == nil {
		return GuessResult{}, false
	}
	return GuessResult{
		GuessWins:  *v.GuessWins,
		GuessEmoji: *v.GuessEmoji,
		Reason:     *v.Reason,
		CacheCount: v.CacheCount,
	}, true
}

// LeaderboardRequest submits an anonymous score under three initials.
type LeaderboardRequest struct {
	Gid      string `json:"gid"`
	Initials string `json:"initials"`
	Score    uint64 `json:"score"`
	Text     string `json:"text"`
}

// AuthenticatedLeaderboardRequest submits a score under the logged-in account.
type AuthenticatedLeaderboardRequest struct {
	Gid   string `json:"gid"`
	Score uint64 `json:"score"`
	Text  string `json:"text"`
}

// CustomGame describes a user-authored game variant.
type CustomGame struct {
	Title               string `json:"title"`
	StartWord           string `json:"startWord"`
	StartEmoji          string `json:"startEmoji"`
	JudgingCriteria     string `json:"judgingCriteria"`
	JudgingCriteriaLoss string `json:"judgingCriteriaLoss"`
}

type customGameData struct {
	AttributeData CustomGame `json:"attribute_data"`
}

// Profile is a game account as seen by the game API.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// User is the identity provider's answer to a whoami call.
type User struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
