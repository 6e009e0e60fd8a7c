/*
Package apitest provides an in-process fake of the game API and its identity provider,
for tests of the packages built on top of api.Client.
*/
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"wbrcli/internal/app/api"
)

// AuthCookieName is the cookie name the fake server treats as the auth cookie.
const AuthCookieName = "sb-test-auth-token"

// GuessCall records one judging request.
type GuessCall struct {
	Gid    string
	Oid    string
	Guess  string
	Prev   string
	Cookie string
}

// Server is a fake game API. Configure its maps before use; read the recorded calls after.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	// Verdicts maps a guess to the judge's answer. Unknown guesses lose.
	Verdicts map[string]api.GuessResult
	// RemoteErrors maps a guess to an error payload returned instead of a verdict.
	RemoteErrors map[string]string
	// LikeErrors maps an owner id to an error payload returned by the like endpoint.
	LikeErrors map[string]string
	// CustomGames maps an owner id to its custom game.
	CustomGames map[string]api.CustomGame
	// Profiles maps a user id to its game profile.
	Profiles map[string]api.Profile
	// Users maps a bearer token to the identity provider's user.
	Users map[string]api.User

	guesses []GuessCall
	scores  []map[string]any
	likes   []string
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		Verdicts:     map[string]api.GuessResult{},
		RemoteErrors: map[string]string{},
		LikeErrors:   map[string]string{},
		CustomGames:  map[string]api.CustomGame{},
		Profiles:     map[string]api.Profile{},
		Users:        map[string]api.User{},
	}

	r := chi.NewRouter()
	r.Route("/api", func(a chi.Router) {
		a.Post("/vs", s.handleVs)
		a.Post("/scores", s.handleScores)
		a.Get("/users/by-username/{handle}", s.handleProfileByHandle)
		a.Get("/users/{id}/profile", s.handleProfile)
		a.Get("/users/{id}/custom", s.handleCustomGame)
		a.Post("/users/{id}/custom/like", s.handleLike)
	})
	r.Get("/auth/v1/user", s.handleWhoAmI)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

// APIBase is the base URL of the fake game API.
func (s *Server) APIBase() string {
	return s.URL + "/api/"
}

// IdentityURL is the whoami URL of the fake identity provider.
func (s *Server) IdentityURL() string {
	return s.URL + "/auth/v1/user"
}

// Config returns a client configuration pointing at the fake server.
func (s *Server) Config() api.Config {
	return api.Config{
		APIBase:        s.APIBase(),
		IdentityURL:    s.IdentityURL(),
		IdentityAPIKey: "test-api-key",
		AuthCookieName: AuthCookieName,
		UserAgent:      "wbr-cli/test",
	}
}

// Guesses returns the recorded judging requests.
func (s *Server) Guesses() []GuessCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GuessCall(nil), s.guesses...)
}

// Scores returns the recorded leaderboard submissions.
func (s *Server) Scores() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.scores...)
}

// Likes returns the owner ids of liked custom games.
func (s *Server) Likes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.likes...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func authCookie(r *http.Request) string {
	if c, err := r.Cookie(AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Server) handleVs(w http.ResponseWriter, r *http.Request) {
	var in map[string]string
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	s.mu.Lock()
	s.guesses = append(s.guesses, GuessCall{
		Gid:    in["gid"],
		Oid:    in["oid"],
		Guess:  in["guess"],
		Prev:   in["prev"],
		Cookie: authCookie(r),
	})
	remoteErr, failed := s.RemoteErrors[in["guess"]]
	verdict, known := s.Verdicts[in["guess"]]
	s.mu.Unlock()

	if failed {
		writeError(w, http.StatusOK, remoteErr)
		return
	}
	if !known {
		verdict = api.GuessResult{GuessWins: false, GuessEmoji: "❓", Reason: in["prev"] + " wins."}
	}
	writeData(w, verdict)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if cookie := authCookie(r); cookie != "" {
		in["_cookie"] = cookie
	}

	s.mu.Lock()
	s.scores = append(s.scores, in)
	s.mu.Unlock()

	writeData(w, map[string]any{})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.Profiles[chi.URLParam(r, "id")]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeData(w, p)
}

func (s *Server) handleProfileByHandle(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.Profiles {
		if strings.EqualFold(p.Username, handle) {
			writeData(w, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) handleCustomGame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	game, ok := s.CustomGames[chi.URLParam(r, "id")]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "custom game not found")
		return
	}
	writeData(w, map[string]any{"attribute_data": game})
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	if authCookie(r) == "" {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	oid := chi.URLParam(r, "id")

	s.mu.Lock()
	likeErr, failed := s.LikeErrors[oid]
	if !failed {
		s.likes = append(s.likes, oid)
	}
	s.mu.Unlock()

	if failed {
		writeError(w, http.StatusInternalServerError, likeErr)
		return
	}

	writeData(w, map[string]any{})
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("apikey") == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "No API key found in request"})
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	s.mu.Lock()
	u, ok := s.Users[token]
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"code": 401, "msg": "invalid JWT"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}
