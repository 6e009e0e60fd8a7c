package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"wbrcli/internal/app/game"
	"wbrcli/internal/pkg/errs"
	"wbrcli/internal/pkg/logx"
)

// record is the on-disk shape of a snapshot. Pointer fields detect missing keys.
type record struct {
	IsCustom   *bool   `json:"is_custom"`
	SessionKey *string `json:"session_key"`
	PrevTerm   *string `json:"prev_term"`
	PrevEmblem *string `json:"prev_emblem"`
	Score      *uint64 `json:"score"`
}

func (r record) complete() bool {
	return r.IsCustom != nil && r.SessionKey != nil && r.PrevTerm != nil && r.PrevEmblem != nil && r.Score != nil
}

// fileStore implements SaveStore on top of an afero filesystem.
type fileStore struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

func newFileStore(fs afero.Fs, path string) *fileStore {
	return &fileStore{fs: fs, path: path, logger: logx.Component("storage")}
}

// Path implements SaveStore.
func (s *fileStore) Path() string {
	return s.path
}

// Save implements SaveStore and game.Saver.
func (s *fileStore) Save(state game.SessionState) error {
	data, err := json.Marshal(record{
		IsCustom:   &state.Custom,
		SessionKey: &state.SessionKey,
		PrevTerm:   &state.PrevTerm,
		PrevEmblem: &state.PrevEmblem,
		Score:      &state.Score,
	})
	if err != nil {
		return errs.Wrap(errs.ErrSaveIO, err, s.path)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errs.Wrap(errs.ErrSaveIO, err, s.path)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return errs.Wrap(errs.ErrSaveIO, err, s.path)
	}

	s.logger.Debug().Str("path", s.path).Uint64("score", state.Score).Msg("Session saved")
	return nil
}

// LoadAndClear implements SaveStore. The file is removed before it is decoded, so a
// corrupt snapshot is reported once and never again.
func (s *fileStore) LoadAndClear() (*game.SessionState, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrSaveIO, err, s.path)
	}

	if err := s.fs.Remove(s.path); err != nil {
		return nil, errs.Wrap(errs.ErrSaveIO, err, s.path)
	}

	state, err := decode(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Discarded corrupt save file")
		return nil, errs.Wrap(errs.ErrSaveCorrupt, err, s.path)
	}

	s.logger.Debug().Str("path", s.path).Uint64("score", state.Score).Msg("Session restored")
	return state, nil
}

var errIncomplete = errors.New("missing fields")

func decode(data []byte) (*game.SessionState, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var r record
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data")
	}
	if !r.complete() {
		return nil, errIncomplete
	}

	return &game.SessionState{
		Custom:     *r.IsCustom,
		SessionKey: *r.SessionKey,
		PrevTerm:   *r.PrevTerm,
		PrevEmblem: *r.PrevEmblem,
		Score:      *r.Score,
	}, nil
}
