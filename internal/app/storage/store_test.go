package storage

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrcli/internal/app/game"
	"wbrcli/internal/pkg/errs"
)

const testPath = "/data/wbr_save.json"

func newTestStore(t *testing.T) (SaveStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewSaveStore(ServiceConfig{Fs: fs, Path: testPath}), fs
}

func TestSaveThenLoadAndClear(t *testing.T) {
	states := []game.SessionState{
		{SessionKey: "6f1c0c1e-0d5b-4f43-9a57-0b0a3b8b8b8b", PrevTerm: "paper", PrevEmblem: "📄", Score: 1},
		{Custom: true, SessionKey: "owner-id", PrevTerm: "cat", PrevEmblem: "🐱", Score: 42},
		{SessionKey: "gid", PrevTerm: "rock", PrevEmblem: "🪨"},
		{SessionKey: "gid", PrevTerm: "a \"quoted\" term", PrevEmblem: "", Score: ^uint64(0)},
	}

	for _, want := range states {
		store, fs := newTestStore(t)

		require.NoError(t, store.Save(want))

		got, err := store.LoadAndClear()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)

		again, err := store.LoadAndClear()
		require.NoError(t, err)
		assert.Nil(t, again)

		exists, err := afero.Exists(fs, testPath)
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestSave_Overwrites(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(game.SessionState{SessionKey: "a", PrevTerm: "paper", PrevEmblem: "📄", Score: 1}))
	require.NoError(t, store.Save(game.SessionState{SessionKey: "b", PrevTerm: "fire", PrevEmblem: "🔥", Score: 3}))

	got, err := store.LoadAndClear()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.SessionKey)
	assert.Equal(t, uint64(3), got.Score)
}

func TestSave_FileFormat(t *testing.T) {
	store, fs := newTestStore(t)
	require.NoError(t, store.Save(game.SessionState{Custom: true, SessionKey: "o", PrevTerm: "cat", PrevEmblem: "🐱", Score: 2}))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_custom":true,"session_key":"o","prev_term":"cat","prev_emblem":"🐱","score":2}`, string(data))
}

func TestLoadAndClear_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.LoadAndClear()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadAndClear_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "this is not json"},
		{"truncated", `{"is_custom":false,"session_key":"g"`},
		{"missing field", `{"is_custom":false,"session_key":"g","prev_term":"rock","prev_emblem":"🪨"}`},
		{"unknown field", `{"is_custom":false,"session_key":"g","prev_term":"rock","prev_emblem":"🪨","score":1,"version":2}`},
		{"negative score", `{"is_custom":false,"session_key":"g","prev_term":"rock","prev_emblem":"🪨","score":-1}`},
		{"wrong type", `{"is_custom":"no","session_key":"g","prev_term":"rock","prev_emblem":"🪨","score":1}`},
		{"trailing data", `{"is_custom":false,"session_key":"g","prev_term":"rock","prev_emblem":"🪨","score":1} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fs := newTestStore(t)
			neighbour := filepath.Join(filepath.Dir(testPath), "other.json")
			require.NoError(t, afero.WriteFile(fs, neighbour, []byte("keep me"), 0o600))
			require.NoError(t, afero.WriteFile(fs, testPath, []byte(tt.body), 0o600))

			got, err := store.LoadAndClear()
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindParse))
			assert.ErrorIs(t, err, errs.NewError(errs.ErrSaveCorrupt))

			data, err := afero.ReadFile(fs, neighbour)
			require.NoError(t, err)
			assert.Equal(t, "keep me", string(data))
		})
	}
}

func TestSave_ReadOnlyFs(t *testing.T) {
	store := NewSaveStore(ServiceConfig{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), Path: testPath})

	err := store.Save(game.SessionState{SessionKey: "g"})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindIO))
	assert.Contains(t, errs.Message(err), testPath)
}

func TestLocate(t *testing.T) {
	path, err := locateIn("/home/player/.local/share", "wbr_save.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/player/.local/share", "wbr_save.json"), path)

	_, err = locateIn("", "wbr_save.json")
	assert.ErrorIs(t, err, errs.NewError(errs.ErrSaveDirNotFound))
	assert.True(t, errs.IsKind(err, errs.KindIO))

	path, err = Locate("wbr_save.json")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
}
