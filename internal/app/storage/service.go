/*
Package storage keeps the single save slot of the game: one snapshot of an unfinished
session, written when the player exits and consumed by the next start.
*/
package storage

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"wbrcli/internal/app/game"
	"wbrcli/internal/pkg/errs"
)

// ServiceConfig holds the configuration of the save slot.
type ServiceConfig struct {
	// Fs is the filesystem the slot lives on. Nil means the OS filesystem.
	Fs afero.Fs

	// Path is the absolute location of the save file.
	Path string
}

// SaveStore defines the public interface of the save slot.
type SaveStore interface {
	// Save writes state over any existing snapshot.
	Save(state game.SessionState) error

	// LoadAndClear returns the stored snapshot and removes it, or nil when there is none.
	LoadAndClear() (*game.SessionState, error)

	// Path is the location of the save file.
	Path() string
}

// NewSaveStore is the factory function for SaveStore.
func NewSaveStore(cfg ServiceConfig) SaveStore {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return newFileStore(fs, cfg.Path)
}

// Locate returns the path of fileName inside the platform's local data directory.
func Locate(fileName string) (string, error) {
	return locateIn(xdg.DataHome, fileName)
}

func locateIn(dataHome, fileName string) (string, error) {
	if dataHome == "" {
		return "", errs.NewError(errs.ErrSaveDirNotFound)
	}
	return filepath.Join(dataHome, fileName), nil
}
