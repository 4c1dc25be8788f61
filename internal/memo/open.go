package memo

import (
	"fmt"
	"io"

	"memocal/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenSlot opens the slot selected by cfg. The returned closer releases the
// backend and must be called once the slot is no longer used.
func OpenSlot(cfg *config.Config) (Slot, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return db.Slot(cfg.Slot), db, nil
	case config.BackendFile, "":
		return NewFileSlot(cfg.DataDir, cfg.Slot), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
