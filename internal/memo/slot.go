package memo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been stored yet
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a single named storage location holding the serialized store
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

const tmpSuffix = ".tmp"

// FileSlot stores the slot as a JSON file on disk
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot backed by <dir>/<name>.json
func NewFileSlot(dir, name string) *FileSlot {
	return &FileSlot{Path: filepath.Join(dir, name+".json")}
}

// Read returns the file contents, or ErrSlotEmpty if the file does not exist
func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

// Write replaces the file contents through a temp file and rename
func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp := s.Path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
