package memo

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteSlot_ReadWrite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "memocal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	slot := db.Slot("memo")
	if _, err := slot.Read(); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	if err := slot.Write([]byte(`{"2024-03-15":"one"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := slot.Write([]byte(`{"2024-03-15":"two"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, err := slot.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"2024-03-15":"two"}` {
		t.Errorf("expected overwritten value, got %s", data)
	}

	if _, err := db.Slot("other").Read(); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("expected other slot to be empty, got %v", err)
	}
}

func TestSQLiteSlot_StoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memocal.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := Load(db.Slot("memo")).Set(db.Slot("memo"), day(2024, 3, 15), "meeting"); err != nil {
		t.Fatalf("set: %v", err)
	}
	db.Close()

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	if got := Load(db.Slot("memo")).Get(day(2024, 3, 15)); got != "meeting" {
		t.Errorf("expected 'meeting', got %q", got)
	}
}
