package itembank

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"psymetric/internal/domain"
)

func TestLoadFileRoundTrip(t *testing.T) {
	b := Default()
	var all []domain.AssessmentItem
	for _, inst := range []domain.Instrument{domain.InstrumentTrait, domain.InstrumentType, domain.InstrumentStyle} {
		items, _ := b.Items(inst)
		all = append(all, items...)
	}

	data, err := json.Marshal(bankFile{Version: "file-v1", Items: all})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Version() != "file-v1" {
		t.Fatalf("version = %q, want file-v1", loaded.Version())
	}
	items, err := loaded.Items(domain.InstrumentTrait)
	if err != nil || len(items) != 50 {
		t.Fatalf("trait items = %d (%v), want 50", len(items), err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
