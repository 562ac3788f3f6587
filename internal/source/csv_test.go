package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spending.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSpendingCSV(t *testing.T) {
	path := writeImportFile(t, `date,amount,note
2024-01-05,12.50,Lunch
2024-01-06,"2,900.50",Car repair
2024-01-07,40,
`)

	result, err := ReadSpendingCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if result.Skipped != 0 {
		t.Errorf("skipped = %d, want 0", result.Skipped)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("entries = %d, want 3: %+v", len(result.Entries), result.Entries)
	}

	first := result.Entries[0]
	if first.Date != "2024-01-05" || first.Amount != "12.50" || first.Note != "Lunch" {
		t.Errorf("first entry: %+v", first)
	}
	if result.Entries[1].Amount != "2,900.50" {
		t.Errorf("grouped amount kept raw: %+v", result.Entries[1])
	}
	if result.Entries[2].Note != "" {
		t.Errorf("missing note column: %+v", result.Entries[2])
	}
}

func TestReadSpendingCSVSkipsMalformedRows(t *testing.T) {
	path := writeImportFile(t, `2024-01-05,12.50,No header here
not-a-date,10,Bad date
2024-01-06,abc,Bad amount
2024-01-07,0,Zero amount
onlyonefield
2024-01-08,15,Good
`)

	result, err := ReadSpendingCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("entries = %d, want 2: %+v", len(result.Entries), result.Entries)
	}
	if result.Entries[0].Date != "2024-01-05" || result.Entries[1].Date != "2024-01-08" {
		t.Errorf("kept rows: %+v", result.Entries)
	}
	if result.Skipped != 4 {
		t.Errorf("skipped = %d, want 4", result.Skipped)
	}
}

func TestReadSpendingCSVMissingFile(t *testing.T) {
	if _, err := ReadSpendingCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("missing file should error")
	}
}

func TestReadSpendingCSVUniqueIDs(t *testing.T) {
	path := writeImportFile(t, `2024-01-05,10,A
2024-01-05,10,B
`)
	result, err := ReadSpendingCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("entries = %d", len(result.Entries))
	}
	if result.Entries[0].ID == result.Entries[1].ID {
		t.Errorf("duplicate ids: %q", result.Entries[0].ID)
	}
}
