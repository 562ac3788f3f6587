// Package source imports spending logs from external files.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"
)

// ImportResult summarizes one import run. Skipped rows are counted, not
// fatal: bank exports are messy and a bad line should never abort the
// rest of the file.
type ImportResult struct {
	Entries []model.SpendingEntry
	Skipped int
}

// ReadSpendingCSV parses a spending log export. Expected columns are
// date, amount, note; a header row is detected and dropped. Rows with an
// invalid date or unparsable amount are skipped and counted.
func ReadSpendingCSV(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("opening import file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseSpendingCSV(f, path)
}

func parseSpendingCSV(r io.Reader, name string) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result ImportResult
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed quoting etc: skip the record, keep reading.
			result.Skipped++
			continue
		}
		line++

		if len(record) < 2 {
			result.Skipped++
			continue
		}

		date := strings.TrimSpace(record[0])
		if line == 1 && !dateutil.Valid(date) {
			// Header row.
			continue
		}

		amountRaw := strings.TrimSpace(record[1])
		note := ""
		if len(record) > 2 {
			note = strings.TrimSpace(record[2])
		}

		amt, ok := money.Parse(amountRaw)
		if !dateutil.Valid(date) || !ok || amt == 0 {
			result.Skipped++
			continue
		}

		result.Entries = append(result.Entries, model.SpendingEntry{
			ID:     fmt.Sprintf("import_%s_%d", sanitize(name), line),
			Date:   date,
			Amount: amountRaw,
			Note:   note,
		})
	}

	return result, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, name)
}
