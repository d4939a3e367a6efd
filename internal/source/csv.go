// Package source parses external log exports into entries.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"unitlog/internal/model"
)

// Result holds the outcome of parsing an export file.
type Result struct {
	Entries []model.LogEntry
	Skipped int // rows dropped for failing validation
}

// expected header columns, in order, matching the spreadsheet the log was
// originally kept in.
var header = []string{"Date", "Meal", "Category", "Food", "Units", "Notes"}

// ParseCSV reads a Date,Meal,Category,Food,Units,Notes export. Rows that
// fail validation are counted and skipped rather than aborting the import;
// one bad row must not block the rest.
func ParseCSV(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err == io.EOF {
		return Result{}, fmt.Errorf("empty file")
	}
	if err != nil {
		return Result{}, fmt.Errorf("reading header: %w", err)
	}
	if !isHeader(first) {
		return Result{}, fmt.Errorf("unexpected header %v: want %v", first, header)
	}

	var result Result
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken line is a skip, not a failure.
			result.Skipped++
			continue
		}

		entry, ok := parseRecord(record)
		if !ok {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func isHeader(record []string) bool {
	if len(record) < len(header) {
		return false
	}
	for i, want := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), want) {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (model.LogEntry, bool) {
	if len(record) < 5 {
		return model.LogEntry{}, false
	}

	units, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return model.LogEntry{}, false
	}

	notes := ""
	if len(record) > 5 {
		notes = strings.TrimSpace(record[5])
	}

	e := model.LogEntry{
		Date:     strings.TrimSpace(record[0]),
		Meal:     model.Meal(strings.TrimSpace(record[1])),
		Category: strings.TrimSpace(record[2]),
		Food:     strings.TrimSpace(record[3]),
		Units:    units,
		Notes:    notes,
	}
	if e.Validate() != nil {
		return model.LogEntry{}, false
	}
	return e, true
}
