// Package export writes the per-day activity history as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/vocabstreak/internal/progress"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", s)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to CSV.
func FormatForPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Write writes buckets in format f.
func Write(w io.Writer, f Format, buckets []progress.DailyBucket) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, buckets)
	case FormatXLSX:
		return WriteXLSX(w, buckets)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

var header = []string{"date", "words_learned", "words_reviewed", "exercises_completed", "correct_answers", "time_spent_minutes"}

func counters(b progress.DailyBucket) []int {
	return []int{b.WordsLearned, b.WordsReviewed, b.ExercisesCompleted, b.CorrectAnswers, b.TimeSpentMinutes}
}

func totals(buckets []progress.DailyBucket) []int {
	sum := make([]int, len(header)-1)
	for _, b := range buckets {
		for i, v := range counters(b) {
			sum[i] += v
		}
	}
	return sum
}

// WriteCSV writes a header, one row per day and a totals row.
func WriteCSV(w io.Writer, buckets []progress.DailyBucket) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(header))
	for _, b := range buckets {
		row[0] = b.Date.String()
		for i, v := range counters(b) {
			row[i+1] = strconv.Itoa(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", b.Date, err)
		}
	}

	row[0] = "total"
	for i, v := range totals(buckets) {
		row[i+1] = strconv.Itoa(v)
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

const sheet = "Sheet1"

// WriteXLSX writes a workbook with a bold header row, one row per day and a
// bold totals row.
func WriteXLSX(w io.Writer, buckets []progress.DailyBucket) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, b := range buckets {
		row := []any{b.Date.String()}
		for _, v := range counters(b) {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", b.Date, err)
		}
	}

	totalRow := []any{"total"}
	for _, v := range totals(buckets) {
		totalRow = append(totalRow, v)
	}
	lastRow := len(buckets) + 2
	cell, err := excelize.CoordinatesToCellName(1, lastRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	lastTotal, err := excelize.CoordinatesToCellName(len(header), lastRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell, lastTotal, bold); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "F", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
