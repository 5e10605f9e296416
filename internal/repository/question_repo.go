package repository

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"leadership-assessment-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

var ErrMissingColumn = errors.New("questionnaire sheet is missing a required column")

type SheetOptions struct {
	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet          string
	StyleColumn    string
	QuestionColumn string
}

func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		StyleColumn:    "Style",
		QuestionColumn: "Questions",
	}
}

// ParseQuestionSheet reads an .xlsx workbook and returns one Question per data
// row. The first row is the header; rows missing a style or question are skipped.
// Empty column names fall back to DefaultSheetOptions.
func ParseQuestionSheet(data []byte, opts SheetOptions) ([]model.Question, error) {
	def := DefaultSheetOptions()
	if opts.StyleColumn == "" {
		opts.StyleColumn = def.StyleColumn
	}
	if opts.QuestionColumn == "" {
		opts.QuestionColumn = def.QuestionColumn
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open questionnaire workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("questionnaire workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMissingColumn, sheet)
	}

	styleCol := findColumn(rows[0], opts.StyleColumn)
	if styleCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.StyleColumn)
	}
	questionCol := findColumn(rows[0], opts.QuestionColumn)
	if questionCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.QuestionColumn)
	}

	var questions []model.Question
	for _, row := range rows[1:] {
		style := cellAt(row, styleCol)
		text := cellAt(row, questionCol)
		if style == "" || text == "" {
			continue
		}
		questions = append(questions, model.Question{Style: style, Text: text})
	}
	return questions, nil
}

func findColumn(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// GetRows trims trailing empty cells, so short rows are common.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
