package repository

import (
	"fmt"
	"testing"

	"leadership-assessment-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseQuestionSheet(t *testing.T) {
	data := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Style", "Questions"},
		{"Visionary", "I describe a compelling future."},
		{"Coach", "I help people grow."},
		{"Visionary", "I connect work to a larger purpose."},
	})

	questions, err := ParseQuestionSheet(data, DefaultSheetOptions())
	require.NoError(t, err)
	assert.Equal(t, []model.Question{
		{Style: "Visionary", Text: "I describe a compelling future."},
		{Style: "Coach", Text: "I help people grow."},
		{Style: "Visionary", Text: "I connect work to a larger purpose."},
	}, questions)
}

func TestParseQuestionSheet_EmptyOptionsUseDefaultColumns(t *testing.T) {
	data := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Style", "Questions"},
		{"Coach", "I help people grow."},
	})

	questions, err := ParseQuestionSheet(data, SheetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []model.Question{{Style: "Coach", Text: "I help people grow."}}, questions)
}

func TestParseQuestionSheet_HeaderMatchingAndExtraColumns(t *testing.T) {
	data := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"ID", " questions ", "STYLE"},
		{1, "Q one", "Pacesetting"},
		{2, "Q two", "Democratic"},
	})

	questions, err := ParseQuestionSheet(data, DefaultSheetOptions())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, model.Question{Style: "Pacesetting", Text: "Q one"}, questions[0])
	assert.Equal(t, model.Question{Style: "Democratic", Text: "Q two"}, questions[1])
}

func TestParseQuestionSheet_SkipsIncompleteRows(t *testing.T) {
	data := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Style", "Questions"},
		{"Affiliative", "I value harmony."},
		{"", "orphan question"},
		{"Coach"},
		{"  ", "  "},
		{"Coach", "  I give feedback often.  "},
	})

	questions, err := ParseQuestionSheet(data, DefaultSheetOptions())
	require.NoError(t, err)
	assert.Equal(t, []model.Question{
		{Style: "Affiliative", Text: "I value harmony."},
		{Style: "Coach", Text: "I give feedback often."},
	}, questions)
}

func TestParseQuestionSheet_NamedSheet(t *testing.T) {
	data := buildWorkbook(t, "Survey", [][]interface{}{
		{"Style", "Questions"},
		{"Commanding", "I expect immediate compliance."},
	})

	opts := DefaultSheetOptions()
	opts.Sheet = "Survey"
	questions, err := ParseQuestionSheet(data, opts)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	opts.Sheet = "Missing"
	_, err = ParseQuestionSheet(data, opts)
	assert.Error(t, err)
}

func TestParseQuestionSheet_MissingColumn(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{"no style column", [][]interface{}{{"Category", "Questions"}, {"x", "y"}}},
		{"no question column", [][]interface{}{{"Style", "Prompt"}, {"x", "y"}}},
		{"empty sheet", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildWorkbook(t, "Sheet1", tt.rows)
			_, err := ParseQuestionSheet(data, DefaultSheetOptions())
			assert.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestParseQuestionSheet_NotAWorkbook(t *testing.T) {
	_, err := ParseQuestionSheet([]byte("<html>404: Not Found</html>"), DefaultSheetOptions())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingColumn)
}

func TestParseQuestionSheet_ManyRows(t *testing.T) {
	rows := [][]interface{}{{"Style", "Questions"}}
	for i := 0; i < 40; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("Style%d", i%4), fmt.Sprintf("Question %d", i)})
	}
	questions, err := ParseQuestionSheet(buildWorkbook(t, "Sheet1", rows), DefaultSheetOptions())
	require.NoError(t, err)
	assert.Len(t, questions, 40)
}
