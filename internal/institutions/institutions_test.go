package institutions

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"campuscalendar/internal/domain"
)

func TestBuild(t *testing.T) {
	rows := [][]string{
		{"SIGLA", "NOME", "CAMPUS"},
		{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"},
		{" IFSP ", "Instituto Federal de São Paulo", " Campus Pirituba "},
		{"IFBA", "Instituto Federal da Bahia", "Campus Salvador"},
		{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"},
		{"UFX", "", "Campus Sem Nome"},
		{"curta"},
		{},
	}

	cfg, err := Build(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"IFBA - Instituto Federal da Bahia",
		"IFSP - Instituto Federal de São Paulo",
	}, cfg.ICTs)
	assert.Equal(t, []domain.Campus{
		{ID: "1", Name: "Campus São Paulo", ICTName: "IFSP - Instituto Federal de São Paulo"},
		{ID: "2", Name: "Campus Pirituba", ICTName: "IFSP - Instituto Federal de São Paulo"},
		{ID: "3", Name: "Campus Salvador", ICTName: "IFBA - Instituto Federal da Bahia"},
	}, cfg.Campi)
}

func TestBuild_HeaderOnlySkippedInFirstRow(t *testing.T) {
	cfg, err := Build([][]string{
		{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"},
		{"Sigla", "Instituto Sigla", "Campus Sigla"},
	})
	require.NoError(t, err)
	assert.Len(t, cfg.Campi, 2)
}

func TestBuild_NoRows(t *testing.T) {
	_, err := Build([][]string{{"SIGLA", "NOME", "CAMPUS"}, {"a", "b"}})
	require.ErrorIs(t, err, ErrNoRows)

	_, err = Build(nil)
	require.ErrorIs(t, err, ErrNoRows)
}

func TestReadTSV(t *testing.T) {
	in := "IFSP\tInstituto Federal de São Paulo\tCampus São Paulo\r\n" +
		"\n" +
		"IFBA\tInstituto Federal da \"Bahia\"\tCampus Salvador\textra\n"
	rows, err := ReadTSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"}, rows[0])
	assert.Equal(t, "Instituto Federal da \"Bahia\"", rows[1][1])
	assert.Len(t, rows[1], 4)
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]string{
		{"SIGLA", "NOME", "CAMPUS"},
		{"IFSP", "Instituto Federal de São Paulo", "Campus São Paulo"},
		{"IFBA", "Instituto Federal da Bahia", "Campus Salvador"},
	}
	for i, row := range data {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, data, rows)

	cfg, err := Build(rows)
	require.NoError(t, err)
	assert.Len(t, cfg.Campi, 2)
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(strings.NewReader("IFSP\tInstituto\tCampus"))
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "open workbook")
}
