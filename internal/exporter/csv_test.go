package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdcli/internal/config"
)

func testWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	dir := t.TempDir()
	paths := config.NewPaths(config.PathsConfig{
		DataDir:    dir,
		ReportsDir: filepath.Join(dir, "reports"),
		LogsDir:    filepath.Join(dir, "logs"),
	})
	return NewCSVWriter(paths), dir
}

func TestWriteSimpleCSV(t *testing.T) {
	writer, dir := testWriter(t)

	err := writer.WriteSimpleCSV("out.csv",
		[]string{"company", "kd_pct"},
		[][]string{{"ACME", "15.15"}, {"BETA", "45.00"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "out.csv"))
	require.NoError(t, err)

	// BOM prefix for Excel, then the header line.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Contains(t, string(data), "company,kd_pct\n")
	assert.Contains(t, string(data), "ACME,15.15\n")
	assert.Contains(t, string(data), "BETA,45.00\n")
}

func TestWriteCSVTruncatesExistingFile(t *testing.T) {
	writer, dir := testWriter(t)

	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a"}, [][]string{{"1"}, {"2"}}))
	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a"}, [][]string{{"3"}}))

	data, err := os.ReadFile(filepath.Join(dir, "reports", "out.csv"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "1")
	assert.Contains(t, string(data), "3")
}

func TestWriteCSVAbsolutePathBypassesReportsDir(t *testing.T) {
	writer, dir := testWriter(t)
	target := filepath.Join(dir, "elsewhere", "out.csv")

	err := writer.WriteCSV(target, WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"1"}},
	})
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.NoError(t, err)
}

func TestWriteCSVQuotesFieldsWithCommas(t *testing.T) {
	writer, dir := testWriter(t)

	err := writer.WriteSimpleCSV("out.csv",
		[]string{"company", "observations"},
		[][]string{{"ACME", "spread not found, assumed 0"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "reports", "out.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"spread not found, assumed 0"`)
}
