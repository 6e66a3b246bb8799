package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLogRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestLogContactWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	svc := NewUsageLogServiceAt(dir)

	svc.LogContact(ContactLogRecord{UserRole: "agent", Email: "a@example.com", ClientIP: "10.0.0.1"})
	svc.LogContact(ContactLogRecord{UserRole: "homeowner", Email: "b@example.com", ClientIP: "10.0.0.2"})

	path := filepath.Join(dir, contactLogFile)
	rows := readLogRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, contactLogHeader, rows[0])
	assert.Equal(t, "agent", rows[1][1])
	assert.Equal(t, "homeowner", rows[2][1])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), "Timestamp,UserRole,ReferralSource"))
}

func TestLogPromptQuotesAwkwardUserText(t *testing.T) {
	dir := t.TempDir()
	svc := NewUsageLogServiceAt(dir)

	extra := `add a "blue, velvet" sofa` + "\nand a lamp"
	svc.LogPrompt(PromptLogRecord{
		RoomType:         "Living room",
		FurnitureStyle:   "modern",
		AdditionalPrompt: extra,
		RemoveFurniture:  true,
		UserRole:         "agent",
		ClientIP:         "10.0.0.3",
	})

	rows := readLogRows(t, filepath.Join(dir, promptLogFile))
	require.Len(t, rows, 2)
	assert.Equal(t, promptLogHeader, rows[0])
	assert.Equal(t, "Living room", rows[1][1])
	assert.Equal(t, extra, rows[1][3])
	assert.Equal(t, "true", rows[1][4])
	assert.Equal(t, "", rows[1][6])
	assert.NotEmpty(t, rows[1][0])
}

func TestUsageLogServiceAtPinsDirectory(t *testing.T) {
	dir := t.TempDir()
	svc := NewUsageLogServiceAt(dir)

	assert.Equal(t, dir, svc.Dir())
}
