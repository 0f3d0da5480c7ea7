package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qepting91/reddit-wiper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppendsNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.ndjson")
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	j, err := OpenJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(domain.DeleteRecord{ID: "t1_a", Round: 1, Outcome: domain.OutcomeDeleted, At: at}))
	require.NoError(t, j.Close())

	// reopening appends
	j, err = OpenJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(domain.DeleteRecord{ID: "t1_b", Round: 2, Outcome: domain.OutcomeError, Error: "boom", At: at}))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []domain.DeleteRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec domain.DeleteRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		got = append(got, rec)
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, []domain.DeleteRecord{
		{ID: "t1_a", Round: 1, Outcome: domain.OutcomeDeleted, At: at},
		{ID: "t1_b", Round: 2, Outcome: domain.OutcomeError, Error: "boom", At: at},
	}, got)
}

func TestJournalOmitsEmptyError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.ndjson")
	j, err := OpenJournal(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(domain.DeleteRecord{ID: "t1_a", Outcome: domain.OutcomeFailed}))
	require.NoError(t, j.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"error"`)
}
