package mirror

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "callback_results.json"))
}

func TestAppendTreatsMissingFileAsEmpty(t *testing.T) {
	l := newTestLog(t)

	err := l.Append(Entry{ReceivedAt: "2026-01-02T03:04:05Z", CustomerID: "CUST_1", ScanID: "SCN_1"})
	require.NoError(t, err)

	entries, err := l.read()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CUST_1", entries[0].CustomerID)
}

func TestAppendAccumulatesInOrder(t *testing.T) {
	l := newTestLog(t)

	for i := 0; i < 3; i++ {
		err := l.Append(Entry{CustomerID: "CUST_1", ScanID: fmt.Sprintf("SCN_%d", i)})
		require.NoError(t, err)
	}

	entries, err := l.read()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("SCN_%d", i), entry.ScanID)
	}
}

func TestAppendWritesPrettyPrintedArray(t *testing.T) {
	l := newTestLog(t)

	require.NoError(t, l.Append(Entry{
		CustomerID: "CUST_1",
		ScanID:     "SCN_1",
		Data:       map[string]any{"heartRate": 75},
	}))

	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n"))

	var entries []Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, float64(75), entries[0].Data["heartRate"])
}

func TestAppendRejectsCorruptFile(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, os.WriteFile(l.path, []byte("not json"), 0o644))

	err := l.Append(Entry{CustomerID: "CUST_1", ScanID: "SCN_1"})
	assert.Error(t, err)
}

func TestConcurrentAppendLosesNothing(t *testing.T) {
	l := newTestLog(t)

	const writers = 25
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = l.Append(Entry{CustomerID: "CUST_1", ScanID: fmt.Sprintf("SCN_%d", i)})
		}(i)
	}
	wg.Wait()

	entries, err := l.read()
	require.NoError(t, err)
	require.Len(t, entries, writers)

	seen := make(map[string]bool, writers)
	for _, entry := range entries {
		seen[entry.ScanID] = true
	}
	assert.Len(t, seen, writers)
}
