package historical

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

func TestTickSource_Replay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.bin")

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	records := []BinaryTick{
		{TimeStamp: start.UnixNano(), Bid: 1.0999, Ask: 1.1001, BidVolume: 10, AskVolume: 12},
		{TimeStamp: start.Add(time.Second).UnixNano(), Bid: 1.1000, Ask: 1.1002, BidVolume: 7, AskVolume: 9},
		{TimeStamp: start.Add(2 * time.Second).UnixNano(), Bid: 1.1001, Ask: 1.1003, BidVolume: 5, AskVolume: 4},
	}
	writeTicks(t, path, records)

	src := NewTickSource("EURUSD", path)
	require.NoError(t, src.Open())
	defer src.Close()

	for i, rec := range records {
		tick, err := src.GetNext()
		require.NoError(t, err, "record %d", i)
		assert.Equal(t, "EURUSD", tick.Symbol)
		assert.Equal(t, tickSourceComponentName, tick.Source)
		assert.Equal(t, time.Unix(0, rec.TimeStamp).UTC(), tick.TimeStamp)
		assert.Equal(t, fixed.FromFloat64(rec.Ask), tick.Ask)
		assert.Equal(t, fixed.FromFloat64(rec.Bid), tick.Bid)
	}

	_, err := src.GetNext()
	assert.ErrorIs(t, err, ErrEof)
}

func TestTickSource_OpenMissingFile(t *testing.T) {
	src := NewTickSource("EURUSD", filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, src.Open())
}

func TestSource_TruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))

	src := NewTickSource("EURUSD", path)
	assert.Error(t, src.Open())
}

func writeTicks(t *testing.T, path string, records []BinaryTick) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	for _, rec := range records {
		require.NoError(t, binary.Write(f, binary.LittleEndian, rec))
	}
}
