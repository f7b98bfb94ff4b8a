package store_test

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nathalie1962/recenseur-backend/internal/store"
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

func TestJSONLSink_Append(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.jsonl")
	sink := store.NewJSONLSink(path)

	listings := []domain.Listing{
		{Titre: "Maison à rénover", Ville: "Dreux", Prix: float64(120000)},
		{Titre: "Plateau brut", Ville: "Sens"},
	}

	n, err := sink.Append(context.Background(), listings)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := readLines(t, path)
	require.Len(t, lines, 2)

	var first domain.Listing
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Maison à rénover", first.Titre)
	assert.Equal(t, "Dreux", first.Ville)
}

func TestJSONLSink_AppendAccumulates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.jsonl")
	sink := store.NewJSONLSink(path)

	for i := 0; i < 3; i++ {
		_, err := sink.Append(context.Background(), []domain.Listing{{Titre: "x"}})
		require.NoError(t, err)
	}

	assert.Len(t, readLines(t, path), 3)
}

func TestJSONLSink_EmptyBatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.jsonl")
	sink := store.NewJSONLSink(path)

	n, err := sink.Append(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	// An empty batch must not create the file.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestJSONLSink_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.jsonl")
	sink := store.NewJSONLSink(path)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := sink.Append(context.Background(), []domain.Listing{
					{Titre: "concurrent", Ville: "Paris"},
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	lines := readLines(t, path)
	require.Len(t, lines, writers*perWriter)

	// Every line must be a complete, parseable record.
	for _, line := range lines {
		var l domain.Listing
		require.NoError(t, json.Unmarshal([]byte(line), &l))
		assert.Equal(t, "concurrent", l.Titre)
	}
}

func TestJSONLSink_CanceledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listings.jsonl")
	sink := store.NewJSONLSink(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.Append(ctx, []domain.Listing{{Titre: "x"}})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial write on canceled context")
}

func TestJSONLSink_Ping(t *testing.T) {
	t.Parallel()

	sink := store.NewJSONLSink(filepath.Join(t.TempDir(), "listings.jsonl"))
	assert.NoError(t, sink.Ping(context.Background()))

	missing := store.NewJSONLSink("/nonexistent-dir-recenseur/listings.jsonl")
	assert.Error(t, missing.Ping(context.Background()))
}

func TestMemorySink(t *testing.T) {
	t.Parallel()

	sink := store.NewMemorySink()
	n, err := sink.Append(context.Background(), []domain.Listing{{Titre: "a"}, {Titre: "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, sink.Records(), 2)

	sink.FailWith(assert.AnError)
	_, err = sink.Append(context.Background(), []domain.Listing{{Titre: "c"}})
	require.Error(t, err)
	assert.Len(t, sink.Records(), 2, "failed append leaves no partial state")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}
