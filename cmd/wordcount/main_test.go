package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"github.com/tymbaca/localmr/mapreduce"
	"go.etcd.io/bbolt"
)

func TestWordCount(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx := context.Background()

	units := make([]string, 0, 10)
	for range 10 {
		units = append(units, gofakeit.Sentence(gofakeit.IntRange(100, 200)))
	}

	want := make(map[string]int)
	for _, unit := range units {
		for _, word := range strings.Fields(unit) {
			want[strings.ToLower(word)]++
		}
	}

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "wordcount.db"), 0o600, nil)
	require.NoError(t, err)
	defer db.Close()

	mr, err := mapreduce.New(countMap, sinkReduce(db), 20, 9, nil)
	require.NoError(t, err)

	require.NoError(t, mr.Run(ctx, units))

	got := make(map[string]int)
	err = db.View(func(tx *bbolt.Tx) error {
		buck := tx.Bucket([]byte(_resultBucket))
		require.NotNil(t, buck)

		return buck.ForEach(func(k, v []byte) error {
			count, err := strconv.Atoi(string(v))
			if err != nil {
				return err
			}
			got[string(k)] = count
			return nil
		})
	})
	require.NoError(t, err)

	require.Equal(t, want, got)
	t.Logf("stats: %s", mr.Stats())
}
