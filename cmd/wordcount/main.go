package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/tymbaca/localmr/mapreduce"
	"github.com/tymbaca/localmr/pkg/tracer"
	"go.etcd.io/bbolt"
)

const _resultBucket = "wordcount"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if endpoint := os.Getenv("OTLP_ENDPOINT"); endpoint != "" {
		if err := tracer.Init(endpoint); err != nil {
			log.Fatal(err)
		}
	}

	db, err := bbolt.Open("wordcount.db", 0o600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	units := make([]string, 0, 10)
	for range 10 {
		units = append(units, gofakeit.Sentence(gofakeit.IntRange(10, 20)))
	}

	mr, err := mapreduce.New(countMap, sinkReduce(db), 10, 5, nil)
	if err != nil {
		log.Fatal(err)
	}

	if err := mr.Run(ctx, units); err != nil {
		log.Fatal(err)
	}

	if err := dumpCounts(db, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func countMap(_ context.Context, unit string, emit mapreduce.EmitFunc) {
	for _, word := range strings.Fields(unit) {
		emit(strings.ToLower(word), "1")
	}
}

// sinkReduce sums the counts emitted for a word and persists the
// total. Reducers run concurrently, bbolt serializes the Updates.
func sinkReduce(db *bbolt.DB) mapreduce.ReduceFunc {
	return func(_ context.Context, key string, next mapreduce.NextFunc) {
		total := 0
		for {
			val, ok := next()
			if !ok {
				break
			}

			count, err := strconv.Atoi(val)
			if err != nil {
				panic(err)
			}
			total += count
		}

		err := db.Update(func(tx *bbolt.Tx) error {
			buck, err := tx.CreateBucketIfNotExists([]byte(_resultBucket))
			if err != nil {
				return err
			}
			return buck.Put([]byte(key), []byte(strconv.Itoa(total)))
		})
		if err != nil {
			panic(err)
		}
	}
}

func dumpCounts(db *bbolt.DB, w io.Writer) error {
	return db.View(func(tx *bbolt.Tx) error {
		buck := tx.Bucket([]byte(_resultBucket))
		if buck == nil {
			return nil
		}

		return buck.ForEach(func(k, v []byte) error {
			_, err := fmt.Fprintf(w, "%s: %s\n", k, v)
			return err
		})
	})
}
