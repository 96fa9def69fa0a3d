package berkeleydb

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

var benchBucket = []byte("bench")

// BenchmarkPut compares single-key writes against bbolt, each write
// committed on its own.
func BenchmarkPut(b *testing.B) {
	b.Run("berkeleydb", benchPutBDB)
	b.Run("bbolt", benchPutBolt)
}

// BenchmarkGet compares point reads on a pre-populated database.
func BenchmarkGet(b *testing.B) {
	sizes := []int{1_000, 100_000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dk/berkeleydb", size/1000), func(b *testing.B) {
			benchGetBDB(b, size)
		})
		b.Run(fmt.Sprintf("%dk/bbolt", size/1000), func(b *testing.B) {
			benchGetBolt(b, size)
		})
	}
}

func benchKey(buf []byte, i int) []byte {
	binary.BigEndian.PutUint64(buf, uint64(i))
	return buf
}

func openBenchEnv(b *testing.B) (*Environment, *Db) {
	b.Helper()
	cfg := DefaultConfig()
	cfg.CacheSize = 64 << 20
	env, err := OpenEnvironment(b.TempDir(), cfg)
	if err != nil {
		b.Fatal(err)
	}
	db, err := NewDBInEnvironment(env)
	if err != nil {
		b.Fatal(err)
	}
	if err := db.Open(testFilename, "", DbBtree, DbCreate|DbAutoCommit); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() {
		db.Close()
		env.Close()
	})
	return env, db
}

func openBenchBolt(b *testing.B) *bolt.DB {
	b.Helper()
	bdb, err := bolt.Open(filepath.Join(b.TempDir(), "bench.bolt"), 0600, &bolt.Options{NoSync: true})
	if err != nil {
		b.Fatal(err)
	}
	err = bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(benchBucket)
		return err
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { bdb.Close() })
	return bdb
}

func benchPutBDB(b *testing.B) {
	env, db := openBenchEnv(b)
	key := make([]byte, 8)
	val := make([]byte, 32)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		err := env.Update(func(txn *Txn) error {
			return txn.Put(db, benchKey(key, i), val)
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func benchPutBolt(b *testing.B) {
	bdb := openBenchBolt(b)
	key := make([]byte, 8)
	val := make([]byte, 32)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		err := bdb.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(benchBucket).Put(benchKey(key, i), val)
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func benchGetBDB(b *testing.B, numKeys int) {
	env, db := openBenchEnv(b)
	key := make([]byte, 8)
	val := make([]byte, 32)

	// load in batches to stay within the default lock table size
	const batch = 1000
	for start := 0; start < numKeys; start += batch {
		err := env.Update(func(txn *Txn) error {
			for i := start; i < start+batch && i < numKeys; i++ {
				if err := txn.Put(db, benchKey(key, i), val); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := db.Get(benchKey(key, i%numKeys)); err != nil {
			b.Fatal(err)
		}
	}
}

func benchGetBolt(b *testing.B, numKeys int) {
	bdb := openBenchBolt(b)
	key := make([]byte, 8)
	val := make([]byte, 32)

	err := bdb.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(benchBucket)
		for i := 0; i < numKeys; i++ {
			// bbolt keeps references to keys until the transaction ends
			if err := bucket.Put(benchKey(make([]byte, 8), i), val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	err = bdb.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(benchBucket)
		for i := 0; i < b.N; i++ {
			if bucket.Get(benchKey(key, i%numKeys)) == nil {
				return fmt.Errorf("key %d missing", i%numKeys)
			}
		}
		return nil
	})
	if err != nil {
		b.Fatal(err)
	}
}
