// Package recargastore persists recharge requests in an embedded BoltDB
// file. Every mutation runs inside a single Bolt update transaction, which
// makes the read-modify-write cycle atomic without any external database
// process.
package recargastore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	bolt "github.com/boltdb/bolt"

	"extinguard/internal/domain/recarga"
	"extinguard/internal/infra"
	"extinguard/internal/pkg/clock"
)

const bucketName = "recargas"

// Store wraps a BoltDB database and is the sole enforcement point for the
// recarga lifecycle rules. Ids are `SR-<unix-epoch-millis>`; two creations
// inside the same millisecond bump the counter until the key is free, so
// keys stay unique and lexicographic key order matches insertion order.
type Store struct {
	db           *bolt.DB
	clk          clock.Clock
	defaultActor string
}

func New(path string, clk clock.Clock, defaultActor string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to open recargas database", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, infra.WrapRepoErr("failed to create recargas bucket", err)
	}

	return &Store{db: db, clk: clk, defaultActor: defaultActor}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create builds a request in its initial state and persists it under a
// fresh id, which it returns.
func (s *Store) Create(_ context.Context, in recarga.NewRecargaInput) (string, error) {
	rec, err := recarga.NewRecarga(in, s.clk.Now())
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		rec.ID = nextID(b, rec.CreatedAt)

		data, err := json.Marshal(rec)
		if err != nil {
			return infra.WrapRepoErr("failed to encode recarga", err)
		}
		return b.Put([]byte(rec.ID), data)
	})
	if err != nil {
		return "", err
	}

	return rec.ID, nil
}

// ListAll returns every persisted request in insertion order. Records that
// no longer parse are skipped rather than failing the whole listing.
func (s *Store) ListAll(_ context.Context) ([]*recarga.Recarga, error) {
	items := []*recarga.Recarga{}

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		return b.ForEach(func(k, v []byte) error {
			var rec recarga.Recarga
			if err := json.Unmarshal(v, &rec); err != nil {
				slog.Warn("skipping corrupt recarga record", "id", string(k), "error", err.Error())
				return nil
			}
			items = append(items, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recargas", err)
	}

	return items, nil
}

// ListByOwner filters ListAll on an exact, case-sensitive userEmail match.
func (s *Store) ListByOwner(ctx context.Context, userEmail string) ([]*recarga.Recarga, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := []*recarga.Recarga{}
	for _, rec := range all {
		if rec.UserEmail == userEmail {
			items = append(items, rec)
		}
	}
	return items, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*recarga.Recarga, error) {
	var rec recarga.Recarga

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		v := b.Get([]byte(id))
		if v == nil {
			return infra.WrapRepoErr("recarga not found", nil, infra.KindNotFound)
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return infra.WrapRepoErr("corrupt recarga record", err, infra.KindCorruptRecord)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// UpdateStatus applies a status transition and appends the audit timeline
// entry, all inside one transaction. An empty actor is attributed to the
// configured default actor. The stored record is untouched on failure.
func (s *Store) UpdateStatus(_ context.Context, id string, newStatus recarga.Status, actor string) (*recarga.Recarga, error) {
	if actor == "" {
		actor = s.defaultActor
	}

	var rec recarga.Recarga

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		v := b.Get([]byte(id))
		if v == nil {
			return infra.WrapRepoErr("recarga not found", nil, infra.KindNotFound)
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			// A record we cannot parse is one we cannot transition;
			// discard it so it stops shadowing the id.
			slog.Warn("discarding corrupt recarga record", "id", id, "error", err.Error())
			if delErr := b.Delete([]byte(id)); delErr != nil {
				return infra.WrapRepoErr("failed to discard corrupt record", delErr)
			}
			return infra.WrapRepoErr("recarga not found", nil, infra.KindNotFound)
		}

		if err := rec.ApplyStatus(newStatus, actor, s.clk.Now()); err != nil {
			return err
		}

		data, err := json.Marshal(&rec)
		if err != nil {
			return infra.WrapRepoErr("failed to encode recarga", err)
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// Delete removes the request permanently. There is no tombstone.
func (s *Store) Delete(_ context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b.Get([]byte(id)) == nil {
			return infra.WrapRepoErr("recarga not found", nil, infra.KindNotFound)
		}
		return b.Delete([]byte(id))
	})
}

func nextID(b *bolt.Bucket, createdAt time.Time) string {
	ms := createdAt.UnixMilli()
	for {
		id := fmt.Sprintf("SR-%d", ms)
		if b.Get([]byte(id)) == nil {
			return id
		}
		ms++
	}
}
