// Package boltdb provides the review persistence layer.
//
// BoltDB is an embedded key/value store. All reviews live as a single JSON
// array under one fixed key, which matches how the review list is consumed:
// always read whole, always written whole with the newest review first.
package boltdb

import (
	"context"
	"encoding/json"
	"time"

	bolt "github.com/boltdb/bolt"

	"equiprent-backend/internal/domain"
)

const (
	bucketName = "feedback"
	reviewsKey = "construction_reviews"
)

// ReviewStore wraps a BoltDB database holding the ordered review list.
type ReviewStore struct {
	db *bolt.DB
}

// NewReviewStore opens (or creates) a BoltDB database at the given path and
// ensures the feedback bucket exists.
func NewReviewStore(path string) (*ReviewStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ReviewStore{db: db}, nil
}

// Close releases the database file lock.
func (s *ReviewStore) Close() error {
	return s.db.Close()
}

// List returns all stored reviews, newest first.
func (s *ReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		v := b.Get([]byte(reviewsKey))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &reviews)
	})
	if err != nil {
		return nil, err
	}

	// Return an empty slice rather than nil so the JSON encoder emits []
	// instead of null.
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// Prepend stores the review at the front of the persisted list. The list is
// append-only from the caller's point of view: existing entries are never
// mutated or trimmed.
func (s *ReviewStore) Prepend(ctx context.Context, review *domain.Review) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		var reviews []domain.Review
		if v := b.Get([]byte(reviewsKey)); v != nil {
			if err := json.Unmarshal(v, &reviews); err != nil {
				return err
			}
		}

		reviews = append([]domain.Review{*review}, reviews...)

		data, err := json.Marshal(reviews)
		if err != nil {
			return err
		}
		return b.Put([]byte(reviewsKey), data)
	})
}
