// Package store is the persistence port: an asynchronous key-value contract
// over which the tracker persists its two state blobs. The backing medium is
// irrelevant to callers.
package store

import "context"

// Logical keys. The whole date->log mapping is stored as a single blob, not
// per-date keys.
const (
	KeyProfile   = "profile"
	KeyDailyLogs = "daily_logs"
)

// Store is the get/set contract. Get reports found=false for a missing key
// rather than returning an error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
