package models

// SequenceCounter is one durable counter document, keyed by prefix and period
// (YYYYMM). Incremented atomically, never scanned.
type SequenceCounter struct {
	Key   string `bson:"_id"`
	Value int64  `bson:"value"`
}
