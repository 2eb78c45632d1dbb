package services

import "sync"

// batchLocks serializes enroll/unenroll per batch so the capacity and
// duplicate checks cannot race with the inserts they guard. The composite
// unique index on (student_id, batch_id) remains the authoritative guard
// against duplicates from other processes.
var batchLocks sync.Map

func lockBatch(batchID uint) *sync.Mutex {
	mu, _ := batchLocks.LoadOrStore(batchID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
