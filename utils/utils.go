package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

var txnSequence uint64

// GenerateTransactionID builds a transaction identifier from the current
// epoch milliseconds and a process-wide counter. The counter keeps two
// purchases in the same millisecond from colliding; the unique index on
// the column is the backstop across restarts.
func GenerateTransactionID() string {
	seq := atomic.AddUint64(&txnSequence, 1) % 1000
	return fmt.Sprintf("TXN%d%03d", time.Now().UnixMilli(), seq)
}
