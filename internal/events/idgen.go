package events

import (
	"fmt"
	"sync/atomic"
	"time"
)

// IDGenerator produces unique analysis ids used as Kafka message keys.
// The startup timestamp keeps ids from colliding across restarts.
type IDGenerator struct {
	counter uint64
	epoch   int64
}

// NewIDGenerator creates a generator seeded with the current time.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{epoch: time.Now().Unix()}
}

// Next returns the next analysis id.
func (g *IDGenerator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("call-%d-%d", g.epoch, n)
}
