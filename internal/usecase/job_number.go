package usecase

import (
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// JobNumberGenerator produces JOB-<unix millis>-<sequence>-<random> numbers.
// The sequence is process-wide and the random suffix separates replicas that
// share a millisecond; the unique_keys guard remains the source of truth.
type JobNumberGenerator struct {
	seq atomic.Uint64
	now func() time.Time
}

func NewJobNumberGenerator() *JobNumberGenerator {
	return &JobNumberGenerator{now: time.Now}
}

func (g *JobNumberGenerator) Next() string {
	n := g.seq.Add(1) % 10000
	id := uuid.New()
	return fmt.Sprintf("JOB-%d-%04d-%s", g.now().UnixMilli(), n, hex.EncodeToString(id[:3]))
}
