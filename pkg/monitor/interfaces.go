package monitor

import (
	"context"
	"time"

	"github.com/eufydev/x10mon/pkg/models"
)

// Fetcher obtains one raw telemetry snapshot from the device. It is the
// sole external collaborator the core depends on; the concrete transport
// (vendor REST API, simulated payload) is injected. A returned error means
// no snapshot at all, which is distinct from a snapshot missing keys.
type Fetcher interface {
	Fetch(ctx context.Context) (models.RawSnapshot, error)
}

// ResultHandler receives the outcome of each poll cycle: a complete cycle
// result after a successful fetch, or the fetch failure with its
// consecutive-failure count after a failed one.
type ResultHandler interface {
	HandleResult(ctx context.Context, result *models.CycleResult)
	HandleFetchFailure(ctx context.Context, failure *models.FetchFailure)
}

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
