package session

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/dmitrijs2005/weatherdesk/internal/client/state"
	"github.com/dmitrijs2005/weatherdesk/internal/logging"
)

// launch moves rs to Loading and runs op on wg. Nothing is started when rs
// refuses the transition.
func launch[T any](
	ctx context.Context,
	wg *conc.WaitGroup,
	log logging.Logger,
	name string,
	rs *state.RequestState[T],
	op func(context.Context) (T, error),
) (<-chan struct{}, error) {
	if err := rs.Start(); err != nil {
		log.Debug(ctx, "request not started", "request", name, "error", err)
		return nil, err
	}

	done := make(chan struct{})
	wg.Go(func() {
		defer close(done)

		start := time.Now()
		data, err := op(ctx)

		var applied bool
		if err != nil {
			applied = rs.Fail(err)
		} else {
			applied = rs.Resolve(data)
		}

		if !applied {
			log.Debug(ctx, "outcome dropped after teardown", "request", name)
			return
		}
		log.Debug(ctx, "request finished", "request", name, "ok", err == nil, "took", time.Since(start))
	})
	return done, nil
}
