// Package obs carries the request-scoped observability helpers shared by the
// HTTP middleware and the planning services.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey is the context key under which the HTTP middleware stores the
// per-request ID. Operations log against it so planner timings can be
// correlated with access log lines.
const RequestIDKey ctxKey = "req_id"

// Time measures one named operation. Use as:
//
//	defer obs.Time(ctx, "plan_itineraries")(&err)
//
// so the deferred call observes the operation's final error value.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start).Milliseconds()

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur, *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur)
	}
}
