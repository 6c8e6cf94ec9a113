package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const requestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the request id for log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id carried by ctx, "-" when there is none,
// so log lines keep their shape outside request handling.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}

// Time logs the duration of an operation. Call it at function entry and
// defer the returned func, handing it the address of the named error return
// so failures land on the same line:
//
//	defer obs.Time(ctx, "matrix.cache.get")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s req_id=%s dur=%dms err=%v", name, reqID, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s req_id=%s dur=%dms", name, reqID, dur.Milliseconds())
	}
}
