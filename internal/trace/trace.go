package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Context keys stay unexported so callers go through the helpers below.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries the tracing state of a single HTTP request.
// - RequestID is unique per request.
// - spanSeq increments 1,2,3,... for each outbound call under the same
//   RequestID.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID produces a random ID for tracing.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestAndSpan returns a new context holding the request ID and the
// initial span value (usually 0).
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext reads the request ID stored in the context.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence value as a string without
// incrementing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID increments spanSeq under the same RequestID and returns the
// (requestID, spanID) pair. Multiple outbound calls within one request get
// span IDs 1,2,3,...
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// Fallback for use outside the middleware.
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
