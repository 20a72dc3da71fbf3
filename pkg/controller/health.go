package controller

import (
	"context"
	"net/http"
	"slices"
	"uuid62/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Pinger is a dependency that can report whether it is able to serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler pings every dependency and answers 200 when all of them
// respond, 503 otherwise. The body lists each check as "ok" or "unavailable";
// failures are logged, not returned.
func HealthHandler(pingers map[string]Pinger) http.Handler {
	names := make([]string, 0, len(pingers))
	for name := range pingers {
		names = append(names, name)
	}
	slices.Sort(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := http.StatusOK

		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("checks")
		e.ObjStart()
		for _, name := range names {
			e.FieldStart(name)
			if err := pingers[name].Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.String("check", name), zap.Error(err))
				status = http.StatusServiceUnavailable
				e.Str("unavailable")

				continue
			}
			e.Str("ok")
		}
		e.ObjEnd()
		e.FieldStart("status")
		if status == http.StatusOK {
			e.Str("ok")
		} else {
			e.Str("unavailable")
		}
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	})
}
