package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "funhouse/internal/platform/errors"
	"funhouse/internal/platform/logger"
	pnet "funhouse/internal/platform/net"
)

// RecoverJSON converts panics into the 500 error envelope and logs the stack with request id
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			// format stack like chi recover
			raw := debug.Stack()
			lines := strings.Split(string(raw), "\n")
			stack := strings.Join(lines, "\n\t")

			logger.C(r.Context()).Error().
				Str("request_id", pnet.RequestID(r.Context())).
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			status, body := pnet.Fail(perr.PanicErrf("panic recovered"), r.URL.Path)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
