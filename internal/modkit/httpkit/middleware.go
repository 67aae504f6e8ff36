package httpkit

import (
	"net/http"
	"time"

	"funhouse/internal/platform/config"
	"funhouse/internal/platform/net/middleware"
)

// CommonStack returns the root middleware slice for the api
// cfg is the CORE_API_ view; SLOW_MS and CORS_ORIGINS tune the access log and CORS
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	stack := middleware.Defaults()
	return append(stack,
		middleware.StripSlashes(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
		}),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
	)
}
