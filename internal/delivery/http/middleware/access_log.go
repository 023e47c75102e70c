package middleware

import (
	"log"
	"strconv"
	"time"

	"skillmap/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()

		method := c.Method()
		path := c.OriginalURL()

		// Route pattern, not raw path, keeps metric cardinality bounded.
		route := c.Route().Path
		if route == "" {
			route = path
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(method, route, strconv.Itoa(status)).
			Observe(dur.Seconds())

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"HTTP access | rid=%s ip=%s method=%s path=%s status=%d latency=%s req_bytes=%d resp_bytes=%d",
				rid, c.IP(), method, path, status, dur,
				c.Request().Header.ContentLength(), c.Response().Header.ContentLength(),
			)
		}

		return err
	}
}
