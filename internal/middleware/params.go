package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SegmentParam rejects requests whose trailing path parameter name spans
// more than one path segment. echo lets the last parameter of a route
// capture the rest of the path, so /companies/apple/invoices would
// otherwise reach the /companies/:code handlers.
func SegmentParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value := c.Param(name)
			if value == "" || strings.Contains(value, "/") {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}

// NumericParam rejects requests whose path parameter name is not a run of
// ASCII digits that fits an int64. They are answered as an unmatched route
// would be.
func NumericParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isDigits(c.Param(name)) {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}

const maxInt64Digits = 18

func isDigits(s string) bool {
	if s == "" || len(s) > maxInt64Digits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
