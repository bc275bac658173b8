package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CustomErrorHandler converts anything that escapes a handler (unknown
// routes, method mismatches, panics caught by Recover) into the relay's JSON
// error envelope. Handlers own their endpoint-specific envelopes; this is the
// fallthrough only.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		} else {
			switch code {
			case http.StatusNotFound:
				message = "Not found"
			case http.StatusMethodNotAllowed:
				message = "Method not allowed"
			case http.StatusBadRequest:
				message = "The request could not be processed"
			}
		}
	}

	c.Logger().Error(err)

	if writeErr := c.JSON(code, map[string]string{
		"status":  "Failed",
		"message": message,
	}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
