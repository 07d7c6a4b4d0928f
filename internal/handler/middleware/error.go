package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"aerotrav/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error recorded by a handler. With debug the
// underlying error text is exposed under "error".
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					if debug && err.Err != nil {
						resp.Error = err.Err.Error()
					}
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
			}
			return
		}
		resp := httperr.Response{Message: "Internal server error"}
		if debug {
			resp.Error = c.Errors.Last().Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func CustomRecovery(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "error", rec, "path", c.Request.URL.Path)

				resp := httperr.Response{Message: "Internal server error"}
				if debug {
					resp.Error = fmt.Sprint(rec)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
