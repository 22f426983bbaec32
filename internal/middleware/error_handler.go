package middleware

import (
	"fmt"
	"net/http"

	"hostel-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and converts unhandled gin errors
// into the standard response envelope
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("%v", r))
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			utils.InternalServerErrorResponse(c, "Internal server error", c.Errors.Last().Err)
		}
	}
}

// NoRouteHandler handles requests to unknown routes
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
			Error:   fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
		})
	}
}

// NoMethodHandler handles requests with unsupported HTTP methods
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
			Error:   fmt.Sprintf("method %s not allowed on %s", c.Request.Method, c.Request.URL.Path),
		})
	}
}
