package middleware

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/gin-gonic/gin"
)

// ErrorReporter receives every error that reaches the error handler
type ErrorReporter interface {
	CaptureRequestError(ctx context.Context, err error)
}

// ErrorHandler middleware handles error responses
func ErrorHandler(reporter ErrorReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if reporter != nil {
				reporter.CaptureRequestError(c.Request.Context(), err)
			}

			response := ierr.ErrorResponse{
				Success: false,
				Error: ierr.ErrorDetail{
					Code:    ierr.CodeFromErr(err),
					Display: getDisplayMessage(err),
					Details: getSafeDetails(err),
				},
			}

			c.JSON(ierr.HTTPStatusFromErr(err), response)
		}
	}
}

func getDisplayMessage(err error) string {
	// GetAllHints is a post-order traversal, the first non-empty hint wins
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}

	return "An unexpected error occurred"
}

func getSafeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			jsonStr, ok := strings.CutPrefix(payload, "__json__:")
			if !ok || jsonStr == "" {
				continue
			}
			var jsonDetails map[string]any
			if err := json.Unmarshal([]byte(jsonStr), &jsonDetails); err == nil {
				for k, v := range jsonDetails {
					details[k] = v
				}
			}
		}
	}

	return details
}
