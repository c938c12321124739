package v1

import (
	"strings"

	"go-jobportal-forms/pkg/validation"

	"github.com/gin-gonic/gin"
)

// VerdictResponse is the body of the validate-only endpoints
type VerdictResponse struct {
	Valid    bool              `json:"valid"`
	Messages []string          `json:"messages"`
	Fields   map[string]string `json:"fields"`
}

// newVerdictResponse reports validity for the whole record and the
// failures for the given fields only.
func newVerdictResponse(v validation.Verdict, fields []string) VerdictResponse {
	narrowed := v.Only(fields...)
	return VerdictResponse{
		Valid:    v.Valid(),
		Messages: narrowed.Messages(),
		Fields:   narrowed.Fields(),
	}
}

// touched reads the ?touched=a,b query parameter
func touched(c *gin.Context) []string {
	raw := c.Query("touched")
	if raw == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
