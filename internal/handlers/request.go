package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
	"github.com/BruksfildServices01/gobarber/internal/validators"
)

// bindJSON validates the body against schema, then decodes it into dst.
// The body is cached by gin so it can be read twice.
func bindJSON(c *gin.Context, v *validators.Validator, schema validators.Schema, dst any) error {
	var payload map[string]any
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return httperr.Validation("invalid_json", "Request body must be a JSON object.")
	}

	if err := v.Validate(schema, payload); err != nil {
		return err
	}

	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		return httperr.Validation("invalid_request", "Invalid request body.")
	}
	return nil
}

func paramUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, httperr.ValidationFields(
			"invalid_request",
			name+": must be a valid uuid",
			map[string]string{name: "must be a valid uuid"},
		)
	}
	return id, nil
}

// queryInts reads the named query parameters as integers within [min, max].
func queryInts(c *gin.Context, specs ...queryInt) ([]int, error) {
	out := make([]int, len(specs))
	fields := map[string]string{}

	for i, s := range specs {
		raw := c.Query(s.name)
		if raw == "" {
			fields[s.name] = "is required"
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < s.min || n > s.max {
			fields[s.name] = "must be an integer between " + strconv.Itoa(s.min) + " and " + strconv.Itoa(s.max)
			continue
		}
		out[i] = n
	}

	if len(fields) > 0 {
		return nil, httperr.ValidationFields("invalid_request", "Invalid query parameters.", fields)
	}
	return out, nil
}

type queryInt struct {
	name     string
	min, max int
}

var (
	queryYear  = queryInt{name: "year", min: 1970, max: 9999}
	queryMonth = queryInt{name: "month", min: 1, max: 12}
	queryDay   = queryInt{name: "day", min: 1, max: 31}
)

// calendarDay rejects dates like February 31 that time.Date would roll over.
func calendarDay(year, month, day int) error {
	if time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Day() != day {
		return httperr.ValidationFields(
			"invalid_request",
			"Invalid query parameters.",
			map[string]string{"day": "is not a day of the given month"},
		)
	}
	return nil
}
