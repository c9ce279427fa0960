package validators

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/gobarber/internal/httperr"
)

type FieldType string

const (
	TypeString   FieldType = "string"
	TypeUUID     FieldType = "uuid"
	TypeDateTime FieldType = "datetime"
	TypeInt      FieldType = "int"
)

// Field declares one entry of a request body. Rules is a validator tag
// applied to the value once its type checks out; EqualTo names a sibling
// field the value must match.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Rules    string
	EqualTo  string
}

type Schema []Field

type Validator struct {
	v *validator.Validate
}

type Option func(*options)

type options struct {
	domainLookup func(email string) bool
}

// WithEmailDomainCheck enables the email_domain rule using lookup. Without
// it the rule accepts every address.
func WithEmailDomainCheck(lookup func(email string) bool) Option {
	return func(o *options) { o.domainLookup = lookup }
}

func New(opts ...Option) *Validator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v := validator.New()
	_ = v.RegisterValidation("email_domain", func(fl validator.FieldLevel) bool {
		if o.domainLookup == nil {
			return true
		}
		return o.domainLookup(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate checks payload against s and returns a validation AppError
// naming every failing field. Undeclared keys are ignored.
func (vl *Validator) Validate(s Schema, payload map[string]any) error {
	fields := map[string]string{}

	for _, f := range s {
		raw, present := payload[f.Name]
		if !present || raw == nil || raw == "" {
			if f.Required {
				fields[f.Name] = "is required"
			}
			continue
		}

		val, err := coerce(f.Type, raw)
		if err != nil {
			fields[f.Name] = err.Error()
			continue
		}

		if f.Rules != "" {
			if err := vl.v.Var(val, f.Rules); err != nil {
				fields[f.Name] = describe(err)
				continue
			}
		}

		if f.EqualTo != "" && payload[f.EqualTo] != raw {
			fields[f.Name] = "must match " + f.EqualTo
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return httperr.ValidationFields("invalid_request", summary(fields), fields)
}

func coerce(t FieldType, raw any) (any, error) {
	switch t {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		return s, nil
	case TypeUUID:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("must be a uuid")
		}
		if _, err := uuid.Parse(s); err != nil {
			return nil, errors.New("must be a uuid")
		}
		return s, nil
	case TypeDateTime:
		s, ok := raw.(string)
		if !ok {
			return nil, errors.New("must be an RFC 3339 date-time")
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, errors.New("must be an RFC 3339 date-time")
		}
		return ts, nil
	case TypeInt:
		n, ok := raw.(float64)
		if !ok || n != math.Trunc(n) {
			return nil, errors.New("must be an integer")
		}
		return int64(n), nil
	default:
		return nil, fmt.Errorf("unsupported field type %q", t)
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
	return err.Error()
}

func summary(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "Invalid fields: " + strings.Join(names, ", ") + "."
}
