package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// BadRequestError reports input rejected before the operation ran. It is
// always the caller's fault.
type BadRequestError struct {
	Fields []FieldError
	Err    error
}

// BadResponseError reports stored data that does not match its output
// schema. It signals drift between the database and the service.
type BadResponseError struct {
	Schema string
	Fields []FieldError
	Err    error
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *BadRequestError) Error() string {
	return "bad request: " + joinFields(e.Fields, e.Err)
}

func (e *BadRequestError) Unwrap() error { return e.Err }

// Details lists the rejected fields as "field: rule" pairs.
func (e *BadRequestError) Details() string {
	return joinFields(e.Fields, e.Err)
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("bad response for %s: %s", e.Schema, joinFields(e.Fields, e.Err))
}

func (e *BadResponseError) Unwrap() error { return e.Err }

func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

func IsBadResponse(err error) bool {
	var target *BadResponseError
	return errors.As(err, &target)
}

func newBadRequest(err error) *BadRequestError {
	var fields []FieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   strings.TrimPrefix(fe.Namespace(), strings.Split(fe.Namespace(), ".")[0]+"."),
				Message: fe.Tag(),
			})
		}
	}
	return &BadRequestError{Fields: fields, Err: err}
}

func newBadResponse(schema string, err error) *BadResponseError {
	var fields []FieldError
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		collectSchemaErrors(ve, &fields)
	}
	return &BadResponseError{Schema: schema, Fields: fields, Err: err}
}

// collectSchemaErrors walks the cause tree and keeps the leaves.
func collectSchemaErrors(err *jsonschema.ValidationError, fields *[]FieldError) {
	if len(err.Causes) == 0 {
		*fields = append(*fields, FieldError{Field: err.InstanceLocation, Message: err.Message})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, fields)
	}
}

func joinFields(fields []FieldError, err error) string {
	if len(fields) == 0 {
		if err == nil {
			return "invalid"
		}
		return err.Error()
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}
