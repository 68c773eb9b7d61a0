// Package validation wraps service operations with input and output checks.
//
// Inputs are typed structs validated with struct tags before the operation
// runs; a failure is a BadRequestError. Non-nil outputs are checked against a
// JSON schema before being converted; a failure is a BadResponseError.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dynamicsamic/Todo/internal/core/domain"
)

// Normalizer is implemented by inputs that fill defaults or coerce values
// before validation. now is already in the configured location.
type Normalizer interface {
	Normalize(now time.Time)
}

type Pipeline struct {
	validate     *validator.Validate
	clock        func() time.Time
	location     *time.Location
	maxPageLimit int
}

type Option func(*Pipeline)

func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) { p.clock = clock }
}

func WithLocation(loc *time.Location) Option {
	return func(p *Pipeline) { p.location = loc }
}

func WithMaxPageLimit(limit int) Option {
	return func(p *Pipeline) { p.maxPageLimit = limit }
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		clock:        time.Now,
		location:     time.UTC,
		maxPageLimit: domain.MaxPageLimit,
	}
	for _, opt := range opts {
		opt(p)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("page_limit", p.validPageLimit); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("prefetch_limit", p.validPrefetchLimit); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("row_id", validRowID); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(nonEmptyUpdate, domain.UpdateTodoInput{}, domain.UpdateTaskInput{})
	p.validate = v

	return p
}

// Now is the pipeline clock in the configured location.
func (p *Pipeline) Now() time.Time {
	return p.clock().In(p.location)
}

// Output pairs the schema of a row model with its conversion to the
// validated output model.
type Output[Row any, Out any] struct {
	Schema  *Schema
	Convert func(Row) Out
}

func (o Output[Row, Out]) apply(row Row) (Out, error) {
	if err := o.Schema.Validate(row); err != nil {
		zap.L().Error("invalid response from storage",
			zap.String("schema", o.Schema.Name()),
			zap.Any("payload", row),
			zap.Error(err),
		)
		var zero Out
		return zero, err
	}
	return o.Convert(row), nil
}

// Input normalizes and validates in.
func Input[In any](ctx context.Context, p *Pipeline, in *In) error {
	if n, ok := any(in).(Normalizer); ok {
		n.Normalize(p.Now())
	}
	if err := p.validate.StructCtx(ctx, in); err != nil {
		bad := newBadRequest(err)
		zap.L().Warn("invalid input",
			zap.String("input", fmt.Sprintf("%T", *in)),
			zap.Any("payload", in),
			zap.Error(bad),
		)
		return bad
	}
	return nil
}

// Call validates in, runs op with the normalized input and validates a
// non-nil row. A nil row or an op error is returned as is.
func Call[In any, Row any, Out any](
	ctx context.Context,
	p *Pipeline,
	in In,
	out Output[Row, Out],
	op func(context.Context, In) (*Row, error),
) (*Out, error) {
	if err := Input(ctx, p, &in); err != nil {
		return nil, err
	}

	row, err := op(ctx, in)
	if err != nil || row == nil {
		return nil, err
	}

	result, err := out.apply(*row)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CallList is Call for operations returning many rows. Every row must pass.
func CallList[In any, Row any, Out any](
	ctx context.Context,
	p *Pipeline,
	in In,
	out Output[Row, Out],
	op func(context.Context, In) ([]Row, error),
) ([]Out, error) {
	if err := Input(ctx, p, &in); err != nil {
		return nil, err
	}

	rows, err := op(ctx, in)
	if err != nil || rows == nil {
		return nil, err
	}

	results := make([]Out, 0, len(rows))
	for _, row := range rows {
		result, err := out.apply(row)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// CallInput only validates the input of op.
func CallInput[In any, R any](
	ctx context.Context,
	p *Pipeline,
	in In,
	op func(context.Context, In) (R, error),
) (R, error) {
	if err := Input(ctx, p, &in); err != nil {
		var zero R
		return zero, err
	}
	return op(ctx, in)
}

func (p *Pipeline) validPageLimit(fl validator.FieldLevel) bool {
	limit := fl.Field().Int()
	return limit > 0 && limit < int64(p.maxPageLimit)
}

// validPrefetchLimit allows 0, meaning no tasks, up to the page limit bound.
func (p *Pipeline) validPrefetchLimit(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= 0 && n < int64(p.maxPageLimit)
}

func validRowID(fl validator.FieldLevel) bool {
	id := fl.Field().Int()
	return id > 0 && id <= domain.MaxID
}

// nonEmptyUpdate rejects partial updates where every field is nil.
func nonEmptyUpdate(sl validator.StructLevel) {
	current := sl.Current()
	for i := 0; i < current.NumField(); i++ {
		field := current.Field(i)
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			return
		}
	}
	sl.ReportError(current.Interface(), "payload", "Payload", "nonempty", "")
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
