package funcs

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hasbyte1/go-underbar/metrics"
)

// Options configures a decorator. It is passed as an optional trailing
// argument; the zero value and an omitted argument behave the same.
type Options struct {
	// Name identifies the wrapper in metric labels.
	Name string `validate:"max=128"`

	// Metrics receives call counts. nil disables instrumentation.
	Metrics *metrics.Registry `validate:"-"`

	// Scheduler supplies the clock and deferred callbacks for Throttle and
	// Delay. nil means [SystemScheduler].
	Scheduler Scheduler `validate:"-"`
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Scheduler: SystemScheduler{}}
}

// Validate reports whether the options are usable, wrapping any problem in
// [ErrInvalidOption].
func (o Options) Validate() error {
	return validateStruct(o)
}

func resolveOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions()
	}
	o := opts[0]
	if o.Scheduler == nil {
		o.Scheduler = SystemScheduler{}
	}
	return o
}

// mustResolveOptions is resolveOptions for constructors without an error
// result. It panics with an error wrapping [ErrInvalidOption].
func mustResolveOptions(opts []Options) Options {
	o := resolveOptions(opts)
	if err := o.Validate(); err != nil {
		panic(err)
	}
	return o
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("%w: %s must satisfy %s=%s, got %v",
			ErrInvalidOption, e.Field(), e.Tag(), e.Param(), e.Value())
	}
	return fmt.Errorf("%w: %v", ErrInvalidOption, err)
}
