package funcs

import "errors"

// Sentinel errors returned by decorator constructors.
//
// Use [errors.Is] for comparisons:
//
//	_, err := funcs.NewThrottle(save, -time.Second)
//	if errors.Is(err, funcs.ErrInvalidOption) {
//	    // negative wait
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value outside the allowed range, such as a negative wait.
	ErrInvalidOption = errors.New("funcs: invalid option value")

	// ErrNilFunc is returned when the function to decorate is nil.
	ErrNilFunc = errors.New("funcs: function must not be nil")
)
