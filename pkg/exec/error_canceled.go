package exec

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
)

const RequestCanceledError = requestCanceledError("RequestCanceled")

type requestCanceledError string

func (e requestCanceledError) Error() string {
	return string(e)
}

// IsRequestCanceled is true if err was only caused by a canceled or expired context. An aggregate
// containing any other error is not a canceled request.
func IsRequestCanceled(err error) bool {
	if err == nil {
		return false
	}

	type multipleErrors interface {
		Unwrap() []error
	}

	if joined, ok := err.(multipleErrors); ok {
		return allCanceled(joined.Unwrap())
	}

	multiErr := &multierror.Error{}
	if errors.As(err, &multiErr) {
		return allCanceled(multiErr.Errors)
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, RequestCanceledError)
}

func allCanceled(errs []error) bool {
	for _, err := range errs {
		if !IsRequestCanceled(err) {
			return false
		}
	}

	return len(errs) > 0
}
