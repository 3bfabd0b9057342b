package coffin

import (
	"errors"
	"fmt"
)

func ResolveRecovery(unknownErr any) error {
	switch rval := unknownErr.(type) {
	case nil:
		return nil
	case error:
		return rval
	case string:
		return errors.New(rval)
	default:
		return fmt.Errorf("unhandled error type %T: %v", rval, rval)
	}
}
