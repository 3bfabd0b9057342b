package exec

import (
	"errors"
	"io"
	"net"
	"strings"
)

// IsConnectionError reports errors of a connection that was closed or reset by the other side.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || isOsConnectionError(err) {
		return true
	}

	return strings.Contains(err.Error(), "read: connection reset")
}

func IsUsedClosedConnectionError(err error) bool {
	return err != nil && errors.Is(err, net.ErrClosed)
}

func IsTimeoutError(err error) bool {
	return err != nil && isOsTimeoutError(err)
}
