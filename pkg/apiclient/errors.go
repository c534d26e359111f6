package apiclient

import (
	"errors"
	"fmt"
)

var (
	ErrUnreachable = errors.New("sunucuya ulaşılamadı")
	ErrBadResponse = errors.New("sunucu yanıtı çözümlenemedi")
)

// RejectedError carries a non-2xx backend response together with the detail
// message the backend attached to it.
type RejectedError struct {
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("sunucu isteği reddetti (%d): %s", e.StatusCode, e.Detail)
}

func AsRejected(err error) (*RejectedError, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}

func IsStatus(err error, code int) bool {
	rejected, ok := AsRejected(err)
	return ok && rejected.StatusCode == code
}
