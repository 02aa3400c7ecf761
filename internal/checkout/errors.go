package checkout

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/commerce"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
)

var (
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrSubmitInProgress = errors.New("checkout: submission already in progress")
)

// ValidationError rejects the form before anything is sent. Key is the
// message to show next to the form.
type ValidationError struct {
	Field string
	Key   i18n.Key
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindTimeout
	KindServerStatus
	KindUnreachable
	KindRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindServerStatus:
		return "server_status"
	case KindUnreachable:
		return "unreachable"
	case KindRequest:
		return "request"
	default:
		return "unexpected"
	}
}

// TransportError is a failed order submission. It can be retried.
type TransportError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Kind == KindServerStatus {
		return fmt.Sprintf("order submission failed (%s %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("order submission failed (%s): %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Message is the text shown to the visitor for this failure.
func (e *TransportError) Message(tr i18n.Translator) string {
	switch e.Kind {
	case KindTimeout:
		return tr.T(i18n.KeyErrTimeout)
	case KindServerStatus:
		return tr.Tf(i18n.KeyErrServer, e.StatusCode)
	case KindUnreachable:
		return tr.T(i18n.KeyErrUnreachable)
	case KindRequest:
		return tr.T(i18n.KeyErrSubmission)
	default:
		return tr.T(i18n.KeyErrUnexpected)
	}
}

func classify(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}

	var (
		netErr    net.Error
		statusErr *commerce.StatusError
		urlErr    *url.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &TransportError{Kind: KindTimeout, Err: err}
	case errors.As(err, &statusErr):
		return &TransportError{Kind: KindServerStatus, StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, commerce.ErrEncodeRequest):
		return &TransportError{Kind: KindRequest, Err: err}
	case errors.As(err, &urlErr):
		return &TransportError{Kind: KindUnreachable, Err: err}
	default:
		return &TransportError{Kind: KindUnexpected, Err: err}
	}
}
