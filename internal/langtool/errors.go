package langtool

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies why a remote check failed.
type Kind int

const (
	// KindTimeout means the request exceeded the client's deadline.
	KindTimeout Kind = iota + 1
	// KindServiceUnavailable means a response arrived but signalled
	// failure: a non-2xx status or a body that could not be parsed.
	KindServiceUnavailable
	// KindUnreachable means no response could be obtained at all.
	KindUnreachable
)

// String returns the kind's identifier for logs.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Message returns the human-readable explanation surfaced to callers when
// this kind of failure forces a fallback correction.
func (k Kind) Message() string {
	switch k {
	case KindTimeout:
		return "The grammar service took too long to respond."
	case KindServiceUnavailable:
		return "The grammar service returned an error."
	case KindUnreachable:
		return "The grammar service could not be reached."
	default:
		return "The grammar service failed."
	}
}

// RemoteError wraps a remote check failure with its classification.
type RemoteError struct {
	Kind Kind
	Err  error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote check failed (%s)", e.Kind)
	}
	return fmt.Sprintf("remote check failed (%s): %v", e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Message returns the caller-facing explanation for this failure.
func (e *RemoteError) Message() string {
	return e.Kind.Message()
}

// classifyTransport maps a transport-level failure from the HTTP client to
// a RemoteError. Keeping the branching here lets it be tested without any
// network I/O: deadline and net timeouts become KindTimeout, everything
// else (DNS failure, refused connection, ...) becomes KindUnreachable.
func classifyTransport(err error) *RemoteError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &RemoteError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &RemoteError{Kind: KindTimeout, Err: err}
	}
	return &RemoteError{Kind: KindUnreachable, Err: err}
}
