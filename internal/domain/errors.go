package domain

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Error categories. Every failure an invocation can hit wraps exactly one of
// these, so callers can branch on category with errors.Is without caring
// which phase produced it.
var (
	// ErrUsage marks missing or malformed command input.
	ErrUsage = errors.New("usage error")

	// ErrDecode marks seed/key/payload text decoding failures.
	ErrDecode = errors.New("decode error")

	// ErrTransport marks network failures and non-2xx responses.
	ErrTransport = errors.New("transport error")

	// ErrProtocol marks well-formed responses missing expected fields or
	// carrying values of unexpected shape.
	ErrProtocol = errors.New("protocol violation")
)

// RemoteError is an application-level error reported by the ledger service in
// a well-formed response. The server detail is carried verbatim.
type RemoteError struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RemoteError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("remote rejected: %s (code %d): %s", e.Message, e.Code, e.Data)
	}
	return fmt.Sprintf("remote rejected: %s (code %d)", e.Message, e.Code)
}

// Usagef builds an ErrUsage with a formatted reason.
func Usagef(format string, args ...any) error {
	return errors.Wrapf(ErrUsage, format, args...)
}

// Decodef builds an ErrDecode with a formatted reason.
func Decodef(format string, args ...any) error {
	return errors.Wrapf(ErrDecode, format, args...)
}

// WrapDecode attaches an underlying cause to an ErrDecode. The cause text is
// kept out of the category chain so errors.Is still matches ErrDecode.
func WrapDecode(cause error, msg string) error {
	return errors.Wrapf(ErrDecode, "%s: %v", msg, cause)
}

// Transportf builds an ErrTransport with a formatted reason.
func Transportf(format string, args ...any) error {
	return errors.Wrapf(ErrTransport, format, args...)
}

// Protocolf builds an ErrProtocol with a formatted reason.
func Protocolf(format string, args ...any) error {
	return errors.Wrapf(ErrProtocol, format, args...)
}
