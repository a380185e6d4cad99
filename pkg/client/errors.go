package client

import (
	"errors"
	"fmt"
)

var (
	// ErrorOrganizationMissing is returned by New when no organization is
	// configured. Without it no request path can be built.
	ErrorOrganizationMissing = errors.New("could not create a client without an organization")
)

// MissingCredentialError reports a credential that was absent when a signed
// call was attempted. A client without an access key or secret constructs
// fine; it fails here on first use.
type MissingCredentialError struct {
	Credential string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential `%s`", e.Credential)
}

// UnsupportedInputError is returned by Upload when the given source is
// neither a file path nor a usable byte stream.
type UnsupportedInputError struct {
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return "unsupported upload source: " + e.Reason
}

// DecodeError wraps a JSON decode failure on a response body that was
// expected to be JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "could not decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
