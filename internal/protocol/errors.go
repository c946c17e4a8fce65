package protocol

import "errors"

var (
	ErrShortFrame       = errors.New("protocol: short frame")
	ErrChecksumMismatch = errors.New("protocol: checksum mismatch")
	ErrHeaderMismatch   = errors.New("protocol: header mismatch")
	ErrCommandMismatch  = errors.New("protocol: command mismatch")
	ErrLengthMismatch   = errors.New("protocol: length mismatch")
	ErrUnknownFieldTag  = errors.New("protocol: unknown field tag")
	ErrTruncatedField   = errors.New("protocol: truncated field")
)
