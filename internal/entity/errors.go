package entity

import (
	"errors"
	"net/http"
)

var (
	// Input errors
	ErrFlagsRequired  = errors.New("Both main_flag and heart_flag are required")
	ErrFlagsEmpty     = errors.New("Both files must be selected")
	ErrUploadTooLarge = errors.New("Uploaded files are too large")

	// Asset errors
	ErrMaskNotFound = errors.New("Heart base image not found")
)

type ErrorKind int

const (
	KindProcessing ErrorKind = iota
	KindInput
	KindAssetMissing
	KindTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindAssetMissing:
		return "asset_missing"
	case KindTooLarge:
		return "too_large"
	default:
		return "processing"
	}
}

// HTTPStatus is the status code the transport answers with for the kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindInput:
		return http.StatusBadRequest
	case KindAssetMissing:
		return http.StatusNotFound
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// ComposeError carries the kind of a failed combine next to its cause.
type ComposeError struct {
	Kind ErrorKind
	Err  error
}

func (e *ComposeError) Error() string {
	return e.Err.Error()
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}

func InputError(err error) error {
	return &ComposeError{Kind: KindInput, Err: err}
}

func AssetMissingError(err error) error {
	return &ComposeError{Kind: KindAssetMissing, Err: err}
}

func TooLargeError(err error) error {
	return &ComposeError{Kind: KindTooLarge, Err: err}
}

func ProcessingError(err error) error {
	return &ComposeError{Kind: KindProcessing, Err: err}
}

// KindOf classifies err; anything unclassified is a processing failure.
func KindOf(err error) ErrorKind {
	var ce *ComposeError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindProcessing
}
