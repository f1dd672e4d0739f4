package predictor

import (
	"errors"
	"fmt"
	"net/http"
)

// invalidRequestError signals a request that cannot be interpreted (400).
type invalidRequestError struct{ msg string }

func (e invalidRequestError) Error() string   { return e.msg }
func (e invalidRequestError) StatusCode() int { return http.StatusBadRequest }

// ErrInvalidRequest constructs an invalidRequestError.
func ErrInvalidRequest(msg string) error { return invalidRequestError{msg: msg} }

// IsInvalidRequest reports whether err indicates a malformed request.
func IsInvalidRequest(err error) bool {
	var e invalidRequestError
	return errors.As(err, &e)
}

// arityMismatchError signals a feature vector of the wrong length (422).
type arityMismatchError struct{ want, got int }

func (e arityMismatchError) Error() string {
	return fmt.Sprintf("model expects %d features, got %d", e.want, e.got)
}
func (e arityMismatchError) StatusCode() int { return http.StatusUnprocessableEntity }

// IsArityMismatch reports whether err indicates a feature count mismatch.
func IsArityMismatch(err error) bool {
	var e arityMismatchError
	return errors.As(err, &e)
}

// nonFiniteError signals a NaN or infinite model output, which JSON cannot carry.
type nonFiniteError struct{}

func (nonFiniteError) Error() string   { return "model produced a non-finite value" }
func (nonFiniteError) StatusCode() int { return http.StatusInternalServerError }

// IsNonFinite reports whether err indicates a NaN/Inf prediction.
func IsNonFinite(err error) bool {
	var e nonFiniteError
	return errors.As(err, &e)
}
