// Package model implements the regression models a priced artifact can carry.
//
// Every model is immutable once constructed and safe for concurrent use by
// any number of goroutines; Predict never mutates receiver state.
package model

import (
	"errors"
	"fmt"
)

// Kind names an artifact model family.
type Kind string

const (
	KindLinear Kind = "linear"
	KindForest Kind = "forest"
)

// Predictor is the only capability the service needs from a loaded model.
type Predictor interface {
	// Predict returns the model output for one feature vector.
	Predict(features []float64) (float64, error)
	// NumFeatures is the arity Predict expects.
	NumFeatures() int
	Kind() Kind
}

// ErrArity is returned (wrapped) when a feature vector has the wrong length.
var ErrArity = errors.New("feature count mismatch")

func arityErr(want, got int) error {
	return fmt.Errorf("%w: model expects %d features, got %d", ErrArity, want, got)
}
