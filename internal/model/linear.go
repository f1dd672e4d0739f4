package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Linear is an ordinary least squares style model: y = x·coef + intercept.
type Linear struct {
	coef      *mat.VecDense
	intercept float64
}

// NewLinear builds a linear model. The coefficient slice is copied.
func NewLinear(coef []float64, intercept float64) (*Linear, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("linear model: no coefficients")
	}
	for i, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("linear model: coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, fmt.Errorf("linear model: intercept is not finite")
	}
	data := append([]float64(nil), coef...)
	return &Linear{coef: mat.NewVecDense(len(data), data), intercept: intercept}, nil
}

func (l *Linear) Kind() Kind { return KindLinear }

func (l *Linear) NumFeatures() int { return l.coef.Len() }

// Coef returns a copy of the coefficients.
func (l *Linear) Coef() []float64 {
	return mat.Col(nil, 0, l.coef)
}

func (l *Linear) Intercept() float64 { return l.intercept }

// Predict reshapes features into a single row and multiplies it by the
// coefficient column.
func (l *Linear) Predict(features []float64) (float64, error) {
	n := l.coef.Len()
	if len(features) != n {
		return 0, arityErr(n, len(features))
	}
	x := mat.NewDense(1, n, append([]float64(nil), features...))
	var y mat.VecDense
	y.MulVec(x, l.coef)
	return y.AtVec(0) + l.intercept, nil
}
