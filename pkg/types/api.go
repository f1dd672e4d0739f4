package types

import (
	"encoding/json"
	"fmt"
)

// PredictRequest is the payload accepted by POST /predict.
type PredictRequest struct {
	// Ordered feature vector. Length and order must match the loaded model.
	// example: [4, 2014, 145500, 1, 1, 1, 1, 23.4, 1248, 74, 5]
	Features []float64 `json:"features" example:"4,2014,145500,1,1,1,1,23.4,1248,74,5"`
}

// UnmarshalJSON rejects null entries in features, which encoding/json would
// otherwise decode as 0. A null or absent features array stays nil.
func (r *PredictRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Features []*float64 `json:"features"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Features == nil {
		r.Features = nil
		return nil
	}
	r.Features = make([]float64, len(raw.Features))
	for i, f := range raw.Features {
		if f == nil {
			return fmt.Errorf("features[%d] is null", i)
		}
		r.Features[i] = *f
	}
	return nil
}

// PredictResponse is returned by POST /predict on success.
type PredictResponse struct {
	// Model output for the supplied feature vector.
	// example: 452310.75
	PredictedPrice float64 `json:"predicted_price" example:"452310.75"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
