package predictor

import (
	"priced/internal/model"
	"priced/pkg/types"
)

// ServiceConfig encapsulates all tunables for Service construction.
type ServiceConfig struct {
	Model model.Predictor
	Info  types.ModelInfo
	// CacheSize bounds the prediction memo. Zero or negative disables it.
	CacheSize int
}
