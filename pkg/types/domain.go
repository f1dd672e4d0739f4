package types

// ModelInfo describes the model artifact loaded at startup, returned by GET /model.
type ModelInfo struct {
	// Artifact kind (linear or forest).
	// example: forest
	Kind string `json:"kind" example:"forest"`
	// Number of features the model expects per request.
	// example: 11
	NumFeatures int `json:"n_features" example:"11"`
	// Optional names of the features, in request order.
	// example: ["name","year","km_driven"]
	FeatureNames []string `json:"feature_names,omitempty"`
	// Optional name of the predicted quantity.
	// example: selling_price
	Target string `json:"target,omitempty" example:"selling_price"`
	// Number of trees for forest artifacts.
	// example: 100
	Trees int `json:"trees,omitempty" example:"100"`
	// Base name of the artifact file.
	// example: model.json
	Source string `json:"source" example:"model.json"`
	// Time the artifact was loaded (unix seconds).
	// example: 1700000000
	LoadedAt int64 `json:"loaded_at" example:"1700000000"`
}
