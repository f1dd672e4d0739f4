// Package artifact reads a model artifact file and builds the immutable
// model it describes.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"priced/internal/common/fsutil"
	"priced/internal/model"
	"priced/pkg/types"
)

// Document is the on-disk shape of an artifact exported by the training pipeline.
type Document struct {
	Kind         string      `json:"kind" yaml:"kind" toml:"kind"`
	NumFeatures  int         `json:"n_features" yaml:"n_features" toml:"n_features"`
	FeatureNames []string    `json:"feature_names" yaml:"feature_names" toml:"feature_names"`
	Target       string      `json:"target" yaml:"target" toml:"target"`
	Linear       *LinearSpec `json:"linear" yaml:"linear" toml:"linear"`
	Forest       *ForestSpec `json:"forest" yaml:"forest" toml:"forest"`
}

type LinearSpec struct {
	Coef      []float64 `json:"coef" yaml:"coef" toml:"coef"`
	Intercept float64   `json:"intercept" yaml:"intercept" toml:"intercept"`
}

type ForestSpec struct {
	Aggregate string     `json:"aggregate" yaml:"aggregate" toml:"aggregate"`
	BaseScore float64    `json:"base_score" yaml:"base_score" toml:"base_score"`
	Trees     []TreeSpec `json:"trees" yaml:"trees" toml:"trees"`
}

type TreeSpec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes" toml:"nodes"`
}

type NodeSpec struct {
	Feature   int     `json:"feature" yaml:"feature" toml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold" toml:"threshold"`
	Left      int     `json:"left" yaml:"left" toml:"left"`
	Right     int     `json:"right" yaml:"right" toml:"right"`
	Value     float64 `json:"value" yaml:"value" toml:"value"`
}

// Artifact is a loaded model plus the metadata reported by GET /model.
type Artifact struct {
	Model model.Predictor
	Info  types.ModelInfo
}

// Load resolves path, decodes it by extension and builds the model.
// Supports: .json, .yaml/.yml, .toml
func Load(path string) (*Artifact, error) {
	abs, err := fsutil.ResolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("model artifact: %w", err)
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("model artifact: %w", err)
	}
	doc, err := Decode(b, filepath.Ext(abs))
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", filepath.Base(abs), err)
	}
	m, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", filepath.Base(abs), err)
	}
	info := types.ModelInfo{
		Kind:         string(m.Kind()),
		NumFeatures:  m.NumFeatures(),
		FeatureNames: append([]string(nil), doc.FeatureNames...),
		Target:       doc.Target,
		Source:       filepath.Base(abs),
		LoadedAt:     time.Now().Unix(),
	}
	if f, ok := m.(*model.Forest); ok {
		info.Trees = f.NumTrees()
	}
	return &Artifact{Model: m, Info: info}, nil
}

// Decode parses an artifact document. ext selects the format and includes the dot.
func Decode(b []byte, ext string) (Document, error) {
	var doc Document
	switch ext = strings.ToLower(ext); ext {
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil { return doc, fmt.Errorf("decode json: %w", err) }
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil { return doc, fmt.Errorf("decode yaml: %w", err) }
	case ".toml":
		if err := toml.Unmarshal(b, &doc); err != nil { return doc, fmt.Errorf("decode toml: %w", err) }
	default:
		return doc, fmt.Errorf("unsupported artifact extension: %q", ext)
	}
	return doc, nil
}

// Build validates a document and constructs its model.
func Build(doc Document) (model.Predictor, error) {
	var (
		m   model.Predictor
		err error
	)
	switch model.Kind(strings.ToLower(strings.TrimSpace(doc.Kind))) {
	case model.KindLinear:
		if doc.Linear == nil {
			return nil, fmt.Errorf("kind linear requires a linear section")
		}
		if doc.NumFeatures != 0 && doc.NumFeatures != len(doc.Linear.Coef) {
			return nil, fmt.Errorf("n_features=%d but %d coefficients", doc.NumFeatures, len(doc.Linear.Coef))
		}
		m, err = model.NewLinear(doc.Linear.Coef, doc.Linear.Intercept)
	case model.KindForest:
		if doc.Forest == nil {
			return nil, fmt.Errorf("kind forest requires a forest section")
		}
		trees := make([][]model.Node, len(doc.Forest.Trees))
		for i, t := range doc.Forest.Trees {
			trees[i] = make([]model.Node, len(t.Nodes))
			for j, n := range t.Nodes {
				trees[i][j] = model.Node(n)
			}
		}
		m, err = model.NewForest(doc.NumFeatures, trees, model.Aggregate(doc.Forest.Aggregate), doc.Forest.BaseScore)
	case "":
		return nil, fmt.Errorf("missing kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", doc.Kind)
	}
	if err != nil {
		return nil, err
	}
	if len(doc.FeatureNames) != 0 && len(doc.FeatureNames) != m.NumFeatures() {
		return nil, fmt.Errorf("%d feature_names for %d features", len(doc.FeatureNames), m.NumFeatures())
	}
	return m, nil
}
