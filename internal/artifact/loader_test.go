package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"priced/internal/model"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

const linearJSON = `{
  "kind": "linear",
  "feature_names": ["size", "bedrooms", "age"],
  "target": "price",
  "linear": {"coef": [150, 10000, -500], "intercept": 25000}
}`

func TestLoadLinearJSON(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "model.json", linearJSON)
	a, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if a.Info.Kind != "linear" || a.Info.NumFeatures != 3 || a.Info.Source != "model.json" || a.Info.Target != "price" {
		t.Fatalf("unexpected info: %+v", a.Info)
	}
	if a.Info.LoadedAt == 0 { t.Fatalf("loaded_at not set") }
	got, err := a.Model.Predict([]float64{1200, 3, 10})
	if err != nil { t.Fatalf("predict: %v", err) }
	if want := 1200*150.0 + 3*10000 - 10*500 + 25000; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadForestYAML(t *testing.T) {
	doc := `kind: forest
n_features: 2
forest:
  aggregate: mean
  trees:
    - nodes:
        - {feature: 0, threshold: 2010, left: 1, right: 2}
        - {left: -1, right: -1, value: 200000}
        - {left: -1, right: -1, value: 400000}
    - nodes:
        - {left: -1, right: -1, value: 300000}
`
	p := writeTempFile(t, t.TempDir(), "model.yml", doc)
	a, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if a.Info.Trees != 2 || a.Info.Kind != "forest" { t.Fatalf("unexpected info: %+v", a.Info) }
	got, _ := a.Model.Predict([]float64{2015, 0})
	if got != 350000 { t.Fatalf("got %v, want 350000", got) }
}

func TestLoadForestTOML(t *testing.T) {
	doc := `kind = "forest"
n_features = 1

[forest]
aggregate = "sum"
base_score = 10.0

[[forest.trees]]
[[forest.trees.nodes]]
feature = 0
threshold = 0.5
left = 1
right = 2
[[forest.trees.nodes]]
left = -1
right = -1
value = 1.0
[[forest.trees.nodes]]
left = -1
right = -1
value = 2.0
`
	p := writeTempFile(t, t.TempDir(), "model.toml", doc)
	a, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	got, _ := a.Model.Predict([]float64{1})
	if got != 12 { t.Fatalf("got %v, want 12", got) }
}

func TestLoadErrors(t *testing.T) {
	d := t.TempDir()
	if _, err := Load(filepath.Join(d, "missing.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
	cases := map[string]string{
		"corrupt.json":   `{"kind": "linear", "linear": {"coef": [1,2`,
		"pickle.pkl":     "\x80\x04\x95",
		"nokind.json":    `{"linear": {"coef": [1]}}`,
		"unknown.json":   `{"kind": "svm"}`,
		"nosection.json": `{"kind": "forest", "n_features": 1}`,
		"arity.json":     `{"kind": "linear", "n_features": 3, "linear": {"coef": [1, 2]}}`,
		"names.json":     `{"kind": "linear", "feature_names": ["a"], "linear": {"coef": [1, 2]}}`,
		"badtree.json":   `{"kind": "forest", "n_features": 1, "forest": {"trees": [{"nodes": [{"feature": 0, "left": 1, "right": 9}]}]}}`,
	}
	for name, content := range cases {
		p := writeTempFile(t, d, name, content)
		if _, err := Load(p); err == nil {
			t.Fatalf("%s: expected error", name)
		} else if !strings.Contains(err.Error(), "model artifact") {
			t.Fatalf("%s: error lacks context: %v", name, err)
		}
	}
}

func TestBuildKindIsCaseInsensitive(t *testing.T) {
	m, err := Build(Document{Kind: " Linear ", Linear: &LinearSpec{Coef: []float64{1}}})
	if err != nil { t.Fatalf("build: %v", err) }
	if m.Kind() != model.KindLinear { t.Fatalf("kind=%s", m.Kind()) }
}

func TestLoadShippedExample(t *testing.T) {
	a, err := Load(filepath.Join("testdata", "car_price.json"))
	if err != nil { t.Fatalf("load: %v", err) }
	if a.Info.NumFeatures != 11 || len(a.Info.FeatureNames) != 11 {
		t.Fatalf("unexpected info: %+v", a.Info)
	}
	got, err := a.Model.Predict([]float64{4, 2014, 145500, 1, 1, 1, 1, 23.4, 1248, 74, 5})
	if err != nil { t.Fatalf("predict: %v", err) }
	if got <= 0 { t.Fatalf("expected positive price, got %v", got) }
}
