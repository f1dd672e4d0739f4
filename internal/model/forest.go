package model

import (
	"fmt"
	"math"
)

// Aggregate selects how per-tree outputs are combined.
type Aggregate string

const (
	// AggregateMean averages tree outputs (random forest regressors).
	AggregateMean Aggregate = "mean"
	// AggregateSum adds tree outputs (boosted ensembles with the learning
	// rate already folded into leaf values).
	AggregateSum Aggregate = "sum"
)

// Node is one entry of a flat tree. Leaves have Left == Right == -1.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
}

func (n Node) leaf() bool { return n.Left == -1 && n.Right == -1 }

// Tree is a regression tree stored as a flat node array rooted at index 0.
type Tree struct {
	nodes []Node
}

func (t Tree) eval(x []float64) float64 {
	i := 0
	for {
		n := t.nodes[i]
		if n.leaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest is an ensemble of regression trees.
type Forest struct {
	trees     []Tree
	n         int
	aggregate Aggregate
	base      float64
}

// NewForest validates the trees and builds a forest over n features.
// An empty aggregate defaults to AggregateMean.
func NewForest(n int, trees [][]Node, aggregate Aggregate, baseScore float64) (*Forest, error) {
	if n <= 0 {
		return nil, fmt.Errorf("forest model: n_features must be positive, got %d", n)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("forest model: no trees")
	}
	switch aggregate {
	case "":
		aggregate = AggregateMean
	case AggregateMean, AggregateSum:
	default:
		return nil, fmt.Errorf("forest model: unknown aggregate %q", aggregate)
	}
	if math.IsNaN(baseScore) || math.IsInf(baseScore, 0) {
		return nil, fmt.Errorf("forest model: base_score is not finite")
	}
	f := &Forest{n: n, aggregate: aggregate, base: baseScore, trees: make([]Tree, 0, len(trees))}
	for ti, nodes := range trees {
		if err := validateTree(nodes, n); err != nil {
			return nil, fmt.Errorf("forest model: tree %d: %w", ti, err)
		}
		f.trees = append(f.trees, Tree{nodes: append([]Node(nil), nodes...)})
	}
	return f, nil
}

// validateTree checks that every walk from the root terminates at a leaf.
// Children must sit after their parent, so index order is a topological order.
func validateTree(nodes []Node, n int) error {
	if len(nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, nd := range nodes {
		if nd.leaf() {
			if math.IsNaN(nd.Value) || math.IsInf(nd.Value, 0) {
				return fmt.Errorf("node %d: leaf value is not finite", i)
			}
			continue
		}
		if nd.Feature < 0 || nd.Feature >= n {
			return fmt.Errorf("node %d: feature %d out of range [0,%d)", i, nd.Feature, n)
		}
		if math.IsNaN(nd.Threshold) {
			return fmt.Errorf("node %d: threshold is NaN", i)
		}
		for _, c := range [2]int{nd.Left, nd.Right} {
			if c <= i || c >= len(nodes) {
				return fmt.Errorf("node %d: child %d out of range (%d,%d)", i, c, i, len(nodes))
			}
		}
	}
	return nil
}

func (f *Forest) Kind() Kind { return KindForest }

func (f *Forest) NumFeatures() int { return f.n }

// NumTrees reports the ensemble size.
func (f *Forest) NumTrees() int { return len(f.trees) }

func (f *Forest) Predict(features []float64) (float64, error) {
	if len(features) != f.n {
		return 0, arityErr(f.n, len(features))
	}
	var sum float64
	for _, t := range f.trees {
		sum += t.eval(features)
	}
	if f.aggregate == AggregateMean {
		sum /= float64(len(f.trees))
	}
	return sum + f.base, nil
}
