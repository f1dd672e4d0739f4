package predictor

import (
	"encoding/binary"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "priced",
	Subsystem: "predict",
	Name:      "cache_hits_total",
	Help:      "Predictions served from the in-memory memo",
})

func init() {
	prometheus.MustRegister(cacheHitsTotal)
}

// memo caches model outputs. Models are deterministic, so a hit returns the
// same value the model would.
type memo struct {
	c *lru.Cache[string, float64]
}

func newMemo(size int) (*memo, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New[string, float64](size)
	if err != nil {
		return nil, err
	}
	return &memo{c: c}, nil
}

// memoKey encodes the exact bit patterns so 0 and -0 stay distinct.
func memoKey(features []float64) string {
	b := make([]byte, 8*len(features))
	for i, f := range features {
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(f))
	}
	return string(b)
}

func (m *memo) get(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.c.Get(key)
	if ok {
		cacheHitsTotal.Inc()
	}
	return v, ok
}

func (m *memo) add(key string, v float64) {
	if m == nil {
		return
	}
	m.c.Add(key, v)
}

func (m *memo) len() int {
	if m == nil {
		return 0
	}
	return m.c.Len()
}
