package httpapi

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncrementPredictError_IncrementsCounter(t *testing.T) {
	baseline := testutil.ToFloat64(predictErrorsTotal.WithLabelValues("arity"))
	IncrementPredictError("arity")
	IncrementPredictError("arity")
	if got := testutil.ToFloat64(predictErrorsTotal.WithLabelValues("arity")); got != baseline+2 {
		t.Fatalf("expected arity counter %v, got %v", baseline+2, got)
	}

	// Empty reason should default to "unspecified"
	before := testutil.ToFloat64(predictErrorsTotal.WithLabelValues("unspecified"))
	IncrementPredictError("")
	if after := testutil.ToFloat64(predictErrorsTotal.WithLabelValues("unspecified")); after != before+1 {
		t.Fatalf("expected unspecified reason to increment by 1: before=%v after=%v", before, after)
	}
}
