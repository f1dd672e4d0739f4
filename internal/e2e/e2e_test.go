package e2e

import (
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "sync"
    "testing"

    "priced/pkg/types"
)

// carFeatures routes to leaves 520000, 465000 and 560000 in the fixture.
const carFeatures = `{"features":[5,2014,70000,1,0,1,1,20.1,1197,82,5]}`

func TestE2E_Model_Predict_Ready(t *testing.T) {
    srv, _ := newServerForArtifact(t, carPriceArtifact(t), 0)

    // 1) /readyz is green as soon as the server exists
    resp, body := httpGet(t, srv.URL+"/readyz")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/readyz status=%d body=%s", resp.StatusCode, string(body)) }

    // 2) /model describes the loaded forest
    resp, body = httpGet(t, srv.URL+"/model")
    if resp.StatusCode != http.StatusOK { t.Fatalf("/model status=%d body=%s", resp.StatusCode, string(body)) }
    var info types.ModelInfo
    if err := json.Unmarshal(body, &info); err != nil { t.Fatalf("/model json: %v body=%s", err, string(body)) }
    if info.Kind != "forest" || info.NumFeatures != 11 || info.Trees != 3 || info.Target != "selling_price" {
        t.Fatalf("unexpected model info: %+v", info)
    }

    // 3) /predict averages the three trees
    resp, body = httpPostJSON(t, srv.URL+"/predict", []byte(carFeatures))
    if resp.StatusCode != http.StatusOK { t.Fatalf("/predict status=%d body=%s", resp.StatusCode, string(body)) }
    var pr types.PredictResponse
    if err := json.Unmarshal(body, &pr); err != nil { t.Fatalf("/predict json: %v body=%s", err, string(body)) }
    if pr.PredictedPrice != 515000 { t.Fatalf("predicted_price=%v want 515000", pr.PredictedPrice) }

    // 4) wrong arity is a 422 and the next good request still works
    resp, body = httpPostJSON(t, srv.URL+"/predict", []byte(`{"features":[5,2014]}`))
    if resp.StatusCode != http.StatusUnprocessableEntity { t.Fatalf("short features status=%d body=%s", resp.StatusCode, string(body)) }
    var er types.ErrorResponse
    if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
        t.Fatalf("expected JSON error body, got %s (err=%v)", string(body), err)
    }
    resp, _ = httpPostJSON(t, srv.URL+"/predict", []byte(carFeatures))
    if resp.StatusCode != http.StatusOK { t.Fatalf("/predict after error status=%d", resp.StatusCode) }
}

func TestE2E_ConcurrentPredictionsAgree(t *testing.T) {
    srv, _ := newServerForArtifact(t, carPriceArtifact(t), 0)

    const n = 16
    var wg sync.WaitGroup
    errs := make(chan error, n)
    for i := 0; i < n; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader(carFeatures))
            if err != nil { errs <- err; return }
            defer resp.Body.Close()
            var pr types.PredictResponse
            if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil { errs <- err; return }
            if resp.StatusCode != http.StatusOK || pr.PredictedPrice != 515000 {
                errs <- fmt.Errorf("status=%d price=%v", resp.StatusCode, pr.PredictedPrice)
            }
        }()
    }
    wg.Wait()
    close(errs)
    for err := range errs {
        t.Fatal(err)
    }
}

func TestE2E_MemoizedPredictionsMatch(t *testing.T) {
    srv, _ := newServerForArtifact(t, carPriceArtifact(t), 8)
    var first, second types.PredictResponse
    for _, out := range []*types.PredictResponse{&first, &second} {
        resp, body := httpPostJSON(t, srv.URL+"/predict", []byte(carFeatures))
        if resp.StatusCode != http.StatusOK { t.Fatalf("/predict status=%d body=%s", resp.StatusCode, string(body)) }
        if err := json.Unmarshal(body, out); err != nil { t.Fatalf("json: %v", err) }
    }
    if first != second || first.PredictedPrice != 515000 {
        t.Fatalf("memoized prediction drifted: %v vs %v", first, second)
    }
}
