package e2e

import (
    "bytes"
    "context"
    "io"
    "net/http"
    "net/http/httptest"
    "path/filepath"
    "runtime"
    "testing"

    "priced/internal/artifact"
    "priced/internal/httpapi"
    "priced/internal/predictor"
)

// carPriceArtifact returns the path of the shared forest fixture.
func carPriceArtifact(t *testing.T) string {
    t.Helper()
    _, thisFile, _, ok := runtime.Caller(0)
    if !ok { t.Fatal("runtime.Caller failed") }
    return filepath.Join(filepath.Dir(thisFile), "..", "artifact", "testdata", "car_price.json")
}

func newServerForArtifact(t *testing.T, path string, cacheSize int) (*httptest.Server, *predictor.Service) {
    t.Helper()
    a, err := artifact.Load(path)
    if err != nil {
        t.Fatalf("load artifact: %v", err)
    }
    svc, err := predictor.NewWithConfig(predictor.ServiceConfig{Model: a.Model, Info: a.Info, CacheSize: cacheSize})
    if err != nil {
        t.Fatalf("new predictor: %v", err)
    }
    srv := httptest.NewServer(httpapi.NewMux(svc))
    t.Cleanup(srv.Close)
    return srv, svc
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
    if err != nil { t.Fatalf("new req: %v", err) }
    resp, err := http.DefaultClient.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
    t.Helper()
    req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
    if err != nil { t.Fatalf("new req: %v", err) }
    req.Header.Set("Content-Type", "application/json")
    resp, err := http.DefaultClient.Do(req)
    if err != nil { t.Fatalf("do req: %v", err) }
    body, _ := io.ReadAll(resp.Body)
    _ = resp.Body.Close()
    return resp, body
}
