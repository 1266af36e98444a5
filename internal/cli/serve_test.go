package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeshape/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	s := newServer(pipeline.NewRunner(nil, nil, logger), DefaultConfig(), logger)
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"status":"ok"`) {
		t.Errorf("body = %s", body)
	}
	if resp.Header.Get("Server") == "" {
		t.Error("missing Server header")
	}
}

func TestServeModes(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts, "/api/v1/modes")

	var modes []modeInfo
	if err := json.Unmarshal(body, &modes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(modes) != 3 || modes[0].Name != "complete" || modes[0].Description == "" {
		t.Errorf("modes = %+v", modes)
	}
}

func TestServeExample(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts, "/api/v1/trees/example")

	var ex exampleResponse
	if err := json.Unmarshal(body, &ex); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ex.Nodes != 11 || ex.Depth != 7 {
		t.Errorf("nodes/depth = %d/%d", ex.Nodes, ex.Depth)
	}
	if ex.Shapes["complete"] || ex.Shapes["proper"] || ex.Shapes["perfect"] {
		t.Errorf("shapes = %v", ex.Shapes)
	}
	if ex.Tree == nil || ex.Tree.Value != "A" {
		t.Errorf("tree = %+v", ex.Tree)
	}
}

func TestServeNormalize(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path         string
		contentType  string
		nodes        string
		placeholders string
		contains     string
	}{
		{"/api/v1/trees/example/complete?format=dot", "text/vnd.graphviz", "91", "80", "digraph"},
		{"/api/v1/trees/example/proper?format=json", "application/json", "15", "4", `"mode": "proper"`},
		{"/api/v1/trees/example/perfect?format=text&label=nil", "text/plain", "127", "116", "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d: %s", resp.StatusCode, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if got := resp.Header.Get("X-Tree-Nodes"); got != tt.nodes {
				t.Errorf("X-Tree-Nodes = %s, want %s", got, tt.nodes)
			}
			if got := resp.Header.Get("X-Tree-Placeholders"); got != tt.placeholders {
				t.Errorf("X-Tree-Placeholders = %s, want %s", got, tt.placeholders)
			}
			if resp.Header.Get("X-Cache") != "MISS" {
				t.Errorf("X-Cache = %q", resp.Header.Get("X-Cache"))
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestServeErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/v1/trees/example/full", http.StatusBadRequest, "INVALID_MODE"},
		{"/api/v1/trees/example/complete?format=gif", http.StatusBadRequest, "INVALID_FORMAT"},
		{"/api/v1/trees/example/complete?format=dot&title=a%22b", http.StatusBadRequest, "INVALID_LABEL"},
		{"/api/v1/trees/example/complete?format=dot&detailed=maybe", http.StatusBadRequest, "INVALID_INPUT"},
		{"/api/v1/trees/example/complete?format=dot&refresh=2", http.StatusBadRequest, "INVALID_INPUT"},
		{"/nope", http.StatusNotFound, "INVALID_PATH"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var e errorBody
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if e.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Error.Code, tt.code)
			}
		})
	}
}

func TestServeBooleanParams(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/api/v1/trees/example/proper?format=dot&detailed=true&refresh=0")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "depth: ") {
		t.Error("detailed=true did not add depth to labels")
	}
}
