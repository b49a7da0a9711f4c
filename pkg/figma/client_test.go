package figma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-token")
	c.BaseURL = srv.URL
	return c
}

func TestGetFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Figma-Token"); got != "test-token" {
			t.Errorf("X-Figma-Token = %q, want %q", got, "test-token")
		}
		if r.URL.Path != "/files/abc123" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/files/abc123")
		}
		w.Write([]byte(`{
			"name": "Brand Library",
			"document": {"id": "0:0", "name": "Document", "type": "DOCUMENT",
				"children": [{"id": "1:1", "name": "Page 1", "type": "CANVAS"}]},
			"styles": {"s1": {"key": "k1", "name": "Text/Body", "styleType": "TEXT"}},
			"components": {"c1": {"key": "ck1", "name": "Hero Banner"}}
		}`))
	})

	resp, err := c.GetFile(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if resp.Name != "Brand Library" {
		t.Errorf("Name = %q, want %q", resp.Name, "Brand Library")
	}
	if len(resp.Document.Children) != 1 || resp.Document.Children[0].Type != "CANVAS" {
		t.Errorf("unexpected document tree: %+v", resp.Document)
	}
	if resp.Styles["s1"].StyleType != "TEXT" {
		t.Errorf("style s1 = %+v, want TEXT style", resp.Styles["s1"])
	}
	if resp.Components["c1"].Name != "Hero Banner" {
		t.Errorf("component c1 = %+v", resp.Components["c1"])
	}
}

func TestGetFileNodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/abc123/nodes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "1:2,3:4" {
			t.Errorf("ids = %q, want %q", got, "1:2,3:4")
		}
		w.Write([]byte(`{"name": "Brand Library", "nodes": {
			"1:2": {"document": {"id": "1:2", "name": "hellofresh", "type": "FRAME"}}
		}}`))
	})

	resp, err := c.GetFileNodes(context.Background(), "abc123", []string{"1:2", "3:4"})
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	if resp.Nodes["1:2"].Document.Name != "hellofresh" {
		t.Errorf("node 1:2 = %+v", resp.Nodes["1:2"])
	}
}

func TestGetLocalVariablesForbidden(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status": 403, "err": "Limited by plan"}`))
	})

	_, err := c.GetLocalVariables(context.Background(), "abc123")
	if err == nil {
		t.Fatal("GetLocalVariables() error = nil, want *APIError")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", apiErr.Status)
	}
}

func TestGetFileServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := c.GetFile(context.Background(), "abc123")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Body != "boom" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestPaintIsVisible(t *testing.T) {
	var p Paint
	if err := json.Unmarshal([]byte(`{"type": "SOLID"}`), &p); err != nil {
		t.Fatal(err)
	}
	if !p.IsVisible() {
		t.Error("paint without visible flag should be visible")
	}

	if err := json.Unmarshal([]byte(`{"type": "SOLID", "visible": false}`), &p); err != nil {
		t.Fatal(err)
	}
	if p.IsVisible() {
		t.Error("paint with visible=false should be hidden")
	}
}

func TestVariableColorValue(t *testing.T) {
	var v Variable
	err := json.Unmarshal([]byte(`{
		"id": "v1", "name": "colour/red/500", "resolvedType": "COLOR",
		"valuesByMode": {
			"m1": {"r": 1, "g": 0, "b": 0, "a": 1},
			"m2": {"type": "VARIABLE_ALIAS", "id": "v2"}
		}
	}`), &v)
	if err != nil {
		t.Fatal(err)
	}

	c, ok := v.ColorValue("m1")
	if !ok {
		t.Fatal("ColorValue(m1) not ok, want color literal")
	}
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("ColorValue(m1) = %+v", c)
	}

	if _, ok := v.ColorValue("m2"); ok {
		t.Error("ColorValue(m2) ok for alias, want false")
	}
	if _, ok := v.ColorValue("missing"); ok {
		t.Error("ColorValue(missing) ok, want false")
	}
}
