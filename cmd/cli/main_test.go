package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestBillsRmCmd(t *testing.T) {
	var gotPath, gotOwner string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotOwner = r.Header.Get("X-Owner-ID")
		_ = json.NewEncoder(w).Encode(map[string]any{"deleted_count": 3})
	}))
	defer server.Close()

	baseURL = server.URL
	ownerID = "owner-1"

	cmd := billsRmCmd()
	cmd.SetArgs([]string{"bill-1", "--scope", "this-and-future"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if gotPath != "/api/v1/bills/bill-1?scope=this-and-future" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotOwner != "owner-1" {
		t.Fatalf("expected owner header, got %q", gotOwner)
	}
	if strings.TrimSpace(out) != "deleted 3 bill(s)" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDoRequestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found", "message": "bill not found"})
	}))
	defer server.Close()

	baseURL = server.URL
	ownerID = "owner-1"

	err := doRequest(http.MethodGet, "/api/v1/bills/missing", nil, nil)
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "bill not found") {
		t.Fatalf("expected API message in error, got %v", err)
	}
}
