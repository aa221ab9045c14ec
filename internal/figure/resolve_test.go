package figure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestResolveSkipsNonImageModes(t *testing.T) {
	r := &Resolver{}
	for _, mode := range []types.Mode{types.ModeText, types.ModeAnalysis} {
		res := r.Resolve(context.Background(), mode, "https://example.com/paper")
		if res.Found() || res.FailReason != "" {
			t.Errorf("mode %s: expected zero resolution, got %+v", mode, res)
		}
	}
}

func TestResolveSkipsEmptyLink(t *testing.T) {
	res := (&Resolver{}).Resolve(context.Background(), types.ModeImage, "")
	if res.Found() || res.FailReason != "" {
		t.Errorf("expected zero resolution, got %+v", res)
	}
}

func TestResolveSuccess(t *testing.T) {
	ts := htmlServer(t, `<meta property="og:image" content="/fig.png">`)

	r := &Resolver{Client: ts.Client()}
	res := r.Resolve(context.Background(), types.ModeImage, ts.URL)
	if !res.Found() {
		t.Fatalf("expected figure, got fail reason %q", res.FailReason)
	}
	if res.FigureURL != ts.URL+"/fig.png" {
		t.Errorf("FigureURL = %q, want resolved absolute URL", res.FigureURL)
	}
	if res.FigureSource != ts.URL {
		t.Errorf("FigureSource = %q, want page URL", res.FigureSource)
	}
}

func TestResolveNoImageTag(t *testing.T) {
	ts := htmlServer(t, `<html><body><p>prose only</p></body></html>`)

	res := (&Resolver{Client: ts.Client()}).Resolve(context.Background(), types.ModeImage, ts.URL)
	if res.Found() {
		t.Fatal("expected failure")
	}
	if res.FailReason != "no image tag found" {
		t.Errorf("FailReason = %q", res.FailReason)
	}
	if Classify(res.FailReason) != ReasonNoImage {
		t.Errorf("classified = %q, want %q", Classify(res.FailReason), ReasonNoImage)
	}
}

func TestResolveNonHTML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
	}))
	defer ts.Close()

	res := (&Resolver{Client: ts.Client()}).Resolve(context.Background(), types.ModeImage, ts.URL)
	if res.FailReason != "non-html content" {
		t.Errorf("FailReason = %q, want non-html content", res.FailReason)
	}
	if Classify(res.FailReason) != ReasonPDFOnly {
		t.Errorf("classified = %q, want %q", Classify(res.FailReason), ReasonPDFOnly)
	}
}

func TestResolveFetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	res := (&Resolver{Client: ts.Client()}).Resolve(context.Background(), types.ModeImage, ts.URL)
	if !strings.HasPrefix(res.FailReason, "fetch error: ") {
		t.Errorf("FailReason = %q, want fetch error prefix", res.FailReason)
	}
	if Classify(res.FailReason) != Reason403 {
		t.Errorf("classified = %q, want %q", Classify(res.FailReason), Reason403)
	}
}
