// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/ai"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/rating"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/search"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const questionsJSON = `[
	{"difficulty":"Easy","context":"Membrane transport operates across gradients.","scenario":"Which process requires ATP?","options":["Osmosis","Facilitated diffusion","Active transport","Simple diffusion"],"correctAnswer":"C","explanation":"Active transport moves solutes against their gradient."},
	{"difficulty":"Medium","context":"","scenario":"Which organelle hosts the citric acid cycle?","options":["Nucleus","Mitochondrion","Golgi","Lysosome"],"correctAnswer":"B","explanation":"The matrix of the mitochondrion hosts the cycle."},
	{"difficulty":"Hard","context":"","scenario":"Which enzyme unwinds DNA at the replication fork?","options":["Ligase","Primase","Helicase","Topoisomerase"],"correctAnswer":"C","explanation":"Helicase separates the strands."}
]`

type stubAI struct {
	response string
	err      error
}

func (s *stubAI) Chat(_ context.Context, _ []ai.Message) (string, error) {
	return s.response, s.err
}

func newTestServer(t *testing.T, client ai.Client) *Server {
	t.Helper()

	store, err := rating.NewStore(filepath.Join(t.TempDir(), "pk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := search.New(types.SearchConfig{}, nil, nil)

	srv := New(types.AppConfig{}, svc, store, map[string]string{"gemini-api-key": "stored-key"}, nil)
	srv.NewAIClient = func(_ ai.ModelType, _ string) (ai.Client, error) {
		return client, nil
	}
	return srv
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchPaper(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/search_paper", `{"subject":"photosynthesis"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Papers []types.Paper `json:"papers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Papers, 3)
	assert.Contains(t, resp.Papers[0].Title, "photosynthesis")
}

func TestSearchPaperRequiresSubject(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/search_paper", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateQuestions(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: questionsJSON})
	body := `{"paper":{"title":"T","link":"https://example.com/p"},"subject":"cell biology","mode":"text","language":"en"}`
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/generate_questions", body, map[string]string{"x-api-key": "k"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result types.GenerationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Questions, 3)
	assert.Equal(t, types.ModeText, result.Meta.ModeUsed)
	assert.Equal(t, "Multiple Choice", result.Questions[0].Type)
	assert.Equal(t, "https://example.com/p", result.Questions[0].PaperURL)
}

func TestGenerateQuestionsUsesStoredKey(t *testing.T) {
	var gotKey string
	srv := newTestServer(t, &stubAI{response: questionsJSON})
	srv.NewAIClient = func(_ ai.ModelType, apiKey string) (ai.Client, error) {
		gotKey = apiKey
		return &stubAI{response: questionsJSON}, nil
	}

	body := `{"paper":{"title":"T"},"subject":"s","mode":"text"}`
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/generate_questions", body, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "stored-key", gotKey)
}

func TestGenerateQuestionsMissingKey(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: questionsJSON})
	body := `{"paper":{"title":"T"},"subject":"s","mode":"text"}`
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/generate_questions", body, map[string]string{"x-model-type": "openai"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing API key")
}

func TestGenerateQuestionsBadAIOutput(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: "I cannot help with that."})
	body := `{"paper":{"title":"T"},"subject":"s","mode":"text"}`
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/generate_questions", body, map[string]string{"x-api-key": "k"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "non-JSON")
}

func TestProxyImage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fig.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	srv := newTestServer(t, &stubAI{})
	r := srv.Router()

	t.Run("relays allowed image", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/proxy_image?url="+upstream.URL+"/fig.png", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/proxy_image?url="+upstream.URL+"/page.html", "", nil)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("upstream error is a bad gateway", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/proxy_image?url="+upstream.URL+"/missing.png", "", nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/proxy_image?url=file:///etc/passwd", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPKStartAndRateAndHistory(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	r := srv.Router()

	startBody := `{"questions":[
		{"id":"q1","difficulty":"Easy","scenario":"s1"},
		{"id":"q2","difficulty":"Easy","scenario":"s2"}
	]}`
	w := doJSON(t, r, http.MethodPost, "/api/pk/start", startBody, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		Left  types.Question `json:"left"`
		Right types.Question `json:"right"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	assert.NotEqual(t, pair.Left.ID, pair.Right.ID)

	w = doJSON(t, r, http.MethodPost, "/api/pk/rate", `{"userId":"u1","ratingType":"goodbad","qidWinner":"q1","qidLoser":"q2"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/pk/history?kind=good", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hist struct {
		History []rating.HistoryEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hist))
	require.Len(t, hist.History, 1)
	assert.Equal(t, "q1", hist.History[0].QID)
	assert.Equal(t, 1, hist.History[0].Count)
}

func TestPKStartNotEnoughQuestions(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/pk/start", `{"questions":[{"id":"q1"}]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPKRateUnknownType(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	w := doJSON(t, srv.Router(), http.MethodPost, "/api/pk/rate", `{"userId":"u1","ratingType":"stars"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPKHistoryUnknownKind(t *testing.T) {
	srv := newTestServer(t, &stubAI{})
	w := doJSON(t, srv.Router(), http.MethodGet, "/api/pk/history?kind=spicy", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
