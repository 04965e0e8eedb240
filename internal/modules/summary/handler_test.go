package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/blog-summarizer/internal/database"
	"github.com/mx-space/blog-summarizer/internal/models"
	"github.com/mx-space/blog-summarizer/internal/modules/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(svc *Service, history *History) *gin.Engine {
	r := gin.New()
	NewHandler(svc, history, nil).RegisterRoutes(r.Group("/api"), nil)
	return r
}

func post(r http.Handler, body string) (*httptest.ResponseRecorder, map[string]string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestHandler_Success(t *testing.T) {
	f := newFixture("Article text", &stubSummarizer{summary: "The API is here"})

	w, body := post(newRouter(f.svc, nil), `{"url":"https://blog.example/post"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"englishSummary": "The API is here",
		"urduSummary":    "دی اے پی آئی ہے یہاں",
	}, body)
}

func TestHandler_MissingURL(t *testing.T) {
	f := newFixture("text", &stubSummarizer{summary: "s"})
	r := newRouter(f.svc, nil)

	for _, payload := range []string{`{}`, `{"url":""}`} {
		w, body := post(r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"error": "URL is required."}, body)
	}
	assert.Zero(t, f.fetcher.calls)
	assert.Zero(t, f.summarizer.calls)
}

func TestHandler_MalformedBody(t *testing.T) {
	f := newFixture("text", &stubSummarizer{summary: "s"})

	w, body := post(newRouter(f.svc, nil), `{"url":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body, "error")
	assert.Zero(t, f.fetcher.calls)
}

func TestHandler_EmptyExtraction(t *testing.T) {
	f := newFixture("", &stubSummarizer{summary: "s"})

	w, body := post(newRouter(f.svc, nil), `{"url":"https://blog.example/post"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgExtractionFailed, body["error"])
	assert.Zero(t, f.summarizer.calls)
}

func TestHandler_ProviderFailure(t *testing.T) {
	f := newFixture("text", &stubSummarizer{err: errors.New("connection reset")})

	w, body := post(newRouter(f.svc, nil), `{"url":"https://blog.example/post"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "AI summarization failed (Hugging Face): connection reset", body["error"])
}

func TestHandler_MissingKey(t *testing.T) {
	f := newFixture("text", nil)

	w, body := post(newRouter(f.svc, nil), `{"url":"https://blog.example/post"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Hugging Face API key is not configured on the server.", body["error"])
}

type failingStore struct{}

func (failingStore) Enabled() bool { return true }

func (failingStore) Insert(context.Context, *models.SummaryModel) (string, error) {
	return "", errors.New("insert failed")
}

func (failingStore) InsertOne(context.Context, *models.FullTextDocument) error {
	return errors.New("insert failed")
}

func TestHandler_PersistenceFailureIsInvisible(t *testing.T) {
	ok := newFixture("text", &stubSummarizer{summary: "Summary"})
	wOK, _ := post(newRouter(ok.svc, nil), `{"url":"https://blog.example/post"}`)

	failing := newFixture("text", &stubSummarizer{summary: "Summary"})
	failing.svc.recorder = archive.NewRecorder(failingStore{}, failingStore{}, nil, nil)
	wFail, _ := post(newRouter(failing.svc, nil), `{"url":"https://blog.example/post"}`)

	assert.Equal(t, http.StatusOK, wFail.Code)
	assert.Equal(t, wOK.Body.String(), wFail.Body.String())
}

func TestHandler_HistoryDisabled(t *testing.T) {
	f := newFixture("text", &stubSummarizer{summary: "s"})
	w := httptest.NewRecorder()
	newRouter(f.svc, NewHistory(nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summaries", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestHandler_History(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := database.OpenConn(sqlDB)
	require.NoError(t, err)

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `summaries`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `summaries` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "url", "english_summary", "urdu_summary"}).
			AddRow("0b6f6d8e-0000-4000-8000-000000000001", created, "https://blog.example/post", "Summary", "خلاصہ"))

	f := newFixture("text", &stubSummarizer{summary: "s"})
	w := httptest.NewRecorder()
	newRouter(f.svc, NewHistory(db)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summaries?page=1&size=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Data []struct {
			URL            string `json:"url"`
			EnglishSummary string `json:"englishSummary"`
			UrduSummary    string `json:"urduSummary"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
			Size  int   `json:"size"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "https://blog.example/post", out.Data[0].URL)
	assert.Equal(t, "خلاصہ", out.Data[0].UrduSummary)
	assert.EqualValues(t, 1, out.Pagination.Total)
	assert.Equal(t, 5, out.Pagination.Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}
