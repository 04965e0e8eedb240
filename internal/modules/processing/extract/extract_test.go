package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>T</title><script>var x = "hidden";</script></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>What is a REST API?</h1>
<p>An API allows two applications to communicate.</p>
<ul><li>First</li><li>Second</li></ul>
<div>Loose div text is ignored.</div>
<h6>Footnote</h6>
</body></html>`

func TestSelected(t *testing.T) {
	got := Selected(samplePage)
	assert.Equal(t, "What is a REST API?\nAn API allows two applications to communicate.\nFirst\nSecond\nFootnote\n", got)
	assert.NotContains(t, got, "hidden")
	assert.NotContains(t, got, "Loose div")
}

func TestSelected_NothingMatches(t *testing.T) {
	assert.Empty(t, Selected(`<html><body><div>only a div</div></body></html>`))
	assert.Empty(t, Selected(""))
}

func TestSelected_WhitespaceOnlyElements(t *testing.T) {
	got := Selected(`<p>   </p><li></li>`)
	assert.Equal(t, "   \n\n", got)
	assert.Empty(t, strings.TrimSpace(got))
}

func TestExtract_ReadabilityFallsBackOnShortPages(t *testing.T) {
	e := Extractor{Mode: ModeReadability}
	assert.Equal(t, Selected(samplePage), e.Extract(samplePage, "https://blog.example.com/rest"))
}

func TestExtract_SelectorsMode(t *testing.T) {
	e := Extractor{Mode: ModeSelectors}
	assert.Equal(t, Selected(samplePage), e.Extract(samplePage, ""))
}

func TestFetch_OK(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	f := NewFetcher("test-agent", 5*time.Second, 0)
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, samplePage, body)
	assert.Equal(t, "test-agent", gotUA)
}

func TestFetch_DecodesLegacyCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<p>caf\xe9</p>"))
	}))
	defer srv.Close()

	body, err := NewFetcher("", 0, 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<p>café</p>", body)
}

func TestFetch_LimitsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer srv.Close()

	body, err := NewFetcher("", 0, 10).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 10)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher("", 0, 0).Fetch(context.Background(), srv.URL)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
}

func TestFetch_RejectsScheme(t *testing.T) {
	_, err := NewFetcher("", 0, 0).Fetch(context.Background(), "ftp://example.com/file")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	_, err := NewFetcher("", time.Second, 0).Fetch(context.Background(), target)
	assert.Error(t, err)
}
