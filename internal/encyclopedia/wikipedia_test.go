package encyclopedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestWikipedia(t *testing.T, handler http.HandlerFunc) (*Wikipedia, *observer.ObservedLogs) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	core, logs := observer.New(zapcore.DebugLevel)
	w := NewWikipedia(Config{
		BaseURL:           srv.URL,
		UserAgent:         "medqa-test",
		Timeout:           2 * time.Second,
		RequestsPerSecond: 100,
		Burst:             10,
	}, zap.New(core))
	return w, logs
}

func TestWikipedia_Fetch(t *testing.T) {
	var gotQuery map[string]string
	w, _ := newTestWikipedia(t, func(rw http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"titles":          r.URL.Query().Get("titles"),
			"prop":            r.URL.Query().Get("prop"),
			"exsectionformat": r.URL.Query().Get("exsectionformat"),
			"ua":              r.Header.Get("User-Agent"),
		}
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"batchcomplete":true,"query":{"pages":[{"pageid":8640,"ns":0,"title":"Diabetes","extract":"Lead.\n\n== Signs and symptoms ==\nThirst.\n\n== Cause ==\nInsulin."}]}}`))
	})

	doc, err := w.Fetch(context.Background(), "  diabetes ")
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.True(t, doc.Exists)
	assert.Equal(t, "Diabetes", doc.Title)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Signs and symptoms", doc.Sections[0].Title)
	assert.Equal(t, "Insulin.", doc.Sections[1].Text)

	assert.Equal(t, "diabetes", gotQuery["titles"])
	assert.Equal(t, "extracts", gotQuery["prop"])
	assert.Equal(t, "wiki", gotQuery["exsectionformat"])
	assert.Equal(t, "medqa-test", gotQuery["ua"])
}

func TestWikipedia_Fetch_Missing(t *testing.T) {
	w, logs := newTestWikipedia(t, func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"batchcomplete":true,"query":{"pages":[{"ns":0,"title":"Qwertyzzznotadisease","missing":true}]}}`))
	})

	doc, err := w.Fetch(context.Background(), "qwertyzzznotadisease")
	require.NoError(t, err)
	assert.False(t, doc.Exists)
	assert.Equal(t, "qwertyzzznotadisease", doc.Title)
	assert.Equal(t, 1, logs.FilterMessage("article not found").Len())
}

func TestWikipedia_Fetch_FailuresReportNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(rw http.ResponseWriter, r *http.Request) {
				http.Error(rw, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(rw http.ResponseWriter, r *http.Request) {
				_, _ = rw.Write([]byte(`{"query":`))
			},
		},
		{
			name: "invalid title",
			handler: func(rw http.ResponseWriter, r *http.Request) {
				_, _ = rw.Write([]byte(`{"query":{"pages":[{"title":"","invalid":true}]}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWikipedia(t, tt.handler)
			doc, err := w.Fetch(context.Background(), "malaria")
			require.NoError(t, err)
			assert.False(t, doc.Exists)
			assert.Empty(t, doc.Sections)
		})
	}
}

func TestWikipedia_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	w := NewWikipedia(Config{BaseURL: url, Timeout: time.Second}, zap.New(core))

	doc, err := w.Fetch(context.Background(), "malaria")
	require.NoError(t, err)
	assert.False(t, doc.Exists)
	assert.Equal(t, 1, logs.FilterMessage("article lookup failed").Len())
}

func TestWikipedia_Fetch_EmptyTopic(t *testing.T) {
	called := false
	w, _ := newTestWikipedia(t, func(rw http.ResponseWriter, r *http.Request) { called = true })

	_, err := w.Fetch(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTopic)
	assert.False(t, called)
}

func TestNewWikipedia_DefaultEndpoint(t *testing.T) {
	w := NewWikipedia(Config{Language: "fr"}, nil)
	assert.Equal(t, "https://fr.wikipedia.org/w/api.php", w.endpoint)
	assert.Equal(t, 15*time.Second, w.timeout)
}
