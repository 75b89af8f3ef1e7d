package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentServiceAnalyze(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sentiment": "positive"}`))
	}))
	defer ts.Close()

	svc := NewSentimentService(&config.Config{SentimentAnalyzerURL: ts.URL + "/", HTTPTimeout: time.Second})

	label, err := svc.Analyze(context.Background(), "great car/fast")
	require.NoError(t, err)
	assert.Equal(t, "positive", label)
	assert.Equal(t, "/analyze/great%20car%2Ffast", gotPath)
}

func TestSentimentServiceErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze/down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer ts.Close()

	svc := NewSentimentService(&config.Config{SentimentAnalyzerURL: ts.URL, HTTPTimeout: time.Second})

	_, err := svc.Analyze(context.Background(), "down")
	assert.Error(t, err)

	_, err = svc.Analyze(context.Background(), "empty")
	assert.Error(t, err)

	_, err = NewSentimentService(&config.Config{HTTPTimeout: time.Second}).Analyze(context.Background(), "x")
	assert.Error(t, err)
}
