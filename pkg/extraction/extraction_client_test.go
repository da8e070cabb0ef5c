package extraction

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	var gotFilename string
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		gotContent, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"description":"M6 Bolt","quantity":10,"uom":"EA","price":0.12}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	raw, err := client.Extract(context.Background(), "order.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "order.pdf", gotFilename)
	assert.Equal(t, []byte("%PDF-1.4"), gotContent)
	assert.JSONEq(t, `[{"description":"M6 Bolt","quantity":10,"uom":"EA","price":0.12}]`, string(raw))
}

func TestExtract_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "extraction model unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Extract(context.Background(), "order.pdf", "application/pdf", []byte("x"))
	require.ErrorIs(t, err, domain.ErrExtractionUpstream)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "extraction model unavailable")
}

func TestExtract_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Extract(context.Background(), "order.pdf", "application/pdf", []byte("x"))
	require.ErrorIs(t, err, domain.ErrExtractionUpstream)
}

func TestExtract_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Extract(context.Background(), "order.pdf", "application/pdf", []byte("x"))
	require.ErrorIs(t, err, domain.ErrExtractionUpstream)
}
