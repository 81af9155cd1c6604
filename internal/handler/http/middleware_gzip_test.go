// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzipBody(t *testing.T, body io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     []byte
		gzipRequest     bool
		wantStatus      int
		wantBody        string
		wantGzipped     bool
		wantDecoded     bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       "Hello, World!",
			wantGzipped:    true,
		},
		{
			name:       "no compression when client doesn't accept gzip",
			wantStatus: http.StatusOK,
			wantBody:   "Hello, World!",
		},
		{
			name:           "accept-encoding with multiple values including gzip",
			acceptEncoding: "deflate, gzip, br",
			wantStatus:     http.StatusOK,
			wantBody:       "Hello, World!",
			wantGzipped:    true,
		},
		{
			name:           "accept-encoding with gzip and quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			wantStatus:     http.StatusOK,
			wantBody:       "Hello, World!",
			wantGzipped:    true,
		},
		{
			name:            "decompress gzipped request body",
			contentEncoding: "gzip",
			requestBody:     []byte("Request data"),
			gzipRequest:     true,
			wantStatus:      http.StatusOK,
			wantDecoded:     true,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			requestBody:     []byte("Request data"),
			gzipRequest:     true,
			wantStatus:      http.StatusOK,
			wantBody:        "Processed: Request data",
			wantGzipped:     true,
			wantDecoded:     true,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			requestBody:     []byte("not gzipped data"),
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:           "large response body compression",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       strings.Repeat("Large data ", 1000),
			wantGzipped:    true,
		},
		{
			name:           "compress JSON response",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       `{"message":"Hello","data":[1,2,3,4,5]}`,
			wantGzipped:    true,
		},
		{
			name:            "content-encoding with multiple values including gzip",
			contentEncoding: "gzip, deflate",
			requestBody:     []byte("Request data"),
			gzipRequest:     true,
			wantStatus:      http.StatusOK,
			wantDecoded:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.wantDecoded && r.Body != nil {
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.Equal(t, string(tt.requestBody), string(body), "request body should arrive decompressed")
					assert.Empty(t, r.Header.Get("Content-Encoding"), "Content-Encoding should be stripped")
				}

				w.WriteHeader(tt.wantStatus)
				if tt.wantBody != "" {
					if tt.wantDecoded {
						w.Write([]byte("Processed: " + string(tt.requestBody)))
					} else {
						w.Write([]byte(tt.wantBody))
					}
				}
			})

			var requestBody io.Reader
			if tt.requestBody != nil {
				if tt.gzipRequest {
					requestBody = gzipBytes(t, tt.requestBody)
				} else {
					requestBody = bytes.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/test", requestBody)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzipBody(t, rr.Body))
			} else if tt.wantBody != "" && tt.wantStatus == http.StatusOK {
				assert.NotEqual(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

// repetitive payloads should actually shrink, not just gain a header
func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10, "compressed size should be much smaller than original")
}

// pooled writers must produce valid output across sequential requests
func TestGZip_MultipleRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Response"))
	})
	middleware := withGZip(next)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"), "request %d missing gzip encoding", i)
		assert.Equal(t, "Response", gunzipBody(t, rr.Body), "request %d: wrong response", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Concurrent response"))
	})
	middleware := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			zr, err := gzip.NewReader(rr.Body)
			if err == nil {
				io.ReadAll(zr)
				zr.Close()
			}
		}()
	}
	wg.Wait()
}

func TestGZip_RequestBodyPoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
	middleware := withGZip(next)

	for i := 0; i < 5; i++ {
		testData := []byte("Test data " + string(rune('0'+i)))

		req := httptest.NewRequest(http.MethodPost, "/test", gzipBytes(t, testData))
		req.Header.Set("Content-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(testData), rr.Body.String(), "request %d: wrong body", i)
	}
}

func TestGZipResponseWriter_WriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("Created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closed = true },
	}

	require.NoError(t, wrapped.Close())
	assert.True(t, closed, "OnClose should be called")
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("test")}
	assert.NoError(t, wrapped.Close(), "Close should not fail when OnClose is nil")
}
