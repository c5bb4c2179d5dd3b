package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-hub/internal/config"
)

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		publicBase(&config.Config{S3PublicURL: "https://cdn.example.com/", S3Bucket: "logos"}))

	assert.Equal(t, "http://minio:9000/logos",
		publicBase(&config.Config{S3Endpoint: "http://minio:9000", S3Bucket: "logos"}))

	assert.Equal(t, "https://logos.s3.eu-west-1.amazonaws.com",
		publicBase(&config.Config{S3Bucket: "logos", S3Region: "eu-west-1"}))
}

func TestPutUploadsToBucket(t *testing.T) {
	var (
		gotPath string
		gotType string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewS3Store(&config.Config{
		S3Bucket:    "logos",
		S3Region:    "us-east-1",
		S3Endpoint:  srv.URL,
		S3AccessKey: "key",
		S3SecretKey: "secret",
	})

	url, err := store.Put(context.Background(), "businesses/b1/logo.webp", "image/webp", []byte("webp-bytes"))

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/logos/businesses/b1/logo.webp", url)
	assert.Equal(t, "/logos/businesses/b1/logo.webp", gotPath)
	assert.Equal(t, "image/webp", gotType)
	assert.Contains(t, string(gotBody), "webp-bytes")
}
