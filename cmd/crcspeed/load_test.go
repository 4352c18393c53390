package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/crcspeed/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func lz4Bytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	data := testutil.NewRNG(4711).Bytes(100_000)

	tests := []struct {
		name    string
		content []byte
	}{
		{"plain.bin", data},
		{"data.gz", gzipBytes(t, data)},
		{"data.zst", zstdBytes(t, data)},
		{"DATA.ZSTD", zstdBytes(t, data)},
		{"data.lz4", lz4Bytes(t, data)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, tc.name, tc.content)

			got, err := load(context.Background(), p, s3Config{})
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(context.Background(), filepath.Join(t.TempDir(), "nope"), s3Config{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCorruptCompressed(t *testing.T) {
	p := writeFile(t, "broken.gz", []byte("definitely not gzip"))

	_, err := load(context.Background(), p, s3Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.gz")
}

func TestParseObjectURL(t *testing.T) {
	tests := []struct {
		in     string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://bucket/key.bin", "bucket", "key.bin", true},
		{"s3://bucket/nested/path/data.zst", "bucket", "nested/path/data.zst", true},
		{"s3://bucket", "", "", false},
		{"s3:///key", "", "", false},
		{"http://bucket/key", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			bucket, key, err := parseObjectURL(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, errInvalidObjectURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.bucket, bucket)
			assert.Equal(t, tc.key, key)
		})
	}
}

// newObjectServer serves objects as a path-style S3 endpoint. Unknown keys
// answer 404 NoSuchKey.
func newObjectServer(t *testing.T, objects map[string][]byte) s3Config {
	t.Helper()
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := objects[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
			return
		}

		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Last-Modified", modTime.Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(data)
		}
	}))
	t.Cleanup(srv.Close)

	return s3Config{
		Endpoint: strings.TrimPrefix(srv.URL, "http://"),
		Region:   "us-east-1",
		Insecure: true,
	}
}

func TestLoadObject(t *testing.T) {
	data := testutil.NewRNG(77).Bytes(50_000)
	cfg := newObjectServer(t, map[string][]byte{
		"bucket/key.bin":         data,
		"bucket/nested/data.zst": zstdBytes(t, data),
	})

	for _, src := range []string{"s3://bucket/key.bin", "s3://bucket/nested/data.zst"} {
		t.Run(src, func(t *testing.T) {
			got, err := load(context.Background(), src, cfg)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestLoadObjectNotFound(t *testing.T) {
	cfg := newObjectServer(t, nil)

	_, err := load(context.Background(), "s3://bucket/key.bin", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "s3://bucket/key.bin")
}

func TestLoadObjectInvalidURL(t *testing.T) {
	_, err := load(context.Background(), "s3://bucket", s3Config{Endpoint: "127.0.0.1:1"})
	assert.ErrorIs(t, err, errInvalidObjectURL)
}
