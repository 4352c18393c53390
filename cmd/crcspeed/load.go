package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pierrec/lz4/v4"
)

var errInvalidObjectURL = errors.New("invalid object url")

// s3Config locates the object store for s3:// sources.
type s3Config struct {
	Endpoint string
	Region   string
	Insecure bool
}

// load reads src fully into memory. src is a local path or s3://bucket/key;
// .gz, .zst and .lz4 sources are decompressed, so the CRC covers the
// decoded bytes.
func load(ctx context.Context, src string, cfg s3Config) ([]byte, error) {
	var (
		r    io.Reader
		name = src
	)

	if strings.HasPrefix(src, "s3://") {
		obj, err := openObject(ctx, src, cfg)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", src, err)
		}
		defer obj.Close()
		r = obj
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec, closeFn, err := decoder(name, r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	defer closeFn()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// decoder wraps r in a decompressor chosen by the extension of name.
func decoder(name string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// parseObjectURL splits s3://bucket/key.
func parseObjectURL(src string) (bucket, key string, err error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", errInvalidObjectURL, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", errInvalidObjectURL, src)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: missing key in %q", errInvalidObjectURL, src)
	}
	return u.Host, key, nil
}

func openObject(ctx context.Context, src string, cfg s3Config) (*minio.Object, error) {
	bucket, key, err := parseObjectURL(src)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds: credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.EnvMinio{},
			&credentials.FileAWSCredentials{},
		}),
		Secure: !cfg.Insecure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; a missing key only surfaces on the first Read.
	if _, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" || errResp.Code == "NoSuchBucket" {
			return nil, fmt.Errorf("%w: %s", os.ErrNotExist, src)
		}
		return nil, err
	}

	return client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
}
