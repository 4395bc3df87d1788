package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/setcover/blobstore"
	minioblob "github.com/hupe1980/setcover/blobstore/minio"
	s3blob "github.com/hupe1980/setcover/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// location is a parsed dataset reference.
type location struct {
	Scheme   string // "", "s3" or "minio"
	Endpoint string // minio host:port
	Bucket   string
	Name     string // object key or local path
}

// parseLocation accepts a local path, s3://bucket/key or
// minio://host[:port]/bucket/key.
func parseLocation(raw string) (location, error) {
	scheme, _, ok := strings.Cut(raw, "://")
	if !ok {
		return location{Name: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return location{}, fmt.Errorf("invalid dataset URI %q: %w", raw, err)
	}
	path := strings.TrimPrefix(u.Path, "/")

	switch scheme {
	case "s3":
		if u.Host == "" {
			return location{}, fmt.Errorf("invalid dataset URI %q: missing bucket", raw)
		}
		return location{Scheme: "s3", Bucket: u.Host, Name: path}, nil
	case "minio":
		bucket, key, _ := strings.Cut(path, "/")
		if u.Host == "" || bucket == "" {
			return location{}, fmt.Errorf("invalid dataset URI %q: want minio://host/bucket/key", raw)
		}
		return location{Scheme: "minio", Endpoint: u.Host, Bucket: bucket, Name: key}, nil
	default:
		return location{}, fmt.Errorf("unsupported dataset scheme %q", scheme)
	}
}

// openStore returns the store holding loc.Name.
func openStore(ctx context.Context, cfg StoreConfig, loc location) (blobstore.Store, error) {
	switch loc.Scheme {
	case "s3":
		var opts []func(*s3blob.Options)
		if cfg.S3Region != "" {
			opts = append(opts, s3blob.WithRegion(cfg.S3Region))
		}
		if cfg.S3Endpoint != "" {
			opts = append(opts, s3blob.WithEndpoint(cfg.S3Endpoint))
		}
		return s3blob.New(ctx, loc.Bucket, opts...)
	case "minio":
		client, err := minio.New(loc.Endpoint, &minio.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: cfg.MinioSecure,
		})
		if err != nil {
			return nil, err
		}
		return minioblob.NewStore(client, loc.Bucket, ""), nil
	default:
		return blobstore.NewLocalStore(""), nil
	}
}
