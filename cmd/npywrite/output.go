package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arloliu/npy/errs"
	"github.com/arloliu/npy/format"
	"github.com/arloliu/npy/target"
)

const (
	s3Scheme    = "s3://"
	minioScheme = "minio://"
)

// splitObjectURL splits "bucket/key/with/slashes" into bucket and key.
func splitObjectURL(rest string) (string, string, error) {
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("object output must be <scheme>://bucket/key, got %q", rest)
	}

	return bucket, key, nil
}

// resolveTarget turns the output setting into a target, wrapped in the
// configured compression.
func resolveTarget(ctx context.Context, cfg *Config, stdout io.Writer) (target.Target, error) {
	compression, ok := format.ParseCompression(cfg.Compression)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, cfg.Compression)
	}

	var (
		t   target.Target
		err error
	)
	switch {
	case cfg.Output == "" || cfg.Output == "-":
		t = target.Stream(stdout)
	case strings.HasPrefix(cfg.Output, s3Scheme):
		t, err = s3Target(ctx, cfg, strings.TrimPrefix(cfg.Output, s3Scheme))
	case strings.HasPrefix(cfg.Output, minioScheme):
		t, err = minioTarget(ctx, cfg, strings.TrimPrefix(cfg.Output, minioScheme))
	default:
		var opts []target.FileOption
		if cfg.Atomic {
			opts = append(opts, target.WithAtomicRename())
		}
		t = target.File(cfg.Output, opts...)
	}
	if err != nil {
		return nil, err
	}

	return target.Compressed(t, compression), nil
}

func s3Target(ctx context.Context, cfg *Config, rest string) (target.Target, error) {
	bucket, key, err := splitObjectURL(rest)
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.S3.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.S3.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if o.Region == "" {
			o.Region = "us-east-1"
		}
	})

	return target.S3(ctx, client, bucket, key,
		target.WithContentType(cfg.S3.ContentType),
		target.WithPartSize(cfg.S3.PartSize),
	), nil
}

func minioTarget(ctx context.Context, cfg *Config, rest string) (target.Target, error) {
	bucket, key, err := splitObjectURL(rest)
	if err != nil {
		return nil, err
	}

	if cfg.Minio.Endpoint == "" {
		return nil, fmt.Errorf("minio output requires minio.endpoint in the config file")
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return target.Minio(ctx, client, bucket, key), nil
}
