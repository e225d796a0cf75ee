package menuseed

import (
	"context"
	"fmt"

	"cafe-till/internal/config"
	"cafe-till/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used by the loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for CSV seed files stored in AWS S3.
type s3Loader struct {
	client ObjectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based menu seed loader using the default AWS
// credential chain.
func NewS3Loader(ctx context.Context, bucket, region string, logger zerolog.Logger) (Loader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 menu seed loader initialised")

	return NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, logger), nil
}

// NewS3LoaderWithClient creates an S3 loader around an existing client.
func NewS3LoaderWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger.With().Str("component", "s3-menu-seed-loader").Logger(),
	}
}

// Load fetches the object at key and parses it. Keys ending in .gz are
// decompressed.
func (l *s3Loader) Load(ctx context.Context, key string) ([]model.MenuItem, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading menu seed from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	items, err := parseMaybeGzipped(result.Body, key)
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("failed to parse menu seed from S3")
		return nil, err
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Int("items_loaded", len(items)).
		Msg("menu seed loaded successfully from S3")

	return items, nil
}

// fallbackLoader tries S3 first, then falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Prefix   string
	logger     zerolog.Logger
	s3Enabled  bool
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to
// the local file system. If s3Loader is nil, only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Prefix:   s3Prefix,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "menu-seed-fallback-loader").Logger(),
	}
}

// Load prepends the S3 prefix for the S3 attempt and uses path as-is locally.
func (l *fallbackLoader) Load(ctx context.Context, path string) ([]model.MenuItem, error) {
	if l.s3Enabled && l.s3Loader != nil {
		key := l.s3Prefix + path

		items, err := l.s3Loader.Load(ctx, key)
		if err == nil {
			return items, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", key).
			Msg("failed to load menu seed from S3, falling back to local file system")
	}

	return l.fileLoader.Load(ctx, path)
}

// NewLoader builds the loader described by cfg. With no seed file configured
// it serves DefaultItems. An S3 client that cannot be created is logged and
// the local file is used instead.
func NewLoader(ctx context.Context, cfg config.MenuSeedConfig, logger zerolog.Logger) Loader {
	if cfg.File == "" {
		logger.Info().Msg("no menu seed file configured, using built-in menu")
		return NewStaticLoader(DefaultItems())
	}

	fileLoader := NewFileLoader(logger)
	if !cfg.S3Enabled {
		return fileLoader
	}

	s3Loader, err := NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, true, logger)
}
