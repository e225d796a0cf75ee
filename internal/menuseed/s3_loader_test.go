package menuseed

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"cafe-till/internal/config"
	"cafe-till/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves objects from memory.
type fakeS3 struct {
	objects map[string][]byte
	keys    []string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := *params.Key
	f.keys = append(f.keys, *params.Bucket+"/"+key)

	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]model.MenuItem, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]model.MenuItem, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestS3Loader_Load(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{
		"menus/menu.csv":    []byte("Tea,10\nCoffee,20\n"),
		"menus/menu.csv.gz": gzipped(t, "Pizza,150\n"),
	}}
	loader := NewS3LoaderWithClient(client, "cafe-menus", zerolog.Nop())
	ctx := context.Background()

	items, err := loader.Load(ctx, "menus/menu.csv")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Coffee", items[1].Name)

	items, err = loader.Load(ctx, "menus/menu.csv.gz")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pizza", items[0].Name)

	_, err = loader.Load(ctx, "menus/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket=cafe-menus")

	assert.Equal(t, []string{
		"cafe-menus/menus/menu.csv",
		"cafe-menus/menus/menu.csv.gz",
		"cafe-menus/menus/missing.csv",
	}, client.keys)
}

func TestFallbackLoader_S3Success(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			assert.Equal(t, "menus/menu.csv", path, "S3 key should have prefix")
			return []model.MenuItem{{Name: "FromS3"}}, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "menus/", true, zerolog.Nop())

	items, err := fallback.Load(context.Background(), "menu.csv")
	require.NoError(t, err)
	assert.Equal(t, "FromS3", items[0].Name)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			assert.Equal(t, "menu.csv", path, "local path should not have prefix")
			return []model.MenuItem{{Name: "FromDisk"}}, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "menus/", true, zerolog.Nop())

	items, err := fallback.Load(context.Background(), "menu.csv")
	require.NoError(t, err)
	assert.Equal(t, "FromDisk", items[0].Name)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	s3Called := false
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			s3Called = true
			return nil, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.MenuItem, error) {
			return nil, errors.New("disk failure")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "menus/", false, zerolog.Nop())

	_, err := fallback.Load(context.Background(), "menu.csv")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk failure"))
	assert.False(t, s3Called)
}

func TestNewLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("No file uses built-in menu", func(t *testing.T) {
		loader := NewLoader(ctx, config.MenuSeedConfig{}, zerolog.Nop())

		items, err := loader.Load(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultItems(), items)
	})

	t.Run("File without S3 reads local file", func(t *testing.T) {
		path := writeSeedFile(t, "menu.csv", "Muffin,35\n")
		loader := NewLoader(ctx, config.MenuSeedConfig{File: path}, zerolog.Nop())

		items, err := loader.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Muffin", items[0].Name)
	})
}
