package stocktake

import (
	"bytes"
	"context"
	"io"
	"testing"

	"stocktake-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStaging(t *testing.T) {
	s := NewMemoryStaging()
	ctx := context.Background()

	_, err := s.Get(ctx, "s1", KindCounts)
	assert.ErrorIs(t, err, ErrNotStaged)

	require.NoError(t, s.Put(ctx, "s1", KindCounts, "Barcode,Qty\n1,2"))
	text, err := s.Get(ctx, "s1", KindCounts)
	require.NoError(t, err)
	assert.Equal(t, "Barcode,Qty\n1,2", text)

	// Sessions are isolated.
	_, err = s.Get(ctx, "s2", KindCounts)
	assert.ErrorIs(t, err, ErrNotStaged)

	require.NoError(t, s.Delete(ctx, "s1", KindCounts))
	_, err = s.Get(ctx, "s1", KindCounts)
	assert.ErrorIs(t, err, ErrNotStaged)
}

// noSuchKeyReader fails its first read with a minio NoSuchKey error, the way
// a lazily-opened missing object does.
type noSuchKeyReader struct{}

func (noSuchKeyReader) Read([]byte) (int, error) {
	return 0, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
}

func (noSuchKeyReader) Close() error { return nil }

func TestObjectStaging(t *testing.T) {
	ctx := context.Background()

	t.Run("PutAndGet", func(t *testing.T) {
		client := new(mocks.Client)
		s := NewObjectStaging(client, "stocktake", "staging")

		client.On("PutObject", mock.Anything, "stocktake", "staging/s1/counts.txt", mock.Anything, int64(11), mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("GetObject", mock.Anything, "stocktake", "staging/s1/counts.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("Barcode\n123"))), nil)

		require.NoError(t, s.Put(ctx, "s1", KindCounts, "Barcode\n123"))

		text, err := s.Get(ctx, "s1", KindCounts)
		require.NoError(t, err)
		assert.Equal(t, "Barcode\n123", text)
		client.AssertExpectations(t)
	})

	t.Run("GetMissing", func(t *testing.T) {
		client := new(mocks.Client)
		s := NewObjectStaging(client, "stocktake", "staging")

		client.On("GetObject", mock.Anything, "stocktake", "staging/s1/journal.txt", mock.Anything).
			Return(io.ReadCloser(noSuchKeyReader{}), nil)

		_, err := s.Get(ctx, "s1", KindJournal)
		assert.ErrorIs(t, err, ErrNotStaged)
	})

	t.Run("Init", func(t *testing.T) {
		client := new(mocks.Client)
		s := NewObjectStaging(client, "stocktake", "staging")

		client.On("BucketExists", mock.Anything, "stocktake").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "stocktake", mock.Anything).Return(nil)

		require.NoError(t, s.Init(ctx))
		client.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		client := new(mocks.Client)
		s := NewObjectStaging(client, "stocktake", "staging")

		client.On("RemoveObject", mock.Anything, "stocktake", "staging/s1/counts.txt", mock.Anything).Return(nil)

		require.NoError(t, s.Delete(ctx, "s1", KindCounts))
	})
}
