package stocktake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"stocktake-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Blob kinds a session can stage.
const (
	KindCounts  = "counts"
	KindJournal = "journal"
)

// ErrNotStaged is returned by Staging.Get when a session has no blob of the
// requested kind.
var ErrNotStaged = errors.New("blob not staged")

// Staging is the key-value blob store that holds uploaded count and journal
// text between the upload and variance steps of a stock take session.
type Staging interface {
	// Put stores a text blob for a session.
	Put(ctx context.Context, session, kind, text string) error
	// Get retrieves a staged blob, returning ErrNotStaged when absent.
	Get(ctx context.Context, session, kind string) (string, error)
	// Delete removes a staged blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, session, kind string) error
}

// ObjectStaging stages blobs in object storage so sessions survive restarts
// and multiple service instances see the same uploads.
type ObjectStaging struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStaging creates a staging store backed by the given bucket.
func NewObjectStaging(client storage.Client, bucket, prefix string) *ObjectStaging {
	return &ObjectStaging{client: client, bucket: bucket, prefix: prefix}
}

// Init ensures the staging bucket exists.
func (s *ObjectStaging) Init(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check staging bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create staging bucket: %w", err)
		}
	}
	return nil
}

func (s *ObjectStaging) key(session, kind string) string {
	return s.prefix + "/" + session + "/" + kind + ".txt"
}

// Put implements Staging.
func (s *ObjectStaging) Put(ctx context.Context, session, kind, text string) error {
	reader := strings.NewReader(text)
	_, err := s.client.PutObject(ctx, s.bucket, s.key(session, kind), reader, int64(len(text)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to stage %s blob: %w", kind, err)
	}
	return nil
}

// Get implements Staging.
func (s *ObjectStaging) Get(ctx context.Context, session, kind string) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(session, kind), minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to open staged %s blob: %w", kind, err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		// Minio reports missing keys on first read, not on open.
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return "", ErrNotStaged
		}
		return "", fmt.Errorf("failed to read staged %s blob: %w", kind, err)
	}
	return string(b), nil
}

// Delete implements Staging.
func (s *ObjectStaging) Delete(ctx context.Context, session, kind string) error {
	return s.client.RemoveObject(ctx, s.bucket, s.key(session, kind), minio.RemoveObjectOptions{})
}

// MemoryStaging is an in-memory Staging implementation for tests and for
// running the CLI pipeline without object storage.
type MemoryStaging struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryStaging creates an empty in-memory staging store.
func NewMemoryStaging() *MemoryStaging {
	return &MemoryStaging{blobs: make(map[string]string)}
}

// Put implements Staging.
func (s *MemoryStaging) Put(_ context.Context, session, kind, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[session+"/"+kind] = text
	return nil
}

// Get implements Staging.
func (s *MemoryStaging) Get(_ context.Context, session, kind string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.blobs[session+"/"+kind]
	if !ok {
		return "", ErrNotStaged
	}
	return text, nil
}

// Delete implements Staging.
func (s *MemoryStaging) Delete(_ context.Context, session, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, session+"/"+kind)
	return nil
}
