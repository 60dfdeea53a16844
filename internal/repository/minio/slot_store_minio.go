package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

// SlotStore keeps every slot as one JSON object under slots/<key>.json.
type SlotStore struct {
	client *minio.Client
	bucket string
}

func NewSlotStore(client *minio.Client, bucket string) *SlotStore {
	return &SlotStore{client: client, bucket: bucket}
}

func objectName(key string) string {
	return path.Join("slots", key+".json")
}

func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, nil
}

func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName(key), bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put slot %s: %w", key, err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}

var _ ports.SlotStore = (*SlotStore)(nil)
