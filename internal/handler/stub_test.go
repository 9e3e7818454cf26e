package handler

import (
	"context"
	"encoding/json"
	"errors"

	"nexuscrm/internal/remote"
)

// failingStore rejects every call, forcing the fixture fallbacks.
type failingStore struct {
	err error
}

func newFailingStore() *failingStore {
	return &failingStore{err: errors.New("remote caido")}
}

func (s *failingStore) Select(context.Context, string, remote.Query) ([]json.RawMessage, error) {
	return nil, s.err
}

func (s *failingStore) GetByKey(context.Context, string, string) (json.RawMessage, error) {
	return nil, s.err
}

func (s *failingStore) Insert(context.Context, string, any) (json.RawMessage, error) {
	return nil, s.err
}

func (s *failingStore) UpdateByKey(context.Context, string, string, any) (json.RawMessage, error) {
	return nil, s.err
}
