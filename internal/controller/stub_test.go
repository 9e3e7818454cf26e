package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
)

var errRemoteDown = errors.New("remote caido")

// ── In-memory remote.Store ───────────────────────────────────────────────────

type stubStore struct {
	rows    map[string][]json.RawMessage // collection → ordered rows
	byKey   map[string]json.RawMessage   // "collection/id" → row
	failAll bool
	fail    map[string]bool // per-collection failure

	inserts []string // collections inserted into
	updates []string // "collection/id" updated
}

func newStubStore() *stubStore {
	return &stubStore{
		rows:  make(map[string][]json.RawMessage),
		byKey: make(map[string]json.RawMessage),
		fail:  make(map[string]bool),
	}
}

func (s *stubStore) put(collection string, records ...any) {
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			panic(err)
		}
		s.rows[collection] = append(s.rows[collection], data)
	}
}

func (s *stubStore) putKeyed(collection, id string, record any) {
	data, err := json.Marshal(record)
	if err != nil {
		panic(err)
	}
	s.byKey[collection+"/"+id] = data
}

func (s *stubStore) Select(_ context.Context, collection string, _ remote.Query) ([]json.RawMessage, error) {
	if s.failAll || s.fail[collection] {
		return nil, errRemoteDown
	}
	return s.rows[collection], nil
}

func (s *stubStore) GetByKey(_ context.Context, collection, id string) (json.RawMessage, error) {
	if s.failAll || s.fail[collection] {
		return nil, errRemoteDown
	}
	row, ok := s.byKey[collection+"/"+id]
	if !ok {
		return nil, remote.ErrNoRows
	}
	return row, nil
}

func (s *stubStore) Insert(_ context.Context, collection string, record any) (json.RawMessage, error) {
	s.inserts = append(s.inserts, collection)
	if s.failAll || s.fail[collection] {
		return nil, errRemoteDown
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	// The server assigns the id and creation date on insert.
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m["id"] = fmt.Sprintf("srv-%d", len(s.inserts))
	m["created_at"] = "2024-03-01"
	return json.Marshal(m)
}

func (s *stubStore) UpdateByKey(_ context.Context, collection, id string, _ any) (json.RawMessage, error) {
	s.updates = append(s.updates, collection+"/"+id)
	if s.failAll || s.fail[collection] {
		return nil, errRemoteDown
	}
	return json.RawMessage(`{}`), nil
}

func newTestNotify() *notify.Store {
	return notify.New(time.Second, time.Minute)
}
