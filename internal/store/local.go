package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LocalClient is the demo-mode fallback: no hosted backend, one JSON
// document per collection under a data directory, read on open and rewritten
// wholesale on every mutation. With an empty directory it is purely
// in-memory, which is what the sandbox server and most tests run on.
//
// File names keep the original browser-storage key shape, so the patients
// collection lands in medassist-patients.json.
type LocalClient struct {
	dir string

	mu          sync.Mutex
	collections map[string][]Row
}

// NewLocalClient opens (or starts) a local store rooted at dir. dir may be
// "" for an in-memory store.
func NewLocalClient(dir string) (*LocalClient, error) {
	c := &LocalClient{
		dir:         dir,
		collections: make(map[string][]Row),
	}
	if dir == "" {
		return c, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range Collections {
		rows, err := readCollection(c.path(name))
		if err != nil {
			return nil, err
		}
		c.collections[name] = rows
	}
	return c, nil
}

func (c *LocalClient) path(collection string) string {
	return filepath.Join(c.dir, "medassist-"+collection+".json")
}

func (c *LocalClient) Select(_ context.Context, collection string, q Query) ([]Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := Apply(c.collections[collection], q)
	out := make([]Row, len(matched))
	for i, r := range matched {
		out[i] = r.Clone()
	}
	return out, nil
}

func (c *LocalClient) Insert(_ context.Context, collection string, row Row) (Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	r := row.Clone()
	now := FormatTime(time.Now())
	r["id"] = uuid.NewString()
	r["created_at"] = now
	if collection != SessionMessages {
		r["updated_at"] = now
	}

	c.collections[collection] = append(c.collections[collection], r)
	if err := c.persist(collection); err != nil {
		c.collections[collection] = c.collections[collection][:len(c.collections[collection])-1]
		return nil, err
	}
	return r.Clone(), nil
}

func (c *LocalClient) Update(_ context.Context, collection string, id string, row Row) (Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := c.collections[collection]
	for i, r := range rows {
		if r.Str("id") != id {
			continue
		}
		updated := r.Clone()
		for k, v := range row {
			updated[k] = v
		}
		updated["updated_at"] = FormatTime(time.Now())
		rows[i] = updated
		if err := c.persist(collection); err != nil {
			rows[i] = r
			return nil, err
		}
		return updated.Clone(), nil
	}
	return nil, ErrNotFound
}

func (c *LocalClient) Delete(_ context.Context, collection string, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := c.collections[collection]
	for i, r := range rows {
		if r.Str("id") != id {
			continue
		}
		c.collections[collection] = append(rows[:i:i], rows[i+1:]...)
		if err := c.persist(collection); err != nil {
			c.collections[collection] = rows
			return err
		}
		return nil
	}
	return ErrNotFound
}

// persist rewrites the collection file. No-op for in-memory stores.
func (c *LocalClient) persist(collection string) error {
	if c.dir == "" {
		return nil
	}
	buf, err := json.MarshalIndent(c.collections[collection], "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(c.path(collection), buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func readCollection(path string) ([]Row, error) {
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var rows []Row
	if err := json.Unmarshal(buf, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rows, nil
}
