package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const recordExt = ".mp"

var (
	// ErrNotFound is returned by Get for an unknown record ID.
	ErrNotFound = errors.New("record not found")
	// ErrSchema is returned for records written by an incompatible version.
	ErrSchema = errors.New("record schema mismatch")
)

// Store keeps compilation records as msgpack files in one directory.
// Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open creates dir if needed and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string { return s.dir }

func (s *Store) pathFor(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid record id %q: %w", id, ErrNotFound)
	}
	return filepath.Join(s.dir, id+recordExt), nil
}

// newID: sortable timestamp plus a content hash prefix.
func newID(rec *Record) string {
	h := sha256.New()
	h.Write([]byte(rec.Language))
	h.Write([]byte{0})
	h.Write([]byte(rec.Code))
	h.Write([]byte(rec.CreatedAt.Format(time.RFC3339Nano)))
	sum := hex.EncodeToString(h.Sum(nil))
	return rec.CreatedAt.UTC().Format("20060102T150405") + "-" + sum[:10]
}

// Put assigns an ID (and CreatedAt when zero) and writes rec atomically.
func (s *Store) Put(rec *Record) (string, error) {
	if rec == nil {
		return "", errors.New("store: nil record")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Schema = schemaVersion
	if rec.ID == "" {
		rec.ID = newID(rec)
	}
	p, err := s.pathFor(rec.ID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(rec); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return rec.ID, nil
}

// Get reads one record.
func (s *Store) Get(id string) (*Record, error) {
	p, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readRecord(p)
}

func readRecord(p string) (*Record, error) {
	data, err := os.ReadFile(p) // #nosec G304 -- path is built from the store directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var rec Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(p), err)
	}
	if rec.Schema != schemaVersion {
		return nil, fmt.Errorf("%s: %w (have %d, want %d)", filepath.Base(p), ErrSchema, rec.Schema, schemaVersion)
	}
	return &rec, nil
}

// List returns all readable records, newest first. Records of another
// schema are skipped.
func (s *Store) List() ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		rec, err := readRecord(filepath.Join(s.dir, e.Name()))
		if errors.Is(err, ErrSchema) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Delete removes one record.
func (s *Store) Delete(id string) error {
	p, err := s.pathFor(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Drop removes every record and leftover temp file; the directory stays.
func (s *Store) Drop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (!strings.HasSuffix(name, recordExt) && !strings.HasPrefix(name, "tmp-")) {
			continue
		}
		errs = append(errs, os.Remove(filepath.Join(s.dir, name)))
	}
	return errors.Join(errs...)
}
