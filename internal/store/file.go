package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in <dir>/<name>.json, pretty-printed so the
// files stay hand-inspectable. It is the primary backend.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return s.Save(ctx, name, v)
		}
		return unavailable("read", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Unparseable content is treated the same as an absent file: the
		// caller's default becomes the new document.
		return s.Save(ctx, name, v)
	}
	return nil
}

func (s *FileStore) Save(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return unavailable("mkdir", name, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return unavailable("encode", name, err)
	}
	// Write to a temp file in the same directory, then rename, so a reader
	// never observes a half-written document.
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return unavailable("write", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return unavailable("write", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return unavailable("write", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		_ = os.Remove(tmpName)
		return unavailable("write", name, err)
	}
	return nil
}
