package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/ports"
)

var errMissingID = &domain.ArgumentError{Msg: "level has no ID"}

// FS keeps one JSON file per level under dir.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", &domain.ArgumentError{Msg: fmt.Sprintf("invalid level id %q", id)}
	}
	return filepath.Join(s.dir, id+".json"), nil
}

func (s *FS) Save(ctx context.Context, lv *domain.Level) error {
	if lv == nil || lv.ID == "" {
		return errMissingID
	}
	target, err := s.pathFor(lv.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := writeLevel(f, lv); err != nil {
		return fmt.Errorf("failed to write level %s: %w", lv.ID, err)
	}
	return nil
}

// writeLevel encodes lv to w and closes it; a failed close is a failed write.
func writeLevel(w io.WriteCloser, lv *domain.Level) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lv)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Level, error) {
	p, err := s.pathFor(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var out domain.Level
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.LevelMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.LevelMeta
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		var m domain.LevelMeta
		if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
			continue
		}
		out = append(out, m)
	}
	sortMetas(out)
	return out, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	p, err := s.pathFor(id)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ports.ErrNotFound
		}
		return err
	}
	return nil
}

// sortMetas orders levels by creation time, then ID.
func sortMetas(ms []domain.LevelMeta) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].CreatedAt != ms[j].CreatedAt {
			return ms[i].CreatedAt < ms[j].CreatedAt
		}
		return ms[i].ID < ms[j].ID
	})
}
