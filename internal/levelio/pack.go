package levelio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/sokoban/internal/domain"
)

// Pack is a named collection of levels in YAML form:
//
//	name: Microban
//	levels:
//	  - name: one
//	    rows:
//	      - "####"
//	      - "#@$.#"
type Pack struct {
	Name   string         `yaml:"name"`
	Author string         `yaml:"author,omitempty"`
	Levels []domain.Level `yaml:"levels"`
}

// ReadPack decodes a YAML pack. Levels without a name are numbered; the pack
// author is inherited.
func ReadPack(r io.Reader) ([]domain.Level, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode level pack: %w", err)
	}
	if len(p.Levels) == 0 {
		return nil, &domain.ArgumentError{Msg: "level pack has no levels"}
	}
	for i := range p.Levels {
		lv := &p.Levels[i]
		if lv.Name == "" {
			lv.Name = fmt.Sprintf("%s #%d", strings.TrimSpace(p.Name), i+1)
			lv.Name = strings.TrimSpace(lv.Name)
		}
		if lv.Author == "" {
			lv.Author = p.Author
		}
	}
	return p.Levels, nil
}

// WritePack encodes levels as a YAML pack.
func WritePack(w io.Writer, name string, levels []domain.Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Pack{Name: name, Levels: levels}); err != nil {
		return err
	}
	return enc.Close()
}

// LoadFile reads the levels in path: YAML packs for .yaml/.yml files and a
// single XSB level otherwise, named after the file.
func LoadFile(path string) ([]domain.Level, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadPack(f)
	default:
		rows, err := ReadText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return []domain.Level{{Name: name, Rows: rows}}, nil
	}
}
