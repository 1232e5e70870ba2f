package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"svw.info/sudograph/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// Puzzles are bucketed by grid size: ./data/9x9/, ./data/4x4/, etc.
func sizeDir(n int) string { return fmt.Sprintf("%dx%d", n, n) }

var sizeDirPat = regexp.MustCompile(`^(\d+)x(\d+)$`)

func (s *FS) pathFor(id string, n int) string {
	return filepath.Join(s.dir, sizeDir(n), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if err := p.Grid.Check(); err != nil {
		return err
	}
	target := s.pathFor(p.ID, p.Grid.Size())
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// buckets lists every size subdirectory present, plus the root for legacy
// flat files.
func (s *FS) buckets() []string {
	out := []string{}
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() && sizeDirPat.MatchString(e.Name()) {
				out = append(out, filepath.Join(s.dir, e.Name()))
			}
		}
	}
	return append(out, s.dir)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var data []byte
	for _, dir := range s.buckets() {
		path := filepath.Join(dir, id+".json")
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, dir := range s.buckets() {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:        p.ID,
				Name:      p.Name,
				Size:      p.Grid.Size(),
				CreatedAt: p.CreatedAt,
			})
		}
	}
	return out, nil
}
