package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudograph/internal/domain"
)

func samplePuzzle(id string) *domain.Puzzle {
	g := domain.NewGrid(2)
	g.Cells[0][0] = 1
	return &domain.Puzzle{ID: id, Name: "mini", Grid: g, CreatedAt: 42}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("p1")
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveBucketsBySize(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	require.NoError(t, s.Save(context.Background(), samplePuzzle("p1")))
	_, err := os.Stat(filepath.Join(dir, "4x4", "p1.json"))
	assert.NoError(t, err)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle("")
	assert.Error(t, s.Save(context.Background(), p))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestSaveRejectsMalformedGrid(t *testing.T) {
	s := NewFS(t.TempDir())
	p := samplePuzzle("p1")
	p.Grid.Dim = 0
	assert.ErrorIs(t, s.Save(context.Background(), p), domain.ErrBadDimension)
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLegacyFlatLayout(t *testing.T) {
	dir := t.TempDir()
	data, err := json.Marshal(samplePuzzle("legacy"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), data, 0o644))

	got, err := NewFS(dir).Load(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, "legacy", got.ID)
}

func TestListAcrossBuckets(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, samplePuzzle("a")))

	big := &domain.Puzzle{ID: "b", Grid: domain.NewGrid(3), CreatedAt: 7}
	require.NoError(t, s.Save(ctx, big))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	sizes := map[string]int{}
	for _, m := range metas {
		sizes[m.ID] = m.Size
	}
	assert.Equal(t, map[string]int{"a": 4, "b": 9}, sizes)
}
