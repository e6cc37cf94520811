package rag

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bagEmbedder is a deterministic test embedder: letter-frequency vectors,
// normalized. Identical texts embed identically.
type bagEmbedder struct{}

func (bagEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, 26)
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			vec[r-'a']++
		}
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

func writeCorpus(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "corpus.csv")
	content := "report_text,study\n" +
		"\"lymph node metastasis in the pelvis\",a\n" +
		"\"skeletal uptake within vertebral bodies\",b\n" +
		"\"no pathological uptake anywhere\",c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(StoreConfig{Path: filepath.Join(t.TempDir(), "store")}, bagEmbedder{}, nil)
	require.NoError(t, err)
	return s
}

func TestIndexCSV(t *testing.T) {
	s := newTestStore(t)
	corpus := writeCorpus(t, t.TempDir())

	n, err := s.IndexCSV(context.Background(), corpus)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, s.Count())
}

func TestIndexCSVSkipsUnchanged(t *testing.T) {
	s := newTestStore(t)
	corpus := writeCorpus(t, t.TempDir())

	_, err := s.IndexCSV(context.Background(), corpus)
	require.NoError(t, err)

	n, err := s.IndexCSV(context.Background(), corpus)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIndexCSVEmpty(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("report_text\n"), 0o644))

	_, err := s.IndexCSV(context.Background(), path)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestRetrieve(t *testing.T) {
	s := newTestStore(t)
	corpus := writeCorpus(t, t.TempDir())
	_, err := s.IndexCSV(context.Background(), corpus)
	require.NoError(t, err)

	got, err := s.Retrieve(context.Background(), "skeletal uptake within vertebral bodies", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "skeletal uptake within vertebral bodies", got[0])
}

func TestRetrieveClampsK(t *testing.T) {
	s := newTestStore(t)
	corpus := writeCorpus(t, t.TempDir())
	_, err := s.IndexCSV(context.Background(), corpus)
	require.NoError(t, err)

	got, err := s.Retrieve(context.Background(), "uptake", 50)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRetrieveEmptyStore(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Retrieve(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewStoreValidation(t *testing.T) {
	_, err := NewStore(StoreConfig{Path: t.TempDir()}, nil, nil)
	assert.Error(t, err)

	_, err = NewStore(StoreConfig{}, bagEmbedder{}, nil)
	assert.Error(t, err)
}
