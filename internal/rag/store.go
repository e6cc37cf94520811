package rag

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	chromem "github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

const (
	defaultCollection = "psma_reference"
	hashFileName      = "corpus.sha256"
)

// ErrEmptyCorpus means the CSV contained no usable rows.
var ErrEmptyCorpus = errors.New("corpus contains no documents")

// StoreConfig configures the embedded vector store.
type StoreConfig struct {
	// Path is the persistence directory.
	Path string `koanf:"path"`
	// Collection names the chromem collection.
	Collection string `koanf:"collection"`
	// TextColumn is the zero-based CSV column holding report text.
	TextColumn int `koanf:"text_column"`
	// Compress enables gzip for persisted vectors.
	Compress bool `koanf:"compress"`
}

// ApplyDefaults sets default values for unset fields.
func (c *StoreConfig) ApplyDefaults() {
	if c.Collection == "" {
		c.Collection = defaultCollection
	}
}

// Store is a chromem-go backed corpus with change detection: IndexCSV hashes
// the corpus file and skips re-embedding when nothing changed.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   Embedder
	path       string
	textColumn int
	logger     *zap.Logger
}

// NewStore opens (or creates) the persistent store at cfg.Path.
func NewStore(cfg StoreConfig, embedder Embedder, logger *zap.Logger) (*Store, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.ApplyDefaults()

	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", cfg.Path, err)
	}

	db, err := chromem.NewPersistentDB(cfg.Path, cfg.Compress)
	if err != nil {
		return nil, fmt.Errorf("creating chromem DB: %w", err)
	}

	embedFn := func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("getting/creating collection %s: %w", cfg.Collection, err)
	}

	logger.Info("vector store initialized",
		zap.String("path", cfg.Path),
		zap.String("collection", cfg.Collection),
		zap.Int("documents", collection.Count()))

	return &Store{
		db:         db,
		collection: collection,
		embedder:   embedder,
		path:       cfg.Path,
		textColumn: cfg.TextColumn,
		logger:     logger.Named("rag"),
	}, nil
}

// IndexCSV loads the corpus CSV into the collection. The file's SHA-256 is
// persisted next to the vectors; a matching hash on a later call skips
// re-embedding entirely. Returns the number of documents indexed (0 when
// up to date).
func (s *Store) IndexCSV(ctx context.Context, csvPath string) (int, error) {
	sum, err := fileSHA256(csvPath)
	if err != nil {
		return 0, fmt.Errorf("hashing corpus: %w", err)
	}

	if prev, err := s.readHash(); err == nil && prev == sum && s.collection.Count() > 0 {
		s.logger.Info("corpus unchanged, skipping reindex", zap.String("sha256", sum[:12]))
		return 0, nil
	}

	texts, err := readCorpusCSV(csvPath, s.textColumn)
	if err != nil {
		return 0, err
	}
	if len(texts) == 0 {
		return 0, ErrEmptyCorpus
	}

	docs := make([]chromem.Document, len(texts))
	for i, text := range texts {
		docs[i] = chromem.Document{
			ID:      fmt.Sprintf("doc-%d", i),
			Content: text,
			Metadata: map[string]string{
				"source": filepath.Base(csvPath),
				"row":    fmt.Sprintf("%d", i),
			},
		}
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return 0, fmt.Errorf("adding documents: %w", err)
	}
	if err := s.writeHash(sum); err != nil {
		return 0, fmt.Errorf("persisting corpus hash: %w", err)
	}

	s.logger.Info("corpus indexed",
		zap.Int("documents", len(docs)),
		zap.String("sha256", sum[:12]))
	return len(docs), nil
}

// Retrieve returns the contents of the k most similar corpus documents.
func (s *Store) Retrieve(ctx context.Context, query string, k int) ([]string, error) {
	n := s.collection.Count()
	if n == 0 {
		return nil, nil
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		k = 1
	}

	results, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	out := make([]string, len(results))
	for i, res := range results {
		out[i] = res.Content
	}
	return out, nil
}

// Count reports how many documents the collection holds.
func (s *Store) Count() int { return s.collection.Count() }

func (s *Store) hashPath() string { return filepath.Join(s.path, hashFileName) }

func (s *Store) readHash() (string, error) {
	b, err := os.ReadFile(s.hashPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *Store) writeHash(sum string) error {
	return os.WriteFile(s.hashPath(), []byte(sum+"\n"), 0o644)
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// readCorpusCSV extracts the text column from every data row, skipping the
// header and blank cells. Short rows are tolerated.
func readCorpusCSV(path string, column int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var texts []string
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading corpus: %w", err)
		}
		if first {
			first = false
			continue
		}
		if column >= len(record) {
			continue
		}
		text := strings.TrimSpace(record[column])
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
