package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// DefaultFilePattern selects every non-hidden .xml file.
const DefaultFilePattern = `^[^.].*\.xml$`

// FileStore serves VerbNet documents from a directory. Document ids are
// file names relative to the root (e.g. "put-9.1.xml").
//
// Decoded roots are kept in an LRU cache and shared between callers, who
// must treat them as read-only.
type FileStore struct {
	root    string
	pattern *regexp.Regexp
	cache   *lru.Cache[string, *domain.ClassNode]
}

// NewFileStore creates a FileStore over root. Files whose name does not
// match pattern are ignored. cacheSize <= 0 disables caching.
func NewFileStore(root, pattern string, cacheSize int) (*FileStore, error) {
	if pattern == "" {
		pattern = DefaultFilePattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile file pattern: %w", err)
	}

	s := &FileStore{root: root, pattern: re}
	if cacheSize > 0 {
		cache, err := lru.New[string, *domain.ClassNode](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create document cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Root returns the corpus directory.
func (s *FileStore) Root() string { return s.root }

// Ping checks that the corpus directory is readable.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus root %s is not a directory", s.root)
	}
	return nil
}

// ListDocuments returns the ids of all matching documents, sorted.
func (s *FileStore) ListDocuments(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read corpus root: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !s.pattern.MatchString(e.Name()) {
			continue
		}
		ids = append(ids, e.Name())
	}
	slices.Sort(ids)
	return ids, nil
}

// OpenRaw returns the raw text of a document.
func (s *FileStore) OpenRaw(_ context.Context, documentID string) (string, error) {
	if !s.pattern.MatchString(documentID) || documentID != filepath.Base(documentID) {
		return "", fmt.Errorf("document %s: %w", documentID, domain.NewIdentifierError(documentID))
	}

	data, err := os.ReadFile(filepath.Join(s.root, documentID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("document %s: %w", documentID, domain.NewIdentifierError(documentID))
		}
		return "", fmt.Errorf("read document %s: %w", documentID, err)
	}
	return string(data), nil
}

// OpenParsed returns the decoded root class of a document.
func (s *FileStore) OpenParsed(ctx context.Context, documentID string) (*domain.ClassNode, error) {
	if s.cache != nil {
		if node, ok := s.cache.Get(documentID); ok {
			return node, nil
		}
	}

	raw, err := s.OpenRaw(ctx, documentID)
	if err != nil {
		return nil, err
	}

	node, err := DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", documentID, err)
	}

	if s.cache != nil {
		s.cache.Add(documentID, node)
	}
	return node, nil
}
