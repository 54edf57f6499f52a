package quasar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	indexFileName     = "index.json"
	documentsFileName = "documents.json"
)

// StorageJSONImpl keeps the index and document store as two JSON files under
// a data directory, each rewritten whole on save. Integer map keys are
// stringified by encoding/json, so the files stay plain string-keyed JSON.
type StorageJSONImpl struct {
	dataDir string
}

func NewStorageJSONImpl(dataDir string) (*StorageJSONImpl, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	return &StorageJSONImpl{dataDir: dataDir}, nil
}

func (s *StorageJSONImpl) indexPath() string {
	return filepath.Join(s.dataDir, indexFileName)
}

func (s *StorageJSONImpl) documentsPath() string {
	return filepath.Join(s.dataDir, documentsFileName)
}

func (s *StorageJSONImpl) SaveIndex(index InvertedIndex) error {
	return writeJSONFile(s.indexPath(), index)
}

func (s *StorageJSONImpl) LoadIndex() (InvertedIndex, error) {
	index := make(InvertedIndex)
	if err := readJSONFile(s.indexPath(), &index); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *StorageJSONImpl) SaveDocuments(documents map[DocumentID]Document) error {
	return writeJSONFile(s.documentsPath(), documents)
}

func (s *StorageJSONImpl) LoadDocuments() (map[DocumentID]Document, error) {
	documents := make(map[DocumentID]Document)
	if err := readJSONFile(s.documentsPath(), &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func (s *StorageJSONImpl) IndexSize() (int64, error) {
	info, err := os.Stat(s.indexPath())
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", s.indexPath(), err)
	}
	return info.Size(), nil
}

func writeJSONFile(path string, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readJSONFile leaves v untouched when path does not exist: an absent file
// means "start empty". A present but unparsable file is an error so corrupt
// state is never silently discarded.
func readJSONFile(path string, v interface{}) error {
	encoded, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(encoded, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
