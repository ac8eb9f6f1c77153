package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/ransac/internal/storage"
	"github.com/rs/zerolog/log"
)

const ext = ".json"

// BlobStorage stores every key as a json file.
type BlobStorage struct {
	path  string
	table string
	debug bool
}

// NewJsonBlob creates a json file storage under the given root directory.
// table groups together files with the same schema.
func NewJsonBlob(root, table string, debug bool) *BlobStorage {
	if root == "" {
		root = storage.DefaultDir
	}
	return &BlobStorage{
		path:  root,
		table: table,
		debug: debug,
	}
}

// Dir returns the directory the files are stored in.
func (s BlobStorage) Dir() string {
	return filepath.Join(s.path, s.table)
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := s.Dir()
	err := Save(p, k.Path()+ext, value)
	if err == nil && s.debug {
		log.Info().Str("path", p).Str("file", k.Path()+ext).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.Dir(), k.Path()+ext, value)
}

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) error {
	// check if filepath exists
	info, err := os.Stat(filePath)
	if err != nil {
		err := os.MkdirAll(filePath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", filePath)
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal value for '%s': %w", fileName, err)
	}

	p := filepath.Join(filePath, fileName)
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}

	return nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {
	return LoadFile(filepath.Join(filePath, fileName), value)
}

// LoadFile loads the payload from the file at the given path.
func LoadFile(p string, value interface{}) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s': %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}

	return nil
}
