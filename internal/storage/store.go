package storage

import (
	"errors"
	"fmt"
	"time"

	xtime "github.com/drakos74/ransac/internal/time"
)

const (
	ResultLabel = "ransac_result"
	PointsLabel = "points"
)

// DefaultDir is the root directory of the file storage.
var DefaultDir = "file-storage"

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation
type Key struct {
	Stamp string `json:"stamp"`
	Label string `json:"label"`
}

// ResultKey creates the key for a fit result produced at the given time.
func ResultKey(t time.Time) Key {
	return Key{
		Stamp: xtime.Stamp(t),
		Label: ResultLabel,
	}
}

func (k Key) Path() string {
	if k.Stamp == "" {
		return k.Label
	}
	return fmt.Sprintf("%s_%s", k.Stamp, k.Label)
}

type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// VoidStorage is a noop storage
type VoidStorage struct {
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

// NewVoidStorage creates a new noop storage
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}
