package sprites

import (
	"errors"
	"io/fs"
	"path"
)

// Store looks up raw sprite bytes by path. A missing sprite is reported with
// ok == false and is not an error: callers probe several paths.
type Store interface {
	Get(path string) (data []byte, ok bool)
}

// FSStore serves sprites out of any fs.FS, such as os.DirFS or an embed.FS.
type FSStore struct {
	FS fs.FS
}

func NewFSStore(files fs.FS) FSStore {
	return FSStore{FS: files}
}

func (s FSStore) Get(p string) ([]byte, bool) {
	data, err := fs.ReadFile(s.FS, p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			internalLogger.Error(err, "couldn't read sprite", "path", p)
		}
		return nil, false
	}

	return data, true
}

// GenerationStore tries each generation directory in order and serves the
// first one that has the sprite.
type GenerationStore struct {
	Store       Store
	Generations []string
}

func NewGenerationStore(store Store, generations ...string) GenerationStore {
	return GenerationStore{Store: store, Generations: generations}
}

// Lookup returns the full path that was found along with its bytes.
func (s GenerationStore) Lookup(p string) (string, []byte, bool) {
	for _, gen := range s.Generations {
		full := path.Join(gen, p)
		if data, ok := s.Store.Get(full); ok {
			internalLogger.V(1).Info("found sprite", "path", full)
			return full, data, true
		}

		internalLogger.V(1).Info("sprite missing from generation", "path", p, "generation", gen)
	}

	return "", nil, false
}

func (s GenerationStore) Get(p string) ([]byte, bool) {
	_, data, ok := s.Lookup(p)
	return data, ok
}
