package main

import (
	"fmt"
	"os"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/internal/mmfile"
)

// openStore memory-maps path and wraps it as a *hive.Store, returning a
// close function that unmaps (and, if dirty, flushes + syncs) the image.
func openStore(path string) (*hive.Store, func() error, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	store, err := hive.Open(data)
	if err != nil {
		unmap()
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	closeFn := func() error {
		if store.Dirty() {
			img := store.Flush()
			if err := mmfile.Sync(img); err != nil {
				unmap()
				return err
			}
		}
		return unmap()
	}
	return store, closeFn, nil
}

// createStore creates a fresh hive image of size bytes at path.
func createStore(path string, size int) (*hive.Store, error) {
	store, err := hive.Create(size)
	if err != nil {
		return nil, err
	}
	img := store.Flush()
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return store, nil
}
