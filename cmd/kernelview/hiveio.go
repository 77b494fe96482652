package main

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/internal/mmfile"
)

// openStore mirrors kernelctl's helper of the same name: memory-map path,
// wrap it as a *hive.Store, and return a close function that flushes and
// syncs only if the store was mutated.
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
