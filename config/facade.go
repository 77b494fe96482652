// Package config implements the configuration façade (spec §4.G): a
// path-addressed, Windows-registry-flavored key/value API ("NTCore\System\
// Kernel") layered over the cell store. Every call goes straight to the
// hive under its lock; the façade caches nothing.
//
// Grounded on the teacher's pkg/hive/factory.go + pkg/hive/types.go
// re-export/façade pattern, and on internal/regtext for the backslash-
// split, create-if-absent path style; key/value tree operations that have
// no teacher analogue (this repository's simplified nk/vk/lf shape has no
// counterpart in the teacher's real HBIN-indexed registry) are grounded
// directly on spec §3's data model and built with the hive package's own
// allocate/get/write primitives.
package config

import (
	"sync"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/hive/names"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// Facade is the path-addressed key/value API over a *hive.Store.
type Facade struct {
	mu    sync.Mutex
	store *hive.Store
	root  hive.CellRef
}

// Open binds a Facade to store, creating a root key if the store has none
// yet (a freshly hive.Create'd store has root cell ref 0, which never
// names a real cell since all cells start past the 4096-byte header).
func Open(store *hive.Store) (*Facade, error) {
	f := &Facade{store: store}
	root := store.Root()
	if root == 0 {
		ref, err := createNK(store, noList, "")
		if err != nil {
			return nil, err
		}
		store.SetRoot(ref)
		root = ref
	}
	f.root = root
	return f, nil
}

// ensureKey walks path from the root, creating any missing segment (spec
// §4.G: "create-if-absent key creation").
func (f *Facade) ensureKey(path string) (hive.CellRef, error) {
	segments, err := splitPath(path)
	if err != nil {
		return 0, err
	}
	cur := f.root
	for _, seg := range segments {
		child, ok, err := findChild(f.store, cur, seg)
		if err != nil {
			return 0, err
		}
		if !ok {
			child, err = createNK(f.store, cur, seg)
			if err != nil {
				return 0, err
			}
			parentNK, err := readNK(f.store, cur)
			if err != nil {
				return 0, err
			}
			newList, err := appendOffset(f.store, hive.CellRef(parentNK.SubkeyListOffset), uint32(child))
			if err != nil {
				return 0, err
			}
			parentNK.SubkeyListOffset = uint32(newList)
			parentNK.SubkeyCount++
			if err := writeNK(f.store, cur, parentNK); err != nil {
				return 0, err
			}
		}
		cur = child
	}
	return cur, nil
}

// openKey walks path from the root without creating anything, returning
// ErrNotFound if any segment is missing.
func (f *Facade) openKey(path string) (hive.CellRef, error) {
	segments, err := splitPath(path)
	if err != nil {
		return 0, err
	}
	cur := f.root
	for _, seg := range segments {
		child, ok, err := findChild(f.store, cur, seg)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrNotFound
		}
		cur = child
	}
	return cur, nil
}

// CreateKey creates path (and any missing ancestor) if absent; it is a
// no-op if path already exists.
func (f *Facade) CreateKey(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.ensureKey(path)
	return err
}

// OpenKey resolves path to a cell reference, or ErrNotFound.
func (f *Facade) OpenKey(path string) (hive.CellRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openKey(path)
}

// RootSubkeys returns the direct child key names of the façade's root,
// i.e. ListSubkeys("") if the empty path were addressable (it is not,
// since splitPath rejects an all-separator/empty path). Used by Diff to
// start a comparison at the top of the tree.
func (f *Facade) RootSubkeys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return subkeyNames(f.store, f.root)
}

// RootValues returns the value names attached directly to the façade's
// root, mirroring RootSubkeys.
func (f *Facade) RootValues() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return valueNames(f.store, f.root)
}

// RootGetValue reads name attached directly to the façade's root,
// mirroring GetValue for the one path GetValue itself cannot address.
func (f *Facade) RootGetValue(name string) (ValueType, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref, ok, err := findValue(f.store, f.root, name)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, ErrNotFound
	}
	vk, err := readVK(f.store, ref)
	if err != nil {
		return 0, nil, err
	}
	if vk.Inline {
		var buf [4]byte
		format.PutU32(buf[:], 0, vk.DataOrOff)
		return ValueType(vk.Type), buf[:vk.DataLen], nil
	}
	data, err := f.store.Get(hive.CellRef(vk.DataOrOff), int(vk.DataLen))
	if err != nil {
		return 0, nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return ValueType(vk.Type), out, nil
}

// ListSubkeys returns the direct child key names of path.
func (f *Facade) ListSubkeys(path string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, err := f.openKey(path)
	if err != nil {
		return nil, err
	}
	return subkeyNames(f.store, key)
}

// ListValues returns the value names attached to path.
func (f *Facade) ListValues(path string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, err := f.openKey(path)
	if err != nil {
		return nil, err
	}
	return valueNames(f.store, key)
}

// SetValue writes name=data (with type vtype) under path, creating path
// and the value if absent, and overwriting any existing value of the same
// name (spec §4.G).
func (f *Facade) SetValue(path, name string, vtype ValueType, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key, err := f.ensureKey(path)
	if err != nil {
		return err
	}

	existing, ok, err := findValue(f.store, key, name)
	if err != nil {
		return err
	}
	if ok {
		return f.overwriteValue(existing, vtype, data)
	}
	return f.createValue(key, name, vtype, data)
}

func (f *Facade) createValue(key hive.CellRef, name string, vtype ValueType, data []byte) error {
	vk, err := f.encodeValue(name, vtype, data)
	if err != nil {
		return err
	}
	ref, payload, err := f.store.Allocate(vk.EncodedSize())
	if err != nil {
		return err
	}
	if ref == 0 {
		return ErrNoSpace
	}
	format.EncodeVK(payload, vk)
	if err := f.store.SetSignature(ref, format.SigVal, 0); err != nil {
		return err
	}

	keyNK, err := readNK(f.store, key)
	if err != nil {
		return err
	}
	newList, err := appendOffset(f.store, hive.CellRef(keyNK.ValueListOffset), uint32(ref))
	if err != nil {
		return err
	}
	keyNK.ValueListOffset = uint32(newList)
	keyNK.ValueCount++
	return writeNK(f.store, key, keyNK)
}

func (f *Facade) overwriteValue(ref hive.CellRef, vtype ValueType, data []byte) error {
	old, err := readVK(f.store, ref)
	if err != nil {
		return err
	}
	if !old.Inline {
		_ = f.store.Free(hive.CellRef(old.DataOrOff))
	}
	vk, err := f.encodeValueWithName(old.NameRaw, vtype, data)
	if err != nil {
		return err
	}
	return writeVK(f.store, ref, vk)
}

// encodeValue builds a VKRecord for name=data, allocating an external "db"
// cell when data does not fit inline (spec §3: value cell "inline-or-
// external data offset"; §6: db cells have no fixed header beyond the
// generic cell prefix).
func (f *Facade) encodeValue(name string, vtype ValueType, data []byte) (format.VKRecord, error) {
	return f.encodeValueWithName(names.EncodeUTF16LE(name), vtype, data)
}

func (f *Facade) encodeValueWithName(nameRaw []byte, vtype ValueType, data []byte) (format.VKRecord, error) {
	vk := format.VKRecord{
		Type:    uint32(vtype),
		DataLen: uint32(len(data)),
		NameRaw: nameRaw,
	}
	if len(data) <= format.VKMaxInlineLen {
		vk.Inline = true
		var inline [4]byte
		copy(inline[:], data)
		vk.DataOrOff = format.ReadU32(inline[:], 0)
		return vk, nil
	}

	ref, payload, err := f.store.Allocate(len(data))
	if err != nil {
		return format.VKRecord{}, err
	}
	if ref == 0 {
		return format.VKRecord{}, ErrNoSpace
	}
	copy(payload, data)
	if err := f.store.SetSignature(ref, format.SigData, 0); err != nil {
		return format.VKRecord{}, err
	}
	vk.Inline = false
	vk.DataOrOff = uint32(ref)
	return vk, nil
}

// GetValue reads name under path, returning its type tag and raw bytes.
func (f *Facade) GetValue(path, name string) (ValueType, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key, err := f.openKey(path)
	if err != nil {
		return 0, nil, err
	}
	ref, ok, err := findValue(f.store, key, name)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, ErrNotFound
	}
	vk, err := readVK(f.store, ref)
	if err != nil {
		return 0, nil, err
	}
	if vk.Inline {
		var buf [4]byte
		format.PutU32(buf[:], 0, vk.DataOrOff)
		return ValueType(vk.Type), buf[:vk.DataLen], nil
	}
	data, err := f.store.Get(hive.CellRef(vk.DataOrOff), int(vk.DataLen))
	if err != nil {
		return 0, nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return ValueType(vk.Type), out, nil
}

// DeleteValue removes name from path, freeing its cell (and any external
// data cell).
func (f *Facade) DeleteValue(path, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key, err := f.openKey(path)
	if err != nil {
		return err
	}
	ref, ok, err := findValue(f.store, key, name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	vk, err := readVK(f.store, ref)
	if err != nil {
		return err
	}
	if !vk.Inline {
		_ = f.store.Free(hive.CellRef(vk.DataOrOff))
	}
	if err := f.store.Free(ref); err != nil {
		return err
	}

	keyNK, err := readNK(f.store, key)
	if err != nil {
		return err
	}
	newList, _, err := removeOffset(f.store, hive.CellRef(keyNK.ValueListOffset), uint32(ref))
	if err != nil {
		return err
	}
	keyNK.ValueListOffset = uint32(newList)
	if keyNK.ValueCount > 0 {
		keyNK.ValueCount--
	}
	return writeNK(f.store, key, keyNK)
}
