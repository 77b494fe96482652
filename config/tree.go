package config

import (
	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/hive/names"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// noList is the "no list yet" sentinel used in nk subkey-list and
// value-list offset fields (spec §3 nk cell: offsets default to a
// reserved invalid marker before the first child is added).
const noList = hive.CellRef(format.InvalidOffset)

func readNK(store *hive.Store, ref hive.CellRef) (format.NKRecord, error) {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return format.NKRecord{}, err
	}
	return format.DecodeNK(payload)
}

// writeNK re-encodes nk over ref's existing payload in place. The name
// never changes after creation, so the encoded size is unchanged and this
// never needs to reallocate.
func writeNK(store *hive.Store, ref hive.CellRef, nk format.NKRecord) error {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return err
	}
	format.EncodeNK(payload, nk)
	return store.Write(ref, payload)
}

func readVK(store *hive.Store, ref hive.CellRef) (format.VKRecord, error) {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return format.VKRecord{}, err
	}
	return format.DecodeVK(payload)
}

func writeVK(store *hive.Store, ref hive.CellRef, vk format.VKRecord) error {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return err
	}
	format.EncodeVK(payload, vk)
	return store.Write(ref, payload)
}

// createNK allocates a fresh nk cell for name under parent, with empty
// subkey/value lists.
func createNK(store *hive.Store, parent hive.CellRef, name string) (hive.CellRef, error) {
	rec := format.NKRecord{
		ParentOffset:     uint32(parent),
		SubkeyListOffset: uint32(noList),
		ValueListOffset:  uint32(noList),
		SecurityOffset:   uint32(noList),
		NameRaw:          names.EncodeUTF16LE(name),
	}
	ref, payload, err := store.Allocate(rec.EncodedSize())
	if err != nil {
		return 0, err
	}
	if ref == 0 {
		return 0, ErrNoSpace
	}
	format.EncodeNK(payload, rec)
	if err := store.SetSignature(ref, format.SigKey, 0); err != nil {
		return 0, err
	}
	return ref, nil
}

// appendOffset adds newOff to the list cell at listRef (or creates a fresh
// one-entry list if listRef is noList), returning the list cell's
// (possibly new, per spec §4.A Resize) offset.
func appendOffset(store *hive.Store, listRef hive.CellRef, newOff uint32) (hive.CellRef, error) {
	if listRef == noList {
		rec := format.LFRecord{Offsets: []uint32{newOff}}
		ref, payload, err := store.Allocate(rec.EncodedSize())
		if err != nil {
			return 0, err
		}
		if ref == 0 {
			return 0, ErrNoSpace
		}
		format.EncodeLF(payload, rec)
		if err := store.SetSignature(ref, format.SigList, 0); err != nil {
			return 0, err
		}
		return ref, nil
	}

	payload, err := store.Get(listRef, 0)
	if err != nil {
		return 0, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return 0, err
	}
	lf.Offsets = append(lf.Offsets, newOff)

	newRef, newPayload, err := store.Resize(listRef, lf.EncodedSize())
	if err != nil {
		return 0, err
	}
	format.EncodeLF(newPayload, lf)
	if err := store.SetSignature(newRef, format.SigList, 0); err != nil {
		return 0, err
	}
	return newRef, nil
}

// removeOffset removes target from the list cell at listRef. Returns the
// list's (possibly new) offset, or noList if the list becomes empty (the
// empty list cell is freed rather than kept around as a zero-entry cell).
func removeOffset(store *hive.Store, listRef hive.CellRef, target uint32) (hive.CellRef, bool, error) {
	if listRef == noList {
		return noList, false, nil
	}
	payload, err := store.Get(listRef, 0)
	if err != nil {
		return 0, false, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return 0, false, err
	}

	idx := -1
	for i, off := range lf.Offsets {
		if off == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return listRef, false, nil
	}
	lf.Offsets = append(lf.Offsets[:idx], lf.Offsets[idx+1:]...)

	if len(lf.Offsets) == 0 {
		if err := store.Free(listRef); err != nil {
			return 0, false, err
		}
		return noList, true, nil
	}

	newRef, newPayload, err := store.Resize(listRef, lf.EncodedSize())
	if err != nil {
		return 0, false, err
	}
	format.EncodeLF(newPayload, lf)
	if err := store.SetSignature(newRef, format.SigList, 0); err != nil {
		return 0, false, err
	}
	return newRef, true, nil
}

// findChild looks up a direct subkey of parent by name, returning
// (ref, true) if found.
func findChild(store *hive.Store, parent hive.CellRef, name string) (hive.CellRef, bool, error) {
	nk, err := readNK(store, parent)
	if err != nil {
		return 0, false, err
	}
	if hive.CellRef(nk.SubkeyListOffset) == noList {
		return 0, false, nil
	}
	payload, err := store.Get(hive.CellRef(nk.SubkeyListOffset), 0)
	if err != nil {
		return 0, false, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return 0, false, err
	}
	for _, off := range lf.Offsets {
		childRef := hive.CellRef(off)
		childNK, err := readNK(store, childRef)
		if err != nil {
			continue
		}
		childName, err := names.Decode(childNK.NameRaw)
		if err != nil {
			continue
		}
		if childName == name {
			return childRef, true, nil
		}
	}
	return 0, false, nil
}

// findValue looks up a value cell by name among parent's values.
func findValue(store *hive.Store, parent hive.CellRef, name string) (hive.CellRef, bool, error) {
	nk, err := readNK(store, parent)
	if err != nil {
		return 0, false, err
	}
	if hive.CellRef(nk.ValueListOffset) == noList {
		return 0, false, nil
	}
	payload, err := store.Get(hive.CellRef(nk.ValueListOffset), 0)
	if err != nil {
		return 0, false, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return 0, false, err
	}
	for _, off := range lf.Offsets {
		vkRef := hive.CellRef(off)
		vk, err := readVK(store, vkRef)
		if err != nil {
			continue
		}
		vkName, err := names.Decode(vk.NameRaw)
		if err != nil {
			continue
		}
		if vkName == name {
			return vkRef, true, nil
		}
	}
	return 0, false, nil
}

// subkeyNames returns the decoded names of parent's direct subkeys.
func subkeyNames(store *hive.Store, parent hive.CellRef) ([]string, error) {
	nk, err := readNK(store, parent)
	if err != nil {
		return nil, err
	}
	if hive.CellRef(nk.SubkeyListOffset) == noList {
		return nil, nil
	}
	payload, err := store.Get(hive.CellRef(nk.SubkeyListOffset), 0)
	if err != nil {
		return nil, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lf.Offsets))
	for _, off := range lf.Offsets {
		childNK, err := readNK(store, hive.CellRef(off))
		if err != nil {
			return nil, err
		}
		name, err := names.Decode(childNK.NameRaw)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// valueNames returns the decoded names of parent's values.
func valueNames(store *hive.Store, parent hive.CellRef) ([]string, error) {
	nk, err := readNK(store, parent)
	if err != nil {
		return nil, err
	}
	if hive.CellRef(nk.ValueListOffset) == noList {
		return nil, nil
	}
	payload, err := store.Get(hive.CellRef(nk.ValueListOffset), 0)
	if err != nil {
		return nil, err
	}
	lf, err := format.DecodeLF(payload)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lf.Offsets))
	for _, off := range lf.Offsets {
		vk, err := readVK(store, hive.CellRef(off))
		if err != nil {
			return nil, err
		}
		name, err := names.Decode(vk.NameRaw)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}
