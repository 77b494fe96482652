package repair

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/hive"
	"github.com/arizkami/aurora-kernel-sub000/hive/names"
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// noList mirrors config's sentinel for "no list yet" (spec §3 nk cell).
// Duplicated rather than imported from the config package to keep repair
// depending only on hive + format, not on the façade built atop it.
const noList = hive.CellRef(format.InvalidOffset)

// treeDiagnostics walks the key tree reachable from store.Root(), per spec
// §4.H's deeper structural checks: duplicate subkey names under one
// parent, and vk cells whose declared length disagrees with their
// external data cell's actual capacity. It also returns the set of cells
// reached, so the caller can flag nk/vk/lf/db cells Walk found that this
// traversal never reached (orphaned allocated cells not reachable from
// root).
func treeDiagnostics(store *hive.Store) (reachable map[hive.CellRef]bool, diags []Diagnostic) {
	reachable = make(map[hive.CellRef]bool)
	root := store.Root()
	if root == 0 {
		return reachable, nil
	}

	queue := []hive.CellRef{root}
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		if reachable[ref] {
			continue
		}
		reachable[ref] = true

		payload, err := store.Get(ref, 0)
		if err != nil {
			continue
		}
		nk, err := format.DecodeNK(payload)
		if err != nil {
			continue
		}

		if subRef := hive.CellRef(nk.SubkeyListOffset); subRef != noList {
			reachable[subRef] = true
			if lf, err := readLF(store, subRef); err == nil {
				seen := make(map[string]bool, len(lf.Offsets))
				for _, off := range lf.Offsets {
					childRef := hive.CellRef(off)
					queue = append(queue, childRef)
					if childNK, err := readNK(store, childRef); err == nil {
						if name, err := names.Decode(childNK.NameRaw); err == nil {
							if seen[name] {
								diags = append(diags, Diagnostic{
									Offset:   uint32(childRef),
									Severity: SevError,
									Category: DiagStructure,
									Message:  fmt.Sprintf("duplicate subkey name %q under parent at offset %d", name, ref),
								})
							}
							seen[name] = true
						}
					}
				}
			}
		}

		if valRef := hive.CellRef(nk.ValueListOffset); valRef != noList {
			reachable[valRef] = true
			if lf, err := readLF(store, valRef); err == nil {
				for _, off := range lf.Offsets {
					vkRef := hive.CellRef(off)
					reachable[vkRef] = true
					vk, err := readVK(store, vkRef)
					if err != nil || vk.Inline {
						continue
					}
					dataRef := hive.CellRef(vk.DataOrOff)
					reachable[dataRef] = true
					data, err := store.Get(dataRef, 0)
					if err != nil {
						continue
					}
					if len(data) < int(vk.DataLen) {
						diags = append(diags, Diagnostic{
							Offset:   uint32(vkRef),
							Severity: SevError,
							Category: DiagIntegrity,
							Message:  fmt.Sprintf("value declares length %d but its data cell at %d only holds %d bytes", vk.DataLen, dataRef, len(data)),
						})
					}
				}
			}
		}
	}

	return reachable, diags
}

func readNK(store *hive.Store, ref hive.CellRef) (format.NKRecord, error) {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return format.NKRecord{}, err
	}
	return format.DecodeNK(payload)
}

func readVK(store *hive.Store, ref hive.CellRef) (format.VKRecord, error) {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return format.VKRecord{}, err
	}
	return format.DecodeVK(payload)
}

func readLF(store *hive.Store, ref hive.CellRef) (format.LFRecord, error) {
	payload, err := store.Get(ref, 0)
	if err != nil {
		return format.LFRecord{}, err
	}
	return format.DecodeLF(payload)
}
