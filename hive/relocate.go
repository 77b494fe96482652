package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// relocateMap translates old cell offsets to new ones, used while
// compacting or copying a hive. A reference equal to format.InvalidOffset
// is left untouched.
type relocateMap map[uint32]uint32

func (m relocateMap) apply(old uint32) uint32 {
	if old == format.InvalidOffset {
		return old
	}
	if nu, ok := m[old]; ok {
		return nu
	}
	// Reference to a cell outside the walked set (shouldn't happen in a
	// valid hive); leave as-is rather than silently corrupting it further.
	return old
}

// relocatePayload rewrites every cell-offset field inside a single cell's
// payload according to m. It is the fix-up step that keeps the key tree
// reachable after cells are physically moved by Compact/CompactedCopy: the
// spec's two-cursor sweep (§4.A) describes the byte-level move, but leaves
// tree reachability (S6, invariant 3) to whatever the caller does with the
// relocated offsets — this is that step, scoped to the record kinds this
// design defines (nk/vk/lf; sk and db carry no references).
func relocatePayload(payload []byte, sig uint16, m relocateMap) {
	switch sig {
	case format.SigKey:
		if len(payload) < format.NKFixedHeaderSize {
			return
		}
		format.PutU32(payload, format.NKParentOffset, m.apply(format.ReadU32(payload, format.NKParentOffset)))
		format.PutU32(payload, format.NKSubkeyListOffset, m.apply(format.ReadU32(payload, format.NKSubkeyListOffset)))
		format.PutU32(payload, format.NKValueListOffset, m.apply(format.ReadU32(payload, format.NKValueListOffset)))
		format.PutU32(payload, format.NKSecurityOffset, m.apply(format.ReadU32(payload, format.NKSecurityOffset)))
	case format.SigVal:
		if len(payload) < format.VKFixedHeaderSize {
			return
		}
		rawLen := format.ReadU32(payload, format.VKDataLenOffset)
		if rawLen&format.VKInlineBit == 0 {
			format.PutU32(payload, format.VKDataOffOffset, m.apply(format.ReadU32(payload, format.VKDataOffOffset)))
		}
	case format.SigList:
		lf, err := format.DecodeLF(payload)
		if err != nil {
			return
		}
		for i, o := range lf.Offsets {
			lf.Offsets[i] = m.apply(o)
		}
		format.EncodeLF(payload, lf)
	}
}
