package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// IntegrityStatus is the result of IntegrityCheck (spec §4.A, §6).
type IntegrityStatus int

const (
	IntegrityOK IntegrityStatus = iota
	IntegrityInvalidSignature
	IntegritySizeMismatch
	IntegrityChecksumMismatch
	IntegrityCorrupt
)

func (st IntegrityStatus) String() string {
	switch st {
	case IntegrityOK:
		return "ok"
	case IntegrityInvalidSignature:
		return "invalid-signature"
	case IntegritySizeMismatch:
		return "size-mismatch"
	case IntegrityChecksumMismatch:
		return "checksum-mismatch"
	case IntegrityCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// IntegrityCheck verifies a raw hive image without requiring a live Store
// (spec §4.A): magic, header checksum (computed with the checksum field
// read as zero; the image is not modified), then a full cell walk. Any zero step, over-long step, or
// under-minimum cell header fails the walk.
func IntegrityCheck(b []byte) IntegrityStatus {
	if len(b) < format.HeaderSize {
		return IntegrityCorrupt
	}
	if !format.HasSignature(b) {
		return IntegrityInvalidSignature
	}
	if !format.VerifyChecksum(b) {
		return IntegrityChecksumMismatch
	}

	h, err := format.ParseHeader(b)
	if err != nil {
		return IntegrityInvalidSignature
	}
	if reported := int(h.TotalSize()); reported != len(b) {
		return IntegritySizeMismatch
	}

	off := format.HeaderSize
	total := len(b)
	for off < total {
		ch, err := format.ReadCellHeader(b[off:])
		if err != nil {
			return IntegrityCorrupt
		}
		if ch.Size < format.CellHeaderSize {
			return IntegritySizeMismatch
		}
		next := off + int(ch.Size)
		if next > total || next <= off {
			return IntegritySizeMismatch
		}
		off = next
	}
	if off != total {
		return IntegritySizeMismatch
	}
	return IntegrityOK
}

// IntegrityCheck runs the same check against the Store's current bytes.
func (s *Store) IntegrityCheck() IntegrityStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IntegrityCheck(s.data)
}
