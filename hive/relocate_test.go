package hive

import (
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestRelocateMapApplyTranslatesKnownOffset(t *testing.T) {
	m := relocateMap{100: 4096}
	assert.Equal(t, uint32(4096), m.apply(100))
}

func TestRelocateMapApplyLeavesInvalidOffsetUntouched(t *testing.T) {
	m := relocateMap{100: 4096}
	assert.Equal(t, format.InvalidOffset, m.apply(format.InvalidOffset))
}

func TestRelocateMapApplyLeavesUnknownOffsetUntouched(t *testing.T) {
	m := relocateMap{100: 4096}
	assert.Equal(t, uint32(999), m.apply(999))
}

func TestRelocatePayloadRewritesNKOffsets(t *testing.T) {
	nk := format.NKRecord{
		ParentOffset:     100,
		SubkeyListOffset: format.InvalidOffset,
		ValueListOffset:  200,
		SecurityOffset:   300,
		NameRaw:          []byte{'n'},
	}
	payload := make([]byte, nk.EncodedSize())
	format.EncodeNK(payload, nk)

	m := relocateMap{100: 1000, 200: 2000, 300: 3000}
	relocatePayload(payload, format.SigKey, m)

	got, err := format.DecodeNK(payload)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1000), got.ParentOffset)
	assert.Equal(t, format.InvalidOffset, got.SubkeyListOffset)
	assert.Equal(t, uint32(2000), got.ValueListOffset)
	assert.Equal(t, uint32(3000), got.SecurityOffset)
}

func TestRelocatePayloadRewritesVKExternalDataOffset(t *testing.T) {
	vk := format.VKRecord{
		Type:      format.ValTypeBinary,
		DataLen:   4096,
		Inline:    false,
		DataOrOff: 500,
		NameRaw:   []byte{'v'},
	}
	payload := make([]byte, vk.EncodedSize())
	format.EncodeVK(payload, vk)

	m := relocateMap{500: 5000}
	relocatePayload(payload, format.SigVal, m)

	got, err := format.DecodeVK(payload)
	assert.NoError(t, err)
	assert.Equal(t, uint32(5000), got.DataOrOff)
}

func TestRelocatePayloadLeavesInlineVKDataUntouched(t *testing.T) {
	vk := format.VKRecord{
		Type:      format.ValTypeDWord,
		DataLen:   4,
		Inline:    true,
		DataOrOff: 0xCAFEBABE,
		NameRaw:   []byte{'v'},
	}
	payload := make([]byte, vk.EncodedSize())
	format.EncodeVK(payload, vk)

	m := relocateMap{0xCAFEBABE: 1}
	relocatePayload(payload, format.SigVal, m)

	got, err := format.DecodeVK(payload)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), got.DataOrOff, "inline payload bits must not be reinterpreted as an offset")
}

func TestRelocatePayloadRewritesLFOffsets(t *testing.T) {
	lf := format.LFRecord{Offsets: []uint32{10, 20, 30}}
	payload := make([]byte, lf.EncodedSize())
	format.EncodeLF(payload, lf)

	m := relocateMap{10: 100, 20: 200, 30: 300}
	relocatePayload(payload, format.SigList, m)

	got, err := format.DecodeLF(payload)
	assert.NoError(t, err)
	assert.Equal(t, []uint32{100, 200, 300}, got.Offsets)
}
