package config

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// ValueType is the external value-type tag the façade coerces to and from
// the internal vk cell's type field (spec §4.G: "value-type coercion
// between an external type tag ... and the internal vk cell's type").
type ValueType uint32

const (
	TypeString      ValueType = ValueType(format.ValTypeString)
	TypeDWord       ValueType = ValueType(format.ValTypeDWord)
	TypeQWord       ValueType = ValueType(format.ValTypeQWord)
	TypeBinary      ValueType = ValueType(format.ValTypeBinary)
	TypeMultiString ValueType = ValueType(format.ValTypeMultiString)
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeDWord:
		return "dword"
	case TypeQWord:
		return "qword"
	case TypeBinary:
		return "binary"
	case TypeMultiString:
		return "multi_string"
	default:
		return "unknown"
	}
}
