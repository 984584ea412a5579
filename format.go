package msgpckdump

// MessagePack format bytes
// See: https://github.com/msgpack/msgpack/blob/master/spec.md
const (
	// Nil
	formatNil byte = 0xc0

	// 0xc1 is reserved by the spec and never assigned
	formatReserved byte = 0xc1

	// Bool
	formatFalse byte = 0xc2
	formatTrue  byte = 0xc3

	// Int formats
	formatUint8  byte = 0xcc
	formatUint16 byte = 0xcd
	formatUint32 byte = 0xce
	formatUint64 byte = 0xcf
	formatInt8   byte = 0xd0
	formatInt16  byte = 0xd1
	formatInt32  byte = 0xd2
	formatInt64  byte = 0xd3

	// Float formats
	formatFloat32 byte = 0xca
	formatFloat64 byte = 0xcb

	// String formats
	formatStr8  byte = 0xd9
	formatStr16 byte = 0xda
	formatStr32 byte = 0xdb

	// Binary formats
	formatBin8  byte = 0xc4
	formatBin16 byte = 0xc5
	formatBin32 byte = 0xc6

	// Array formats
	formatArray16 byte = 0xdc
	formatArray32 byte = 0xdd

	// Map formats
	formatMap16 byte = 0xde
	formatMap32 byte = 0xdf

	// Ext formats
	formatFixExt1  byte = 0xd4
	formatFixExt2  byte = 0xd5
	formatFixExt4  byte = 0xd6
	formatFixExt8  byte = 0xd7
	formatFixExt16 byte = 0xd8
	formatExt8     byte = 0xc7
	formatExt16    byte = 0xc8
	formatExt32    byte = 0xc9
)

// Format masks and ranges
const (
	// Positive fixint: 0xxxxxxx (0x00 - 0x7f)
	posFixintMask byte = 0x80

	// Negative fixint: 111xxxxx (0xe0 - 0xff)
	negFixintMin byte = 0xe0

	// Fixmap: 1000xxxx (0x80 - 0x8f)
	fixmapMask   byte = 0xf0
	fixmapPrefix byte = 0x80
	fixmapMax    byte = 0x0f

	// Fixarray: 1001xxxx (0x90 - 0x9f)
	fixarrayMask   byte = 0xf0
	fixarrayPrefix byte = 0x90
	fixarrayMax    byte = 0x0f

	// Fixstr: 101xxxxx (0xa0 - 0xbf)
	fixstrMask   byte = 0xe0
	fixstrPrefix byte = 0xa0
	fixstrMax    byte = 0x1f
)

// isPositiveFixint returns true if b is a positive fixint (0x00-0x7f)
func isPositiveFixint(b byte) bool {
	return b&posFixintMask == 0
}

// isNegativeFixint returns true if b is a negative fixint (0xe0-0xff)
func isNegativeFixint(b byte) bool {
	return b >= negFixintMin
}

// isFixmap returns true if b is a fixmap (0x80-0x8f)
func isFixmap(b byte) bool {
	return b&fixmapMask == fixmapPrefix
}

// isFixarray returns true if b is a fixarray (0x90-0x9f)
func isFixarray(b byte) bool {
	return b&fixarrayMask == fixarrayPrefix
}

// isFixstr returns true if b is a fixstr (0xa0-0xbf)
func isFixstr(b byte) bool {
	return b&fixstrMask == fixstrPrefix
}

// fixmapLen returns the pair count encoded in a fixmap byte
func fixmapLen(b byte) int {
	return int(b & fixmapMax)
}

// fixarrayLen returns the element count encoded in a fixarray byte
func fixarrayLen(b byte) int {
	return int(b & fixarrayMax)
}

// fixstrLen returns the byte length encoded in a fixstr byte
func fixstrLen(b byte) int {
	return int(b & fixstrMax)
}

// Category is the semantic class of a MessagePack leading byte.
// Decoding dispatches on the category; rendered lines always carry
// the per-byte format name from FormatName, never the category.
type Category uint8

const (
	CategoryInteger Category = iota
	CategoryNil
	CategoryBool
	CategoryFloat
	CategoryString
	CategoryBinary
	CategoryArray
	CategoryMap
	CategoryExt
	CategoryReserved
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryInteger:
		return "integer"
	case CategoryNil:
		return "nil"
	case CategoryBool:
		return "bool"
	case CategoryFloat:
		return "float"
	case CategoryString:
		return "string"
	case CategoryBinary:
		return "binary"
	case CategoryArray:
		return "array"
	case CategoryMap:
		return "map"
	case CategoryExt:
		return "ext"
	case CategoryReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// CategoryOf maps a leading byte to its semantic category.
func CategoryOf(b byte) Category {
	if isPositiveFixint(b) || isNegativeFixint(b) {
		return CategoryInteger
	}
	if isFixmap(b) {
		return CategoryMap
	}
	if isFixarray(b) {
		return CategoryArray
	}
	if isFixstr(b) {
		return CategoryString
	}

	switch b {
	case formatNil:
		return CategoryNil
	case formatFalse, formatTrue:
		return CategoryBool
	case formatFloat32, formatFloat64:
		return CategoryFloat
	case formatUint8, formatUint16, formatUint32, formatUint64,
		formatInt8, formatInt16, formatInt32, formatInt64:
		return CategoryInteger
	case formatStr8, formatStr16, formatStr32:
		return CategoryString
	case formatBin8, formatBin16, formatBin32:
		return CategoryBinary
	case formatArray16, formatArray32:
		return CategoryArray
	case formatMap16, formatMap32:
		return CategoryMap
	case formatExt8, formatExt16, formatExt32,
		formatFixExt1, formatFixExt2, formatFixExt4, formatFixExt8, formatFixExt16:
		return CategoryExt
	default:
		return CategoryReserved
	}
}

// FormatName returns the canonical name of the exact on-wire encoding
// denoted by a leading byte. Every byte in a fix range shares one name
// (all of 0x90-0x9f name FixArray) while every width-specific encoding
// has its own (UInt16, Str32, FixExt8, ...). The reserved byte 0xc1
// names Reserved.
func FormatName(b byte) string {
	if isPositiveFixint(b) {
		return "PositiveFixInt"
	}
	if isNegativeFixint(b) {
		return "NegativeFixInt"
	}
	if isFixmap(b) {
		return "FixMap"
	}
	if isFixarray(b) {
		return "FixArray"
	}
	if isFixstr(b) {
		return "FixStr"
	}

	switch b {
	case formatNil:
		return "Nil"
	case formatFalse:
		return "False"
	case formatTrue:
		return "True"
	case formatBin8:
		return "Bin8"
	case formatBin16:
		return "Bin16"
	case formatBin32:
		return "Bin32"
	case formatExt8:
		return "Ext8"
	case formatExt16:
		return "Ext16"
	case formatExt32:
		return "Ext32"
	case formatFloat32:
		return "Float32"
	case formatFloat64:
		return "Float64"
	case formatUint8:
		return "UInt8"
	case formatUint16:
		return "UInt16"
	case formatUint32:
		return "UInt32"
	case formatUint64:
		return "UInt64"
	case formatInt8:
		return "Int8"
	case formatInt16:
		return "Int16"
	case formatInt32:
		return "Int32"
	case formatInt64:
		return "Int64"
	case formatFixExt1:
		return "FixExt1"
	case formatFixExt2:
		return "FixExt2"
	case formatFixExt4:
		return "FixExt4"
	case formatFixExt8:
		return "FixExt8"
	case formatFixExt16:
		return "FixExt16"
	case formatStr8:
		return "Str8"
	case formatStr16:
		return "Str16"
	case formatStr32:
		return "Str32"
	case formatArray16:
		return "Array16"
	case formatArray32:
		return "Array32"
	case formatMap16:
		return "Map16"
	case formatMap32:
		return "Map32"
	default:
		return "Reserved"
	}
}
