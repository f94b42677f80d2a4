package crate

// Type is the primary tag of a metadata record. It names the value
// category the canonical bytes were produced from and selects the
// decode path.
type Type string

const (
	// TypeNull marks an absent value. Both nil and explicit absence
	// collapse to this tag; decode always yields nil.
	TypeNull Type = "null"

	// TypeBoolean marks a boolean encoded as "true"/"false" text.
	TypeBoolean Type = "boolean"

	// TypeNumber marks a numeric value encoded as decimal text.
	// Subtype "bigint" distinguishes arbitrary-precision integers.
	TypeNumber Type = "number"

	// TypeString marks verbatim UTF-8 text.
	TypeString Type = "string"

	// TypeObject marks a structured value serialized as JSON.
	// Subtype selects map, set, or plain json reconstruction.
	TypeObject Type = "object"

	// TypeBinary marks a raw byte buffer with no element typing.
	TypeBinary Type = "binary"

	// TypeFixedArray marks a fixed-width numeric array. ArrayType
	// records the exact element kind.
	TypeFixedArray Type = "fixed-array"

	// TypeFile marks a binary object carrying a media type and an
	// optional filename.
	TypeFile Type = "file"
)

// Subtype disambiguates a primary tag. Empty means no subtype.
type Subtype string

const (
	// SubtypeBigint marks a number as an arbitrary-precision integer.
	SubtypeBigint Subtype = "bigint"

	// SubtypeBase64 marks a string whose text happens to be valid
	// base64. Informational only: the bytes are the original text and
	// decode returns them unchanged.
	SubtypeBase64 Subtype = "base64"

	// SubtypeJSON marks a plain structured value. This is the default
	// reconstruction for TypeObject when no subtype is present.
	SubtypeJSON Subtype = "json"

	// SubtypeMap marks an insertion-ordered key→value container.
	SubtypeMap Subtype = "map"

	// SubtypeSet marks an ordered container of unique elements.
	SubtypeSet Subtype = "set"
)

// ArrayType identifies the element width, signedness, and float-ness
// of a fixed-width numeric array.
type ArrayType string

const (
	ArrayInt8    ArrayType = "i8"
	ArrayUint8   ArrayType = "u8"
	ArrayInt16   ArrayType = "i16"
	ArrayUint16  ArrayType = "u16"
	ArrayInt32   ArrayType = "i32"
	ArrayUint32  ArrayType = "u32"
	ArrayInt64   ArrayType = "i64"
	ArrayUint64  ArrayType = "u64"
	ArrayFloat32 ArrayType = "f32"
	ArrayFloat64 ArrayType = "f64"
)

// DefaultName is the generic label assigned at decode time when a file
// record carries no filename. Decode never fails solely because a name
// is missing.
const DefaultName = "blob"

// Metadata is the wire schema for one encoded value. It is produced by
// Encode, consumed by Decode, and fully determines how to invert the
// canonical byte sequence. A record is a value type: immutable once
// produced, with no identity beyond its content and no lifecycle beyond
// the single encode/decode pair it describes.
//
// UserMetadata is caller-supplied auxiliary data. It round-trips
// structurally but is never interpreted or validated by the codec.
type Metadata struct {
	Name         string    `json:"name"`
	Type         Type      `json:"type"`
	Subtype      Subtype   `json:"subtype,omitempty"`
	MimeType     string    `json:"mimeType,omitempty"`
	ArrayType    ArrayType `json:"arrayType,omitempty"`
	UserMetadata any       `json:"userMetaData,omitempty"`
}

// validTypes contains all primary tags the decoder recognizes.
var validTypes = map[Type]bool{
	TypeNull:       true,
	TypeBoolean:    true,
	TypeNumber:     true,
	TypeString:     true,
	TypeObject:     true,
	TypeBinary:     true,
	TypeFixedArray: true,
	TypeFile:       true,
}

// arrayTypeWidths maps each element kind to its byte width.
var arrayTypeWidths = map[ArrayType]int{
	ArrayInt8:    1,
	ArrayUint8:   1,
	ArrayInt16:   2,
	ArrayUint16:  2,
	ArrayInt32:   4,
	ArrayUint32:  4,
	ArrayInt64:   8,
	ArrayUint64:  8,
	ArrayFloat32: 4,
	ArrayFloat64: 8,
}

// IsValidType returns true if t is a known primary tag.
func IsValidType(t Type) bool {
	return validTypes[t]
}

// IsValidArrayType returns true if a is a known element kind.
func IsValidArrayType(a ArrayType) bool {
	_, ok := arrayTypeWidths[a]
	return ok
}

// Width returns the element byte width, or 0 for an unknown kind.
func (a ArrayType) Width() int {
	return arrayTypeWidths[a]
}
