package relay

import (
	"encoding/hex"
	"fmt"
)

// TagKind tells which variant a Tag holds.
type TagKind int

const (
	// TagInvalid is a decoded value that is neither text nor bytes.
	TagInvalid TagKind = iota
	TagText
	TagBinary
)

func (k TagKind) String() string {
	switch k {
	case TagText:
		return "text"
	case TagBinary:
		return "binary"
	default:
		return "invalid"
	}
}

// Tag is the correlation tag a caller sends ahead of its remote call.
type Tag struct {
	Kind   TagKind
	Text   string
	Binary []byte

	// raw is the decoded value of an invalid tag, kept for diagnostics.
	raw interface{}
}

// TextTag returns a Tag holding s.
func TextTag(s string) Tag {
	return Tag{Kind: TagText, Text: s}
}

// BinaryTag returns a Tag holding b.
func BinaryTag(b []byte) Tag {
	return Tag{Kind: TagBinary, Binary: b}
}

// Classify maps a decoded wire value to a Tag. Strings become text tags,
// byte slices binary tags and everything else an invalid tag.
func Classify(value interface{}) Tag {
	switch v := value.(type) {
	case string:
		return TextTag(v)
	case []byte:
		return BinaryTag(v)
	default:
		return Tag{Kind: TagInvalid, raw: v}
	}
}

// Valid reports whether t can be attached to a trace.
func (t Tag) Valid() bool {
	return t.Kind == TagText || t.Kind == TagBinary
}

// Type names the Go type of the decoded value.
func (t Tag) Type() string {
	switch t.Kind {
	case TagText:
		return "string"
	case TagBinary:
		return "[]uint8"
	default:
		return fmt.Sprintf("%T", t.raw)
	}
}

// Size is the tag length in bytes; 0 for invalid tags.
func (t Tag) Size() int {
	switch t.Kind {
	case TagText:
		return len(t.Text)
	case TagBinary:
		return len(t.Binary)
	default:
		return 0
	}
}

func (t Tag) String() string {
	switch t.Kind {
	case TagText:
		return t.Text
	case TagBinary:
		return hex.EncodeToString(t.Binary)
	default:
		return fmt.Sprint(t.raw)
	}
}
