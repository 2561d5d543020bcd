package schedule

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// FieldKind discriminates Field's tagged-sum payload (spec §9 Design Notes).
type FieldKind int

const (
	FieldAbsent FieldKind = iota
	FieldNum
	FieldText
)

// Field is either an integer or the original free-form text, never both
// (spec §3 song field invariant; §9 Design Notes tagged-sum representation).
// The zero Field is FieldAbsent.
type Field struct {
	Kind FieldKind
	Num  int
	Text string
}

// NumField builds a Field carrying an integer.
func NumField(n int) Field { return Field{Kind: FieldNum, Num: n} }

// TextField builds a Field carrying free-form text.
func TextField(s string) Field { return Field{Kind: FieldText, Text: s} }

// IsAbsent reports whether the field carries no value.
func (f Field) IsAbsent() bool { return f.Kind == FieldAbsent }

type fieldWire struct {
	Tag   string `json:"tag"`
	Value any    `json:"value"`
}

// MarshalJSON renders the field as {"tag":"num","value":N} or
// {"tag":"text","value":S}; an absent field renders as JSON null so it can
// be omitted with `json:",omitempty"` semantics is not directly applicable
// to structs, callers instead use *Field for optional struct members.
func (f Field) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FieldNum:
		return json.Marshal(fieldWire{Tag: "num", Value: f.Num})
	case FieldText:
		return json.Marshal(fieldWire{Tag: "text", Value: f.Text})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON parses the {"tag":...,"value":...} wire form, or null.
func (f *Field) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field{}
		return nil
	}
	var wire fieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Tag {
	case "num":
		n, ok := wire.Value.(float64)
		if !ok {
			return &json.UnmarshalTypeError{Value: "non-numeric", Type: nil}
		}
		*f = NumField(int(n))
	case "text":
		s, _ := wire.Value.(string)
		*f = TextField(s)
	default:
		*f = Field{}
	}
	return nil
}

var leadingIntPattern = regexp.MustCompile(`\d+`)

// SongNumber applies the song-number rule (spec §4.7): scan text for the
// first integer; if it falls in 1..162 the result is a numeric Field,
// otherwise the original text is retained. Empty input yields an absent
// Field.
func SongNumber(text string) Field {
	if text == "" {
		return Field{}
	}
	m := leadingIntPattern.FindString(text)
	if m == "" {
		return TextField(text)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return TextField(text)
	}
	if n < 1 || n > 162 {
		return TextField(text)
	}
	return NumField(n)
}
