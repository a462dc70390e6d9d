// Package normalize converts between the backend's wire maps and canonical
// entity structs. Each entity is declared as a Schema; one engine applies
// every rule (coercion, defaults, aliases, derivations, folds).
package normalize

// Kind is the canonical type of a field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	// KindStrings is a list of strings. Reads always yield a list.
	KindStrings
	// KindSites is a list of site ids. SiteAll is always dropped; unknown
	// ids survive reads but are never written.
	KindSites
	// KindEnum is a string restricted to Field.Enum.
	KindEnum
	// KindObject is a nested map, checked against Field.Fields when set and
	// passed through otherwise.
	KindObject
	KindTime
)

// Mode selects create or update semantics for ToWire.
type Mode int

const (
	// Create applies defaults for absent fields.
	Create Mode = iota
	// Update writes only the fields present in the input.
	Update
)

// Field declares one wire key.
type Field struct {
	Name string
	Kind Kind
	// Enum lists the accepted values of a KindEnum field.
	Enum []string
	// Default is written on Create when the field is absent or invalid.
	Default any
	// Aliases are alternative input keys. Name is tried last, so
	// {"type": "villa", "property_type": "duplex"} yields "villa".
	Aliases []string
	// DigitsFrom names an input key whose digits supply this number when it
	// is absent ("1,200 sqft" -> 1200).
	DigitsFrom string
	// Currency strips symbols and separators before parsing on write; a
	// value with no number in it is sent as 0.
	Currency bool
	// Fields is the nested schema of a KindObject field.
	Fields []Field
	// ReadOnly fields are server-assigned and never written.
	ReadOnly bool
}

// Fold gathers flat input keys into a nested object on write, only when at
// least one of them is present.
type Fold struct {
	Into string
	From []string
}

// Schema is the declarative description of one entity's wire shape.
type Schema struct {
	Entity string
	Fields []Field
	Folds  []Fold
}

// Field returns the declaration for name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
