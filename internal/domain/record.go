package domain

// Field is one named value of a trait.
//
// Value is one of: int, float64, string, bool, nil, []string, Record,
// []Record, or a Recorder (e.g. *OrderedMap). Formatters reject anything else.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered list of fields. Order is declaration order and is what
// every output format preserves.
type Record []Field

// Recorder is implemented by values that render as a nested mapping.
type Recorder interface {
	AsRecord() Record
}

// Lookup returns the value of the named field.
func (r Record) Lookup(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	out := make([]string, 0, len(r))
	for _, f := range r {
		out = append(out, f.Name)
	}
	return out
}
