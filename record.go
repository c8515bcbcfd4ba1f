package treeflat

import (
	"fmt"
	"reflect"

	"treeflat/container"
)

// Named-record and record-sequence detection is purely structural: such types
// are commonly produced by generic factories, so nothing here relies on
// nominal markers or on registry state.

// IsNamedRecord reports whether v — a value or a reflect.Type — is a named
// record: a struct type with at least one exported field.
func IsNamedRecord(v any) bool {
	return IsNamedRecordType(typeOf(v))
}

// IsNamedRecordValue reports whether v is an instance of a named record type.
// Unlike IsNamedRecord it never accepts a reflect.Type.
func IsNamedRecordValue(v any) bool {
	if _, ok := v.(reflect.Type); ok {
		return false
	}
	return IsNamedRecordType(reflect.TypeOf(v))
}

// IsNamedRecordType reports whether t is a named record type.
func IsNamedRecordType(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	return len(exportedFields(t)) > 0
}

// NamedRecordFields returns the field names of a named record, in declaration
// order. v may be a value or a reflect.Type.
func NamedRecordFields(v any) ([]string, error) {
	t := typeOf(v)
	if !IsNamedRecordType(t) {
		return nil, fmt.Errorf("%w: expected a named record type, got %v", ErrInvalidArgument, t)
	}
	fields := exportedFields(t)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names, nil
}

// IsRecordSequence reports whether v — a value or a reflect.Type — is a
// native record sequence: a defined array type satisfying the
// container.RecordSequence contract. The array ancestry distinguishes it from
// named records, which are struct-based.
func IsRecordSequence(v any) bool {
	return IsRecordSequenceType(typeOf(v))
}

// IsRecordSequenceValue reports whether v is an instance of a record sequence
// type. Unlike IsRecordSequence it never accepts a reflect.Type.
func IsRecordSequenceValue(v any) bool {
	if _, ok := v.(reflect.Type); ok {
		return false
	}
	return IsRecordSequenceType(reflect.TypeOf(v))
}

// IsRecordSequenceType reports whether t is a record sequence type.
func IsRecordSequenceType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Array && t.Implements(recordSeqType)
}

// RecordSequenceFields returns the field names of a record sequence in
// positional order, including any trailing name-only fields. v may be a value
// or a reflect.Type.
func RecordSequenceFields(v any) ([]string, error) {
	t := typeOf(v)
	if !IsRecordSequenceType(t) {
		return nil, fmt.Errorf("%w: expected a record sequence type, got %v", ErrInvalidArgument, t)
	}
	fields := reflect.Zero(t).Interface().(container.RecordSequence).RecordFields()
	if len(fields) < t.Len() {
		return nil, fmt.Errorf("%w: %v names %d fields for %d positions",
			ErrStructuralMismatch, t, len(fields), t.Len())
	}
	return fields, nil
}

// exportedFields returns the exported fields of a struct type in declaration
// order. Unexported fields cannot be set through reflection, so they take no
// part in flattening.
func exportedFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			fields = append(fields, f)
		}
	}
	return fields
}
