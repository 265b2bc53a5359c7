// Package meta holds the parsed form of a metadata file: objects, their
// fields, and the table of object names declared so far.
package meta

// StructSuffix is appended to an object name to form its generated typedef.
const StructSuffix = "Data"

// Field is one `name :: type` declaration inside an object.
// Type holds the resolved spelling: "<Object>Data" for object references,
// the raw spelling otherwise.
type Field struct {
	Name      string
	Type      string
	NameValid bool
	TypeValid bool
}

// Valid reports whether the field is emitted as a real member.
func (f Field) Valid() bool {
	return f.NameValid && f.TypeValid
}

// Object is a named group of fields in declaration order.
type Object struct {
	Name   string
	Fields []Field
	// Line is the 1-based source line of the object header.
	Line int
}

// StructName returns the generated typedef name for the object.
func (o *Object) StructName() string {
	return StructName(o.Name)
}

// StructName returns the generated typedef name for an object name.
func StructName(object string) string {
	return object + StructSuffix
}
