package cgen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Alia5/metagen/internal/codegen/meta"
)

// Banner opens every generated header.
const Banner = "/* Auto-generated code - do not edit! */\n\n"

const (
	errInvalidType = "Unresolved or invalid type '%s'"
	errInvalidName = "Cannot use special characters or numbers in field names"
)

const structTmpl = `typedef struct {{.StructName}} {
{{- range .Fields}}
   {{fieldDecl .}}
{{- end}}
} {{.StructName}};

`

var structTemplate = template.Must(template.New("struct").Funcs(template.FuncMap{
	"fieldDecl": fieldDecl,
}).Parse(structTmpl))

// WriteBanner writes the generated-file banner.
func WriteBanner(w io.Writer) error {
	_, err := io.WriteString(w, Banner)
	return err
}

// WriteObject renders obj as a C typedef followed by a blank line.
// Invalid fields are emitted commented out with a diagnostic.
func WriteObject(w io.Writer, obj *meta.Object) error {
	if err := structTemplate.Execute(w, obj); err != nil {
		return fmt.Errorf("render %s: %w", obj.StructName(), err)
	}
	return nil
}

// fieldDecl renders one member declaration without indentation.
// A bad type is reported in preference to a bad name.
func fieldDecl(f meta.Field) string {
	decl := fmt.Sprintf("%s %s;", f.Type, f.Name)
	switch {
	case !f.TypeValid:
		return "// " + decl + "  // Error: " + fmt.Sprintf(errInvalidType, f.Type)
	case !f.NameValid:
		return "// " + decl + "  // Error: " + errInvalidName
	default:
		return decl
	}
}
