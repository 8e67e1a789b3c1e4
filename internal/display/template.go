package display

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// Render expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func Render(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// MustRender is Render for templates compiled into the binary.
// It panics on malformed templates.
func MustRender(tmplStr string, data any) string {
	out, err := Render(tmplStr, data)
	if err != nil {
		panic(err)
	}
	return out
}
