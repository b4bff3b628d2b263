package gen

import "text/template"

const header = "// Code generated by statics gen; DO NOT EDIT.\n\n"

var entriesTmpl = template.Must(template.New("entries").Parse(header + `package {{.Package}}

import (
	"math"
	"math/rand/v2"

	"{{.RegImport}}"
)

// random{{.Count}} returns a value in [1, {{.Max}}].
func random{{.Count}}() {{.ValueType}} {
	return {{.ValueType}}(rand.Uint64N(uint64({{.Max}}))) + 1
}

var (
{{- range .Tags}}
	{{.}} = reg.StaticOf(random{{$.Count}})
{{- end}}
)
`))

var entriesTestTmpl = template.Must(template.New("entries_test").Parse(header + `package {{.Package}}

import (
	"testing"

	"{{.RegImport}}"
)

func TestGenerated{{.Count}}Entries(t *testing.T) {
{{- range .Tags}}
	if reg.Get({{.}}) == 0 {
		t.Errorf("{{.}} was not initialized")
	}
{{- end}}
}
`))

var rawTmpl = template.Must(template.New("raw").Parse(header + `package {{.Package}}

import (
	"math"
	"math/rand/v2"
)

// randomRaw{{.Count}} returns a value in [1, {{.Max}}].
func randomRaw{{.Count}}() {{.ValueType}} {
	return {{.ValueType}}(rand.Uint64N(uint64({{.Max}}))) + 1
}

var (
{{- range .Tags}}
	{{.}} = randomRaw{{$.Count}}()
{{- end}}
)
`))

var rawTestTmpl = template.Must(template.New("raw_test").Parse(header + `package {{.Package}}

import "testing"

func TestGenerated{{.Count}}RawStatics(t *testing.T) {
{{- range .Tags}}
	if {{.}} == 0 {
		t.Errorf("{{.}} was not initialized")
	}
{{- end}}
}
`))
