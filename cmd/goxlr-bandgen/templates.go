package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"concat": func(a, b string) string { return a + b },
	"quote":  func(s string) string { return fmt.Sprintf("%q", s) },
	"float":  func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 32) },
	"lower":  strings.ToLower,
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(bandsTmpl))

// bandData is the per-band view passed to the template.
type bandData struct {
	Const     string
	Label     string
	Token     string
	GainKey   string
	FreqKey   string
	Frequency float64
}

type tableData struct {
	Package     string
	Type        string
	Description string
	Bands       []bandData
}

const bandsTmpl = `{{define "bands"}}// Code generated by goxlr-bandgen. DO NOT EDIT.

package {{.Package}}

// {{.Type}} represents {{.Description}}.
type {{.Type}} uint8

const (
{{- range $i, $b := .Bands}}
{{$b.Const}}{{if eq $i 0}} {{$.Type}} = iota{{end}}
{{- end}}
)

// {{.Type}}Count is the number of {{.Type}} values.
const {{.Type}}Count = {{len .Bands}}

// {{.Type}}s lists every {{.Type}} in order.
var {{.Type}}s = [{{.Type}}Count]{{.Type}}{
{{- range .Bands}}
{{.Const}},
{{- end}}
}

var {{lower .Type}}Table = [{{.Type}}Count]{{lower .Type}}Info{
{{- range .Bands}}
{{.Const}}: {token: {{quote .Token}}, gainKey: {{quote .GainKey}}, frequencyKey: {{quote .FreqKey}}, defaultFrequency: {{float .Frequency}}},
{{- end}}
}

// String returns the {{lower .Type}} name.
func (v {{.Type}}) String() string {
switch v {
{{- range .Bands}}
case {{.Const}}:
return {{quote .Label}}
{{- end}}
default:
return "UNKNOWN"
}
}
{{end}}`
