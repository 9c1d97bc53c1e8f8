// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"html/template"
	"os"
	"path/filepath"

	"matchperf/benchcmp"
)

// IndexData is the model for the HTML report index.
type IndexData struct {
	Title     string
	Source    string
	Charts    []IndexChart
	Decisions []benchcmp.Decision
}

// An IndexChart references one rendered chart file.
type IndexChart struct {
	File    string
	Caption string
}

var indexTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 70em; }
img { max-width: 100%; border: 1px solid #ddd; }
table.decisions { border-collapse: collapse; }
table.decisions th, table.decisions td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
td.nodata { color: #999; font-style: italic; }
figcaption { color: #555; margin: 0.4em 0 1.5em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Source table: <code>{{.Source}}</code></p>

<h2>Decision matrix</h2>
<table class="decisions">
<tr><th>Scenario</th><th>Fastest algorithm</th></tr>
{{- range .Decisions}}
<tr><td>{{.Scenario}}</td>{{if .NoData}}<td class="nodata">no data</td>{{else}}<td>{{.Winner}}</td>{{end}}</tr>
{{- end}}
</table>

<h2>Charts</h2>
{{- range .Charts}}
<figure>
<img src="{{.File}}" alt="{{.Caption}}">
<figcaption>{{.Caption}}</figcaption>
</figure>
{{- end}}
</body>
</html>
`))

// WriteIndex writes the HTML report index next to the chart files.
func (rep *Report) WriteIndex(data IndexData) error {
	if err := os.MkdirAll(rep.Dir, 0o777); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(rep.Dir, IndexHTML))
	if err != nil {
		return err
	}
	if err := indexTemplate.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
