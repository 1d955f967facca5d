package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/Sena-ops/reportguard/internal/model"
)

// The page pulls bootstrap and highlight.js from CDNs, embeds the meta
// bundle as a JSON data island, and filters rows client-side on the
// data-severity attribute. Snippet text goes through the template's
// contextual escaping, so markup inside a snippet renders literally.
const htmlPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>reportguard report</title>
  <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.1/css/bootstrap.min.css">
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.8.0/styles/default.min.css">
  <script src="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.8.0/highlight.min.js"></script>
  <style>
    body { margin: 0; background: whitesmoke; padding: 1em; }
    pre code { display: block; max-width: 600px; overflow-x: auto; font-size: 10pt; }
    td.msg { font-size: 10pt; }
    .sev { font-weight: bold; }
    .ln { color: #999; user-select: none; }
  </style>
</head>
<body>
<script type="application/json" id="report-meta">{{.MetaJSON}}</script>
<div class="container-fluid">
  <h3>Findings ({{.Meta.FilteredCount}} of {{.Meta.TotalCount}} after filtering)</h3>
  <p>
    <label for="severity-filter">Severity:</label>
    <select id="severity-filter"><option value="">all</option></select>
  </p>
  <table id="info-table" class="table table-bordered table-hover">
    <thead>
      <tr><th>tool</th><th>code</th><th>severity</th><th>confidence</th><th>function</th><th>file</th><th>line</th><th>pos</th><th>message</th><th>snippet</th></tr>
    </thead>
    <tbody>
    {{range .Findings}}
      <tr data-severity="{{.Severity}}">
        <td>{{.Tool}}</td>
        <td>{{.Code}}</td>
        <td><span class="sev" data-severity="{{.Severity}}">{{.Severity}}</span></td>
        <td><span data-confidence="{{.Confidence}}">{{.Confidence}}</span>{{if ne .Impact ""}} / <span data-impact="{{.Impact}}">{{.Impact}}</span>{{end}}</td>
        <td>{{.Function}}</td>
        <td>{{if ne .Link ""}}<a target="_blank" href="{{.Link}}">{{.File}}</a>{{else}}{{.File}}{{end}}</td>
        <td>{{.Line}}</td>
        <td>{{.Position}}</td>
        <td class="msg">{{.Message}}</td>
        <td>{{if .Snippet}}<pre><code{{if ne .SnippetLang ""}} class="language-{{.SnippetLang}}"{{end}}>{{range .Snippet}}<span class="ln">{{.Number}}</span> {{.Text}}
{{end}}</code></pre>{{end}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>
</div>
<script>
  hljs.highlightAll();
  (function () {
    var sel = document.getElementById('severity-filter');
    var rows = document.querySelectorAll('#info-table tbody tr');
    var seen = {};
    rows.forEach(function (r) {
      var s = r.getAttribute('data-severity');
      if (s && !seen[s]) {
        seen[s] = true;
        var opt = document.createElement('option');
        opt.value = s;
        opt.textContent = s;
        sel.appendChild(opt);
      }
    });
    sel.addEventListener('change', function () {
      rows.forEach(function (r) {
        r.style.display = (!sel.value || r.getAttribute('data-severity') === sel.value) ? '' : 'none';
      });
    });
  })();
</script>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlPage))

type htmlData struct {
	Meta     Meta
	MetaJSON template.JS
	Findings []model.Finding
}

// RenderHTML produces the browsable report.
func RenderHTML(meta Meta, findings []model.Finding) ([]byte, error) {
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("can't encode report meta: %w", err)
	}

	var buf bytes.Buffer
	err = htmlTmpl.Execute(&buf, htmlData{
		Meta:     meta,
		MetaJSON: template.JS(metaJSON),
		Findings: findings,
	})
	if err != nil {
		return nil, fmt.Errorf("can't render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}
