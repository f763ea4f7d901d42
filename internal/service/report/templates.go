package report

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<div class="briefing-report">
<h3>📊 Brand Mentions</h3>
<table class="stats">
<tr><th>Brand</th><th>Mentions</th><th>Keywords</th></tr>
{{- range .Brands}}
<tr>
<td>{{.Name}}</td>
<td>{{.Count}}</td>
<td>{{range $i, $kw := .Keywords}}{{if $i}}, {{end}}{{$kw.Keyword}} ({{$kw.Count}}){{end}}</td>
</tr>
{{- end}}
</table>
{{- range .Questions}}
<section class="question">
<h3>❓ {{.Number}}. {{.Question}}</h3>
{{- range .Answers}}
<h4>{{.Label}}</h4>
<div class="answer">{{.HTML}}</div>
{{- end}}
</section>
{{- end}}
</div>
`))

var emailTmpl = template.Must(template.New("email").Parse(`<html>
<head>
<style>
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 12px; text-align: left; vertical-align: top; }
th { background-color: #f2f2f2; }
.question { font-weight: bold; background-color: #e8f4f8; }
mark { background-color: #fff3b0; }
</style>
</head>
<body>
<h2>Daily AI Briefing Report</h2>
<h3>📊 Brand Mentions</h3>
<table>
<tr><th>Brand</th><th>Mentions</th><th>Keywords</th></tr>
{{- range .Brands}}
<tr>
<td>{{.Name}}</td>
<td>{{.Count}}</td>
<td>{{range $i, $kw := .Keywords}}{{if $i}}, {{end}}{{$kw.Keyword}} ({{$kw.Count}}){{end}}</td>
</tr>
{{- end}}
</table>
<table>
<tr>
<th width="20%">Question</th>
{{- if .Questions}}
{{- range (index .Questions 0).Answers}}
<th width="40%">{{.Label}}</th>
{{- end}}
{{- end}}
</tr>
{{- range .Questions}}
<tr>
<td class="question">{{.Question}}</td>
{{- range .Answers}}
<td>{{.HTML}}</td>
{{- end}}
</tr>
{{- end}}
</table>
</body>
</html>
`))
