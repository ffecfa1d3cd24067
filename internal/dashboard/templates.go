package dashboard

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f8fafc;color:#0f172a;font-size:14px;line-height:1.5}
header{background:#fff;border-bottom:1px solid #e2e8f0;position:sticky;top:0;z-index:50}
.wrap{max-width:1200px;margin:0 auto;padding:16px}
.top{display:flex;align-items:center;justify-content:space-between;gap:12px}
.brand h1{font-size:22px;font-weight:700}
.brand p{font-size:13px;color:#64748b}
.actions{display:flex;gap:8px}
.actions form{display:inline}
button,.btn{font:inherit;padding:6px 12px;border:1px solid #cbd5e1;border-radius:6px;background:#fff;cursor:pointer;color:#0f172a;text-decoration:none}
.btn.primary{background:#16a34a;border-color:#16a34a;color:#fff}
.busy{font-size:12px;color:#f59e0b}
.notice{background:#fef3c7;border:1px solid #fcd34d;border-radius:6px;padding:8px 12px;margin-bottom:16px}
.cards{display:grid;grid-template-columns:repeat(4,1fr);gap:16px;margin:24px 0}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:10px;padding:16px}
.card .lbl{font-size:13px;color:#64748b}
.card .val{font-size:30px;font-weight:700}
.card .note{font-size:12px;color:#64748b}
.tabs{display:flex;gap:4px;margin-bottom:16px}
.tabs a{padding:6px 14px;border-radius:6px;color:#475569;text-decoration:none;background:#e2e8f0}
.tabs a.active{background:#fff;color:#0f172a;font-weight:600;border:1px solid #cbd5e1}
.panel{background:#fff;border:1px solid #e2e8f0;border-radius:10px;padding:16px;margin-bottom:16px}
.panel h2{font-size:16px;margin-bottom:12px}
.bar-row{display:flex;align-items:center;gap:8px;margin:4px 0;font-size:12px}
.bar-lbl{min-width:110px}
.bar{height:12px;border-radius:3px;display:inline-block}
.legend{font-size:12px;color:#64748b;margin-top:8px}
.report{display:flex;justify-content:space-between;align-items:flex-start;border:1px solid #e2e8f0;border-radius:8px;padding:12px;margin-bottom:8px}
.report.selected{border-color:#16a34a;background:#f0fdf4}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:11px;font-weight:600;color:#fff}
.tag{display:inline-block;padding:1px 8px;border-radius:10px;font-size:11px;border:1px solid #cbd5e1}
.dim{color:#64748b;font-size:12px}
.map{height:480px;background:#f1f5f9;border-radius:8px;display:flex;align-items:center;justify-content:center;text-align:center}
.chips{display:flex;flex-wrap:wrap;gap:8px;justify-content:center;margin-top:12px}
.chip{display:inline-flex;align-items:center;gap:6px;padding:6px 12px;border-radius:999px;background:#fff;border:1px solid #e2e8f0}
.dot{width:10px;height:10px;border-radius:50%;display:inline-block}
footer{border-top:1px solid #e2e8f0;background:#fff;margin-top:48px}
.cols{display:grid;grid-template-columns:repeat(3,1fr);gap:32px}
footer h3{font-size:14px;margin-bottom:8px}
</style>
</head>
<body>
{{template "header" .}}
<main class="wrap">
{{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
<div class="cards">
{{range .Cards}}<div class="card" style="border-top:3px solid {{css .Accent}}">
<div class="lbl">{{.Title}}</div>
<div class="val">{{.Value}}</div>
<div class="note">{{.Note}}</div>
</div>
{{end}}</div>
<nav class="tabs">
{{range .Tabs}}<a href="/?tab={{.}}"{{if eq . $.Tab}} class="active"{{end}}>{{.Label}}</a>
{{end}}</nav>
{{if eq .Tab "analytics"}}{{template "analytics" .}}{{end}}
{{if eq .Tab "reports"}}{{template "reports" .}}{{end}}
{{if eq .Tab "map"}}{{template "map" .}}{{end}}
</main>
{{template "footer" .}}
</body>
</html>
{{end}}`

const tmplHeader = `
{{define "header"}}<header>
<div class="wrap top">
<div class="brand">
<h1>{{.Title}}</h1>
<p>{{.Subtitle}}</p>
</div>
<div class="actions">
{{if .Exporting}}<span class="busy">Экспорт…</span>{{end}}
<a class="btn" href="/export/csv">CSV</a>
<form method="post" action="/export/pdf?tab={{.Tab}}"><button type="submit">PDF</button></form>
<span class="btn primary">Новый отчёт</span>
</div>
</div>
</header>{{end}}`

// ── Panels ────────────────────────────────────────────────────────────────────

const tmplAnalytics = `
{{define "analytics"}}<section class="panel">
<h2>Динамика отчётов</h2>
{{range .Monthly}}<div class="bar-row">
<span class="bar-lbl">{{.Month}}</span>
<span class="bar" style="width:{{.ReportsPct}}%;background:#0EA5E9" title="Отчёты: {{.Reports}}"></span>
<span class="dim">{{.Reports}}</span>
</div>
<div class="bar-row">
<span class="bar-lbl"></span>
<span class="bar" style="width:{{.ResolvedPct}}%;background:#22C55E" title="Решено: {{.Resolved}}"></span>
<span class="dim">{{.Resolved}}</span>
</div>
{{end}}<div class="legend"><span class="dot" style="background:#0EA5E9"></span> Всего отчётов &nbsp; <span class="dot" style="background:#22C55E"></span> Решено</div>
</section>
<section class="panel">
<h2>Категории проблем</h2>
{{range .Categories}}<div class="bar-row">
<span class="bar-lbl">{{.Name}}: {{.Value}}%</span>
<span class="bar" style="width:{{.Value}}%;background:{{css .Color}}"></span>
</div>
{{else}}<p class="dim">Нет данных</p>
{{end}}</section>{{end}}`

const tmplReports = `
{{define "reports"}}<section class="panel">
<h2>Список отчётов <span class="tag">{{.Total}} отчётов</span></h2>
{{range .Reports}}<div class="report{{if .Selected}} selected{{end}}" id="report-{{.ID}}">
<div>
<span class="badge" style="background:{{css (statusColor .Status)}}">{{statusLabel .Status}}</span>
<span class="tag">{{.Category}}</span>
<h3>{{.Title}}</h3>
<p class="dim">{{.DateString}}</p>
</div>
<form method="post" action="/reports/{{.ID}}/select"><button type="submit">›</button></form>
</div>
{{else}}<p class="dim">Отчётов нет</p>
{{end}}</section>{{end}}`

const tmplMap = `
{{define "map"}}<section class="panel">
<h2>Интерактивная карта отчётов</h2>
<div class="map">
<div>
<h3>Интерактивная карта</h3>
<p class="dim">Здесь будет отображаться карта с маркерами проблемных зон</p>
<div class="chips">
{{range .MapChips}}<span class="chip" title="{{fmtCoord .Geo}}"><span class="dot" style="background:{{css .Color}}"></span>{{.Category}}{{if .Place}} · <span class="dim">{{.Place}}</span>{{end}}</span>
{{end}}</div>
</div>
</div>
</section>{{end}}`

const tmplFooter = `
{{define "footer"}}<footer>
<div class="wrap cols">
<div>
<h3>Контакты</h3>
<p class="dim">Email: {{.Footer.Email}}</p>
<p class="dim">Телефон: {{.Footer.Phone}}</p>
</div>
<div>
<h3>О системе</h3>
<p class="dim">{{.Footer.About}}</p>
</div>
<div>
<h3>Статистика</h3>
<p class="dim">Отчётов обработано: {{.Footer.Processed}}</p>
<p class="dim">Проблем решено: {{.Footer.Resolved}}</p>
</div>
</div>
</footer>{{end}}`
