package resume

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.FullName}} — Resume</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #222; max-width: 820px; margin: 40px auto; padding: 0 24px; line-height: 1.5; }
  header { border-bottom: 3px solid #2c3e50; padding-bottom: 16px; margin-bottom: 24px; }
  h1 { margin: 0; font-size: 30px; color: #2c3e50; }
  .designation { font-size: 17px; color: #555; margin-top: 4px; }
  .affiliation { color: #777; }
  .contact { margin-top: 8px; font-size: 14px; color: #555; }
  .contact span { margin-right: 16px; }
  section { margin-bottom: 22px; }
  h2 { font-size: 18px; color: #2c3e50; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  .entry { margin-bottom: 10px; }
  .entry .title { font-weight: bold; }
  .entry .period { float: right; color: #888; font-size: 13px; }
  .entry .subtitle { color: #555; }
  .entry .detail { font-size: 14px; color: #666; }
  .tags { display: flex; flex-wrap: wrap; gap: 6px; }
  .tag { background: #eef2f7; border: 1px solid #d5dde8; border-radius: 12px; padding: 2px 10px; font-size: 13px; color: #2c3e50; }
  .prose { white-space: pre-line; font-size: 14px; color: #444; }
</style>
</head>
<body>
<header>
  <h1>{{.FullName}}</h1>
  {{if .Designation}}<div class="designation">{{.Designation}}</div>{{end}}
  {{if or .Department .Institution}}<div class="affiliation">{{.Department}}{{if and .Department .Institution}}, {{end}}{{.Institution}}</div>{{end}}
  <div class="contact">
    {{if .Email}}<span>{{.Email}}</span>{{end}}
    {{if .Phone}}<span>{{.Phone}}</span>{{end}}
    {{if .Office}}<span>{{.Office}}</span>{{end}}
    {{if .Website}}<span>{{.Website}}</span>{{end}}
  </div>
</header>

{{if .Keywords}}
<section>
  <h2>Research Interests</h2>
  <div class="tags">{{range .Keywords}}<span class="tag">{{.}}</span>{{end}}</div>
</section>
{{end}}

{{if .Degrees}}
<section>
  <h2>Education</h2>
  {{range .Degrees}}
  <div class="entry">
    {{if .Period}}<span class="period">{{.Period}}</span>{{end}}
    <div class="title">{{.Title}}</div>
    {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
    {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Employment}}
<section>
  <h2>Professional Experience</h2>
  {{range .Employment}}
  <div class="entry">
    {{if .Period}}<span class="period">{{.Period}}</span>{{end}}
    <div class="title">{{.Title}}</div>
    {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
    {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Grants}}
<section>
  <h2>Grants</h2>
  {{range .Grants}}
  <div class="entry">
    {{if .Period}}<span class="period">{{.Period}}</span>{{end}}
    <div class="title">{{.Title}}</div>
    {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
    {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Courses}}
<section>
  <h2>Teaching</h2>
  {{range .Courses}}
  <div class="entry">
    {{if .Period}}<span class="period">{{.Period}}</span>{{end}}
    <div class="title">{{.Title}}</div>
    {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
    {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Awards}}
<section>
  <h2>Awards</h2>
  {{range .Awards}}
  <div class="entry">
    {{if .Period}}<span class="period">{{.Period}}</span>{{end}}
    <div class="title">{{.Title}}</div>
    {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
    {{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Memberships}}
<section>
  <h2>Professional Activities</h2>
  <div class="prose">{{.Memberships}}</div>
</section>
{{end}}

{{if .Skills}}
<section>
  <h2>Skills</h2>
  <div class="tags">{{range .Skills}}<span class="tag">{{.}}</span>{{end}}</div>
</section>
{{end}}

{{if .Outreach}}
<section>
  <h2>Outreach</h2>
  <div class="prose">{{.Outreach}}</div>
</section>
{{end}}
</body>
</html>
`

const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Profile Not Found</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #222; max-width: 640px; margin: 80px auto; padding: 0 24px; text-align: center; }
  h1 { color: #2c3e50; }
  p { color: #666; }
</style>
</head>
<body>
<h1>Profile Not Found</h1>
<p>No researcher profile exists for <strong>{{.Email}}</strong>.</p>
<p>Create a profile first, then generate the resume again.</p>
</body>
</html>
`
