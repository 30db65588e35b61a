package fiber

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const DataSourceURL = "https://www.kaggle.com/datasets/uom190346a/e-commerce-customer-behavior-dataset"

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"card":     formatCard,
	"chartURL": chartURL,
}).Parse(pageHTML))

type pageData struct {
	Dashboard  *domain.Dashboard
	Selectors  []customers.Selector
	DataSource string
}

// GetPage renders the HTML dashboard. Charts are loaded as images from /charts.
func (h *DashboardHandler) GetPage(c *fiber.Ctx) error {
	d, err := h.uc.Execute(c.Context(), usecase.BuildDashboardInput{Gender: gender(c)})
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{
		Dashboard:  d,
		Selectors:  customers.Selectors,
		DataSource: DataSourceURL,
	}); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func formatCard(m domain.MetricCard) string {
	if !m.Available {
		return "n/a"
	}
	return strconv.FormatFloat(m.Value, 'f', m.Precision, 64)
}

func chartURL(id domain.ChartID, g customers.Selector) string {
	return "/charts/" + url.PathEscape(string(id)) + ".svg?gender=" + url.QueryEscape(string(g))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>E-commerce Customer Behaviour</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
aside { width: 16rem; padding: 1rem; background: #f0f2f6; min-height: 100vh; }
main { flex: 1; padding: 1rem 2rem; }
section { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
section h2 { text-align: center; }
.cards { display: flex; gap: 1rem; flex-wrap: wrap; justify-content: space-around; }
.card .label { font-size: .9rem; color: #555; }
.card .value { font-size: 2rem; }
.charts { display: flex; gap: 1rem; flex-wrap: wrap; }
.charts figure { flex: 1; margin: 0; min-width: 24rem; }
.charts img { width: 100%; }
</style>
</head>
<body>
<aside>
<h1>About</h1>
<p>Powered by Fiber and go-chart</p>
<p><strong>Data source:</strong> <a href="{{.DataSource}}">kaggle.com</a></p>
</aside>
<main>
<h1>E-commerce Customer Behaviour</h1>
{{$gender := .Dashboard.Gender}}
{{range .Dashboard.Sections}}
<section id="{{.ID}}">
{{if .Filtered}}
<form method="get" action="/">
<label for="gender">Select gender(s)</label>
<select id="gender" name="gender" onchange="this.form.submit()">
{{range $.Selectors}}<option value="{{.}}"{{if eq . $gender}} selected{{end}}>{{.}}</option>{{end}}
</select>
<noscript><button type="submit">Apply</button></noscript>
</form>
{{else}}
<h2>{{.Title}}</h2>
{{end}}
{{with .Metrics}}
<div class="cards">
{{range .}}<div class="card"><div class="label">{{.Label}}</div><div class="value">{{card .}}</div></div>
{{end}}
</div>
{{end}}
{{$filtered := .Filtered}}
<div class="charts">
{{range .Charts}}<figure>{{if $filtered}}<h2>{{.Title}}</h2>{{end}}<img src="{{chartURL .ID $gender}}" alt="{{.Title}}"></figure>
{{end}}
</div>
</section>
{{end}}
<p><small>Snapshot {{.Dashboard.SnapshotID}} with {{.Dashboard.Rows}} rows.</small></p>
</main>
</body>
</html>
`
