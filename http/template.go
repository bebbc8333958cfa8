package http

import (
	"html/template"
	"strconv"

	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"value":     fieldValue,
	"num":       formatNumber,
	"barHeight": barHeight,
}).Parse(dashboardHTML))

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fieldValue returns the current widget value of a field for the form.
func fieldValue(in domain.DashboardInput, field string) float64 {
	switch field {
	case service.FieldNumDoctors:
		return float64(in.Operations.NumDoctors)
	case service.FieldPatientsPerHour:
		return float64(in.Operations.PatientsPerHour)
	case service.FieldConsultMinutes:
		return float64(in.Operations.ConsultMinutes)
	case service.FieldNumBeds:
		return float64(in.Operations.NumBeds)
	case service.FieldShifts:
		return float64(in.Operations.Shifts)
	case service.FieldInvestment:
		return in.ROI.Investment
	case service.FieldAnnualSavings:
		return in.ROI.AnnualSavings
	case service.FieldYears:
		return float64(in.ROI.Years)
	case service.FieldDefectsPer1000:
		return float64(in.SixSigma.DefectsPer1000)
	}
	return 0
}

// barHeight converts a bar value into a percentage of the chart height.
func barHeight(value, yMax float64) float64 {
	if yMax <= 0 {
		return 0
	}
	h := value / yMax * 100
	if h > 100 {
		return 100
	}
	return h
}

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Smart Healthcare Operations Optimizer</title>
  <style>
    body { margin: 0; font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; background: #f7f7f7; color: #333; }
    header { background: #0e5d8f; color: #fff; padding: 16px 24px; }
    main { display: flex; gap: 24px; padding: 24px; }
    aside { min-width: 260px; background: #fff; padding: 16px; border: 1px solid #ddd; }
    section { background: #fff; padding: 16px; border: 1px solid #ddd; margin-bottom: 16px; }
    label { display: block; font-size: 13px; margin-top: 10px; }
    input { width: 100%; }
    .metrics { display: flex; gap: 16px; flex-wrap: wrap; }
    .metric { flex: 1; min-width: 140px; }
    .metric .value { font-size: 28px; font-weight: 600; }
    .chart { display: flex; align-items: flex-end; gap: 40px; height: 220px; border-bottom: 1px solid #999; padding: 0 40px; }
    .bar { width: 80px; text-align: center; color: #fff; font-size: 12px; }
    .warn { color: #a94442; }
    .ok { color: #3c763d; }
    .error { background: #f2dede; color: #a94442; }
    progress { width: 100%; }
  </style>
</head>
<body>
<header>
  <h1>Smart Healthcare Operations Optimizer</h1>
  <div>Healthcare systems engineering dashboard with advanced analytics</div>
</header>
<main>
  <aside>
    <form method="get" action="/">
      <h3>Input Parameters</h3>
      {{- $in := .Input }}
      {{- range .Operations }}
      <label>{{ .Field }} ({{ num .Min }}-{{ num .Max }})
        <input type="number" name="{{ .Field }}" min="{{ num .Min }}" max="{{ num .Max }}" value="{{ num (value $in .Field) }}" />
      </label>
      {{- end }}
      <h3>ROI</h3>
      {{- range .ROI }}
      <label>{{ .Field }} ({{ num .Min }}-{{ num .Max }})
        <input type="number" name="{{ .Field }}" min="{{ num .Min }}" max="{{ num .Max }}" value="{{ num (value $in .Field) }}" />
      </label>
      {{- end }}
      <h3>Six Sigma</h3>
      {{- range .SixSigma }}
      <label>{{ .Field }} ({{ num .Min }}-{{ num .Max }})
        <input type="number" name="{{ .Field }}" min="{{ num .Min }}" max="{{ num .Max }}" value="{{ num (value $in .Field) }}" />
      </label>
      {{- end }}
      <p><button type="submit">Update</button></p>
    </form>
  </aside>
  <div style="flex: 1">
  {{- if .Error }}
    <section class="error" id="validation-error">
      <h2>Invalid input</h2>
      <p>{{ .Error.Message }}</p>
      <ul>
      {{- range .Error.Fields }}
        <li>{{ .Field }}: {{ .Message }}</li>
      {{- end }}
      </ul>
    </section>
  {{- end }}
  {{- with .Dashboard }}
    <section>
      <h2>Key Performance Indicators</h2>
      <div class="metrics">
        <div class="metric"><div>Doctor Utilization</div><div class="value">{{ .Display.DoctorUtilization }}</div></div>
        <div class="metric"><div>Avg Waiting Time</div><div class="value">{{ .Display.WaitingTime }}</div></div>
        <div class="metric"><div>Bed Utilization</div><div class="value">{{ .Display.BedUtilization }}</div></div>
        <div class="metric"><div>Throughput (patients/shift)</div><div class="value">{{ .Display.Throughput }}</div></div>
      </div>
    </section>
    <section>
      <h2>{{ .Chart.Title }}</h2>
      {{- $yMax := .Chart.YMax }}
      <div class="chart">
      {{- range .Chart.Bars }}
        <div class="bar" style="height: {{ barHeight .Value $yMax }}%; background: {{ .Color }}">{{ .Label }} {{ printf "%.1f" .Value }}</div>
      {{- end }}
      </div>
    </section>
    <section>
      <h2>Real-Time Patient Flow Simulation</h2>
      <progress id="sim-progress" max="100" value="0"></progress>
      <div id="sim-text">Simulating patient inflow...</div>
    </section>
    <section>
      <h2>Insights &amp; Optimization Suggestions</h2>
      <ul>
        <li class="{{ if .Operations.DoctorAdvisory.Warning }}warn{{ else }}ok{{ end }}">{{ .Operations.DoctorAdvisory.Message }}</li>
        <li class="{{ if .Operations.BedAdvisory.Warning }}warn{{ else }}ok{{ end }}">{{ .Operations.BedAdvisory.Message }}</li>
      {{- range slice .Insights 2 }}
        <li>{{ . }}</li>
      {{- end }}
      </ul>
    </section>
    <section>
      <h2>ROI (Return on Investment) Calculator</h2>
      <div class="metric"><div>ROI over Time Period</div><div class="value">{{ .Display.ROI }}</div></div>
      <p class="{{ if eq .ROI.Classification "negative" }}warn{{ else }}ok{{ end }}">{{ .ROI.Message }}</p>
    </section>
    <section>
      <h2>Six Sigma Performance Estimator</h2>
      <div class="metrics">
        <div class="metric"><div>Defects per Million Opportunities (DPMO)</div><div class="value">{{ .Display.DPMO }}</div></div>
        <div class="metric"><div>Estimated Sigma Level</div><div class="value">{{ .Display.SigmaLevel }}</div></div>
      </div>
      <p>{{ .SixSigma.Message }}</p>
    </section>
    <section>
      <h2>Strategic Recommendations</h2>
      <ul>
      {{- range .Recommendations }}
        <li><strong>{{ . }}</strong></li>
      {{- end }}
      </ul>
      <small>Analytics based purely on engineering and management principles. No datasets or ML used.</small>
    </section>
  {{- end }}
  </div>
</main>
<script>
  (function () {
    var bar = document.getElementById("sim-progress");
    if (!bar) { return; }
    var text = document.getElementById("sim-text");
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws/simulation");
    ws.onmessage = function (ev) {
      var f = JSON.parse(ev.data);
      bar.value = f.percent;
      text.textContent = f.text;
    };
  })();
</script>
</body>
</html>
`
