package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

const defaultChartHeight = "320px"

// ChartKind selects the go-echarts chart used for a widget.
type ChartKind string

const (
	ChartLine     ChartKind = "line"
	ChartBar      ChartKind = "bar"
	ChartHBar     ChartKind = "hbar"
	ChartDoughnut ChartKind = "doughnut"
	// ChartBarLine draws the first series as bars and the secondary ones as a line on a second axis.
	ChartBarLine ChartKind = "barline"
)

// ChartSeriesSpec is one plotted series.
type ChartSeriesSpec struct {
	NameKey string
	Values  []float64
	// Comparison series are hidden when the viewer picks "no comparison".
	Comparison bool
	// Secondary series are drawn against the second y axis.
	Secondary bool
}

// ChartSpec is the static description of a chart widget.
type ChartSpec struct {
	Kind ChartKind
	// Labels defaults to localized month abbreviations when nil.
	Labels func(t Translator, lang i18n.Language) []string
	Series []ChartSeriesSpec
}

// KeyAxis labels the axis with translated dictionary keys.
func KeyAxis(keys ...string) func(Translator, i18n.Language) []string {
	return func(t Translator, lang i18n.Language) []string {
		tr := normalizeTranslator(t)
		out := make([]string, len(keys))
		for i, key := range keys {
			out[i] = tr.Translate(lang, key)
		}
		return out
	}
}

// LocalizedAxis labels the axis with per-language names.
func LocalizedAxis(names ...map[string]string) func(Translator, i18n.Language) []string {
	return func(_ Translator, lang i18n.Language) []string {
		out := make([]string, len(names))
		for i, name := range names {
			out[i] = ResolveLocalizedValue(name, string(lang), name[string(i18n.BaseLanguage)])
		}
		return out
	}
}

// EChartsProvider renders server-side chart HTML for a chart spec.
type EChartsProvider struct {
	spec       ChartSpec
	translator Translator
	cache      RenderCache
	assetsHost string
}

// EChartsProviderOption customizes provider behavior.
type EChartsProviderOption func(*EChartsProvider)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.cache = cache
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a different CDN.
func WithChartAssetsHost(host string) EChartsProviderOption {
	return func(p *EChartsProvider) {
		p.assetsHost = host
	}
}

// NewEChartsProvider builds a provider for a chart spec.
func NewEChartsProvider(spec ChartSpec, translator Translator, opts ...EChartsProviderOption) *EChartsProvider {
	p := &EChartsProvider{
		spec:       spec,
		translator: normalizeTranslator(translator),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch renders the chart for the viewer's language, theme, and comparison choice.
func (p *EChartsProvider) Fetch(_ context.Context, meta WidgetContext) (WidgetData, error) {
	if len(p.spec.Series) == 0 {
		return nil, fmt.Errorf("chart %s: series is required", meta.Definition.Code)
	}
	lang := meta.State.Language
	theme := ResolveTheme(meta.State.Theme)
	showComparison := meta.State.Compare != CompareNone
	title := p.translator.Translate(lang, meta.Definition.TitleKey)

	render := func() (string, error) {
		return p.render(lang, theme.ChartTheme, showComparison)
	}
	var (
		html string
		err  error
	)
	if p.cache != nil {
		key := strings.Join([]string{meta.Definition.Code, string(lang), theme.ChartTheme, fmt.Sprint(showComparison)}, ":")
		html, err = p.cache.GetOrRender(key, render)
	} else {
		html, err = render()
	}
	if err != nil {
		return nil, err
	}

	data := WidgetData{
		"title":      title,
		"chart_html": html,
		"chart_type": string(p.spec.Kind),
		"theme":      theme.ChartTheme,
	}
	if meta.Definition.DescriptionKey != "" {
		data["description"] = p.translator.Translate(lang, meta.Definition.DescriptionKey)
	}
	return data, nil
}

func (p *EChartsProvider) labels(lang i18n.Language) []string {
	if p.spec.Labels != nil {
		if labels := p.spec.Labels(p.translator, lang); len(labels) > 0 {
			return labels
		}
	}
	return i18n.MonthLabels(lang)
}

func (p *EChartsProvider) visibleSeries(showComparison bool) []ChartSeriesSpec {
	return Apply(p.spec.Series, func(s ChartSeriesSpec) bool { return showComparison || !s.Comparison })
}

func (p *EChartsProvider) render(lang i18n.Language, theme string, showComparison bool) (string, error) {
	labels := p.labels(lang)
	series := p.visibleSeries(showComparison)
	global := p.globalOptions(theme)

	switch p.spec.Kind {
	case ChartLine:
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(labels)
		for _, s := range series {
			line.AddSeries(p.translator.Translate(lang, s.NameKey), toLineData(labels, s.Values))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	case ChartBar, ChartHBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(labels)
		for _, s := range series {
			bar.AddSeries(p.translator.Translate(lang, s.NameKey), toBarData(labels, s.Values))
		}
		if p.spec.Kind == ChartHBar {
			bar.XYReversal()
		}
		return renderChart(bar)
	case ChartDoughnut:
		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		for _, s := range series {
			pie.AddSeries(p.translator.Translate(lang, s.NameKey), toPieData(labels, s.Values))
		}
		pie.SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"45%", "70%"}}))
		return renderChart(pie)
	case ChartBarLine:
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(labels)
		bar.ExtendYAxis(opts.YAxis{Type: "value", AxisLabel: &opts.AxisLabel{Formatter: "{value}%"}})
		line := charts.NewLine()
		line.SetXAxis(labels)
		for _, s := range series {
			name := p.translator.Translate(lang, s.NameKey)
			if s.Secondary {
				line.AddSeries(name, toLineData(labels, s.Values), charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
				continue
			}
			bar.AddSeries(name, toBarData(labels, s.Values))
		}
		bar.Overlap(line)
		return renderChart(bar)
	default:
		return "", fmt.Errorf("unsupported chart type: %s", p.spec.Kind)
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *EChartsProvider) globalOptions(theme string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if p.assetsHost != "" {
		initOpts.AssetsHost = p.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func toBarData(labels []string, values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Name: labelAt(labels, i), Value: v}
	}
	return data
}

func toLineData(labels []string, values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Name: labelAt(labels, i), Value: v}
	}
	return data
}

func toPieData(labels []string, values []float64) []opts.PieData {
	data := make([]opts.PieData, len(values))
	for i, v := range values {
		name := labelAt(labels, i)
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{Name: name, Value: v}
	}
	return data
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
