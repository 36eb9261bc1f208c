package dashboard

import (
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// PeriodOptions builds the localized period tabs for a page.
func PeriodOptions(t Translator, lang i18n.Language, page Page, current Period) []Option {
	tr := normalizeTranslator(t)
	periods := PeriodsFor(page)
	out := make([]Option, 0, len(periods))
	for _, p := range periods {
		out = append(out, Option{
			Value:    string(p),
			Label:    tr.Translate(lang, periodLabelKey(page, p)),
			Selected: p == current,
		})
	}
	return out
}

// ComparisonOptions builds the localized comparison select.
func ComparisonOptions(t Translator, lang i18n.Language, current Comparison) []Option {
	tr := normalizeTranslator(t)
	out := make([]Option, 0, 3)
	for _, c := range Comparisons() {
		out = append(out, Option{
			Value:    string(c),
			Label:    tr.Translate(lang, comparisonLabelKey(c)),
			Selected: c == current,
		})
	}
	return out
}

func periodLabelKey(page Page, p Period) string {
	if page == PageAnalytics {
		return "analytics.period." + string(p)
	}
	return "overview.period." + string(p)
}

func comparisonLabelKey(c Comparison) string {
	switch c {
	case CompareNone:
		return "analytics.compare.none"
	case CompareLastYear:
		return "analytics.compare.last_year"
	default:
		return "analytics.compare.previous"
	}
}

// Fixed series shown on the overview and analytics pages.
var (
	revenueSeries         = []float64{18000, 22000, 19500, 24000, 25500, 27000, 29500, 32000, 31000, 33500, 36000, 38500}
	previousRevenueSeries = []float64{15000, 19000, 17000, 21000, 22000, 23500, 26000, 28000, 27000, 29500, 31000, 33000}
	newCustomerSeries     = []float64{120, 150, 180, 170, 160, 190, 210, 230, 240, 250, 270, 290}
	returningSeries       = []float64{80, 100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200}
	visitorSeries         = []float64{1200, 1300, 1400, 1350, 1500, 1600, 1700, 1800, 1900, 2000, 2100, 2200}
	conversionSeries      = []float64{3.2, 3.5, 3.8, 4.0, 4.2, 4.5, 4.7, 4.9, 5.1, 5.3, 5.5, 5.7}
	topProductSales       = []float64{1250, 980, 750, 620, 540}
	categoryShare         = []float64{35, 25, 20, 20}
	channelShare          = []float64{45, 25, 20, 10}
)

var topProductNames = []map[string]string{
	{"en": "Premium Smartphone", "pt": "Smartphone Premium"},
	{"en": "Ultra Laptop", "pt": "Notebook Ultra"},
	{"en": "Wireless Headphones", "pt": "Fones Sem Fio"},
	{"en": "4K Smart TV", "pt": "Smart TV 4K"},
	{"en": "Digital Camera", "pt": "Câmera Digital"},
}

var topProductShares = []int{80, 65, 50, 40, 35}

func revenueChart() ChartSpec {
	return ChartSpec{
		Kind:   ChartLine,
		Series: []ChartSeriesSpec{{NameKey: "overview.chart.revenue.series", Values: revenueSeries}},
	}
}

func topProductsChart() ChartSpec {
	return ChartSpec{
		Kind:   ChartHBar,
		Labels: LocalizedAxis(topProductNames...),
		Series: []ChartSeriesSpec{{NameKey: "overview.chart.top_products.series", Values: topProductSales}},
	}
}

func salesPerformanceChart() ChartSpec {
	return ChartSpec{
		Kind: ChartLine,
		Series: []ChartSeriesSpec{
			{NameKey: "analytics.series.current_revenue", Values: revenueSeries},
			{NameKey: "analytics.series.previous_revenue", Values: previousRevenueSeries, Comparison: true},
		},
	}
}

func revenueByCategoryChart() ChartSpec {
	keys := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		keys = append(keys, CategoryLabelKey(c))
	}
	return ChartSpec{
		Kind:   ChartDoughnut,
		Labels: KeyAxis(keys...),
		Series: []ChartSeriesSpec{{NameKey: "analytics.chart.revenue_by_category", Values: categoryShare}},
	}
}

func customerAcquisitionChart() ChartSpec {
	return ChartSpec{
		Kind: ChartBar,
		Series: []ChartSeriesSpec{
			{NameKey: "analytics.series.new_customers", Values: newCustomerSeries},
			{NameKey: "analytics.series.returning_customers", Values: returningSeries},
		},
	}
}

func conversionRateChart() ChartSpec {
	return ChartSpec{
		Kind: ChartBarLine,
		Series: []ChartSeriesSpec{
			{NameKey: "analytics.series.visitors", Values: visitorSeries},
			{NameKey: "analytics.series.conversion_rate", Values: conversionSeries, Secondary: true},
		},
	}
}

func salesByChannelChart() ChartSpec {
	return ChartSpec{
		Kind: ChartBar,
		Labels: KeyAxis(
			"analytics.channel.website",
			"analytics.channel.mobile_app",
			"analytics.channel.marketplace",
			"analytics.channel.social_media",
		),
		Series: []ChartSeriesSpec{{NameKey: "analytics.series.sales", Values: channelShare}},
	}
}
