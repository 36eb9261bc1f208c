package dashboard

import (
	"fmt"
)

// Widget codes registered by RegisterDefaultWidgets.
const (
	WidgetOverviewRevenueKPI   = "overview.kpi.total_revenue"
	WidgetOverviewMonthKPI     = "overview.kpi.sales_this_month"
	WidgetOverviewSalesKPI     = "overview.kpi.total_sales"
	WidgetOverviewUsersKPI     = "overview.kpi.active_users"
	WidgetOverviewRevenueChart = "overview.chart.revenue"
	WidgetOverviewTopProducts  = "overview.chart.top_products"

	WidgetAnalyticsRevenueKPI   = "analytics.kpi.revenue"
	WidgetAnalyticsOrdersKPI    = "analytics.kpi.orders"
	WidgetAnalyticsCustomersKPI = "analytics.kpi.customers"
	WidgetAnalyticsAOVKPI       = "analytics.kpi.average_order_value"
	WidgetAnalyticsPerformance  = "analytics.chart.sales_performance"
	WidgetAnalyticsCategory     = "analytics.chart.revenue_by_category"
	WidgetAnalyticsAcquisition  = "analytics.chart.customer_acquisition"
	WidgetAnalyticsConversion   = "analytics.chart.conversion_rate"
	WidgetAnalyticsChannel      = "analytics.chart.sales_by_channel"
	WidgetAnalyticsTopProducts  = "analytics.top_products"
)

type defaultWidget struct {
	definition WidgetDefinition
	kpi        *KPI
	chart      *ChartSpec
	ranking    []RankingEntry
}

// WidgetOptions configures the providers built by RegisterDefaultWidgets.
type WidgetOptions struct {
	Translator Translator
	Cache      RenderCache
	AssetsHost string
}

func kpiWidget(code string, kpi KPI) defaultWidget {
	return defaultWidget{
		definition: WidgetDefinition{Code: code, Kind: WidgetKPI, TitleKey: code, Span: 1},
		kpi:        &kpi,
	}
}

func chartWidget(code, titleKey, descriptionKey string, span int, spec ChartSpec) defaultWidget {
	return defaultWidget{
		definition: WidgetDefinition{Code: code, Kind: WidgetChart, TitleKey: titleKey, DescriptionKey: descriptionKey, Span: span},
		chart:      &spec,
	}
}

func defaultWidgets() []defaultWidget {
	const lastMonth = "overview.change.last_month"
	const previousPeriod = "analytics.change.previous_period"

	rankings := make([]RankingEntry, len(topProductNames))
	for i, name := range topProductNames {
		rankings[i] = RankingEntry{Name: name, Share: topProductShares[i]}
	}

	return []defaultWidget{
		kpiWidget(WidgetOverviewRevenueKPI, KPI{Value: 452890, Format: KPICurrency, Change: 20.1, ChangeKey: lastMonth}),
		kpiWidget(WidgetOverviewMonthKPI, KPI{Value: 2350, Format: KPISigned, Change: 12.2, ChangeKey: lastMonth}),
		kpiWidget(WidgetOverviewSalesKPI, KPI{Value: 12234, Format: KPISigned, Change: 8.4, ChangeKey: lastMonth}),
		kpiWidget(WidgetOverviewUsersKPI, KPI{Value: 573, Format: KPISigned, Change: 6.1, ChangeKey: lastMonth}),
		chartWidget(WidgetOverviewRevenueChart, "overview.chart.revenue.title", "overview.chart.revenue.description", 4, revenueChart()),
		chartWidget(WidgetOverviewTopProducts, "overview.chart.top_products.title", "overview.chart.top_products.description", 3, topProductsChart()),

		kpiWidget(WidgetAnalyticsRevenueKPI, KPI{Value: 452890, Format: KPICurrency, Change: 20.1, ChangeKey: previousPeriod}),
		kpiWidget(WidgetAnalyticsOrdersKPI, KPI{Value: 2350, Format: KPISigned, Change: 12.2, ChangeKey: previousPeriod}),
		kpiWidget(WidgetAnalyticsCustomersKPI, KPI{Value: 573, Format: KPISigned, Change: 6.1, ChangeKey: previousPeriod}),
		kpiWidget(WidgetAnalyticsAOVKPI, KPI{Value: 192.80, Format: KPICurrency, Change: 2.5, ChangeKey: previousPeriod}),
		chartWidget(WidgetAnalyticsPerformance, "analytics.chart.sales_performance", "", 4, salesPerformanceChart()),
		chartWidget(WidgetAnalyticsCategory, "analytics.chart.revenue_by_category", "", 3, revenueByCategoryChart()),
		chartWidget(WidgetAnalyticsAcquisition, "analytics.chart.customer_acquisition", "", 4, customerAcquisitionChart()),
		chartWidget(WidgetAnalyticsConversion, "analytics.chart.conversion_rate", "", 3, conversionRateChart()),
		chartWidget(WidgetAnalyticsChannel, "analytics.chart.sales_by_channel", "", 4, salesByChannelChart()),
		{
			definition: WidgetDefinition{Code: WidgetAnalyticsTopProducts, Kind: WidgetRanking, TitleKey: "analytics.top_products", Span: 3},
			ranking:    rankings,
		},
	}
}

// DefaultLayouts lists the widget order of the overview and analytics pages.
func DefaultLayouts() map[Page][]string {
	return map[Page][]string{
		PageOverview: {
			WidgetOverviewRevenueKPI, WidgetOverviewMonthKPI, WidgetOverviewSalesKPI, WidgetOverviewUsersKPI,
			WidgetOverviewRevenueChart, WidgetOverviewTopProducts,
		},
		PageAnalytics: {
			WidgetAnalyticsRevenueKPI, WidgetAnalyticsOrdersKPI, WidgetAnalyticsCustomersKPI, WidgetAnalyticsAOVKPI,
			WidgetAnalyticsPerformance, WidgetAnalyticsCategory,
			WidgetAnalyticsAcquisition, WidgetAnalyticsConversion,
			WidgetAnalyticsChannel, WidgetAnalyticsTopProducts,
		},
	}
}

// RegisterDefaultWidgets installs the overview and analytics widgets and their layouts.
func RegisterDefaultWidgets(reg *Registry, opts WidgetOptions) error {
	if reg == nil {
		return fmt.Errorf("registry is required")
	}
	chartOpts := []EChartsProviderOption{}
	if opts.Cache != nil {
		chartOpts = append(chartOpts, WithChartCache(opts.Cache))
	}
	if opts.AssetsHost != "" {
		chartOpts = append(chartOpts, WithChartAssetsHost(opts.AssetsHost))
	}

	for _, w := range defaultWidgets() {
		if err := reg.RegisterDefinition(w.definition); err != nil {
			return err
		}
		var provider Provider
		switch {
		case w.kpi != nil:
			provider = NewKPIProvider(*w.kpi, opts.Translator)
		case w.chart != nil:
			provider = NewEChartsProvider(*w.chart, opts.Translator, chartOpts...)
		default:
			provider = NewRankingProvider(w.ranking, opts.Translator)
		}
		if err := reg.RegisterProvider(w.definition.Code, provider); err != nil {
			return err
		}
	}
	for page, codes := range DefaultLayouts() {
		if err := reg.SetLayout(page, codes...); err != nil {
			return err
		}
	}
	return nil
}
