package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

func TestKPIProviderFormatsPerLanguage(t *testing.T) {
	dict := i18n.MustLoad()
	provider := NewKPIProvider(KPI{Value: 452890, Format: KPICurrency, Change: 20.1, ChangeKey: "overview.change.last_month"}, dict)
	def := WidgetDefinition{Code: WidgetOverviewRevenueKPI, Kind: WidgetKPI, TitleKey: WidgetOverviewRevenueKPI}

	pt, err := provider.Fetch(context.Background(), WidgetContext{Definition: def, State: PageState{Language: i18n.Portuguese}})
	require.NoError(t, err)
	assert.Equal(t, "R$ 452.890,00", pt["value"])
	assert.Equal(t, true, pt["positive"])

	en, err := provider.Fetch(context.Background(), WidgetContext{Definition: def, State: PageState{Language: i18n.English}})
	require.NoError(t, err)
	assert.Equal(t, "$452,890.00", en["value"])
	assert.Equal(t, "+20.1% from last month", en["change"])
	assert.Equal(t, "Total Revenue", en["title"])
}

func TestKPIFormatValue(t *testing.T) {
	assert.Equal(t, "+2.350", KPI{Value: 2350, Format: KPISigned}.FormatValue(i18n.Portuguese))
	assert.Equal(t, "12,234", KPI{Value: 12234, Format: KPICount}.FormatValue(i18n.English))
}

func TestRankingProviderClampsShares(t *testing.T) {
	provider := NewRankingProvider([]RankingEntry{
		{Name: map[string]string{"en": "Lamp", "pt": "Luminária"}, Share: 140},
		{Name: map[string]string{"pt": "Cadeira"}, Share: -5},
	}, nil)
	data, err := provider.Fetch(context.Background(), WidgetContext{
		Definition: WidgetDefinition{Code: "ranking", TitleKey: "analytics.top_products"},
		State:      PageState{Language: i18n.English},
	})
	require.NoError(t, err)
	items, ok := data["items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "Lamp", items[0]["name"])
	assert.Equal(t, 100, items[0]["share"])
	assert.Equal(t, "Cadeira", items[1]["name"])
	assert.Equal(t, 0, items[1]["share"])
	assert.Equal(t, 2, items[1]["position"])
}

func TestRegisterDefaultWidgets(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterDefaultWidgets(reg, WidgetOptions{Translator: i18n.MustLoad(), Cache: NewChartCache(0)}))

	for page, codes := range DefaultLayouts() {
		assert.Equal(t, codes, reg.Layout(page), "layout for %s", page)
		for _, code := range codes {
			_, ok := reg.Provider(code)
			assert.True(t, ok, "provider for %s", code)
		}
	}
	assert.Len(t, reg.Layout(PageOverview), 6)
	assert.Len(t, reg.Layout(PageAnalytics), 10)
	assert.Empty(t, reg.Layout(PageProducts))

	assert.Error(t, RegisterDefaultWidgets(nil, WidgetOptions{}))
}

func TestRegistryRejectsUnknownCodes(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.RegisterDefinition(WidgetDefinition{}))
	assert.Error(t, reg.RegisterProvider("missing", ProviderFunc(func(context.Context, WidgetContext) (WidgetData, error) { return nil, nil })))
	assert.Error(t, reg.SetLayout(PageOverview, "missing"))
}

func TestNewRegistryStartsEmpty(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.Definitions())
	assert.Empty(t, reg.Layout(PageOverview))
	assert.Empty(t, reg.Layout(PageAnalytics))
}

func TestAnalyticsOptions(t *testing.T) {
	dict := i18n.MustLoad()
	periods := PeriodOptions(dict, i18n.English, PageAnalytics, PeriodMonth)
	require.Len(t, periods, 4)
	assert.Equal(t, "week", periods[0].Value)
	assert.True(t, periods[1].Selected)

	overview := PeriodOptions(dict, i18n.English, PageOverview, PeriodToday)
	assert.Equal(t, "today", overview[0].Value)
	assert.True(t, overview[0].Selected)

	comparisons := ComparisonOptions(dict, i18n.Portuguese, CompareNone)
	require.Len(t, comparisons, 3)
	assert.True(t, comparisons[0].Selected)
	assert.NotEqual(t, "analytics.compare.none", comparisons[0].Label)
}
