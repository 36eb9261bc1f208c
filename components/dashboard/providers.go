package dashboard

import (
	"context"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// KPIFormat selects how a KPI value is printed.
type KPIFormat string

const (
	KPICurrency KPIFormat = "currency"
	// KPISigned prints integers with a leading sign, as in "+2.350".
	KPISigned KPIFormat = "signed"
	KPICount  KPIFormat = "count"
)

// KPI is a fixed headline figure with its change against a baseline.
type KPI struct {
	Value     float64
	Format    KPIFormat
	Change    float64
	ChangeKey string
}

// FormatValue renders the KPI value for a language.
func (k KPI) FormatValue(lang i18n.Language) string {
	switch k.Format {
	case KPICurrency:
		return i18n.FormatCurrency(lang, k.Value)
	case KPISigned:
		return i18n.FormatSignedInteger(lang, int(k.Value))
	default:
		return i18n.FormatInteger(lang, int(k.Value))
	}
}

// NewKPIProvider returns a provider that renders a single KPI card.
func NewKPIProvider(kpi KPI, translator Translator) Provider {
	translator = normalizeTranslator(translator)
	return ProviderFunc(func(_ context.Context, meta WidgetContext) (WidgetData, error) {
		lang := meta.State.Language
		change := i18n.FormatChange(kpi.Change)
		if kpi.ChangeKey != "" {
			change += " " + translator.Translate(lang, kpi.ChangeKey)
		}
		return WidgetData{
			"title":    translator.Translate(lang, meta.Definition.TitleKey),
			"value":    kpi.FormatValue(lang),
			"change":   change,
			"positive": kpi.Change >= 0,
		}, nil
	})
}

// RankingEntry is one row of a ranked list with its share of the leader.
type RankingEntry struct {
	Name  map[string]string
	Share int
}

// NewRankingProvider renders a ranked list whose rows carry a percentage bar width.
func NewRankingProvider(entries []RankingEntry, translator Translator) Provider {
	translator = normalizeTranslator(translator)
	return ProviderFunc(func(_ context.Context, meta WidgetContext) (WidgetData, error) {
		lang := meta.State.Language
		rows := make([]map[string]any, 0, len(entries))
		for i, entry := range entries {
			share := min(max(entry.Share, 0), 100)
			rows = append(rows, map[string]any{
				"position": i + 1,
				"name":     ResolveLocalizedValue(entry.Name, string(lang), entry.Name[string(i18n.BaseLanguage)]),
				"share":    share,
			})
		}
		return WidgetData{
			"title": translator.Translate(lang, meta.Definition.TitleKey),
			"items": rows,
		}, nil
	})
}
