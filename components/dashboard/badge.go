package dashboard

import "github.com/goliatone/go-storefront-admin/components/dashboard/i18n"

// Tone is the visual category of a badge.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneAccent  Tone = "accent"
)

// Badge is the presentation descriptor for a status value. The zero value renders nothing.
type Badge struct {
	LabelKey string `json:"label_key,omitempty"`
	Label    string `json:"label,omitempty"`
	Tone     Tone   `json:"tone,omitempty"`
	// Outline marks badges drawn with a border instead of a filled background.
	Outline bool `json:"outline,omitempty"`
}

// Empty reports whether the badge carries no label.
func (b Badge) Empty() bool {
	return b.LabelKey == ""
}

// Localize fills Label from the translator.
func (b Badge) Localize(t Translator, lang i18n.Language) Badge {
	if b.Empty() {
		return b
	}
	b.Label = normalizeTranslator(t).Translate(lang, b.LabelKey)
	return b
}

// StockBadge maps a stock status to its badge.
func StockBadge(s StockStatus) (Badge, bool) {
	switch s {
	case StockInStock:
		return Badge{LabelKey: "stock.in_stock", Tone: ToneSuccess}, true
	case StockLowStock:
		return Badge{LabelKey: "stock.low_stock", Tone: ToneWarning, Outline: true}, true
	case StockOutOfStock:
		return Badge{LabelKey: "stock.out_of_stock", Tone: ToneDanger}, true
	}
	return Badge{}, false
}

// OrderBadge maps an order status to its badge.
func OrderBadge(s OrderStatus) (Badge, bool) {
	switch s {
	case OrderPending:
		return Badge{LabelKey: "order_status.pending", Tone: ToneWarning, Outline: true}, true
	case OrderProcessing:
		return Badge{LabelKey: "order_status.processing", Tone: ToneInfo, Outline: true}, true
	case OrderShipped:
		return Badge{LabelKey: "order_status.shipped", Tone: ToneAccent, Outline: true}, true
	case OrderDelivered:
		return Badge{LabelKey: "order_status.delivered", Tone: ToneSuccess}, true
	case OrderCancelled:
		return Badge{LabelKey: "order_status.cancelled", Tone: ToneDanger}, true
	}
	return Badge{}, false
}

// PaymentBadge maps a payment status to its badge.
func PaymentBadge(s PaymentStatus) (Badge, bool) {
	switch s {
	case PaymentPaid:
		return Badge{LabelKey: "payment_status.paid", Tone: ToneSuccess}, true
	case PaymentPending:
		return Badge{LabelKey: "payment_status.pending", Tone: ToneWarning, Outline: true}, true
	case PaymentFailed:
		return Badge{LabelKey: "payment_status.failed", Tone: ToneDanger}, true
	}
	return Badge{}, false
}

// CustomerBadge maps a customer status to its badge.
func CustomerBadge(s CustomerStatus) (Badge, bool) {
	switch s {
	case CustomerActive:
		return Badge{LabelKey: "customer_status.active", Tone: ToneSuccess}, true
	case CustomerInactive:
		return Badge{LabelKey: "customer_status.inactive", Tone: ToneNeutral, Outline: true}, true
	}
	return Badge{}, false
}

// CategoryLabelKey returns the dictionary key for a category, or "" when unknown.
func CategoryLabelKey(c Category) string {
	switch c {
	case CategoryElectronics:
		return "category.electronics"
	case CategoryClothing:
		return "category.clothing"
	case CategoryFurniture:
		return "category.furniture"
	case CategoryAccessories:
		return "category.accessories"
	}
	return ""
}

// CategoryLabel translates a category, falling back to the raw value.
func CategoryLabel(t Translator, lang i18n.Language, c Category) string {
	key := CategoryLabelKey(c)
	if key == "" {
		return string(c)
	}
	return normalizeTranslator(t).Translate(lang, key)
}

// Option is a select control entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// SelectionOptions builds the "all" entry followed by one entry per domain value.
func SelectionOptions[V ~string](t Translator, lang i18n.Language, sel Selection[V], values []V, labelKey func(V) string) []Option {
	tr := normalizeTranslator(t)
	out := make([]Option, 0, len(values)+1)
	out = append(out, Option{Value: SelectAll, Label: tr.Translate(lang, "filter.all"), Selected: sel.IsAll()})
	current, set := sel.Value()
	for _, v := range values {
		out = append(out, Option{
			Value:    string(v),
			Label:    tr.Translate(lang, labelKey(v)),
			Selected: set && current == v,
		})
	}
	return out
}

func stockLabelKey(s StockStatus) string {
	b, _ := StockBadge(s)
	return b.LabelKey
}

func orderLabelKey(s OrderStatus) string {
	b, _ := OrderBadge(s)
	return b.LabelKey
}

func paymentLabelKey(s PaymentStatus) string {
	b, _ := PaymentBadge(s)
	return b.LabelKey
}

func customerLabelKey(s CustomerStatus) string {
	b, _ := CustomerBadge(s)
	return b.LabelKey
}
