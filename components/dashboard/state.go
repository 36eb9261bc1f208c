package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// Page identifies one of the dashboard screens.
type Page string

const (
	PageOverview  Page = "overview"
	PageAnalytics Page = "analytics"
	PageProducts  Page = "products"
	PageCustomers Page = "customers"
	PageOrders    Page = "orders"
)

// Pages lists the screens in navigation order.
func Pages() []Page {
	return []Page{PageOverview, PageAnalytics, PageProducts, PageCustomers, PageOrders}
}

// Period is the time window tab on the overview and analytics pages.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Comparison selects the baseline plotted against the current analytics series.
type Comparison string

const (
	CompareNone     Comparison = "none"
	ComparePrevious Comparison = "previous"
	CompareLastYear Comparison = "lastYear"
)

// PeriodsFor lists the period tabs offered on a page.
func PeriodsFor(page Page) []Period {
	if page == PageAnalytics {
		return []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
	}
	return []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear}
}

func defaultPeriod(page Page) Period {
	if page == PageAnalytics {
		return PeriodMonth
	}
	return PeriodToday
}

// Comparisons lists the comparison choices.
func Comparisons() []Comparison {
	return []Comparison{CompareNone, ComparePrevious, CompareLastYear}
}

// StateParams holds the raw request values a page state is parsed from.
type StateParams struct {
	Language string
	Theme    string
	Category string
	Status   string
	Payment  string
	Search   string
	Page     string
	Size     string
	Period   string
	Compare  string
	Path     string
}

// PageState is everything a page render depends on.
type PageState struct {
	Page     Page
	Language i18n.Language
	Theme    ThemeMode
	// Path is the current request path with query, used to build switch links.
	Path       string
	Products   ProductQuery
	Customers  CustomerQuery
	Orders     OrderQuery
	Pagination PageRequest
	Period     Period
	Compare    Comparison
}

// StateDefaults supplies fallbacks for values missing from the request.
type StateDefaults struct {
	Language i18n.Language
	Theme    ThemeMode
}

// ParseState validates raw request values for a page. Filter values outside their
// domain fail with ErrInvalidFilter; unknown language, theme, period, and
// comparison values fall back to defaults.
func ParseState(page Page, params StateParams, defaults StateDefaults) (PageState, error) {
	state := PageState{
		Page:     page,
		Language: defaults.Language,
		Theme:    defaults.Theme,
		Path:     params.Path,
		Period:   defaultPeriod(page),
		Compare:  ComparePrevious,
	}
	if !state.Language.Valid() {
		state.Language = i18n.DefaultLanguage
	}
	if lang, ok := i18n.ParseLanguage(params.Language); ok {
		state.Language = lang
	}
	if mode, ok := ParseThemeMode(params.Theme); ok {
		state.Theme = mode
	}
	if _, ok := ParseThemeMode(string(state.Theme)); !ok {
		state.Theme = ThemeSystem
	}
	if period, ok := parsePeriod(page, params.Period); ok {
		state.Period = period
	}
	if cmp, ok := parseComparison(params.Compare); ok {
		state.Compare = cmp
	}
	state.Pagination = PageRequest{Number: atoiOrZero(params.Page), Size: atoiOrZero(params.Size)}

	var err error
	switch page {
	case PageOverview, PageProducts:
		state.Products, err = ParseProductQuery(params.Category, params.Status, params.Search)
	case PageCustomers:
		state.Customers, err = ParseCustomerQuery(params.Status, params.Search)
	case PageOrders:
		state.Orders, err = ParseOrderQuery(params.Status, params.Payment, params.Search)
	}
	if err != nil {
		return PageState{}, fmt.Errorf("%s filters: %w", page, err)
	}
	return state, nil
}

func parsePeriod(page Page, raw string) (Period, bool) {
	value := Period(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range PeriodsFor(page) {
		if p == value {
			return p, true
		}
	}
	return "", false
}

func parseComparison(raw string) (Comparison, bool) {
	value := strings.TrimSpace(raw)
	for _, c := range Comparisons() {
		if strings.EqualFold(string(c), value) {
			return c, true
		}
	}
	return "", false
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
