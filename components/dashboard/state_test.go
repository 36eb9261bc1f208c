package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

func TestParseStateDefaults(t *testing.T) {
	state, err := ParseState(PageAnalytics, StateParams{}, StateDefaults{})
	require.NoError(t, err)
	assert.Equal(t, i18n.DefaultLanguage, state.Language)
	assert.Equal(t, ThemeSystem, state.Theme)
	assert.Equal(t, PeriodMonth, state.Period)
	assert.Equal(t, ComparePrevious, state.Compare)

	overview, err := ParseState(PageOverview, StateParams{Period: "quarter"}, StateDefaults{})
	require.NoError(t, err)
	assert.Equal(t, PeriodToday, overview.Period, "quarter is not an overview tab")
}

func TestParseStateReadsParams(t *testing.T) {
	state, err := ParseState(PageAnalytics, StateParams{
		Language: "en-US",
		Theme:    "dark",
		Period:   "Quarter",
		Compare:  "lastyear",
		Page:     "2",
		Size:     "abc",
	}, StateDefaults{Language: i18n.Portuguese, Theme: ThemeLight})
	require.NoError(t, err)
	assert.Equal(t, i18n.English, state.Language)
	assert.Equal(t, ThemeDark, state.Theme)
	assert.Equal(t, PeriodQuarter, state.Period)
	assert.Equal(t, CompareLastYear, state.Compare)
	assert.Equal(t, PageRequest{Number: 2, Size: 0}, state.Pagination)
}

func TestParseStateRejectsInvalidFilters(t *testing.T) {
	cases := []struct {
		page   Page
		params StateParams
	}{
		{PageProducts, StateParams{Category: "toys"}},
		{PageOverview, StateParams{Status: "discontinued"}},
		{PageCustomers, StateParams{Status: "vip"}},
		{PageOrders, StateParams{Payment: "refunded"}},
	}
	for _, tc := range cases {
		_, err := ParseState(tc.page, tc.params, StateDefaults{})
		assert.ErrorIs(t, err, ErrInvalidFilter, "page %s params %+v", tc.page, tc.params)
	}

	// Filters of other pages are ignored.
	_, err := ParseState(PageAnalytics, StateParams{Category: "toys"}, StateDefaults{})
	assert.NoError(t, err)
}

func TestSelectionParsing(t *testing.T) {
	sel, err := ParseSelection("", Categories())
	require.NoError(t, err)
	assert.True(t, sel.IsAll())
	assert.Equal(t, SelectAll, sel.String())

	sel, err = ParseSelection(" Clothing ", Categories())
	require.NoError(t, err)
	value, ok := sel.Value()
	assert.True(t, ok)
	assert.Equal(t, CategoryClothing, value)
	assert.True(t, sel.Matches(CategoryClothing))
	assert.False(t, sel.Matches(CategoryFurniture))
}

func TestProductQueryFilterKeepsOrder(t *testing.T) {
	q, err := ParseProductQuery("all", "low-stock", "")
	require.NoError(t, err)
	got := q.Filter(i18n.English, DefaultProducts())
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "7", got[1].ID)

	q, err = ParseProductQuery("", "", "SOFÁ")
	require.NoError(t, err)
	assert.Len(t, q.Filter(i18n.Portuguese, DefaultProducts()), 1)
	assert.Empty(t, q.Filter(i18n.English, DefaultProducts()))
}

func TestSearchMatchesTermAsTyped(t *testing.T) {
	q, err := ParseCustomerQuery("all", " emma")
	require.NoError(t, err)
	assert.Empty(t, q.Filter(DefaultCustomers()))

	q, err = ParseCustomerQuery("all", " MARTINEZ")
	require.NoError(t, err)
	got := q.Filter(DefaultCustomers())
	require.Len(t, got, 1)
	assert.Equal(t, "Emma Martinez", got[0].Name)

	products, err := ParseProductQuery("all", "all", "   ")
	require.NoError(t, err)
	if n := len(products.Filter(i18n.English, DefaultProducts())); n != 0 {
		t.Fatalf("whitespace search matched %d products", n)
	}
}

func TestFiltersAreIdempotentAndWildcardKeepsEverything(t *testing.T) {
	cases := []struct {
		name  string
		all   func(t *testing.T) (input, output int)
		again func(t *testing.T) (once, twice int)
	}{
		{
			name: "products",
			all: func(t *testing.T) (int, int) {
				q, err := ParseProductQuery("all", "all", "")
				require.NoError(t, err)
				items := DefaultProducts()
				return len(items), len(q.Filter(i18n.Portuguese, items))
			},
			again: func(t *testing.T) (int, int) {
				q, err := ParseProductQuery("electronics", "all", "o")
				require.NoError(t, err)
				once := q.Filter(i18n.English, DefaultProducts())
				twice := q.Filter(i18n.English, once)
				assert.Equal(t, once, twice)
				return len(once), len(twice)
			},
		},
		{
			name: "customers",
			all: func(t *testing.T) (int, int) {
				q, err := ParseCustomerQuery("all", "")
				require.NoError(t, err)
				items := DefaultCustomers()
				return len(items), len(q.Filter(items))
			},
			again: func(t *testing.T) (int, int) {
				q, err := ParseCustomerQuery("active", "son")
				require.NoError(t, err)
				once := q.Filter(DefaultCustomers())
				twice := q.Filter(once)
				assert.Equal(t, once, twice)
				return len(once), len(twice)
			},
		},
		{
			name: "orders",
			all: func(t *testing.T) (int, int) {
				q, err := ParseOrderQuery("all", "all", "")
				require.NoError(t, err)
				items := DefaultOrders()
				return len(items), len(q.Filter(items))
			},
			again: func(t *testing.T) (int, int) {
				q, err := ParseOrderQuery("all", "paid", "2023")
				require.NoError(t, err)
				once := q.Filter(DefaultOrders())
				twice := q.Filter(once)
				assert.Equal(t, once, twice)
				return len(once), len(twice)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input, output := tc.all(t)
			assert.Equal(t, input, output)
			once, twice := tc.again(t)
			if once == 0 {
				t.Fatalf("expected matches for the %s filter", tc.name)
			}
			assert.Equal(t, once, twice)
		})
	}
}

func TestPaginateClampsRequests(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	page, info := Paginate(items, PageRequest{Number: 9, Size: 2}, 10)
	assert.Equal(t, []int{5}, page)
	assert.Equal(t, 3, info.Number)

	page, info = Paginate(items, PageRequest{Size: 1000}, 10)
	assert.Len(t, page, 5)
	assert.Equal(t, MaxPageSize, info.Size)

	empty, info := Paginate([]int{}, PageRequest{}, 0)
	assert.Empty(t, empty)
	assert.Equal(t, PageInfo{Number: 1, Size: DefaultPageSize, TotalPages: 1}, info)
}
