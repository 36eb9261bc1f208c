package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		lang   Language
		amount float64
		want   string
	}{
		{Portuguese, 1299.99, "R$ 1.299,99"},
		{English, 1299.99, "$1,299.99"},
		{Portuguese, 49.99, "R$ 49,99"},
		{English, 452890, "$452,890.00"},
		{English, -5, "-$5.00"},
		{Portuguese, -1299.99, "-R$ 1.299,99"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.lang, tc.amount), "%s %v", tc.lang, tc.amount)
	}
}

func TestFormatInteger(t *testing.T) {
	assert.Equal(t, "2.350", FormatInteger(Portuguese, 2350))
	assert.Equal(t, "12,234", FormatInteger(English, 12234))
	assert.Equal(t, "+573", FormatSignedInteger(English, 573))
}

func TestFormatChangeIsLocaleInvariant(t *testing.T) {
	assert.Equal(t, "+20.1%", FormatChange(20.1))
	assert.Equal(t, "-3.0%", FormatChange(-3))
}

func TestFormatDate(t *testing.T) {
	day := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "June 15, 2023", FormatDate(English, day))

	pt := FormatDate(Portuguese, day)
	assert.Contains(t, pt, "15 de")
	assert.Contains(t, pt, "2023")
	assert.Contains(t, strings.ToLower(pt), "junho")

	assert.Equal(t, "", FormatDate(English, time.Time{}))
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(English)
	assert.Len(t, labels, 12)
	assert.Equal(t, "Jan", labels[0])
	assert.Equal(t, "Dec", labels[11])
	assert.Len(t, MonthLabels(Portuguese), 12)
}
