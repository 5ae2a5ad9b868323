package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
)

func TestNormalize_Defaults(t *testing.T) {
	spec, err := ListQuery{Page: 1, Limit: 20}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 20, spec.Limit)
	assert.Equal(t, 0, spec.Offset)
	assert.True(t, spec.Descending, "order defaults to desc")
	assert.Nil(t, spec.StartDate)
	assert.Nil(t, spec.EndDate)
}

func TestNormalize_OffsetArithmetic(t *testing.T) {
	spec, err := ListQuery{Page: 3, Limit: 25}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 50, spec.Offset)
	assert.Equal(t, 25, spec.Limit)
}

func TestNormalize_LimitCappedNotRejected(t *testing.T) {
	spec, err := ListQuery{Page: 2, Limit: 500}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 100, spec.Limit)
	// Offset uses the capped limit, keeping pages contiguous.
	assert.Equal(t, 100, spec.Offset)
}

func TestNormalize_PageBelowOneRejected(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := ListQuery{Page: page, Limit: 20}.Normalize()
		require.Error(t, err)
		assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	}
}

func TestNormalize_LimitBelowOneRejected(t *testing.T) {
	_, err := ListQuery{Page: 1, Limit: 0}.Normalize()
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestNormalize_OrderAsc(t *testing.T) {
	spec, err := ListQuery{Page: 1, Limit: 20, Order: "asc"}.Normalize()
	require.NoError(t, err)
	assert.False(t, spec.Descending)
}

func TestNormalize_ISODateBounds(t *testing.T) {
	spec, err := ListQuery{
		Page:      1,
		Limit:     20,
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30T23:59:59Z",
	}.Normalize()
	require.NoError(t, err)
	require.NotNil(t, spec.StartDate)
	require.NotNil(t, spec.EndDate)
	assert.Equal(t, 2026, spec.StartDate.Year())
	assert.Equal(t, time.June, spec.EndDate.Month())
}

func TestNormalize_NaturalLanguageDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	spec, err := ListQuery{Page: 1, Limit: 20, StartDate: "yesterday"}.NormalizeAt(now)
	require.NoError(t, err)
	require.NotNil(t, spec.StartDate)
	assert.Equal(t, 27, spec.StartDate.Day())
}

func TestNormalize_UnparsableDateMeansNoBound(t *testing.T) {
	spec, err := ListQuery{Page: 1, Limit: 20, StartDate: "not a date at all zzz"}.Normalize()
	require.NoError(t, err)
	assert.Nil(t, spec.StartDate, "garbage dates silently resolve to no bound")
}

func TestNormalizeAt_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	q := ListQuery{Page: 1, Limit: 20, StartDate: "last week", EndDate: "today"}

	a, err := q.NormalizeAt(now)
	require.NoError(t, err)
	b, err := q.NormalizeAt(now)
	require.NoError(t, err)

	require.NotNil(t, a.StartDate)
	require.NotNil(t, b.StartDate)
	assert.True(t, a.StartDate.Equal(*b.StartDate))
	assert.True(t, a.EndDate.Equal(*b.EndDate))
}
