package pharmacy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuote(id string, day time.Time, delivery bool, minutes int) Quote {
	band := medicineCatalog["ibuprofen"]
	return buildQuote(id, "Pharmacy "+id, "ibuprofen", band, 2.5, delivery, minutes, day)
}

func TestQuoteDeterminism(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	a := testQuote("ph-1", day, true, 30)
	b := testQuote("ph-1", day.Add(5*time.Hour), true, 30) // same calendar day
	assert.Equal(t, a.Price, b.Price)
	assert.Equal(t, a.DiscountPercent, b.DiscountPercent)
	assert.Equal(t, a.InStock, b.InStock)

	// Reseeding across days must actually vary the offer.
	samePrice := true
	for i := 1; i <= 30 && samePrice; i++ {
		q := testQuote("ph-1", day.AddDate(0, 0, i), true, 30)
		samePrice = q.Price == a.Price && q.DiscountPercent == a.DiscountPercent
	}
	assert.False(t, samePrice, "quote never changed over a month")
}

func TestQuotePriceWithinBand(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	band := medicineCatalog["insulin"]

	for i := 0; i < 50; i++ {
		q := buildQuote(string(rune('a'+i%26))+"-ph", "x", "insulin", band, 1, false, 0, day.AddDate(0, 0, i))
		require.GreaterOrEqual(t, q.Price, band.min)
		require.LessOrEqual(t, q.Price, band.max)
		require.LessOrEqual(t, q.FinalPrice, q.Price)
	}
}

func TestSortQuotesByPrice(t *testing.T) {
	quotes := []Quote{
		{PharmacyID: "a", FinalPrice: 100, InStock: false},
		{PharmacyID: "b", FinalPrice: 300, InStock: true},
		{PharmacyID: "c", FinalPrice: 200, InStock: true},
		{PharmacyID: "d", FinalPrice: 50, InStock: false},
	}

	require.NoError(t, sortQuotes(quotes, "price"))

	// Every in-stock quote sorts strictly before every out-of-stock one.
	sawOutOfStock := false
	for _, q := range quotes {
		if !q.InStock {
			sawOutOfStock = true
		} else {
			assert.False(t, sawOutOfStock, "in-stock quote after out-of-stock")
		}
	}
	assert.Equal(t, "c", quotes[0].PharmacyID)
	assert.Equal(t, "d", quotes[2].PharmacyID)
}

func TestSortQuotesByPriceOrder(t *testing.T) {
	quotes := []Quote{
		{PharmacyID: "a", FinalPrice: 300, InStock: true},
		{PharmacyID: "b", FinalPrice: 100, InStock: true},
		{PharmacyID: "c", FinalPrice: 200, InStock: false},
	}
	require.NoError(t, sortQuotes(quotes, "price"))
	assert.Equal(t, []string{"b", "a", "c"}, []string{quotes[0].PharmacyID, quotes[1].PharmacyID, quotes[2].PharmacyID})
}

func TestSortQuotesByDelivery(t *testing.T) {
	quotes := []Quote{
		{PharmacyID: "pickup", DeliveryMinutes: pickupSentinelMinutes},
		{PharmacyID: "slow", DeliveryCapable: true, DeliveryMinutes: 90},
		{PharmacyID: "fast", DeliveryCapable: true, DeliveryMinutes: 25},
	}
	require.NoError(t, sortQuotes(quotes, "delivery"))

	assert.Equal(t, "fast", quotes[0].PharmacyID)
	assert.Equal(t, "slow", quotes[1].PharmacyID)
	assert.Equal(t, "pickup", quotes[2].PharmacyID)
}

func TestSortQuotesUnknownMode(t *testing.T) {
	err := sortQuotes(nil, "rating")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestApplyCoPayPrecedence(t *testing.T) {
	networks := []string{"Iran Insurance", "Asia Insurance"}

	t.Run("member insurer wins over family", func(t *testing.T) {
		q := Quote{FinalPrice: 1000}
		applyCoPay(&q, networks, "Iran Insurance", "Asia Insurance")
		assert.Equal(t, coPayPrimaryPercent, q.CoPayPercent)
		assert.Equal(t, int64(200), q.PriceAfterCoPay)
	})

	t.Run("family insurer as fallback", func(t *testing.T) {
		q := Quote{FinalPrice: 1000}
		applyCoPay(&q, networks, "Unknown", "Asia Insurance")
		assert.Equal(t, coPayFamilyPercent, q.CoPayPercent)
		assert.Equal(t, int64(250), q.PriceAfterCoPay)
	})

	t.Run("out of network pays full price", func(t *testing.T) {
		q := Quote{FinalPrice: 1000}
		applyCoPay(&q, networks, "Unknown", "")
		assert.Zero(t, q.CoPayPercent)
		assert.Equal(t, int64(1000), q.PriceAfterCoPay)
	})
}
