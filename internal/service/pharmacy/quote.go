package pharmacy

import (
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// pickupSentinelMinutes sorts pickup-only pharmacies after every
// delivery-capable one in delivery mode.
const pickupSentinelMinutes = 999

const (
	coPayPrimaryPercent = 20
	coPayFamilyPercent  = 25
)

// priceBand is the plausible retail range for a medicine, minor units.
type priceBand struct {
	min int64
	max int64
}

// medicineCatalog is the static price-comparison catalog.
var medicineCatalog = map[string]priceBand{
	"acetaminophen": {min: 150_000, max: 350_000},
	"amoxicillin":   {min: 400_000, max: 900_000},
	"ibuprofen":     {min: 180_000, max: 420_000},
	"metformin":     {min: 250_000, max: 600_000},
	"atorvastatin":  {min: 500_000, max: 1_200_000},
	"losartan":      {min: 300_000, max: 750_000},
	"omeprazole":    {min: 280_000, max: 650_000},
	"insulin":       {min: 1_500_000, max: 3_500_000},
	"salbutamol":    {min: 450_000, max: 950_000},
	"cetirizine":    {min: 120_000, max: 280_000},
}

// Quote is one pharmacy's offer for a medicine on a given day.
type Quote struct {
	PharmacyID      string
	PharmacyName    string
	Medicine        string
	Price           int64 // before discount
	DiscountPercent int
	FinalPrice      int64
	InStock         bool
	DistanceKm      float64
	DeliveryCapable bool
	DeliveryMinutes int // pickupSentinelMinutes when not delivery-capable
	CoPayPercent    int // 0 when out of network
	CoPayAmount     int64
	PriceAfterCoPay int64
}

// quoteSeed hashes (pharmacy, medicine, day) with FNV-1a so a pharmacy's
// offer is stable within a calendar day and changes the next.
func quoteSeed(pharmacyID, medicine string, day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(pharmacyID))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(medicine)))
	h.Write([]byte{0})
	h.Write([]byte(day.Format("2006-01-02")))
	return int64(h.Sum64())
}

// buildQuote derives the deterministic offer for one pharmacy.
func buildQuote(pharmacyID, pharmacyName, medicine string, band priceBand, distanceKm float64, deliveryCapable bool, deliveryMinutes int, day time.Time) Quote {
	rng := rand.New(rand.NewSource(quoteSeed(pharmacyID, medicine, day)))

	spread := band.max - band.min
	price := band.min
	if spread > 0 {
		price += rng.Int63n(spread + 1)
	}

	discounts := []int{0, 0, 5, 10, 15}
	discount := discounts[rng.Intn(len(discounts))]
	final := price - price*int64(discount)/100

	inStock := rng.Intn(100) < 85

	minutes := pickupSentinelMinutes
	if deliveryCapable {
		minutes = deliveryMinutes
	}

	return Quote{
		PharmacyID:      pharmacyID,
		PharmacyName:    pharmacyName,
		Medicine:        medicine,
		Price:           price,
		DiscountPercent: discount,
		FinalPrice:      final,
		InStock:         inStock,
		DistanceKm:      distanceKm,
		DeliveryCapable: deliveryCapable,
		DeliveryMinutes: minutes,
	}
}

// applyCoPay resolves the co-pay for a quote. The member's own insurer wins
// over the account-level insurer when the pharmacy is in both networks.
func applyCoPay(q *Quote, networks []string, memberInsurer, familyInsurer string) {
	inNetwork := func(insurer string) bool {
		if insurer == "" {
			return false
		}
		for _, n := range networks {
			if n == insurer {
				return true
			}
		}
		return false
	}

	switch {
	case inNetwork(memberInsurer):
		q.CoPayPercent = coPayPrimaryPercent
	case inNetwork(familyInsurer):
		q.CoPayPercent = coPayFamilyPercent
	default:
		q.PriceAfterCoPay = q.FinalPrice
		return
	}

	q.CoPayAmount = q.FinalPrice * int64(q.CoPayPercent) / 100
	q.PriceAfterCoPay = q.CoPayAmount
}

// sortQuotes orders quotes in place for the requested mode.
func sortQuotes(quotes []Quote, mode string) error {
	switch mode {
	case "", "price":
		sort.SliceStable(quotes, func(i, j int) bool {
			if quotes[i].InStock != quotes[j].InStock {
				return quotes[i].InStock
			}
			return quotes[i].FinalPrice < quotes[j].FinalPrice
		})
	case "delivery":
		sort.SliceStable(quotes, func(i, j int) bool {
			return quotes[i].DeliveryMinutes < quotes[j].DeliveryMinutes
		})
	default:
		return ErrInvalidSort
	}
	return nil
}
