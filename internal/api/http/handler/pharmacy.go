package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/service/pharmacy"
)

type PharmacyHandler struct {
	svc pharmacy.Service
}

func NewPharmacyHandler(svc pharmacy.Service) *PharmacyHandler {
	return &PharmacyHandler{svc: svc}
}

func mapPharmacyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pharmacy.ErrUnknownMedicine),
		errors.Is(err, pharmacy.ErrInvalidSort):
		return badRequest(c, err.Error())
	case errors.Is(err, pharmacy.ErrMemberNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

func (h *PharmacyHandler) List(c fiber.Ctx) error {
	var q struct {
		City *string `query:"city"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	pharmacies, err := h.svc.List(c.Context(), q.City)
	if err != nil {
		return mapPharmacyError(c, err)
	}

	return ok(c, pharmacies)
}

func (h *PharmacyHandler) Medicines(c fiber.Ctx) error {
	return ok(c, h.svc.Medicines())
}

type quoteResponse struct {
	PharmacyID      string  `json:"pharmacy_id"`
	PharmacyName    string  `json:"pharmacy_name"`
	Medicine        string  `json:"medicine"`
	Price           int64   `json:"price"`
	DiscountPercent int     `json:"discount_percent"`
	FinalPrice      int64   `json:"final_price"`
	InStock         bool    `json:"in_stock"`
	DistanceKm      float64 `json:"distance_km"`
	DeliveryCapable bool    `json:"delivery_capable"`
	DeliveryMinutes int     `json:"delivery_minutes"`
	CoPayPercent    int     `json:"co_pay_percent"`
	CoPayAmount     int64   `json:"co_pay_amount"`
	PriceAfterCoPay int64   `json:"price_after_co_pay"`
}

func (h *PharmacyHandler) Quotes(c fiber.Ctx) error {
	userID, okc := currentUserID(c)
	if !okc {
		return unauthorized(c, "authentication required")
	}

	var q struct {
		Medicine       string  `query:"medicine"`
		MaxDistanceKm  float64 `query:"max_distance"`
		SortBy         string  `query:"sort_by"`
		FamilyMemberID *string `query:"family_member_id"`
		City           *string `query:"city"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if q.Medicine == "" {
		return badRequest(c, "medicine is required")
	}

	req := pharmacy.QuoteRequest{
		Medicine:      q.Medicine,
		MaxDistanceKm: q.MaxDistanceKm,
		SortBy:        q.SortBy,
		City:          q.City,
	}
	if q.FamilyMemberID != nil {
		id, err := uuid.Parse(*q.FamilyMemberID)
		if err != nil {
			return badRequest(c, "invalid family_member_id")
		}
		req.MemberID = &id
	}

	quotes, err := h.svc.Quotes(c.Context(), userID, req)
	if err != nil {
		return mapPharmacyError(c, err)
	}

	out := make([]quoteResponse, 0, len(quotes))
	for _, qt := range quotes {
		out = append(out, quoteResponse{
			PharmacyID:      qt.PharmacyID,
			PharmacyName:    qt.PharmacyName,
			Medicine:        qt.Medicine,
			Price:           qt.Price,
			DiscountPercent: qt.DiscountPercent,
			FinalPrice:      qt.FinalPrice,
			InStock:         qt.InStock,
			DistanceKm:      qt.DistanceKm,
			DeliveryCapable: qt.DeliveryCapable,
			DeliveryMinutes: qt.DeliveryMinutes,
			CoPayPercent:    qt.CoPayPercent,
			CoPayAmount:     qt.CoPayAmount,
			PriceAfterCoPay: qt.PriceAfterCoPay,
		})
	}

	return ok(c, out)
}
