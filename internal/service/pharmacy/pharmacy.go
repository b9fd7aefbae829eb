package pharmacy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/internal/repo"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	entpharmacy "github.com/auxillium/auxillium_backend/internal/repo/pharmacy"
	entprofile "github.com/auxillium/auxillium_backend/internal/repo/profile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type QuoteRequest struct {
	Medicine      string
	MaxDistanceKm float64 // 0 means unlimited
	SortBy        string  // price (default) | delivery
	MemberID      *uuid.UUID
	City          *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, city *string) ([]*repo.Pharmacy, error)
	Quotes(ctx context.Context, userID uuid.UUID, req QuoteRequest) ([]Quote, error)
	Medicines() []string
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type pharmacyService struct {
	db  *repo.Client
	now func() time.Time
}

func New(db *repo.Client) Service {
	return &pharmacyService{db: db, now: time.Now}
}

func (s *pharmacyService) List(ctx context.Context, city *string) ([]*repo.Pharmacy, error) {
	q := s.db.Pharmacy.Query().
		Where(entpharmacy.DeletedAtIsNil())
	if city != nil && *city != "" {
		q = q.Where(entpharmacy.CityEqualFold(*city))
	}

	pharmacies, err := q.Order(entpharmacy.ByDistanceKm(sql.OrderAsc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pharmacies: %w", err)
	}
	return pharmacies, nil
}

// Medicines returns the catalog names available for price comparison.
func (s *pharmacyService) Medicines() []string {
	names := make([]string, 0, len(medicineCatalog))
	for name := range medicineCatalog {
		names = append(names, name)
	}
	return names
}

// Quotes builds the day's deterministic offers across pharmacies, applies
// insurance co-pays, and sorts by the requested mode.
func (s *pharmacyService) Quotes(ctx context.Context, userID uuid.UUID, req QuoteRequest) ([]Quote, error) {
	medicine := strings.ToLower(strings.TrimSpace(req.Medicine))
	band, ok := medicineCatalog[medicine]
	if !ok {
		return nil, ErrUnknownMedicine
	}

	memberInsurer, familyInsurer, err := s.resolveInsurers(ctx, userID, req.MemberID)
	if err != nil {
		return nil, err
	}

	pharmacies, err := s.List(ctx, req.City)
	if err != nil {
		return nil, err
	}

	day := s.now()
	quotes := make([]Quote, 0, len(pharmacies))
	for _, p := range pharmacies {
		if req.MaxDistanceKm > 0 && p.DistanceKm > req.MaxDistanceKm {
			continue
		}

		q := buildQuote(
			p.ID.String(), p.Name, medicine, band,
			p.DistanceKm, p.DeliveryAvailable, p.DeliveryMinutes, day,
		)
		applyCoPay(&q, p.InsurerNetworks, memberInsurer, familyInsurer)
		quotes = append(quotes, q)
	}

	if err := sortQuotes(quotes, req.SortBy); err != nil {
		return nil, err
	}
	return quotes, nil
}

// resolveInsurers returns the member's own provider and the account-level
// provider used as the family fallback network.
func (s *pharmacyService) resolveInsurers(ctx context.Context, userID uuid.UUID, memberID *uuid.UUID) (string, string, error) {
	var memberInsurer string
	if memberID != nil {
		m, err := s.db.FamilyMember.Query().
			Where(entmember.ID(*memberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return "", "", ErrMemberNotFound
			}
			return "", "", fmt.Errorf("get member: %w", err)
		}
		if m.InsuranceProvider != nil {
			memberInsurer = *m.InsuranceProvider
		}
	}

	var familyInsurer string
	p, err := s.db.Profile.Query().
		Where(entprofile.ID(userID), entprofile.DeletedAtIsNil()).
		Only(ctx)
	if err == nil && p.InsuranceProvider != nil {
		familyInsurer = *p.InsuranceProvider
	}

	return memberInsurer, familyInsurer, nil
}
