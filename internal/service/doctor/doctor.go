package doctor

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	entdoctor "github.com/auxillium/auxillium_backend/internal/repo/doctor"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SearchRequest struct {
	Specialty *string
	City      *string
	Insurer   *string
	Query     *string // name substring
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]*repo.Doctor, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error)

	IsDateAvailable(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, day int) (bool, error)
	MonthAvailability(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[int]bool, error)
	IsMonthAvailable(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (bool, error)
	AvailableTimes(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, day int) ([]time.Time, error)

	EstimateCost(ctx context.Context, doctorID uuid.UUID, userID uuid.UUID, memberID uuid.UUID) (*CostEstimate, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db              *repo.Client
	loc             *time.Location
	coveragePercent int
}

func New(db *repo.Client, cfg *config.Config) Service {
	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil || loc == nil {
		loc = time.UTC
	}
	coverage := cfg.Booking.CoveragePercent
	if coverage <= 0 || coverage > 100 {
		coverage = 80
	}
	return &doctorService{db: db, loc: loc, coveragePercent: coverage}
}

func (s *doctorService) Search(ctx context.Context, req SearchRequest) ([]*repo.Doctor, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Doctor.Query().
		Where(entdoctor.DeletedAtIsNil(), entdoctor.AcceptingPatients(true))

	if req.Specialty != nil && *req.Specialty != "" {
		q = q.Where(entdoctor.SpecialtyEqualFold(*req.Specialty))
	}
	if req.City != nil && *req.City != "" {
		q = q.Where(entdoctor.CityEqualFold(*req.City))
	}
	if req.Query != nil && *req.Query != "" {
		q = q.Where(entdoctor.FullNameContainsFold(*req.Query))
	}

	doctors, err := q.
		Order(entdoctor.ByRating(sql.OrderDesc()), entdoctor.ByReviewCount(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}

	// Insurer filtering happens in memory; accepted_insurers is a JSON list.
	if req.Insurer != nil && *req.Insurer != "" {
		filtered := doctors[:0]
		for _, d := range doctors {
			for _, ins := range d.AcceptedInsurers {
				if ins == *req.Insurer {
					filtered = append(filtered, d)
					break
				}
			}
		}
		doctors = filtered
	}

	return doctors, nil
}

func (s *doctorService) GetByID(ctx context.Context, doctorID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.ID(doctorID), entdoctor.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

// EstimateCost resolves the visit price for a specific family member against
// the doctor's accepted insurers.
func (s *doctorService) EstimateCost(ctx context.Context, doctorID, userID, memberID uuid.UUID) (*CostEstimate, error) {
	d, err := s.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if d.ConsultationFee <= 0 {
		return nil, ErrNoFee
	}

	m, err := s.db.FamilyMember.Query().
		Where(entmember.ID(memberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	provider := ""
	if m.InsuranceProvider != nil {
		provider = *m.InsuranceProvider
	}

	est := ResolveCost(d.ConsultationFee, d.AcceptedInsurers, provider, s.coveragePercent)
	return &est, nil
}
