package family

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	entmember "github.com/auxillium/auxillium_backend/internal/repo/familymember"
	"github.com/auxillium/auxillium_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FullName     string
	Relationship string
	DateOfBirth  *time.Time
	Gender       *string
	BloodType    *string
	Allergies    []string
	Conditions   []string

	InsuranceProvider     *string
	InsurancePolicyNumber *string // plaintext; stored encrypted
}

type UpdateRequest struct {
	FullName    *string
	DateOfBirth *time.Time
	Gender      *string
	BloodType   *string
	Allergies   []string
	Conditions  []string

	InsuranceProvider     *string
	InsurancePolicyNumber *string
}

type InsuranceRequest struct {
	Provider       string
	PolicyNumber   string // plaintext; stored encrypted
	ValidUntil     *time.Time
	CoverageAmount *int64
}

type DeviceRequest struct {
	DeviceName *string
	Connected  *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]*repo.FamilyMember, error)
	GetByID(ctx context.Context, userID, memberID uuid.UUID) (*repo.FamilyMember, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.FamilyMember, error)
	Update(ctx context.Context, userID, memberID uuid.UUID, req UpdateRequest) (*repo.FamilyMember, error)
	UpdateInsurance(ctx context.Context, userID, memberID uuid.UUID, req InsuranceRequest) (*repo.FamilyMember, error)
	UpdateDevice(ctx context.Context, userID, memberID uuid.UUID, req DeviceRequest) (*repo.FamilyMember, error)
	Delete(ctx context.Context, userID, memberID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type familyService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("family service: invalid encryption key: %w", err)
	}
	return &familyService{db: db, encKey: encKey}, nil
}

func (s *familyService) List(ctx context.Context, userID uuid.UUID) ([]*repo.FamilyMember, error) {
	members, err := s.db.FamilyMember.Query().
		Where(entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Order(entmember.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	return members, nil
}

func (s *familyService) GetByID(ctx context.Context, userID, memberID uuid.UUID) (*repo.FamilyMember, error) {
	m, err := s.db.FamilyMember.Query().
		Where(entmember.ID(memberID), entmember.UserID(userID), entmember.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get family member: %w", err)
	}
	return m, nil
}

func (s *familyService) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*repo.FamilyMember, error) {
	rel := entmember.Relationship(req.Relationship)
	if err := entmember.RelationshipValidator(rel); err != nil {
		rel = entmember.RelationshipOther
	}

	c := s.db.FamilyMember.Create().
		SetUserID(userID).
		SetFullName(strings.TrimSpace(req.FullName)).
		SetRelationship(rel)

	if req.DateOfBirth != nil {
		c = c.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		c = c.SetGender(entmember.Gender(*req.Gender))
	}
	if req.BloodType != nil {
		bt := entmember.BloodType(*req.BloodType)
		if err := entmember.BloodTypeValidator(bt); err != nil {
			return nil, ErrInvalidBloodType
		}
		c = c.SetBloodType(bt)
	}
	if len(req.Allergies) > 0 {
		c = c.SetAllergies(req.Allergies)
	}
	if len(req.Conditions) > 0 {
		c = c.SetConditions(req.Conditions)
	}
	if req.InsuranceProvider != nil {
		c = c.SetInsuranceProvider(strings.TrimSpace(*req.InsuranceProvider))
	}
	if req.InsurancePolicyNumber != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.InsurancePolicyNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt policy number: %w", err)
		}
		c = c.SetInsurancePolicyEncrypted(enc)
	}

	m, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create family member: %w", err)
	}
	return m, nil
}

func (s *familyService) Update(ctx context.Context, userID, memberID uuid.UUID, req UpdateRequest) (*repo.FamilyMember, error) {
	m, err := s.GetByID(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	upd := s.db.FamilyMember.UpdateOne(m)

	if req.FullName != nil {
		upd = upd.SetFullName(strings.TrimSpace(*req.FullName))
	}
	if req.DateOfBirth != nil {
		upd = upd.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		upd = upd.SetGender(entmember.Gender(*req.Gender))
	}
	if req.BloodType != nil {
		bt := entmember.BloodType(*req.BloodType)
		if err := entmember.BloodTypeValidator(bt); err != nil {
			return nil, ErrInvalidBloodType
		}
		upd = upd.SetBloodType(bt)
	}
	if req.Allergies != nil {
		upd = upd.SetAllergies(req.Allergies)
	}
	if req.Conditions != nil {
		upd = upd.SetConditions(req.Conditions)
	}
	if req.InsuranceProvider != nil {
		upd = upd.SetInsuranceProvider(strings.TrimSpace(*req.InsuranceProvider))
	}
	if req.InsurancePolicyNumber != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.InsurancePolicyNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt policy number: %w", err)
		}
		upd = upd.SetInsurancePolicyEncrypted(enc)
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update family member: %w", err)
	}
	return m, nil
}

func (s *familyService) UpdateInsurance(ctx context.Context, userID, memberID uuid.UUID, req InsuranceRequest) (*repo.FamilyMember, error) {
	m, err := s.GetByID(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	upd := s.db.FamilyMember.UpdateOne(m).
		SetInsuranceProvider(strings.TrimSpace(req.Provider))

	if req.PolicyNumber != "" {
		enc, err := crypto.Encrypt(s.encKey, req.PolicyNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt policy number: %w", err)
		}
		upd = upd.SetInsurancePolicyEncrypted(enc)
	}
	if req.ValidUntil != nil {
		upd = upd.SetInsuranceValidUntil(*req.ValidUntil)
	}
	if req.CoverageAmount != nil {
		upd = upd.SetInsuranceCoverageAmount(*req.CoverageAmount)
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update insurance: %w", err)
	}
	return m, nil
}

func (s *familyService) UpdateDevice(ctx context.Context, userID, memberID uuid.UUID, req DeviceRequest) (*repo.FamilyMember, error) {
	m, err := s.GetByID(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	upd := s.db.FamilyMember.UpdateOne(m)
	if req.DeviceName != nil {
		upd = upd.SetDeviceName(*req.DeviceName)
	}
	if req.Connected != nil {
		upd = upd.SetDeviceConnected(*req.Connected)
		if *req.Connected {
			upd = upd.SetDeviceLastSyncedAt(time.Now())
		}
	}

	m, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update device: %w", err)
	}
	return m, nil
}

func (s *familyService) Delete(ctx context.Context, userID, memberID uuid.UUID) error {
	m, err := s.GetByID(ctx, userID, memberID)
	if err != nil {
		return err
	}
	if m.Relationship == entmember.RelationshipSelf {
		return ErrSelfImmutable
	}

	// Soft delete; metrics and medications keep their history.
	now := time.Now()
	if err := s.db.FamilyMember.UpdateOne(m).SetDeletedAt(now).Exec(ctx); err != nil {
		return fmt.Errorf("delete family member: %w", err)
	}
	return nil
}
