package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/internal/repo"
	entprofile "github.com/auxillium/auxillium_backend/internal/repo/profile"
	"github.com/auxillium/auxillium_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateRequest struct {
	FullName    *string
	Email       *string
	DateOfBirth *time.Time
	Gender      *string
	BloodType   *string
	City        *string
	AvatarURL   *string
	BloodDonor  *bool

	InsuranceProvider *string
	// InsurancePolicyNumber is the plaintext policy number; stored encrypted.
	InsurancePolicyNumber *string
}

// View is a profile with the encrypted policy number decrypted for the owner.
type View struct {
	Profile               *repo.Profile
	InsurancePolicyNumber string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*View, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*View, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type profileService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("profile service: invalid encryption key: %w", err)
	}
	return &profileService{db: db, encKey: encKey}, nil
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*View, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.ID(userID), entprofile.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return s.view(p)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req UpdateRequest) (*View, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.ID(userID), entprofile.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	upd := s.db.Profile.UpdateOne(p)

	if req.FullName != nil {
		upd = upd.SetFullName(strings.TrimSpace(*req.FullName))
	}
	if req.Email != nil {
		upd = upd.SetEmail(strings.TrimSpace(*req.Email))
	}
	if req.DateOfBirth != nil {
		upd = upd.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Gender != nil {
		upd = upd.SetGender(entprofile.Gender(*req.Gender))
	}
	if req.BloodType != nil {
		bt := entprofile.BloodType(*req.BloodType)
		if err := entprofile.BloodTypeValidator(bt); err != nil {
			return nil, ErrInvalidBloodType
		}
		upd = upd.SetBloodType(bt)
	}
	if req.City != nil {
		upd = upd.SetCity(strings.TrimSpace(*req.City))
	}
	if req.AvatarURL != nil {
		upd = upd.SetAvatarURL(*req.AvatarURL)
	}
	if req.BloodDonor != nil {
		upd = upd.SetBloodDonor(*req.BloodDonor)
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

	p, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.view(p)
}

func (s *profileService) view(p *repo.Profile) (*View, error) {
	v := &View{Profile: p}
	if p.InsurancePolicyEncrypted != nil && *p.InsurancePolicyEncrypted != "" {
		plain, err := crypto.Decrypt(s.encKey, *p.InsurancePolicyEncrypted)
		if err != nil {
			return nil, fmt.Errorf("decrypt policy number: %w", err)
		}
		v.InsurancePolicyNumber = plain
	}
	return v, nil
}
