// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/doctor"
	"github.com/google/uuid"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DoctorCreate) SetDeletedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableDeletedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUserID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *DoctorCreate) SetFullName(v string) *DoctorCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *DoctorCreate) SetSpecialty(v string) *DoctorCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetHospital sets the "hospital" field.
func (_c *DoctorCreate) SetHospital(v string) *DoctorCreate {
	_c.mutation.SetHospital(v)
	return _c
}

// SetNillableHospital sets the "hospital" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableHospital(v *string) *DoctorCreate {
	if v != nil {
		_c.SetHospital(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *DoctorCreate) SetCity(v string) *DoctorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCity(v *string) *DoctorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetConsultationFee sets the "consultation_fee" field.
func (_c *DoctorCreate) SetConsultationFee(v int64) *DoctorCreate {
	_c.mutation.SetConsultationFee(v)
	return _c
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (_c *DoctorCreate) SetAcceptedInsurers(v []string) *DoctorCreate {
	_c.mutation.SetAcceptedInsurers(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *DoctorCreate) SetRating(v float64) *DoctorCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableRating(v *float64) *DoctorCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *DoctorCreate) SetReviewCount(v int) *DoctorCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableReviewCount(v *int) *DoctorCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *DoctorCreate) SetYearsExperience(v int) *DoctorCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableYearsExperience(v *int) *DoctorCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *DoctorCreate) SetBio(v string) *DoctorCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableBio(v *string) *DoctorCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetAvatarURL sets the "avatar_url" field.
func (_c *DoctorCreate) SetAvatarURL(v string) *DoctorCreate {
	_c.mutation.SetAvatarURL(v)
	return _c
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableAvatarURL(v *string) *DoctorCreate {
	if v != nil {
		_c.SetAvatarURL(*v)
	}
	return _c
}

// SetVideoVisits sets the "video_visits" field.
func (_c *DoctorCreate) SetVideoVisits(v bool) *DoctorCreate {
	_c.mutation.SetVideoVisits(v)
	return _c
}

// SetNillableVideoVisits sets the "video_visits" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableVideoVisits(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetVideoVisits(*v)
	}
	return _c
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (_c *DoctorCreate) SetAcceptingPatients(v bool) *DoctorCreate {
	_c.mutation.SetAcceptingPatients(v)
	return _c
}

// SetNillableAcceptingPatients sets the "accepting_patients" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableAcceptingPatients(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetAcceptingPatients(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Hospital(); !ok {
		v := doctor.DefaultHospital
		_c.mutation.SetHospital(v)
	}
	if _, ok := _c.mutation.City(); !ok {
		v := doctor.DefaultCity
		_c.mutation.SetCity(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := doctor.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := doctor.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := doctor.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.VideoVisits(); !ok {
		v := doctor.DefaultVideoVisits
		_c.mutation.SetVideoVisits(v)
	}
	if _, ok := _c.mutation.AcceptingPatients(); !ok {
		v := doctor.DefaultAcceptingPatients
		_c.mutation.SetAcceptingPatients(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Doctor.full_name"`)}
	}
	if _, ok := _c.mutation.Specialty(); !ok {
		return &ValidationError{Name: "specialty", err: errors.New(`repo: missing required field "Doctor.specialty"`)}
	}
	if _, ok := _c.mutation.Hospital(); !ok {
		return &ValidationError{Name: "hospital", err: errors.New(`repo: missing required field "Doctor.hospital"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`repo: missing required field "Doctor.city"`)}
	}
	if _, ok := _c.mutation.ConsultationFee(); !ok {
		return &ValidationError{Name: "consultation_fee", err: errors.New(`repo: missing required field "Doctor.consultation_fee"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "Doctor.rating"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`repo: missing required field "Doctor.review_count"`)}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`repo: missing required field "Doctor.years_experience"`)}
	}
	if _, ok := _c.mutation.VideoVisits(); !ok {
		return &ValidationError{Name: "video_visits", err: errors.New(`repo: missing required field "Doctor.video_visits"`)}
	}
	if _, ok := _c.mutation.AcceptingPatients(); !ok {
		return &ValidationError{Name: "accepting_patients", err: errors.New(`repo: missing required field "Doctor.accepting_patients"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
		_node.Specialty = value
	}
	if value, ok := _c.mutation.Hospital(); ok {
		_spec.SetField(doctor.FieldHospital, field.TypeString, value)
		_node.Hospital = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
		_node.ConsultationFee = value
	}
	if value, ok := _c.mutation.AcceptedInsurers(); ok {
		_spec.SetField(doctor.FieldAcceptedInsurers, field.TypeJSON, value)
		_node.AcceptedInsurers = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(doctor.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(doctor.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(doctor.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.AvatarURL(); ok {
		_spec.SetField(doctor.FieldAvatarURL, field.TypeString, value)
		_node.AvatarURL = &value
	}
	if value, ok := _c.mutation.VideoVisits(); ok {
		_spec.SetField(doctor.FieldVideoVisits, field.TypeBool, value)
		_node.VideoVisits = value
	}
	if value, ok := _c.mutation.AcceptingPatients(); ok {
		_spec.SetField(doctor.FieldAcceptingPatients, field.TypeBool, value)
		_node.AcceptingPatients = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsert) SetDeletedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateDeletedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsert) ClearDeletedAt() *DoctorUpsert {
	u.SetNull(doctor.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsert) SetUserID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUserID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsert) ClearUserID() *DoctorUpsert {
	u.SetNull(doctor.FieldUserID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsert) SetFullName(v string) *DoctorUpsert {
	u.Set(doctor.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateFullName() *DoctorUpsert {
	u.SetExcluded(doctor.FieldFullName)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsert) SetSpecialty(v string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialty() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialty)
	return u
}

// SetHospital sets the "hospital" field.
func (u *DoctorUpsert) SetHospital(v string) *DoctorUpsert {
	u.Set(doctor.FieldHospital, v)
	return u
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateHospital() *DoctorUpsert {
	u.SetExcluded(doctor.FieldHospital)
	return u
}

// SetCity sets the "city" field.
func (u *DoctorUpsert) SetCity(v string) *DoctorUpsert {
	u.Set(doctor.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateCity() *DoctorUpsert {
	u.SetExcluded(doctor.FieldCity)
	return u
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsert) SetConsultationFee(v int64) *DoctorUpsert {
	u.Set(doctor.FieldConsultationFee, v)
	return u
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateConsultationFee() *DoctorUpsert {
	u.SetExcluded(doctor.FieldConsultationFee)
	return u
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsert) AddConsultationFee(v int64) *DoctorUpsert {
	u.Add(doctor.FieldConsultationFee, v)
	return u
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (u *DoctorUpsert) SetAcceptedInsurers(v []string) *DoctorUpsert {
	u.Set(doctor.FieldAcceptedInsurers, v)
	return u
}

// UpdateAcceptedInsurers sets the "accepted_insurers" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateAcceptedInsurers() *DoctorUpsert {
	u.SetExcluded(doctor.FieldAcceptedInsurers)
	return u
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (u *DoctorUpsert) ClearAcceptedInsurers() *DoctorUpsert {
	u.SetNull(doctor.FieldAcceptedInsurers)
	return u
}

// SetRating sets the "rating" field.
func (u *DoctorUpsert) SetRating(v float64) *DoctorUpsert {
	u.Set(doctor.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateRating() *DoctorUpsert {
	u.SetExcluded(doctor.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *DoctorUpsert) AddRating(v float64) *DoctorUpsert {
	u.Add(doctor.FieldRating, v)
	return u
}

// SetReviewCount sets the "review_count" field.
func (u *DoctorUpsert) SetReviewCount(v int) *DoctorUpsert {
	u.Set(doctor.FieldReviewCount, v)
	return u
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateReviewCount() *DoctorUpsert {
	u.SetExcluded(doctor.FieldReviewCount)
	return u
}

// AddReviewCount adds v to the "review_count" field.
func (u *DoctorUpsert) AddReviewCount(v int) *DoctorUpsert {
	u.Add(doctor.FieldReviewCount, v)
	return u
}

// SetYearsExperience sets the "years_experience" field.
func (u *DoctorUpsert) SetYearsExperience(v int) *DoctorUpsert {
	u.Set(doctor.FieldYearsExperience, v)
	return u
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateYearsExperience() *DoctorUpsert {
	u.SetExcluded(doctor.FieldYearsExperience)
	return u
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *DoctorUpsert) AddYearsExperience(v int) *DoctorUpsert {
	u.Add(doctor.FieldYearsExperience, v)
	return u
}

// SetBio sets the "bio" field.
func (u *DoctorUpsert) SetBio(v string) *DoctorUpsert {
	u.Set(doctor.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateBio() *DoctorUpsert {
	u.SetExcluded(doctor.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsert) ClearBio() *DoctorUpsert {
	u.SetNull(doctor.FieldBio)
	return u
}

// SetAvatarURL sets the "avatar_url" field.
func (u *DoctorUpsert) SetAvatarURL(v string) *DoctorUpsert {
	u.Set(doctor.FieldAvatarURL, v)
	return u
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateAvatarURL() *DoctorUpsert {
	u.SetExcluded(doctor.FieldAvatarURL)
	return u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *DoctorUpsert) ClearAvatarURL() *DoctorUpsert {
	u.SetNull(doctor.FieldAvatarURL)
	return u
}

// SetVideoVisits sets the "video_visits" field.
func (u *DoctorUpsert) SetVideoVisits(v bool) *DoctorUpsert {
	u.Set(doctor.FieldVideoVisits, v)
	return u
}

// UpdateVideoVisits sets the "video_visits" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateVideoVisits() *DoctorUpsert {
	u.SetExcluded(doctor.FieldVideoVisits)
	return u
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (u *DoctorUpsert) SetAcceptingPatients(v bool) *DoctorUpsert {
	u.Set(doctor.FieldAcceptingPatients, v)
	return u
}

// UpdateAcceptingPatients sets the "accepting_patients" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateAcceptingPatients() *DoctorUpsert {
	u.SetExcluded(doctor.FieldAcceptingPatients)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsertOne) SetDeletedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateDeletedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsertOne) ClearDeletedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertOne) SetUserID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsertOne) ClearUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsertOne) SetFullName(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateFullName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertOne) SetSpecialty(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialty() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// SetHospital sets the "hospital" field.
func (u *DoctorUpsertOne) SetHospital(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetHospital(v)
	})
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateHospital() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateHospital()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertOne) SetCity(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateCity() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertOne) SetConsultationFee(v int64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertOne) AddConsultationFee(v int64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateConsultationFee() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (u *DoctorUpsertOne) SetAcceptedInsurers(v []string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAcceptedInsurers(v)
	})
}

// UpdateAcceptedInsurers sets the "accepted_insurers" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateAcceptedInsurers() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAcceptedInsurers()
	})
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (u *DoctorUpsertOne) ClearAcceptedInsurers() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAcceptedInsurers()
	})
}

// SetRating sets the "rating" field.
func (u *DoctorUpsertOne) SetRating(v float64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *DoctorUpsertOne) AddRating(v float64) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateRating() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateRating()
	})
}

// SetReviewCount sets the "review_count" field.
func (u *DoctorUpsertOne) SetReviewCount(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetReviewCount(v)
	})
}

// AddReviewCount adds v to the "review_count" field.
func (u *DoctorUpsertOne) AddReviewCount(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddReviewCount(v)
	})
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateReviewCount() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateReviewCount()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *DoctorUpsertOne) SetYearsExperience(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *DoctorUpsertOne) AddYearsExperience(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateYearsExperience() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetBio sets the "bio" field.
func (u *DoctorUpsertOne) SetBio(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateBio() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsertOne) ClearBio() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBio()
	})
}

// SetAvatarURL sets the "avatar_url" field.
func (u *DoctorUpsertOne) SetAvatarURL(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvatarURL(v)
	})
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateAvatarURL() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvatarURL()
	})
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *DoctorUpsertOne) ClearAvatarURL() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAvatarURL()
	})
}

// SetVideoVisits sets the "video_visits" field.
func (u *DoctorUpsertOne) SetVideoVisits(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetVideoVisits(v)
	})
}

// UpdateVideoVisits sets the "video_visits" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateVideoVisits() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateVideoVisits()
	})
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (u *DoctorUpsertOne) SetAcceptingPatients(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAcceptingPatients(v)
	})
}

// UpdateAcceptingPatients sets the "accepting_patients" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateAcceptingPatients() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAcceptingPatients()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DoctorUpsertBulk) SetDeletedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateDeletedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DoctorUpsertBulk) ClearDeletedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertBulk) SetUserID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsertBulk) ClearUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsertBulk) SetFullName(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateFullName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertBulk) SetSpecialty(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialty() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// SetHospital sets the "hospital" field.
func (u *DoctorUpsertBulk) SetHospital(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetHospital(v)
	})
}

// UpdateHospital sets the "hospital" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateHospital() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateHospital()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertBulk) SetCity(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateCity() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// SetConsultationFee sets the "consultation_fee" field.
func (u *DoctorUpsertBulk) SetConsultationFee(v int64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationFee(v)
	})
}

// AddConsultationFee adds v to the "consultation_fee" field.
func (u *DoctorUpsertBulk) AddConsultationFee(v int64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultationFee(v)
	})
}

// UpdateConsultationFee sets the "consultation_fee" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateConsultationFee() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationFee()
	})
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (u *DoctorUpsertBulk) SetAcceptedInsurers(v []string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAcceptedInsurers(v)
	})
}

// UpdateAcceptedInsurers sets the "accepted_insurers" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateAcceptedInsurers() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAcceptedInsurers()
	})
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (u *DoctorUpsertBulk) ClearAcceptedInsurers() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAcceptedInsurers()
	})
}

// SetRating sets the "rating" field.
func (u *DoctorUpsertBulk) SetRating(v float64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *DoctorUpsertBulk) AddRating(v float64) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateRating() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateRating()
	})
}

// SetReviewCount sets the "review_count" field.
func (u *DoctorUpsertBulk) SetReviewCount(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetReviewCount(v)
	})
}

// AddReviewCount adds v to the "review_count" field.
func (u *DoctorUpsertBulk) AddReviewCount(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddReviewCount(v)
	})
}

// UpdateReviewCount sets the "review_count" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateReviewCount() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateReviewCount()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *DoctorUpsertBulk) SetYearsExperience(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *DoctorUpsertBulk) AddYearsExperience(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateYearsExperience() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetBio sets the "bio" field.
func (u *DoctorUpsertBulk) SetBio(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateBio() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *DoctorUpsertBulk) ClearBio() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearBio()
	})
}

// SetAvatarURL sets the "avatar_url" field.
func (u *DoctorUpsertBulk) SetAvatarURL(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvatarURL(v)
	})
}

// UpdateAvatarURL sets the "avatar_url" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateAvatarURL() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvatarURL()
	})
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (u *DoctorUpsertBulk) ClearAvatarURL() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAvatarURL()
	})
}

// SetVideoVisits sets the "video_visits" field.
func (u *DoctorUpsertBulk) SetVideoVisits(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetVideoVisits(v)
	})
}

// UpdateVideoVisits sets the "video_visits" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateVideoVisits() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateVideoVisits()
	})
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (u *DoctorUpsertBulk) SetAcceptingPatients(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAcceptingPatients(v)
	})
}

// UpdateAcceptingPatients sets the "accepting_patients" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateAcceptingPatients() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAcceptingPatients()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
