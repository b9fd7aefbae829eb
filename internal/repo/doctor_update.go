// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/doctor"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdate) SetDeletedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDeletedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdate) ClearDeletedAt() *DoctorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdate) ClearUserID() *DoctorUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *DoctorUpdate) SetFullName(v string) *DoctorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableFullName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdate) SetSpecialty(v string) *DoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialty(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetHospital sets the "hospital" field.
func (_u *DoctorUpdate) SetHospital(v string) *DoctorUpdate {
	_u.mutation.SetHospital(v)
	return _u
}

// SetNillableHospital sets the "hospital" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableHospital(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetHospital(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdate) SetCity(v string) *DoctorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCity(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdate) SetConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationFee(v *int64) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdate) AddConsultationFee(v int64) *DoctorUpdate {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (_u *DoctorUpdate) SetAcceptedInsurers(v []string) *DoctorUpdate {
	_u.mutation.SetAcceptedInsurers(v)
	return _u
}

// AppendAcceptedInsurers appends value to the "accepted_insurers" field.
func (_u *DoctorUpdate) AppendAcceptedInsurers(v []string) *DoctorUpdate {
	_u.mutation.AppendAcceptedInsurers(v)
	return _u
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (_u *DoctorUpdate) ClearAcceptedInsurers() *DoctorUpdate {
	_u.mutation.ClearAcceptedInsurers()
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorUpdate) SetRating(v float64) *DoctorUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableRating(v *float64) *DoctorUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorUpdate) AddRating(v float64) *DoctorUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *DoctorUpdate) SetReviewCount(v int) *DoctorUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableReviewCount(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *DoctorUpdate) AddReviewCount(v int) *DoctorUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *DoctorUpdate) SetYearsExperience(v int) *DoctorUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableYearsExperience(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *DoctorUpdate) AddYearsExperience(v int) *DoctorUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdate) SetBio(v string) *DoctorUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableBio(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdate) ClearBio() *DoctorUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *DoctorUpdate) SetAvatarURL(v string) *DoctorUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableAvatarURL(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *DoctorUpdate) ClearAvatarURL() *DoctorUpdate {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetVideoVisits sets the "video_visits" field.
func (_u *DoctorUpdate) SetVideoVisits(v bool) *DoctorUpdate {
	_u.mutation.SetVideoVisits(v)
	return _u
}

// SetNillableVideoVisits sets the "video_visits" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableVideoVisits(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetVideoVisits(*v)
	}
	return _u
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (_u *DoctorUpdate) SetAcceptingPatients(v bool) *DoctorUpdate {
	_u.mutation.SetAcceptingPatients(v)
	return _u
}

// SetNillableAcceptingPatients sets the "accepting_patients" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableAcceptingPatients(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetAcceptingPatients(*v)
	}
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hospital(); ok {
		_spec.SetField(doctor.FieldHospital, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AcceptedInsurers(); ok {
		_spec.SetField(doctor.FieldAcceptedInsurers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptedInsurers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldAcceptedInsurers, value)
		})
	}
	if _u.mutation.AcceptedInsurersCleared() {
		_spec.ClearField(doctor.FieldAcceptedInsurers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(doctor.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(doctor.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(doctor.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(doctor.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoVisits(); ok {
		_spec.SetField(doctor.FieldVideoVisits, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcceptingPatients(); ok {
		_spec.SetField(doctor.FieldAcceptingPatients, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdateOne) SetDeletedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDeletedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdateOne) ClearDeletedAt() *DoctorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdateOne) ClearUserID() *DoctorUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *DoctorUpdateOne) SetFullName(v string) *DoctorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableFullName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdateOne) SetSpecialty(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialty(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetHospital sets the "hospital" field.
func (_u *DoctorUpdateOne) SetHospital(v string) *DoctorUpdateOne {
	_u.mutation.SetHospital(v)
	return _u
}

// SetNillableHospital sets the "hospital" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableHospital(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetHospital(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdateOne) SetCity(v string) *DoctorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCity(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetConsultationFee sets the "consultation_fee" field.
func (_u *DoctorUpdateOne) SetConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.ResetConsultationFee()
	_u.mutation.SetConsultationFee(v)
	return _u
}

// SetNillableConsultationFee sets the "consultation_fee" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationFee(v *int64) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationFee(*v)
	}
	return _u
}

// AddConsultationFee adds value to the "consultation_fee" field.
func (_u *DoctorUpdateOne) AddConsultationFee(v int64) *DoctorUpdateOne {
	_u.mutation.AddConsultationFee(v)
	return _u
}

// SetAcceptedInsurers sets the "accepted_insurers" field.
func (_u *DoctorUpdateOne) SetAcceptedInsurers(v []string) *DoctorUpdateOne {
	_u.mutation.SetAcceptedInsurers(v)
	return _u
}

// AppendAcceptedInsurers appends value to the "accepted_insurers" field.
func (_u *DoctorUpdateOne) AppendAcceptedInsurers(v []string) *DoctorUpdateOne {
	_u.mutation.AppendAcceptedInsurers(v)
	return _u
}

// ClearAcceptedInsurers clears the value of the "accepted_insurers" field.
func (_u *DoctorUpdateOne) ClearAcceptedInsurers() *DoctorUpdateOne {
	_u.mutation.ClearAcceptedInsurers()
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorUpdateOne) SetRating(v float64) *DoctorUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableRating(v *float64) *DoctorUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorUpdateOne) AddRating(v float64) *DoctorUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *DoctorUpdateOne) SetReviewCount(v int) *DoctorUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableReviewCount(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *DoctorUpdateOne) AddReviewCount(v int) *DoctorUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *DoctorUpdateOne) SetYearsExperience(v int) *DoctorUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableYearsExperience(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *DoctorUpdateOne) AddYearsExperience(v int) *DoctorUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorUpdateOne) SetBio(v string) *DoctorUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableBio(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorUpdateOne) ClearBio() *DoctorUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *DoctorUpdateOne) SetAvatarURL(v string) *DoctorUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableAvatarURL(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *DoctorUpdateOne) ClearAvatarURL() *DoctorUpdateOne {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetVideoVisits sets the "video_visits" field.
func (_u *DoctorUpdateOne) SetVideoVisits(v bool) *DoctorUpdateOne {
	_u.mutation.SetVideoVisits(v)
	return _u
}

// SetNillableVideoVisits sets the "video_visits" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableVideoVisits(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetVideoVisits(*v)
	}
	return _u
}

// SetAcceptingPatients sets the "accepting_patients" field.
func (_u *DoctorUpdateOne) SetAcceptingPatients(v bool) *DoctorUpdateOne {
	_u.mutation.SetAcceptingPatients(v)
	return _u
}

// SetNillableAcceptingPatients sets the "accepting_patients" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableAcceptingPatients(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetAcceptingPatients(*v)
	}
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hospital(); ok {
		_spec.SetField(doctor.FieldHospital, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsultationFee(); ok {
		_spec.SetField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedConsultationFee(); ok {
		_spec.AddField(doctor.FieldConsultationFee, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AcceptedInsurers(); ok {
		_spec.SetField(doctor.FieldAcceptedInsurers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptedInsurers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, doctor.FieldAcceptedInsurers, value)
		})
	}
	if _u.mutation.AcceptedInsurersCleared() {
		_spec.ClearField(doctor.FieldAcceptedInsurers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctor.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(doctor.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(doctor.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(doctor.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctor.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctor.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(doctor.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(doctor.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.VideoVisits(); ok {
		_spec.SetField(doctor.FieldVideoVisits, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcceptingPatients(); ok {
		_spec.SetField(doctor.FieldAcceptingPatients, field.TypeBool, value)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
