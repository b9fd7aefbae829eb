// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DonationInitiativeUpdate is the builder for updating DonationInitiative entities.
type DonationInitiativeUpdate struct {
	config
	hooks    []Hook
	mutation *DonationInitiativeMutation
}

// Where appends a list predicates to the DonationInitiativeUpdate builder.
func (_u *DonationInitiativeUpdate) Where(ps ...predicate.DonationInitiative) *DonationInitiativeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DonationInitiativeUpdate) SetUpdatedAt(v time.Time) *DonationInitiativeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DonationInitiativeUpdate) SetDeletedAt(v time.Time) *DonationInitiativeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableDeletedAt(v *time.Time) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DonationInitiativeUpdate) ClearDeletedAt() *DonationInitiativeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOrganizerID sets the "organizer_id" field.
func (_u *DonationInitiativeUpdate) SetOrganizerID(v uuid.UUID) *DonationInitiativeUpdate {
	_u.mutation.SetOrganizerID(v)
	return _u
}

// SetNillableOrganizerID sets the "organizer_id" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableOrganizerID(v *uuid.UUID) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetOrganizerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DonationInitiativeUpdate) SetTitle(v string) *DonationInitiativeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableTitle(v *string) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DonationInitiativeUpdate) SetDescription(v string) *DonationInitiativeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableDescription(v *string) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DonationInitiativeUpdate) SetCategory(v donationinitiative.Category) *DonationInitiativeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableCategory(v *donationinitiative.Category) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGoalAmount sets the "goal_amount" field.
func (_u *DonationInitiativeUpdate) SetGoalAmount(v int64) *DonationInitiativeUpdate {
	_u.mutation.ResetGoalAmount()
	_u.mutation.SetGoalAmount(v)
	return _u
}

// SetNillableGoalAmount sets the "goal_amount" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableGoalAmount(v *int64) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetGoalAmount(*v)
	}
	return _u
}

// AddGoalAmount adds value to the "goal_amount" field.
func (_u *DonationInitiativeUpdate) AddGoalAmount(v int64) *DonationInitiativeUpdate {
	_u.mutation.AddGoalAmount(v)
	return _u
}

// SetRaisedAmount sets the "raised_amount" field.
func (_u *DonationInitiativeUpdate) SetRaisedAmount(v int64) *DonationInitiativeUpdate {
	_u.mutation.ResetRaisedAmount()
	_u.mutation.SetRaisedAmount(v)
	return _u
}

// SetNillableRaisedAmount sets the "raised_amount" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableRaisedAmount(v *int64) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetRaisedAmount(*v)
	}
	return _u
}

// AddRaisedAmount adds value to the "raised_amount" field.
func (_u *DonationInitiativeUpdate) AddRaisedAmount(v int64) *DonationInitiativeUpdate {
	_u.mutation.AddRaisedAmount(v)
	return _u
}

// SetDonorCount sets the "donor_count" field.
func (_u *DonationInitiativeUpdate) SetDonorCount(v int) *DonationInitiativeUpdate {
	_u.mutation.ResetDonorCount()
	_u.mutation.SetDonorCount(v)
	return _u
}

// SetNillableDonorCount sets the "donor_count" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableDonorCount(v *int) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetDonorCount(*v)
	}
	return _u
}

// AddDonorCount adds value to the "donor_count" field.
func (_u *DonationInitiativeUpdate) AddDonorCount(v int) *DonationInitiativeUpdate {
	_u.mutation.AddDonorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DonationInitiativeUpdate) SetStatus(v donationinitiative.Status) *DonationInitiativeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableStatus(v *donationinitiative.Status) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *DonationInitiativeUpdate) SetEndsAt(v time.Time) *DonationInitiativeUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableEndsAt(v *time.Time) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *DonationInitiativeUpdate) ClearEndsAt() *DonationInitiativeUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DonationInitiativeUpdate) SetImageURL(v string) *DonationInitiativeUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DonationInitiativeUpdate) SetNillableImageURL(v *string) *DonationInitiativeUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *DonationInitiativeUpdate) ClearImageURL() *DonationInitiativeUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// Mutation returns the DonationInitiativeMutation object of the builder.
func (_u *DonationInitiativeUpdate) Mutation() *DonationInitiativeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DonationInitiativeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationInitiativeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DonationInitiativeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationInitiativeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DonationInitiativeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := donationinitiative.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DonationInitiativeUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := donationinitiative.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := donationinitiative.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DonationInitiativeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(donationinitiative.Table, donationinitiative.Columns, sqlgraph.NewFieldSpec(donationinitiative.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(donationinitiative.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(donationinitiative.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(donationinitiative.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OrganizerID(); ok {
		_spec.SetField(donationinitiative.FieldOrganizerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(donationinitiative.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(donationinitiative.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(donationinitiative.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GoalAmount(); ok {
		_spec.SetField(donationinitiative.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGoalAmount(); ok {
		_spec.AddField(donationinitiative.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RaisedAmount(); ok {
		_spec.SetField(donationinitiative.FieldRaisedAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRaisedAmount(); ok {
		_spec.AddField(donationinitiative.FieldRaisedAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DonorCount(); ok {
		_spec.SetField(donationinitiative.FieldDonorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDonorCount(); ok {
		_spec.AddField(donationinitiative.FieldDonorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(donationinitiative.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(donationinitiative.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(donationinitiative.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(donationinitiative.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(donationinitiative.FieldImageURL, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donationinitiative.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DonationInitiativeUpdateOne is the builder for updating a single DonationInitiative entity.
type DonationInitiativeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DonationInitiativeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DonationInitiativeUpdateOne) SetUpdatedAt(v time.Time) *DonationInitiativeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DonationInitiativeUpdateOne) SetDeletedAt(v time.Time) *DonationInitiativeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableDeletedAt(v *time.Time) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DonationInitiativeUpdateOne) ClearDeletedAt() *DonationInitiativeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOrganizerID sets the "organizer_id" field.
func (_u *DonationInitiativeUpdateOne) SetOrganizerID(v uuid.UUID) *DonationInitiativeUpdateOne {
	_u.mutation.SetOrganizerID(v)
	return _u
}

// SetNillableOrganizerID sets the "organizer_id" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableOrganizerID(v *uuid.UUID) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetOrganizerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DonationInitiativeUpdateOne) SetTitle(v string) *DonationInitiativeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableTitle(v *string) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DonationInitiativeUpdateOne) SetDescription(v string) *DonationInitiativeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableDescription(v *string) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DonationInitiativeUpdateOne) SetCategory(v donationinitiative.Category) *DonationInitiativeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableCategory(v *donationinitiative.Category) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGoalAmount sets the "goal_amount" field.
func (_u *DonationInitiativeUpdateOne) SetGoalAmount(v int64) *DonationInitiativeUpdateOne {
	_u.mutation.ResetGoalAmount()
	_u.mutation.SetGoalAmount(v)
	return _u
}

// SetNillableGoalAmount sets the "goal_amount" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableGoalAmount(v *int64) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetGoalAmount(*v)
	}
	return _u
}

// AddGoalAmount adds value to the "goal_amount" field.
func (_u *DonationInitiativeUpdateOne) AddGoalAmount(v int64) *DonationInitiativeUpdateOne {
	_u.mutation.AddGoalAmount(v)
	return _u
}

// SetRaisedAmount sets the "raised_amount" field.
func (_u *DonationInitiativeUpdateOne) SetRaisedAmount(v int64) *DonationInitiativeUpdateOne {
	_u.mutation.ResetRaisedAmount()
	_u.mutation.SetRaisedAmount(v)
	return _u
}

// SetNillableRaisedAmount sets the "raised_amount" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableRaisedAmount(v *int64) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetRaisedAmount(*v)
	}
	return _u
}

// AddRaisedAmount adds value to the "raised_amount" field.
func (_u *DonationInitiativeUpdateOne) AddRaisedAmount(v int64) *DonationInitiativeUpdateOne {
	_u.mutation.AddRaisedAmount(v)
	return _u
}

// SetDonorCount sets the "donor_count" field.
func (_u *DonationInitiativeUpdateOne) SetDonorCount(v int) *DonationInitiativeUpdateOne {
	_u.mutation.ResetDonorCount()
	_u.mutation.SetDonorCount(v)
	return _u
}

// SetNillableDonorCount sets the "donor_count" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableDonorCount(v *int) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetDonorCount(*v)
	}
	return _u
}

// AddDonorCount adds value to the "donor_count" field.
func (_u *DonationInitiativeUpdateOne) AddDonorCount(v int) *DonationInitiativeUpdateOne {
	_u.mutation.AddDonorCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DonationInitiativeUpdateOne) SetStatus(v donationinitiative.Status) *DonationInitiativeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableStatus(v *donationinitiative.Status) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *DonationInitiativeUpdateOne) SetEndsAt(v time.Time) *DonationInitiativeUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableEndsAt(v *time.Time) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *DonationInitiativeUpdateOne) ClearEndsAt() *DonationInitiativeUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *DonationInitiativeUpdateOne) SetImageURL(v string) *DonationInitiativeUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *DonationInitiativeUpdateOne) SetNillableImageURL(v *string) *DonationInitiativeUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *DonationInitiativeUpdateOne) ClearImageURL() *DonationInitiativeUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// Mutation returns the DonationInitiativeMutation object of the builder.
func (_u *DonationInitiativeUpdateOne) Mutation() *DonationInitiativeMutation {
	return _u.mutation
}

// Where appends a list predicates to the DonationInitiativeUpdate builder.
func (_u *DonationInitiativeUpdateOne) Where(ps ...predicate.DonationInitiative) *DonationInitiativeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DonationInitiativeUpdateOne) Select(field string, fields ...string) *DonationInitiativeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DonationInitiative entity.
func (_u *DonationInitiativeUpdateOne) Save(ctx context.Context) (*DonationInitiative, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DonationInitiativeUpdateOne) SaveX(ctx context.Context) *DonationInitiative {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DonationInitiativeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DonationInitiativeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DonationInitiativeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := donationinitiative.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DonationInitiativeUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := donationinitiative.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := donationinitiative.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DonationInitiativeUpdateOne) sqlSave(ctx context.Context) (_node *DonationInitiative, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(donationinitiative.Table, donationinitiative.Columns, sqlgraph.NewFieldSpec(donationinitiative.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DonationInitiative.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, donationinitiative.FieldID)
		for _, f := range fields {
			if !donationinitiative.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != donationinitiative.FieldID {
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
		_spec.SetField(donationinitiative.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(donationinitiative.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(donationinitiative.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OrganizerID(); ok {
		_spec.SetField(donationinitiative.FieldOrganizerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(donationinitiative.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(donationinitiative.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(donationinitiative.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GoalAmount(); ok {
		_spec.SetField(donationinitiative.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGoalAmount(); ok {
		_spec.AddField(donationinitiative.FieldGoalAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RaisedAmount(); ok {
		_spec.SetField(donationinitiative.FieldRaisedAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRaisedAmount(); ok {
		_spec.AddField(donationinitiative.FieldRaisedAmount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DonorCount(); ok {
		_spec.SetField(donationinitiative.FieldDonorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDonorCount(); ok {
		_spec.AddField(donationinitiative.FieldDonorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(donationinitiative.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(donationinitiative.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(donationinitiative.FieldEndsAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(donationinitiative.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(donationinitiative.FieldImageURL, field.TypeString)
	}
	_node = &DonationInitiative{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{donationinitiative.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
