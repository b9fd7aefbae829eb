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
	"github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/google/uuid"
)

// DonationInitiativeCreate is the builder for creating a DonationInitiative entity.
type DonationInitiativeCreate struct {
	config
	mutation *DonationInitiativeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DonationInitiativeCreate) SetCreatedAt(v time.Time) *DonationInitiativeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableCreatedAt(v *time.Time) *DonationInitiativeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DonationInitiativeCreate) SetUpdatedAt(v time.Time) *DonationInitiativeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableUpdatedAt(v *time.Time) *DonationInitiativeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DonationInitiativeCreate) SetDeletedAt(v time.Time) *DonationInitiativeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableDeletedAt(v *time.Time) *DonationInitiativeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetOrganizerID sets the "organizer_id" field.
func (_c *DonationInitiativeCreate) SetOrganizerID(v uuid.UUID) *DonationInitiativeCreate {
	_c.mutation.SetOrganizerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DonationInitiativeCreate) SetTitle(v string) *DonationInitiativeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DonationInitiativeCreate) SetDescription(v string) *DonationInitiativeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableDescription(v *string) *DonationInitiativeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *DonationInitiativeCreate) SetCategory(v donationinitiative.Category) *DonationInitiativeCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableCategory(v *donationinitiative.Category) *DonationInitiativeCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetGoalAmount sets the "goal_amount" field.
func (_c *DonationInitiativeCreate) SetGoalAmount(v int64) *DonationInitiativeCreate {
	_c.mutation.SetGoalAmount(v)
	return _c
}

// SetRaisedAmount sets the "raised_amount" field.
func (_c *DonationInitiativeCreate) SetRaisedAmount(v int64) *DonationInitiativeCreate {
	_c.mutation.SetRaisedAmount(v)
	return _c
}

// SetNillableRaisedAmount sets the "raised_amount" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableRaisedAmount(v *int64) *DonationInitiativeCreate {
	if v != nil {
		_c.SetRaisedAmount(*v)
	}
	return _c
}

// SetDonorCount sets the "donor_count" field.
func (_c *DonationInitiativeCreate) SetDonorCount(v int) *DonationInitiativeCreate {
	_c.mutation.SetDonorCount(v)
	return _c
}

// SetNillableDonorCount sets the "donor_count" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableDonorCount(v *int) *DonationInitiativeCreate {
	if v != nil {
		_c.SetDonorCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DonationInitiativeCreate) SetStatus(v donationinitiative.Status) *DonationInitiativeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableStatus(v *donationinitiative.Status) *DonationInitiativeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *DonationInitiativeCreate) SetEndsAt(v time.Time) *DonationInitiativeCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableEndsAt(v *time.Time) *DonationInitiativeCreate {
	if v != nil {
		_c.SetEndsAt(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *DonationInitiativeCreate) SetImageURL(v string) *DonationInitiativeCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableImageURL(v *string) *DonationInitiativeCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DonationInitiativeCreate) SetID(v uuid.UUID) *DonationInitiativeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DonationInitiativeCreate) SetNillableID(v *uuid.UUID) *DonationInitiativeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DonationInitiativeMutation object of the builder.
func (_c *DonationInitiativeCreate) Mutation() *DonationInitiativeMutation {
	return _c.mutation
}

// Save creates the DonationInitiative in the database.
func (_c *DonationInitiativeCreate) Save(ctx context.Context) (*DonationInitiative, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DonationInitiativeCreate) SaveX(ctx context.Context) *DonationInitiative {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationInitiativeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationInitiativeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DonationInitiativeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := donationinitiative.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := donationinitiative.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := donationinitiative.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := donationinitiative.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.RaisedAmount(); !ok {
		v := donationinitiative.DefaultRaisedAmount
		_c.mutation.SetRaisedAmount(v)
	}
	if _, ok := _c.mutation.DonorCount(); !ok {
		v := donationinitiative.DefaultDonorCount
		_c.mutation.SetDonorCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := donationinitiative.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := donationinitiative.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DonationInitiativeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DonationInitiative.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DonationInitiative.updated_at"`)}
	}
	if _, ok := _c.mutation.OrganizerID(); !ok {
		return &ValidationError{Name: "organizer_id", err: errors.New(`repo: missing required field "DonationInitiative.organizer_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "DonationInitiative.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "DonationInitiative.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`repo: missing required field "DonationInitiative.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := donationinitiative.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalAmount(); !ok {
		return &ValidationError{Name: "goal_amount", err: errors.New(`repo: missing required field "DonationInitiative.goal_amount"`)}
	}
	if _, ok := _c.mutation.RaisedAmount(); !ok {
		return &ValidationError{Name: "raised_amount", err: errors.New(`repo: missing required field "DonationInitiative.raised_amount"`)}
	}
	if _, ok := _c.mutation.DonorCount(); !ok {
		return &ValidationError{Name: "donor_count", err: errors.New(`repo: missing required field "DonationInitiative.donor_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "DonationInitiative.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := donationinitiative.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DonationInitiative.status": %w`, err)}
		}
	}
	return nil
}

func (_c *DonationInitiativeCreate) sqlSave(ctx context.Context) (*DonationInitiative, error) {
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

func (_c *DonationInitiativeCreate) createSpec() (*DonationInitiative, *sqlgraph.CreateSpec) {
	var (
		_node = &DonationInitiative{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(donationinitiative.Table, sqlgraph.NewFieldSpec(donationinitiative.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(donationinitiative.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(donationinitiative.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(donationinitiative.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.OrganizerID(); ok {
		_spec.SetField(donationinitiative.FieldOrganizerID, field.TypeUUID, value)
		_node.OrganizerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(donationinitiative.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(donationinitiative.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(donationinitiative.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GoalAmount(); ok {
		_spec.SetField(donationinitiative.FieldGoalAmount, field.TypeInt64, value)
		_node.GoalAmount = value
	}
	if value, ok := _c.mutation.RaisedAmount(); ok {
		_spec.SetField(donationinitiative.FieldRaisedAmount, field.TypeInt64, value)
		_node.RaisedAmount = value
	}
	if value, ok := _c.mutation.DonorCount(); ok {
		_spec.SetField(donationinitiative.FieldDonorCount, field.TypeInt, value)
		_node.DonorCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(donationinitiative.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(donationinitiative.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = &value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(donationinitiative.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DonationInitiative.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationInitiativeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationInitiativeCreate) OnConflict(opts ...sql.ConflictOption) *DonationInitiativeUpsertOne {
	_c.conflict = opts
	return &DonationInitiativeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationInitiativeCreate) OnConflictColumns(columns ...string) *DonationInitiativeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationInitiativeUpsertOne{
		create: _c,
	}
}

type (
	// DonationInitiativeUpsertOne is the builder for "upsert"-ing
	//  one DonationInitiative node.
	DonationInitiativeUpsertOne struct {
		create *DonationInitiativeCreate
	}

	// DonationInitiativeUpsert is the "OnConflict" setter.
	DonationInitiativeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationInitiativeUpsert) SetUpdatedAt(v time.Time) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateUpdatedAt() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DonationInitiativeUpsert) SetDeletedAt(v time.Time) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateDeletedAt() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DonationInitiativeUpsert) ClearDeletedAt() *DonationInitiativeUpsert {
	u.SetNull(donationinitiative.FieldDeletedAt)
	return u
}

// SetOrganizerID sets the "organizer_id" field.
func (u *DonationInitiativeUpsert) SetOrganizerID(v uuid.UUID) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldOrganizerID, v)
	return u
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateOrganizerID() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldOrganizerID)
	return u
}

// SetTitle sets the "title" field.
func (u *DonationInitiativeUpsert) SetTitle(v string) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateTitle() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *DonationInitiativeUpsert) SetDescription(v string) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateDescription() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldDescription)
	return u
}

// SetCategory sets the "category" field.
func (u *DonationInitiativeUpsert) SetCategory(v donationinitiative.Category) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateCategory() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldCategory)
	return u
}

// SetGoalAmount sets the "goal_amount" field.
func (u *DonationInitiativeUpsert) SetGoalAmount(v int64) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldGoalAmount, v)
	return u
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateGoalAmount() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldGoalAmount)
	return u
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *DonationInitiativeUpsert) AddGoalAmount(v int64) *DonationInitiativeUpsert {
	u.Add(donationinitiative.FieldGoalAmount, v)
	return u
}

// SetRaisedAmount sets the "raised_amount" field.
func (u *DonationInitiativeUpsert) SetRaisedAmount(v int64) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldRaisedAmount, v)
	return u
}

// UpdateRaisedAmount sets the "raised_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateRaisedAmount() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldRaisedAmount)
	return u
}

// AddRaisedAmount adds v to the "raised_amount" field.
func (u *DonationInitiativeUpsert) AddRaisedAmount(v int64) *DonationInitiativeUpsert {
	u.Add(donationinitiative.FieldRaisedAmount, v)
	return u
}

// SetDonorCount sets the "donor_count" field.
func (u *DonationInitiativeUpsert) SetDonorCount(v int) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldDonorCount, v)
	return u
}

// UpdateDonorCount sets the "donor_count" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateDonorCount() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldDonorCount)
	return u
}

// AddDonorCount adds v to the "donor_count" field.
func (u *DonationInitiativeUpsert) AddDonorCount(v int) *DonationInitiativeUpsert {
	u.Add(donationinitiative.FieldDonorCount, v)
	return u
}

// SetStatus sets the "status" field.
func (u *DonationInitiativeUpsert) SetStatus(v donationinitiative.Status) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateStatus() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldStatus)
	return u
}

// SetEndsAt sets the "ends_at" field.
func (u *DonationInitiativeUpsert) SetEndsAt(v time.Time) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldEndsAt, v)
	return u
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateEndsAt() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldEndsAt)
	return u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *DonationInitiativeUpsert) ClearEndsAt() *DonationInitiativeUpsert {
	u.SetNull(donationinitiative.FieldEndsAt)
	return u
}

// SetImageURL sets the "image_url" field.
func (u *DonationInitiativeUpsert) SetImageURL(v string) *DonationInitiativeUpsert {
	u.Set(donationinitiative.FieldImageURL, v)
	return u
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DonationInitiativeUpsert) UpdateImageURL() *DonationInitiativeUpsert {
	u.SetExcluded(donationinitiative.FieldImageURL)
	return u
}

// ClearImageURL clears the value of the "image_url" field.
func (u *DonationInitiativeUpsert) ClearImageURL() *DonationInitiativeUpsert {
	u.SetNull(donationinitiative.FieldImageURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donationinitiative.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationInitiativeUpsertOne) UpdateNewValues() *DonationInitiativeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(donationinitiative.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(donationinitiative.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DonationInitiativeUpsertOne) Ignore() *DonationInitiativeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationInitiativeUpsertOne) DoNothing() *DonationInitiativeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationInitiativeCreate.OnConflict
// documentation for more info.
func (u *DonationInitiativeUpsertOne) Update(set func(*DonationInitiativeUpsert)) *DonationInitiativeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationInitiativeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationInitiativeUpsertOne) SetUpdatedAt(v time.Time) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateUpdatedAt() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DonationInitiativeUpsertOne) SetDeletedAt(v time.Time) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateDeletedAt() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DonationInitiativeUpsertOne) ClearDeletedAt() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOrganizerID sets the "organizer_id" field.
func (u *DonationInitiativeUpsertOne) SetOrganizerID(v uuid.UUID) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetOrganizerID(v)
	})
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateOrganizerID() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateOrganizerID()
	})
}

// SetTitle sets the "title" field.
func (u *DonationInitiativeUpsertOne) SetTitle(v string) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateTitle() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DonationInitiativeUpsertOne) SetDescription(v string) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateDescription() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDescription()
	})
}

// SetCategory sets the "category" field.
func (u *DonationInitiativeUpsertOne) SetCategory(v donationinitiative.Category) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateCategory() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateCategory()
	})
}

// SetGoalAmount sets the "goal_amount" field.
func (u *DonationInitiativeUpsertOne) SetGoalAmount(v int64) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetGoalAmount(v)
	})
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *DonationInitiativeUpsertOne) AddGoalAmount(v int64) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddGoalAmount(v)
	})
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateGoalAmount() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateGoalAmount()
	})
}

// SetRaisedAmount sets the "raised_amount" field.
func (u *DonationInitiativeUpsertOne) SetRaisedAmount(v int64) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetRaisedAmount(v)
	})
}

// AddRaisedAmount adds v to the "raised_amount" field.
func (u *DonationInitiativeUpsertOne) AddRaisedAmount(v int64) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddRaisedAmount(v)
	})
}

// UpdateRaisedAmount sets the "raised_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateRaisedAmount() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateRaisedAmount()
	})
}

// SetDonorCount sets the "donor_count" field.
func (u *DonationInitiativeUpsertOne) SetDonorCount(v int) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDonorCount(v)
	})
}

// AddDonorCount adds v to the "donor_count" field.
func (u *DonationInitiativeUpsertOne) AddDonorCount(v int) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddDonorCount(v)
	})
}

// UpdateDonorCount sets the "donor_count" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateDonorCount() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDonorCount()
	})
}

// SetStatus sets the "status" field.
func (u *DonationInitiativeUpsertOne) SetStatus(v donationinitiative.Status) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateStatus() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateStatus()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *DonationInitiativeUpsertOne) SetEndsAt(v time.Time) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateEndsAt() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *DonationInitiativeUpsertOne) ClearEndsAt() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearEndsAt()
	})
}

// SetImageURL sets the "image_url" field.
func (u *DonationInitiativeUpsertOne) SetImageURL(v string) *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DonationInitiativeUpsertOne) UpdateImageURL() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *DonationInitiativeUpsertOne) ClearImageURL() *DonationInitiativeUpsertOne {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearImageURL()
	})
}

// Exec executes the query.
func (u *DonationInitiativeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DonationInitiativeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationInitiativeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DonationInitiativeUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DonationInitiativeUpsertOne.ID is not supported by MySQL driver. Use DonationInitiativeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DonationInitiativeUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DonationInitiativeCreateBulk is the builder for creating many DonationInitiative entities in bulk.
type DonationInitiativeCreateBulk struct {
	config
	err      error
	builders []*DonationInitiativeCreate
	conflict []sql.ConflictOption
}

// Save creates the DonationInitiative entities in the database.
func (_c *DonationInitiativeCreateBulk) Save(ctx context.Context) ([]*DonationInitiative, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DonationInitiative, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DonationInitiativeMutation)
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
func (_c *DonationInitiativeCreateBulk) SaveX(ctx context.Context) []*DonationInitiative {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DonationInitiativeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DonationInitiativeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DonationInitiative.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DonationInitiativeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DonationInitiativeCreateBulk) OnConflict(opts ...sql.ConflictOption) *DonationInitiativeUpsertBulk {
	_c.conflict = opts
	return &DonationInitiativeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DonationInitiativeCreateBulk) OnConflictColumns(columns ...string) *DonationInitiativeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DonationInitiativeUpsertBulk{
		create: _c,
	}
}

// DonationInitiativeUpsertBulk is the builder for "upsert"-ing
// a bulk of DonationInitiative nodes.
type DonationInitiativeUpsertBulk struct {
	create *DonationInitiativeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(donationinitiative.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DonationInitiativeUpsertBulk) UpdateNewValues() *DonationInitiativeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(donationinitiative.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(donationinitiative.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DonationInitiative.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DonationInitiativeUpsertBulk) Ignore() *DonationInitiativeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DonationInitiativeUpsertBulk) DoNothing() *DonationInitiativeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DonationInitiativeCreateBulk.OnConflict
// documentation for more info.
func (u *DonationInitiativeUpsertBulk) Update(set func(*DonationInitiativeUpsert)) *DonationInitiativeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DonationInitiativeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DonationInitiativeUpsertBulk) SetUpdatedAt(v time.Time) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateUpdatedAt() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DonationInitiativeUpsertBulk) SetDeletedAt(v time.Time) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateDeletedAt() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DonationInitiativeUpsertBulk) ClearDeletedAt() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOrganizerID sets the "organizer_id" field.
func (u *DonationInitiativeUpsertBulk) SetOrganizerID(v uuid.UUID) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetOrganizerID(v)
	})
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateOrganizerID() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateOrganizerID()
	})
}

// SetTitle sets the "title" field.
func (u *DonationInitiativeUpsertBulk) SetTitle(v string) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateTitle() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DonationInitiativeUpsertBulk) SetDescription(v string) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateDescription() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDescription()
	})
}

// SetCategory sets the "category" field.
func (u *DonationInitiativeUpsertBulk) SetCategory(v donationinitiative.Category) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateCategory() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateCategory()
	})
}

// SetGoalAmount sets the "goal_amount" field.
func (u *DonationInitiativeUpsertBulk) SetGoalAmount(v int64) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetGoalAmount(v)
	})
}

// AddGoalAmount adds v to the "goal_amount" field.
func (u *DonationInitiativeUpsertBulk) AddGoalAmount(v int64) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddGoalAmount(v)
	})
}

// UpdateGoalAmount sets the "goal_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateGoalAmount() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateGoalAmount()
	})
}

// SetRaisedAmount sets the "raised_amount" field.
func (u *DonationInitiativeUpsertBulk) SetRaisedAmount(v int64) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetRaisedAmount(v)
	})
}

// AddRaisedAmount adds v to the "raised_amount" field.
func (u *DonationInitiativeUpsertBulk) AddRaisedAmount(v int64) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddRaisedAmount(v)
	})
}

// UpdateRaisedAmount sets the "raised_amount" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateRaisedAmount() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateRaisedAmount()
	})
}

// SetDonorCount sets the "donor_count" field.
func (u *DonationInitiativeUpsertBulk) SetDonorCount(v int) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetDonorCount(v)
	})
}

// AddDonorCount adds v to the "donor_count" field.
func (u *DonationInitiativeUpsertBulk) AddDonorCount(v int) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.AddDonorCount(v)
	})
}

// UpdateDonorCount sets the "donor_count" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateDonorCount() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateDonorCount()
	})
}

// SetStatus sets the "status" field.
func (u *DonationInitiativeUpsertBulk) SetStatus(v donationinitiative.Status) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateStatus() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateStatus()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *DonationInitiativeUpsertBulk) SetEndsAt(v time.Time) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateEndsAt() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *DonationInitiativeUpsertBulk) ClearEndsAt() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearEndsAt()
	})
}

// SetImageURL sets the "image_url" field.
func (u *DonationInitiativeUpsertBulk) SetImageURL(v string) *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.SetImageURL(v)
	})
}

// UpdateImageURL sets the "image_url" field to the value that was provided on create.
func (u *DonationInitiativeUpsertBulk) UpdateImageURL() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.UpdateImageURL()
	})
}

// ClearImageURL clears the value of the "image_url" field.
func (u *DonationInitiativeUpsertBulk) ClearImageURL() *DonationInitiativeUpsertBulk {
	return u.Update(func(s *DonationInitiativeUpsert) {
		s.ClearImageURL()
	})
}

// Exec executes the query.
func (u *DonationInitiativeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DonationInitiativeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DonationInitiativeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DonationInitiativeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
