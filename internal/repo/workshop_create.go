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
	"github.com/auxillium/auxillium_backend/internal/repo/workshop"
	"github.com/google/uuid"
)

// WorkshopCreate is the builder for creating a Workshop entity.
type WorkshopCreate struct {
	config
	mutation *WorkshopMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkshopCreate) SetCreatedAt(v time.Time) *WorkshopCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableCreatedAt(v *time.Time) *WorkshopCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkshopCreate) SetUpdatedAt(v time.Time) *WorkshopCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableUpdatedAt(v *time.Time) *WorkshopCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *WorkshopCreate) SetDeletedAt(v time.Time) *WorkshopCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableDeletedAt(v *time.Time) *WorkshopCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetOrganizerID sets the "organizer_id" field.
func (_c *WorkshopCreate) SetOrganizerID(v uuid.UUID) *WorkshopCreate {
	_c.mutation.SetOrganizerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *WorkshopCreate) SetTitle(v string) *WorkshopCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *WorkshopCreate) SetDescription(v string) *WorkshopCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableDescription(v *string) *WorkshopCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *WorkshopCreate) SetTopic(v string) *WorkshopCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableTopic(v *string) *WorkshopCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *WorkshopCreate) SetStartsAt(v time.Time) *WorkshopCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *WorkshopCreate) SetDurationMinutes(v int) *WorkshopCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableDurationMinutes(v *int) *WorkshopCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *WorkshopCreate) SetCapacity(v int) *WorkshopCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_c *WorkshopCreate) SetEnrolledCount(v int) *WorkshopCreate {
	_c.mutation.SetEnrolledCount(v)
	return _c
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableEnrolledCount(v *int) *WorkshopCreate {
	if v != nil {
		_c.SetEnrolledCount(*v)
	}
	return _c
}

// SetOnline sets the "online" field.
func (_c *WorkshopCreate) SetOnline(v bool) *WorkshopCreate {
	_c.mutation.SetOnline(v)
	return _c
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableOnline(v *bool) *WorkshopCreate {
	if v != nil {
		_c.SetOnline(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *WorkshopCreate) SetLocation(v string) *WorkshopCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableLocation(v *string) *WorkshopCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetMeetingURL sets the "meeting_url" field.
func (_c *WorkshopCreate) SetMeetingURL(v string) *WorkshopCreate {
	_c.mutation.SetMeetingURL(v)
	return _c
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableMeetingURL(v *string) *WorkshopCreate {
	if v != nil {
		_c.SetMeetingURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkshopCreate) SetStatus(v workshop.Status) *WorkshopCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableStatus(v *workshop.Status) *WorkshopCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkshopCreate) SetID(v uuid.UUID) *WorkshopCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkshopCreate) SetNillableID(v *uuid.UUID) *WorkshopCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WorkshopMutation object of the builder.
func (_c *WorkshopCreate) Mutation() *WorkshopMutation {
	return _c.mutation
}

// Save creates the Workshop in the database.
func (_c *WorkshopCreate) Save(ctx context.Context) (*Workshop, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkshopCreate) SaveX(ctx context.Context) *Workshop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkshopCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkshopCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkshopCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workshop.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workshop.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := workshop.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := workshop.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := workshop.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.EnrolledCount(); !ok {
		v := workshop.DefaultEnrolledCount
		_c.mutation.SetEnrolledCount(v)
	}
	if _, ok := _c.mutation.Online(); !ok {
		v := workshop.DefaultOnline
		_c.mutation.SetOnline(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workshop.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workshop.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkshopCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Workshop.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Workshop.updated_at"`)}
	}
	if _, ok := _c.mutation.OrganizerID(); !ok {
		return &ValidationError{Name: "organizer_id", err: errors.New(`repo: missing required field "Workshop.organizer_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Workshop.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "Workshop.description"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`repo: missing required field "Workshop.topic"`)}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`repo: missing required field "Workshop.starts_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Workshop.duration_minutes"`)}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`repo: missing required field "Workshop.capacity"`)}
	}
	if _, ok := _c.mutation.EnrolledCount(); !ok {
		return &ValidationError{Name: "enrolled_count", err: errors.New(`repo: missing required field "Workshop.enrolled_count"`)}
	}
	if _, ok := _c.mutation.Online(); !ok {
		return &ValidationError{Name: "online", err: errors.New(`repo: missing required field "Workshop.online"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Workshop.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workshop.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Workshop.status": %w`, err)}
		}
	}
	return nil
}

func (_c *WorkshopCreate) sqlSave(ctx context.Context) (*Workshop, error) {
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

func (_c *WorkshopCreate) createSpec() (*Workshop, *sqlgraph.CreateSpec) {
	var (
		_node = &Workshop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workshop.Table, sqlgraph.NewFieldSpec(workshop.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workshop.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workshop.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(workshop.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.OrganizerID(); ok {
		_spec.SetField(workshop.FieldOrganizerID, field.TypeUUID, value)
		_node.OrganizerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(workshop.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(workshop.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(workshop.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(workshop.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(workshop.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(workshop.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	if value, ok := _c.mutation.EnrolledCount(); ok {
		_spec.SetField(workshop.FieldEnrolledCount, field.TypeInt, value)
		_node.EnrolledCount = value
	}
	if value, ok := _c.mutation.Online(); ok {
		_spec.SetField(workshop.FieldOnline, field.TypeBool, value)
		_node.Online = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(workshop.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.MeetingURL(); ok {
		_spec.SetField(workshop.FieldMeetingURL, field.TypeString, value)
		_node.MeetingURL = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workshop.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workshop.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkshopUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkshopCreate) OnConflict(opts ...sql.ConflictOption) *WorkshopUpsertOne {
	_c.conflict = opts
	return &WorkshopUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workshop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkshopCreate) OnConflictColumns(columns ...string) *WorkshopUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkshopUpsertOne{
		create: _c,
	}
}

type (
	// WorkshopUpsertOne is the builder for "upsert"-ing
	//  one Workshop node.
	WorkshopUpsertOne struct {
		create *WorkshopCreate
	}

	// WorkshopUpsert is the "OnConflict" setter.
	WorkshopUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopUpsert) SetUpdatedAt(v time.Time) *WorkshopUpsert {
	u.Set(workshop.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateUpdatedAt() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *WorkshopUpsert) SetDeletedAt(v time.Time) *WorkshopUpsert {
	u.Set(workshop.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateDeletedAt() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *WorkshopUpsert) ClearDeletedAt() *WorkshopUpsert {
	u.SetNull(workshop.FieldDeletedAt)
	return u
}

// SetOrganizerID sets the "organizer_id" field.
func (u *WorkshopUpsert) SetOrganizerID(v uuid.UUID) *WorkshopUpsert {
	u.Set(workshop.FieldOrganizerID, v)
	return u
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateOrganizerID() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldOrganizerID)
	return u
}

// SetTitle sets the "title" field.
func (u *WorkshopUpsert) SetTitle(v string) *WorkshopUpsert {
	u.Set(workshop.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateTitle() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *WorkshopUpsert) SetDescription(v string) *WorkshopUpsert {
	u.Set(workshop.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateDescription() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldDescription)
	return u
}

// SetTopic sets the "topic" field.
func (u *WorkshopUpsert) SetTopic(v string) *WorkshopUpsert {
	u.Set(workshop.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateTopic() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldTopic)
	return u
}

// SetStartsAt sets the "starts_at" field.
func (u *WorkshopUpsert) SetStartsAt(v time.Time) *WorkshopUpsert {
	u.Set(workshop.FieldStartsAt, v)
	return u
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateStartsAt() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldStartsAt)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *WorkshopUpsert) SetDurationMinutes(v int) *WorkshopUpsert {
	u.Set(workshop.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateDurationMinutes() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *WorkshopUpsert) AddDurationMinutes(v int) *WorkshopUpsert {
	u.Add(workshop.FieldDurationMinutes, v)
	return u
}

// SetCapacity sets the "capacity" field.
func (u *WorkshopUpsert) SetCapacity(v int) *WorkshopUpsert {
	u.Set(workshop.FieldCapacity, v)
	return u
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateCapacity() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldCapacity)
	return u
}

// AddCapacity adds v to the "capacity" field.
func (u *WorkshopUpsert) AddCapacity(v int) *WorkshopUpsert {
	u.Add(workshop.FieldCapacity, v)
	return u
}

// SetEnrolledCount sets the "enrolled_count" field.
func (u *WorkshopUpsert) SetEnrolledCount(v int) *WorkshopUpsert {
	u.Set(workshop.FieldEnrolledCount, v)
	return u
}

// UpdateEnrolledCount sets the "enrolled_count" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateEnrolledCount() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldEnrolledCount)
	return u
}

// AddEnrolledCount adds v to the "enrolled_count" field.
func (u *WorkshopUpsert) AddEnrolledCount(v int) *WorkshopUpsert {
	u.Add(workshop.FieldEnrolledCount, v)
	return u
}

// SetOnline sets the "online" field.
func (u *WorkshopUpsert) SetOnline(v bool) *WorkshopUpsert {
	u.Set(workshop.FieldOnline, v)
	return u
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateOnline() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldOnline)
	return u
}

// SetLocation sets the "location" field.
func (u *WorkshopUpsert) SetLocation(v string) *WorkshopUpsert {
	u.Set(workshop.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateLocation() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *WorkshopUpsert) ClearLocation() *WorkshopUpsert {
	u.SetNull(workshop.FieldLocation)
	return u
}

// SetMeetingURL sets the "meeting_url" field.
func (u *WorkshopUpsert) SetMeetingURL(v string) *WorkshopUpsert {
	u.Set(workshop.FieldMeetingURL, v)
	return u
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateMeetingURL() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldMeetingURL)
	return u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *WorkshopUpsert) ClearMeetingURL() *WorkshopUpsert {
	u.SetNull(workshop.FieldMeetingURL)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkshopUpsert) SetStatus(v workshop.Status) *WorkshopUpsert {
	u.Set(workshop.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopUpsert) UpdateStatus() *WorkshopUpsert {
	u.SetExcluded(workshop.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Workshop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workshop.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkshopUpsertOne) UpdateNewValues() *WorkshopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workshop.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workshop.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workshop.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkshopUpsertOne) Ignore() *WorkshopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkshopUpsertOne) DoNothing() *WorkshopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkshopCreate.OnConflict
// documentation for more info.
func (u *WorkshopUpsertOne) Update(set func(*WorkshopUpsert)) *WorkshopUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkshopUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopUpsertOne) SetUpdatedAt(v time.Time) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateUpdatedAt() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *WorkshopUpsertOne) SetDeletedAt(v time.Time) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateDeletedAt() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *WorkshopUpsertOne) ClearDeletedAt() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOrganizerID sets the "organizer_id" field.
func (u *WorkshopUpsertOne) SetOrganizerID(v uuid.UUID) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetOrganizerID(v)
	})
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateOrganizerID() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateOrganizerID()
	})
}

// SetTitle sets the "title" field.
func (u *WorkshopUpsertOne) SetTitle(v string) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateTitle() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *WorkshopUpsertOne) SetDescription(v string) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateDescription() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDescription()
	})
}

// SetTopic sets the "topic" field.
func (u *WorkshopUpsertOne) SetTopic(v string) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateTopic() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateTopic()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *WorkshopUpsertOne) SetStartsAt(v time.Time) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateStartsAt() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateStartsAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *WorkshopUpsertOne) SetDurationMinutes(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *WorkshopUpsertOne) AddDurationMinutes(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateDurationMinutes() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetCapacity sets the "capacity" field.
func (u *WorkshopUpsertOne) SetCapacity(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *WorkshopUpsertOne) AddCapacity(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateCapacity() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateCapacity()
	})
}

// SetEnrolledCount sets the "enrolled_count" field.
func (u *WorkshopUpsertOne) SetEnrolledCount(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetEnrolledCount(v)
	})
}

// AddEnrolledCount adds v to the "enrolled_count" field.
func (u *WorkshopUpsertOne) AddEnrolledCount(v int) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddEnrolledCount(v)
	})
}

// UpdateEnrolledCount sets the "enrolled_count" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateEnrolledCount() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateEnrolledCount()
	})
}

// SetOnline sets the "online" field.
func (u *WorkshopUpsertOne) SetOnline(v bool) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetOnline(v)
	})
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateOnline() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateOnline()
	})
}

// SetLocation sets the "location" field.
func (u *WorkshopUpsertOne) SetLocation(v string) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateLocation() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *WorkshopUpsertOne) ClearLocation() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearLocation()
	})
}

// SetMeetingURL sets the "meeting_url" field.
func (u *WorkshopUpsertOne) SetMeetingURL(v string) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetMeetingURL(v)
	})
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateMeetingURL() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateMeetingURL()
	})
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *WorkshopUpsertOne) ClearMeetingURL() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearMeetingURL()
	})
}

// SetStatus sets the "status" field.
func (u *WorkshopUpsertOne) SetStatus(v workshop.Status) *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopUpsertOne) UpdateStatus() *WorkshopUpsertOne {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *WorkshopUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WorkshopCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkshopUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkshopUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: WorkshopUpsertOne.ID is not supported by MySQL driver. Use WorkshopUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkshopUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkshopCreateBulk is the builder for creating many Workshop entities in bulk.
type WorkshopCreateBulk struct {
	config
	err      error
	builders []*WorkshopCreate
	conflict []sql.ConflictOption
}

// Save creates the Workshop entities in the database.
func (_c *WorkshopCreateBulk) Save(ctx context.Context) ([]*Workshop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workshop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkshopMutation)
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
func (_c *WorkshopCreateBulk) SaveX(ctx context.Context) []*Workshop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkshopCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkshopCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workshop.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkshopUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkshopCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkshopUpsertBulk {
	_c.conflict = opts
	return &WorkshopUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workshop.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkshopCreateBulk) OnConflictColumns(columns ...string) *WorkshopUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkshopUpsertBulk{
		create: _c,
	}
}

// WorkshopUpsertBulk is the builder for "upsert"-ing
// a bulk of Workshop nodes.
type WorkshopUpsertBulk struct {
	create *WorkshopCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workshop.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workshop.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkshopUpsertBulk) UpdateNewValues() *WorkshopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workshop.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workshop.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workshop.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkshopUpsertBulk) Ignore() *WorkshopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkshopUpsertBulk) DoNothing() *WorkshopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkshopCreateBulk.OnConflict
// documentation for more info.
func (u *WorkshopUpsertBulk) Update(set func(*WorkshopUpsert)) *WorkshopUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkshopUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkshopUpsertBulk) SetUpdatedAt(v time.Time) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateUpdatedAt() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *WorkshopUpsertBulk) SetDeletedAt(v time.Time) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateDeletedAt() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *WorkshopUpsertBulk) ClearDeletedAt() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOrganizerID sets the "organizer_id" field.
func (u *WorkshopUpsertBulk) SetOrganizerID(v uuid.UUID) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetOrganizerID(v)
	})
}

// UpdateOrganizerID sets the "organizer_id" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateOrganizerID() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateOrganizerID()
	})
}

// SetTitle sets the "title" field.
func (u *WorkshopUpsertBulk) SetTitle(v string) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateTitle() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *WorkshopUpsertBulk) SetDescription(v string) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateDescription() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDescription()
	})
}

// SetTopic sets the "topic" field.
func (u *WorkshopUpsertBulk) SetTopic(v string) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateTopic() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateTopic()
	})
}

// SetStartsAt sets the "starts_at" field.
func (u *WorkshopUpsertBulk) SetStartsAt(v time.Time) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetStartsAt(v)
	})
}

// UpdateStartsAt sets the "starts_at" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateStartsAt() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateStartsAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *WorkshopUpsertBulk) SetDurationMinutes(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *WorkshopUpsertBulk) AddDurationMinutes(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateDurationMinutes() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetCapacity sets the "capacity" field.
func (u *WorkshopUpsertBulk) SetCapacity(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *WorkshopUpsertBulk) AddCapacity(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateCapacity() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateCapacity()
	})
}

// SetEnrolledCount sets the "enrolled_count" field.
func (u *WorkshopUpsertBulk) SetEnrolledCount(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetEnrolledCount(v)
	})
}

// AddEnrolledCount adds v to the "enrolled_count" field.
func (u *WorkshopUpsertBulk) AddEnrolledCount(v int) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.AddEnrolledCount(v)
	})
}

// UpdateEnrolledCount sets the "enrolled_count" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateEnrolledCount() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateEnrolledCount()
	})
}

// SetOnline sets the "online" field.
func (u *WorkshopUpsertBulk) SetOnline(v bool) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetOnline(v)
	})
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateOnline() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateOnline()
	})
}

// SetLocation sets the "location" field.
func (u *WorkshopUpsertBulk) SetLocation(v string) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateLocation() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *WorkshopUpsertBulk) ClearLocation() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearLocation()
	})
}

// SetMeetingURL sets the "meeting_url" field.
func (u *WorkshopUpsertBulk) SetMeetingURL(v string) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetMeetingURL(v)
	})
}

// UpdateMeetingURL sets the "meeting_url" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateMeetingURL() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateMeetingURL()
	})
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (u *WorkshopUpsertBulk) ClearMeetingURL() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.ClearMeetingURL()
	})
}

// SetStatus sets the "status" field.
func (u *WorkshopUpsertBulk) SetStatus(v workshop.Status) *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkshopUpsertBulk) UpdateStatus() *WorkshopUpsertBulk {
	return u.Update(func(s *WorkshopUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *WorkshopUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the WorkshopCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for WorkshopCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkshopUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
