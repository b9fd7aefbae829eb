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
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/auxillium/auxillium_backend/internal/repo/workshop"
	"github.com/google/uuid"
)

// WorkshopUpdate is the builder for updating Workshop entities.
type WorkshopUpdate struct {
	config
	hooks    []Hook
	mutation *WorkshopMutation
}

// Where appends a list predicates to the WorkshopUpdate builder.
func (_u *WorkshopUpdate) Where(ps ...predicate.Workshop) *WorkshopUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkshopUpdate) SetUpdatedAt(v time.Time) *WorkshopUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkshopUpdate) SetDeletedAt(v time.Time) *WorkshopUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableDeletedAt(v *time.Time) *WorkshopUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkshopUpdate) ClearDeletedAt() *WorkshopUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOrganizerID sets the "organizer_id" field.
func (_u *WorkshopUpdate) SetOrganizerID(v uuid.UUID) *WorkshopUpdate {
	_u.mutation.SetOrganizerID(v)
	return _u
}

// SetNillableOrganizerID sets the "organizer_id" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableOrganizerID(v *uuid.UUID) *WorkshopUpdate {
	if v != nil {
		_u.SetOrganizerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkshopUpdate) SetTitle(v string) *WorkshopUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableTitle(v *string) *WorkshopUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkshopUpdate) SetDescription(v string) *WorkshopUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableDescription(v *string) *WorkshopUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *WorkshopUpdate) SetTopic(v string) *WorkshopUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableTopic(v *string) *WorkshopUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *WorkshopUpdate) SetStartsAt(v time.Time) *WorkshopUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableStartsAt(v *time.Time) *WorkshopUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *WorkshopUpdate) SetDurationMinutes(v int) *WorkshopUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableDurationMinutes(v *int) *WorkshopUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *WorkshopUpdate) AddDurationMinutes(v int) *WorkshopUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *WorkshopUpdate) SetCapacity(v int) *WorkshopUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableCapacity(v *int) *WorkshopUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *WorkshopUpdate) AddCapacity(v int) *WorkshopUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_u *WorkshopUpdate) SetEnrolledCount(v int) *WorkshopUpdate {
	_u.mutation.ResetEnrolledCount()
	_u.mutation.SetEnrolledCount(v)
	return _u
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableEnrolledCount(v *int) *WorkshopUpdate {
	if v != nil {
		_u.SetEnrolledCount(*v)
	}
	return _u
}

// AddEnrolledCount adds value to the "enrolled_count" field.
func (_u *WorkshopUpdate) AddEnrolledCount(v int) *WorkshopUpdate {
	_u.mutation.AddEnrolledCount(v)
	return _u
}

// SetOnline sets the "online" field.
func (_u *WorkshopUpdate) SetOnline(v bool) *WorkshopUpdate {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableOnline(v *bool) *WorkshopUpdate {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkshopUpdate) SetLocation(v string) *WorkshopUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableLocation(v *string) *WorkshopUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *WorkshopUpdate) ClearLocation() *WorkshopUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *WorkshopUpdate) SetMeetingURL(v string) *WorkshopUpdate {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableMeetingURL(v *string) *WorkshopUpdate {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (_u *WorkshopUpdate) ClearMeetingURL() *WorkshopUpdate {
	_u.mutation.ClearMeetingURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkshopUpdate) SetStatus(v workshop.Status) *WorkshopUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkshopUpdate) SetNillableStatus(v *workshop.Status) *WorkshopUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WorkshopMutation object of the builder.
func (_u *WorkshopUpdate) Mutation() *WorkshopMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkshopUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkshopUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkshopUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkshopUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkshopUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workshop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkshopUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workshop.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Workshop.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkshopUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workshop.Table, workshop.Columns, sqlgraph.NewFieldSpec(workshop.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workshop.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workshop.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workshop.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OrganizerID(); ok {
		_spec.SetField(workshop.FieldOrganizerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workshop.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workshop.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(workshop.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(workshop.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(workshop.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(workshop.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(workshop.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(workshop.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrolledCount(); ok {
		_spec.SetField(workshop.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrolledCount(); ok {
		_spec.AddField(workshop.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(workshop.FieldOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(workshop.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(workshop.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(workshop.FieldMeetingURL, field.TypeString, value)
	}
	if _u.mutation.MeetingURLCleared() {
		_spec.ClearField(workshop.FieldMeetingURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workshop.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workshop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkshopUpdateOne is the builder for updating a single Workshop entity.
type WorkshopUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkshopMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkshopUpdateOne) SetUpdatedAt(v time.Time) *WorkshopUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkshopUpdateOne) SetDeletedAt(v time.Time) *WorkshopUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableDeletedAt(v *time.Time) *WorkshopUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkshopUpdateOne) ClearDeletedAt() *WorkshopUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOrganizerID sets the "organizer_id" field.
func (_u *WorkshopUpdateOne) SetOrganizerID(v uuid.UUID) *WorkshopUpdateOne {
	_u.mutation.SetOrganizerID(v)
	return _u
}

// SetNillableOrganizerID sets the "organizer_id" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableOrganizerID(v *uuid.UUID) *WorkshopUpdateOne {
	if v != nil {
		_u.SetOrganizerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorkshopUpdateOne) SetTitle(v string) *WorkshopUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableTitle(v *string) *WorkshopUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkshopUpdateOne) SetDescription(v string) *WorkshopUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableDescription(v *string) *WorkshopUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *WorkshopUpdateOne) SetTopic(v string) *WorkshopUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableTopic(v *string) *WorkshopUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *WorkshopUpdateOne) SetStartsAt(v time.Time) *WorkshopUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableStartsAt(v *time.Time) *WorkshopUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *WorkshopUpdateOne) SetDurationMinutes(v int) *WorkshopUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableDurationMinutes(v *int) *WorkshopUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *WorkshopUpdateOne) AddDurationMinutes(v int) *WorkshopUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *WorkshopUpdateOne) SetCapacity(v int) *WorkshopUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableCapacity(v *int) *WorkshopUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *WorkshopUpdateOne) AddCapacity(v int) *WorkshopUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_u *WorkshopUpdateOne) SetEnrolledCount(v int) *WorkshopUpdateOne {
	_u.mutation.ResetEnrolledCount()
	_u.mutation.SetEnrolledCount(v)
	return _u
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableEnrolledCount(v *int) *WorkshopUpdateOne {
	if v != nil {
		_u.SetEnrolledCount(*v)
	}
	return _u
}

// AddEnrolledCount adds value to the "enrolled_count" field.
func (_u *WorkshopUpdateOne) AddEnrolledCount(v int) *WorkshopUpdateOne {
	_u.mutation.AddEnrolledCount(v)
	return _u
}

// SetOnline sets the "online" field.
func (_u *WorkshopUpdateOne) SetOnline(v bool) *WorkshopUpdateOne {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableOnline(v *bool) *WorkshopUpdateOne {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *WorkshopUpdateOne) SetLocation(v string) *WorkshopUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableLocation(v *string) *WorkshopUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *WorkshopUpdateOne) ClearLocation() *WorkshopUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetMeetingURL sets the "meeting_url" field.
func (_u *WorkshopUpdateOne) SetMeetingURL(v string) *WorkshopUpdateOne {
	_u.mutation.SetMeetingURL(v)
	return _u
}

// SetNillableMeetingURL sets the "meeting_url" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableMeetingURL(v *string) *WorkshopUpdateOne {
	if v != nil {
		_u.SetMeetingURL(*v)
	}
	return _u
}

// ClearMeetingURL clears the value of the "meeting_url" field.
func (_u *WorkshopUpdateOne) ClearMeetingURL() *WorkshopUpdateOne {
	_u.mutation.ClearMeetingURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkshopUpdateOne) SetStatus(v workshop.Status) *WorkshopUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkshopUpdateOne) SetNillableStatus(v *workshop.Status) *WorkshopUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WorkshopMutation object of the builder.
func (_u *WorkshopUpdateOne) Mutation() *WorkshopMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkshopUpdate builder.
func (_u *WorkshopUpdateOne) Where(ps ...predicate.Workshop) *WorkshopUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkshopUpdateOne) Select(field string, fields ...string) *WorkshopUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workshop entity.
func (_u *WorkshopUpdateOne) Save(ctx context.Context) (*Workshop, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkshopUpdateOne) SaveX(ctx context.Context) *Workshop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkshopUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkshopUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkshopUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workshop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkshopUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workshop.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Workshop.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkshopUpdateOne) sqlSave(ctx context.Context) (_node *Workshop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workshop.Table, workshop.Columns, sqlgraph.NewFieldSpec(workshop.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Workshop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workshop.FieldID)
		for _, f := range fields {
			if !workshop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workshop.FieldID {
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
		_spec.SetField(workshop.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workshop.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workshop.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OrganizerID(); ok {
		_spec.SetField(workshop.FieldOrganizerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(workshop.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workshop.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(workshop.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(workshop.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(workshop.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(workshop.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(workshop.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(workshop.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrolledCount(); ok {
		_spec.SetField(workshop.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrolledCount(); ok {
		_spec.AddField(workshop.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(workshop.FieldOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(workshop.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(workshop.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.MeetingURL(); ok {
		_spec.SetField(workshop.FieldMeetingURL, field.TypeString, value)
	}
	if _u.mutation.MeetingURLCleared() {
		_spec.ClearField(workshop.FieldMeetingURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workshop.FieldStatus, field.TypeEnum, value)
	}
	_node = &Workshop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workshop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
