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
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
	"github.com/google/uuid"
)

// WorkshopEnrollmentUpdate is the builder for updating WorkshopEnrollment entities.
type WorkshopEnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *WorkshopEnrollmentMutation
}

// Where appends a list predicates to the WorkshopEnrollmentUpdate builder.
func (_u *WorkshopEnrollmentUpdate) Where(ps ...predicate.WorkshopEnrollment) *WorkshopEnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkshopEnrollmentUpdate) SetUpdatedAt(v time.Time) *WorkshopEnrollmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkshopID sets the "workshop_id" field.
func (_u *WorkshopEnrollmentUpdate) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentUpdate {
	_u.mutation.SetWorkshopID(v)
	return _u
}

// SetNillableWorkshopID sets the "workshop_id" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdate) SetNillableWorkshopID(v *uuid.UUID) *WorkshopEnrollmentUpdate {
	if v != nil {
		_u.SetWorkshopID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkshopEnrollmentUpdate) SetUserID(v uuid.UUID) *WorkshopEnrollmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdate) SetNillableUserID(v *uuid.UUID) *WorkshopEnrollmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkshopEnrollmentUpdate) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdate) SetNillableStatus(v *workshopenrollment.Status) *WorkshopEnrollmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WorkshopEnrollmentMutation object of the builder.
func (_u *WorkshopEnrollmentUpdate) Mutation() *WorkshopEnrollmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkshopEnrollmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkshopEnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkshopEnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkshopEnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkshopEnrollmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workshopenrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkshopEnrollmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workshopenrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "WorkshopEnrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkshopEnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workshopenrollment.Table, workshopenrollment.Columns, sqlgraph.NewFieldSpec(workshopenrollment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workshopenrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkshopID(); ok {
		_spec.SetField(workshopenrollment.FieldWorkshopID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workshopenrollment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workshopenrollment.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workshopenrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkshopEnrollmentUpdateOne is the builder for updating a single WorkshopEnrollment entity.
type WorkshopEnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkshopEnrollmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkshopEnrollmentUpdateOne) SetUpdatedAt(v time.Time) *WorkshopEnrollmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkshopID sets the "workshop_id" field.
func (_u *WorkshopEnrollmentUpdateOne) SetWorkshopID(v uuid.UUID) *WorkshopEnrollmentUpdateOne {
	_u.mutation.SetWorkshopID(v)
	return _u
}

// SetNillableWorkshopID sets the "workshop_id" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdateOne) SetNillableWorkshopID(v *uuid.UUID) *WorkshopEnrollmentUpdateOne {
	if v != nil {
		_u.SetWorkshopID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkshopEnrollmentUpdateOne) SetUserID(v uuid.UUID) *WorkshopEnrollmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdateOne) SetNillableUserID(v *uuid.UUID) *WorkshopEnrollmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkshopEnrollmentUpdateOne) SetStatus(v workshopenrollment.Status) *WorkshopEnrollmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkshopEnrollmentUpdateOne) SetNillableStatus(v *workshopenrollment.Status) *WorkshopEnrollmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WorkshopEnrollmentMutation object of the builder.
func (_u *WorkshopEnrollmentUpdateOne) Mutation() *WorkshopEnrollmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkshopEnrollmentUpdate builder.
func (_u *WorkshopEnrollmentUpdateOne) Where(ps ...predicate.WorkshopEnrollment) *WorkshopEnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkshopEnrollmentUpdateOne) Select(field string, fields ...string) *WorkshopEnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkshopEnrollment entity.
func (_u *WorkshopEnrollmentUpdateOne) Save(ctx context.Context) (*WorkshopEnrollment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkshopEnrollmentUpdateOne) SaveX(ctx context.Context) *WorkshopEnrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkshopEnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkshopEnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkshopEnrollmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workshopenrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkshopEnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workshopenrollment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "WorkshopEnrollment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkshopEnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *WorkshopEnrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workshopenrollment.Table, workshopenrollment.Columns, sqlgraph.NewFieldSpec(workshopenrollment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WorkshopEnrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workshopenrollment.FieldID)
		for _, f := range fields {
			if !workshopenrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workshopenrollment.FieldID {
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
		_spec.SetField(workshopenrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WorkshopID(); ok {
		_spec.SetField(workshopenrollment.FieldWorkshopID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workshopenrollment.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workshopenrollment.FieldStatus, field.TypeEnum, value)
	}
	_node = &WorkshopEnrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workshopenrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
