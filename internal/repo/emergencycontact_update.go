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
	"github.com/auxillium/auxillium_backend/internal/repo/emergencycontact"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmergencyContactUpdate is the builder for updating EmergencyContact entities.
type EmergencyContactUpdate struct {
	config
	hooks    []Hook
	mutation *EmergencyContactMutation
}

// Where appends a list predicates to the EmergencyContactUpdate builder.
func (_u *EmergencyContactUpdate) Where(ps ...predicate.EmergencyContact) *EmergencyContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmergencyContactUpdate) SetUpdatedAt(v time.Time) *EmergencyContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmergencyContactUpdate) SetUserID(v uuid.UUID) *EmergencyContactUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableUserID(v *uuid.UUID) *EmergencyContactUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *EmergencyContactUpdate) SetFullName(v string) *EmergencyContactUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableFullName(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *EmergencyContactUpdate) SetPhone(v string) *EmergencyContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillablePhone(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *EmergencyContactUpdate) SetRelationship(v string) *EmergencyContactUpdate {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableRelationship(v *string) *EmergencyContactUpdate {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EmergencyContactUpdate) SetIsPrimary(v bool) *EmergencyContactUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EmergencyContactUpdate) SetNillableIsPrimary(v *bool) *EmergencyContactUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_u *EmergencyContactUpdate) Mutation() *EmergencyContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmergencyContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmergencyContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmergencyContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmergencyContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmergencyContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emergencycontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EmergencyContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emergencycontact.Table, emergencycontact.Columns, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emergencycontact.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(emergencycontact.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(emergencycontact.FieldIsPrimary, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emergencycontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmergencyContactUpdateOne is the builder for updating a single EmergencyContact entity.
type EmergencyContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmergencyContactMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmergencyContactUpdateOne) SetUpdatedAt(v time.Time) *EmergencyContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EmergencyContactUpdateOne) SetUserID(v uuid.UUID) *EmergencyContactUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableUserID(v *uuid.UUID) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *EmergencyContactUpdateOne) SetFullName(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableFullName(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *EmergencyContactUpdateOne) SetPhone(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillablePhone(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetRelationship sets the "relationship" field.
func (_u *EmergencyContactUpdateOne) SetRelationship(v string) *EmergencyContactUpdateOne {
	_u.mutation.SetRelationship(v)
	return _u
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableRelationship(v *string) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetRelationship(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EmergencyContactUpdateOne) SetIsPrimary(v bool) *EmergencyContactUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EmergencyContactUpdateOne) SetNillableIsPrimary(v *bool) *EmergencyContactUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the EmergencyContactMutation object of the builder.
func (_u *EmergencyContactUpdateOne) Mutation() *EmergencyContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmergencyContactUpdate builder.
func (_u *EmergencyContactUpdateOne) Where(ps ...predicate.EmergencyContact) *EmergencyContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmergencyContactUpdateOne) Select(field string, fields ...string) *EmergencyContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmergencyContact entity.
func (_u *EmergencyContactUpdateOne) Save(ctx context.Context) (*EmergencyContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmergencyContactUpdateOne) SaveX(ctx context.Context) *EmergencyContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmergencyContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmergencyContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmergencyContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := emergencycontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *EmergencyContactUpdateOne) sqlSave(ctx context.Context) (_node *EmergencyContact, err error) {
	_spec := sqlgraph.NewUpdateSpec(emergencycontact.Table, emergencycontact.Columns, sqlgraph.NewFieldSpec(emergencycontact.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "EmergencyContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emergencycontact.FieldID)
		for _, f := range fields {
			if !emergencycontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != emergencycontact.FieldID {
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
		_spec.SetField(emergencycontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(emergencycontact.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(emergencycontact.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(emergencycontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relationship(); ok {
		_spec.SetField(emergencycontact.FieldRelationship, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(emergencycontact.FieldIsPrimary, field.TypeBool, value)
	}
	_node = &EmergencyContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emergencycontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
