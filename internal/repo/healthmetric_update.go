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
	"github.com/auxillium/auxillium_backend/internal/repo/healthmetric"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// HealthMetricUpdate is the builder for updating HealthMetric entities.
type HealthMetricUpdate struct {
	config
	hooks    []Hook
	mutation *HealthMetricMutation
}

// Where appends a list predicates to the HealthMetricUpdate builder.
func (_u *HealthMetricUpdate) Where(ps ...predicate.HealthMetric) *HealthMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HealthMetricUpdate) SetUserID(v uuid.UUID) *HealthMetricUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableUserID(v *uuid.UUID) *HealthMetricUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *HealthMetricUpdate) SetMemberID(v uuid.UUID) *HealthMetricUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableMemberID(v *uuid.UUID) *HealthMetricUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *HealthMetricUpdate) SetMetricType(v healthmetric.MetricType) *HealthMetricUpdate {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableMetricType(v *healthmetric.MetricType) *HealthMetricUpdate {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *HealthMetricUpdate) SetValue(v float64) *HealthMetricUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableValue(v *float64) *HealthMetricUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *HealthMetricUpdate) AddValue(v float64) *HealthMetricUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetValueSecondary sets the "value_secondary" field.
func (_u *HealthMetricUpdate) SetValueSecondary(v float64) *HealthMetricUpdate {
	_u.mutation.ResetValueSecondary()
	_u.mutation.SetValueSecondary(v)
	return _u
}

// SetNillableValueSecondary sets the "value_secondary" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableValueSecondary(v *float64) *HealthMetricUpdate {
	if v != nil {
		_u.SetValueSecondary(*v)
	}
	return _u
}

// AddValueSecondary adds value to the "value_secondary" field.
func (_u *HealthMetricUpdate) AddValueSecondary(v float64) *HealthMetricUpdate {
	_u.mutation.AddValueSecondary(v)
	return _u
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (_u *HealthMetricUpdate) ClearValueSecondary() *HealthMetricUpdate {
	_u.mutation.ClearValueSecondary()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *HealthMetricUpdate) SetUnit(v string) *HealthMetricUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableUnit(v *string) *HealthMetricUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *HealthMetricUpdate) SetRecordedAt(v time.Time) *HealthMetricUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableRecordedAt(v *time.Time) *HealthMetricUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *HealthMetricUpdate) SetNote(v string) *HealthMetricUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *HealthMetricUpdate) SetNillableNote(v *string) *HealthMetricUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *HealthMetricUpdate) ClearNote() *HealthMetricUpdate {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the HealthMetricMutation object of the builder.
func (_u *HealthMetricUpdate) Mutation() *HealthMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthMetricUpdate) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := healthmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`repo: validator failed for field "HealthMetric.metric_type": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthmetric.Table, healthmetric.Columns, sqlgraph.NewFieldSpec(healthmetric.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(healthmetric.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(healthmetric.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(healthmetric.FieldMetricType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(healthmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(healthmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValueSecondary(); ok {
		_spec.SetField(healthmetric.FieldValueSecondary, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueSecondary(); ok {
		_spec.AddField(healthmetric.FieldValueSecondary, field.TypeFloat64, value)
	}
	if _u.mutation.ValueSecondaryCleared() {
		_spec.ClearField(healthmetric.FieldValueSecondary, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(healthmetric.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(healthmetric.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(healthmetric.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(healthmetric.FieldNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthMetricUpdateOne is the builder for updating a single HealthMetric entity.
type HealthMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthMetricMutation
}

// SetUserID sets the "user_id" field.
func (_u *HealthMetricUpdateOne) SetUserID(v uuid.UUID) *HealthMetricUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableUserID(v *uuid.UUID) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *HealthMetricUpdateOne) SetMemberID(v uuid.UUID) *HealthMetricUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableMemberID(v *uuid.UUID) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *HealthMetricUpdateOne) SetMetricType(v healthmetric.MetricType) *HealthMetricUpdateOne {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableMetricType(v *healthmetric.MetricType) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *HealthMetricUpdateOne) SetValue(v float64) *HealthMetricUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableValue(v *float64) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *HealthMetricUpdateOne) AddValue(v float64) *HealthMetricUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetValueSecondary sets the "value_secondary" field.
func (_u *HealthMetricUpdateOne) SetValueSecondary(v float64) *HealthMetricUpdateOne {
	_u.mutation.ResetValueSecondary()
	_u.mutation.SetValueSecondary(v)
	return _u
}

// SetNillableValueSecondary sets the "value_secondary" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableValueSecondary(v *float64) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetValueSecondary(*v)
	}
	return _u
}

// AddValueSecondary adds value to the "value_secondary" field.
func (_u *HealthMetricUpdateOne) AddValueSecondary(v float64) *HealthMetricUpdateOne {
	_u.mutation.AddValueSecondary(v)
	return _u
}

// ClearValueSecondary clears the value of the "value_secondary" field.
func (_u *HealthMetricUpdateOne) ClearValueSecondary() *HealthMetricUpdateOne {
	_u.mutation.ClearValueSecondary()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *HealthMetricUpdateOne) SetUnit(v string) *HealthMetricUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableUnit(v *string) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *HealthMetricUpdateOne) SetRecordedAt(v time.Time) *HealthMetricUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableRecordedAt(v *time.Time) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *HealthMetricUpdateOne) SetNote(v string) *HealthMetricUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *HealthMetricUpdateOne) SetNillableNote(v *string) *HealthMetricUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *HealthMetricUpdateOne) ClearNote() *HealthMetricUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// Mutation returns the HealthMetricMutation object of the builder.
func (_u *HealthMetricUpdateOne) Mutation() *HealthMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the HealthMetricUpdate builder.
func (_u *HealthMetricUpdateOne) Where(ps ...predicate.HealthMetric) *HealthMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthMetricUpdateOne) Select(field string, fields ...string) *HealthMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthMetric entity.
func (_u *HealthMetricUpdateOne) Save(ctx context.Context) (*HealthMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthMetricUpdateOne) SaveX(ctx context.Context) *HealthMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthMetricUpdateOne) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := healthmetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`repo: validator failed for field "HealthMetric.metric_type": %w`, err)}
		}
	}
	return nil
}

func (_u *HealthMetricUpdateOne) sqlSave(ctx context.Context) (_node *HealthMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthmetric.Table, healthmetric.Columns, sqlgraph.NewFieldSpec(healthmetric.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HealthMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthmetric.FieldID)
		for _, f := range fields {
			if !healthmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != healthmetric.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(healthmetric.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(healthmetric.FieldMemberID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(healthmetric.FieldMetricType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(healthmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(healthmetric.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ValueSecondary(); ok {
		_spec.SetField(healthmetric.FieldValueSecondary, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValueSecondary(); ok {
		_spec.AddField(healthmetric.FieldValueSecondary, field.TypeFloat64, value)
	}
	if _u.mutation.ValueSecondaryCleared() {
		_spec.ClearField(healthmetric.FieldValueSecondary, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(healthmetric.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(healthmetric.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(healthmetric.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(healthmetric.FieldNote, field.TypeString)
	}
	_node = &HealthMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
