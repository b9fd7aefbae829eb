// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
	"github.com/auxillium/auxillium_backend/internal/repo/workshopenrollment"
)

// WorkshopEnrollmentDelete is the builder for deleting a WorkshopEnrollment entity.
type WorkshopEnrollmentDelete struct {
	config
	hooks    []Hook
	mutation *WorkshopEnrollmentMutation
}

// Where appends a list predicates to the WorkshopEnrollmentDelete builder.
func (_d *WorkshopEnrollmentDelete) Where(ps ...predicate.WorkshopEnrollment) *WorkshopEnrollmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkshopEnrollmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkshopEnrollmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkshopEnrollmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workshopenrollment.Table, sqlgraph.NewFieldSpec(workshopenrollment.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorkshopEnrollmentDeleteOne is the builder for deleting a single WorkshopEnrollment entity.
type WorkshopEnrollmentDeleteOne struct {
	_d *WorkshopEnrollmentDelete
}

// Where appends a list predicates to the WorkshopEnrollmentDelete builder.
func (_d *WorkshopEnrollmentDeleteOne) Where(ps ...predicate.WorkshopEnrollment) *WorkshopEnrollmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkshopEnrollmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workshopenrollment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkshopEnrollmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
