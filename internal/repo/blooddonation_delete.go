// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/blooddonation"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
)

// BloodDonationDelete is the builder for deleting a BloodDonation entity.
type BloodDonationDelete struct {
	config
	hooks    []Hook
	mutation *BloodDonationMutation
}

// Where appends a list predicates to the BloodDonationDelete builder.
func (_d *BloodDonationDelete) Where(ps ...predicate.BloodDonation) *BloodDonationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BloodDonationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BloodDonationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BloodDonationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blooddonation.Table, sqlgraph.NewFieldSpec(blooddonation.FieldID, field.TypeUUID))
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

// BloodDonationDeleteOne is the builder for deleting a single BloodDonation entity.
type BloodDonationDeleteOne struct {
	_d *BloodDonationDelete
}

// Where appends a list predicates to the BloodDonationDelete builder.
func (_d *BloodDonationDeleteOne) Where(ps ...predicate.BloodDonation) *BloodDonationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BloodDonationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blooddonation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BloodDonationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
