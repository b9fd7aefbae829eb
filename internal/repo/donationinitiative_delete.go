// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/donationinitiative"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
)

// DonationInitiativeDelete is the builder for deleting a DonationInitiative entity.
type DonationInitiativeDelete struct {
	config
	hooks    []Hook
	mutation *DonationInitiativeMutation
}

// Where appends a list predicates to the DonationInitiativeDelete builder.
func (_d *DonationInitiativeDelete) Where(ps ...predicate.DonationInitiative) *DonationInitiativeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DonationInitiativeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DonationInitiativeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DonationInitiativeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(donationinitiative.Table, sqlgraph.NewFieldSpec(donationinitiative.FieldID, field.TypeUUID))
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

// DonationInitiativeDeleteOne is the builder for deleting a single DonationInitiative entity.
type DonationInitiativeDeleteOne struct {
	_d *DonationInitiativeDelete
}

// Where appends a list predicates to the DonationInitiativeDelete builder.
func (_d *DonationInitiativeDeleteOne) Where(ps ...predicate.DonationInitiative) *DonationInitiativeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DonationInitiativeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{donationinitiative.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DonationInitiativeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
