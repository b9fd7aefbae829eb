// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/auxillium/auxillium_backend/internal/repo/pharmacy"
	"github.com/auxillium/auxillium_backend/internal/repo/predicate"
)

// PharmacyUpdate is the builder for updating Pharmacy entities.
type PharmacyUpdate struct {
	config
	hooks    []Hook
	mutation *PharmacyMutation
}

// Where appends a list predicates to the PharmacyUpdate builder.
func (_u *PharmacyUpdate) Where(ps ...predicate.Pharmacy) *PharmacyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PharmacyUpdate) SetUpdatedAt(v time.Time) *PharmacyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PharmacyUpdate) SetDeletedAt(v time.Time) *PharmacyUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableDeletedAt(v *time.Time) *PharmacyUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PharmacyUpdate) ClearDeletedAt() *PharmacyUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PharmacyUpdate) SetName(v string) *PharmacyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableName(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PharmacyUpdate) SetAddress(v string) *PharmacyUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableAddress(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *PharmacyUpdate) SetCity(v string) *PharmacyUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableCity(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PharmacyUpdate) SetPhone(v string) *PharmacyUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillablePhone(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PharmacyUpdate) ClearPhone() *PharmacyUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRating sets the "rating" field.
func (_u *PharmacyUpdate) SetRating(v float64) *PharmacyUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableRating(v *float64) *PharmacyUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PharmacyUpdate) AddRating(v float64) *PharmacyUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetDistanceKm sets the "distance_km" field.
func (_u *PharmacyUpdate) SetDistanceKm(v float64) *PharmacyUpdate {
	_u.mutation.ResetDistanceKm()
	_u.mutation.SetDistanceKm(v)
	return _u
}

// SetNillableDistanceKm sets the "distance_km" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableDistanceKm(v *float64) *PharmacyUpdate {
	if v != nil {
		_u.SetDistanceKm(*v)
	}
	return _u
}

// AddDistanceKm adds value to the "distance_km" field.
func (_u *PharmacyUpdate) AddDistanceKm(v float64) *PharmacyUpdate {
	_u.mutation.AddDistanceKm(v)
	return _u
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (_u *PharmacyUpdate) SetDeliveryAvailable(v bool) *PharmacyUpdate {
	_u.mutation.SetDeliveryAvailable(v)
	return _u
}

// SetNillableDeliveryAvailable sets the "delivery_available" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableDeliveryAvailable(v *bool) *PharmacyUpdate {
	if v != nil {
		_u.SetDeliveryAvailable(*v)
	}
	return _u
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (_u *PharmacyUpdate) SetDeliveryMinutes(v int) *PharmacyUpdate {
	_u.mutation.ResetDeliveryMinutes()
	_u.mutation.SetDeliveryMinutes(v)
	return _u
}

// SetNillableDeliveryMinutes sets the "delivery_minutes" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableDeliveryMinutes(v *int) *PharmacyUpdate {
	if v != nil {
		_u.SetDeliveryMinutes(*v)
	}
	return _u
}

// AddDeliveryMinutes adds value to the "delivery_minutes" field.
func (_u *PharmacyUpdate) AddDeliveryMinutes(v int) *PharmacyUpdate {
	_u.mutation.AddDeliveryMinutes(v)
	return _u
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (_u *PharmacyUpdate) SetInsurerNetworks(v []string) *PharmacyUpdate {
	_u.mutation.SetInsurerNetworks(v)
	return _u
}

// AppendInsurerNetworks appends value to the "insurer_networks" field.
func (_u *PharmacyUpdate) AppendInsurerNetworks(v []string) *PharmacyUpdate {
	_u.mutation.AppendInsurerNetworks(v)
	return _u
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (_u *PharmacyUpdate) ClearInsurerNetworks() *PharmacyUpdate {
	_u.mutation.ClearInsurerNetworks()
	return _u
}

// SetOpensAt sets the "opens_at" field.
func (_u *PharmacyUpdate) SetOpensAt(v string) *PharmacyUpdate {
	_u.mutation.SetOpensAt(v)
	return _u
}

// SetNillableOpensAt sets the "opens_at" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableOpensAt(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetOpensAt(*v)
	}
	return _u
}

// SetClosesAt sets the "closes_at" field.
func (_u *PharmacyUpdate) SetClosesAt(v string) *PharmacyUpdate {
	_u.mutation.SetClosesAt(v)
	return _u
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableClosesAt(v *string) *PharmacyUpdate {
	if v != nil {
		_u.SetClosesAt(*v)
	}
	return _u
}

// SetOpen24h sets the "open_24h" field.
func (_u *PharmacyUpdate) SetOpen24h(v bool) *PharmacyUpdate {
	_u.mutation.SetOpen24h(v)
	return _u
}

// SetNillableOpen24h sets the "open_24h" field if the given value is not nil.
func (_u *PharmacyUpdate) SetNillableOpen24h(v *bool) *PharmacyUpdate {
	if v != nil {
		_u.SetOpen24h(*v)
	}
	return _u
}

// Mutation returns the PharmacyMutation object of the builder.
func (_u *PharmacyUpdate) Mutation() *PharmacyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PharmacyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmacyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PharmacyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmacyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PharmacyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pharmacy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PharmacyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pharmacy.Table, pharmacy.Columns, sqlgraph.NewFieldSpec(pharmacy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pharmacy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pharmacy.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pharmacy.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pharmacy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(pharmacy.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(pharmacy.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(pharmacy.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(pharmacy.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(pharmacy.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(pharmacy.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceKm(); ok {
		_spec.SetField(pharmacy.FieldDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceKm(); ok {
		_spec.AddField(pharmacy.FieldDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeliveryAvailable(); ok {
		_spec.SetField(pharmacy.FieldDeliveryAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeliveryMinutes(); ok {
		_spec.SetField(pharmacy.FieldDeliveryMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryMinutes(); ok {
		_spec.AddField(pharmacy.FieldDeliveryMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InsurerNetworks(); ok {
		_spec.SetField(pharmacy.FieldInsurerNetworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsurerNetworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pharmacy.FieldInsurerNetworks, value)
		})
	}
	if _u.mutation.InsurerNetworksCleared() {
		_spec.ClearField(pharmacy.FieldInsurerNetworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpensAt(); ok {
		_spec.SetField(pharmacy.FieldOpensAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClosesAt(); ok {
		_spec.SetField(pharmacy.FieldClosesAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Open24h(); ok {
		_spec.SetField(pharmacy.FieldOpen24h, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PharmacyUpdateOne is the builder for updating a single Pharmacy entity.
type PharmacyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PharmacyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PharmacyUpdateOne) SetUpdatedAt(v time.Time) *PharmacyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PharmacyUpdateOne) SetDeletedAt(v time.Time) *PharmacyUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableDeletedAt(v *time.Time) *PharmacyUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PharmacyUpdateOne) ClearDeletedAt() *PharmacyUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *PharmacyUpdateOne) SetName(v string) *PharmacyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableName(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PharmacyUpdateOne) SetAddress(v string) *PharmacyUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableAddress(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *PharmacyUpdateOne) SetCity(v string) *PharmacyUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableCity(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PharmacyUpdateOne) SetPhone(v string) *PharmacyUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillablePhone(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PharmacyUpdateOne) ClearPhone() *PharmacyUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRating sets the "rating" field.
func (_u *PharmacyUpdateOne) SetRating(v float64) *PharmacyUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableRating(v *float64) *PharmacyUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PharmacyUpdateOne) AddRating(v float64) *PharmacyUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetDistanceKm sets the "distance_km" field.
func (_u *PharmacyUpdateOne) SetDistanceKm(v float64) *PharmacyUpdateOne {
	_u.mutation.ResetDistanceKm()
	_u.mutation.SetDistanceKm(v)
	return _u
}

// SetNillableDistanceKm sets the "distance_km" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableDistanceKm(v *float64) *PharmacyUpdateOne {
	if v != nil {
		_u.SetDistanceKm(*v)
	}
	return _u
}

// AddDistanceKm adds value to the "distance_km" field.
func (_u *PharmacyUpdateOne) AddDistanceKm(v float64) *PharmacyUpdateOne {
	_u.mutation.AddDistanceKm(v)
	return _u
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (_u *PharmacyUpdateOne) SetDeliveryAvailable(v bool) *PharmacyUpdateOne {
	_u.mutation.SetDeliveryAvailable(v)
	return _u
}

// SetNillableDeliveryAvailable sets the "delivery_available" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableDeliveryAvailable(v *bool) *PharmacyUpdateOne {
	if v != nil {
		_u.SetDeliveryAvailable(*v)
	}
	return _u
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (_u *PharmacyUpdateOne) SetDeliveryMinutes(v int) *PharmacyUpdateOne {
	_u.mutation.ResetDeliveryMinutes()
	_u.mutation.SetDeliveryMinutes(v)
	return _u
}

// SetNillableDeliveryMinutes sets the "delivery_minutes" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableDeliveryMinutes(v *int) *PharmacyUpdateOne {
	if v != nil {
		_u.SetDeliveryMinutes(*v)
	}
	return _u
}

// AddDeliveryMinutes adds value to the "delivery_minutes" field.
func (_u *PharmacyUpdateOne) AddDeliveryMinutes(v int) *PharmacyUpdateOne {
	_u.mutation.AddDeliveryMinutes(v)
	return _u
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (_u *PharmacyUpdateOne) SetInsurerNetworks(v []string) *PharmacyUpdateOne {
	_u.mutation.SetInsurerNetworks(v)
	return _u
}

// AppendInsurerNetworks appends value to the "insurer_networks" field.
func (_u *PharmacyUpdateOne) AppendInsurerNetworks(v []string) *PharmacyUpdateOne {
	_u.mutation.AppendInsurerNetworks(v)
	return _u
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (_u *PharmacyUpdateOne) ClearInsurerNetworks() *PharmacyUpdateOne {
	_u.mutation.ClearInsurerNetworks()
	return _u
}

// SetOpensAt sets the "opens_at" field.
func (_u *PharmacyUpdateOne) SetOpensAt(v string) *PharmacyUpdateOne {
	_u.mutation.SetOpensAt(v)
	return _u
}

// SetNillableOpensAt sets the "opens_at" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableOpensAt(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetOpensAt(*v)
	}
	return _u
}

// SetClosesAt sets the "closes_at" field.
func (_u *PharmacyUpdateOne) SetClosesAt(v string) *PharmacyUpdateOne {
	_u.mutation.SetClosesAt(v)
	return _u
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableClosesAt(v *string) *PharmacyUpdateOne {
	if v != nil {
		_u.SetClosesAt(*v)
	}
	return _u
}

// SetOpen24h sets the "open_24h" field.
func (_u *PharmacyUpdateOne) SetOpen24h(v bool) *PharmacyUpdateOne {
	_u.mutation.SetOpen24h(v)
	return _u
}

// SetNillableOpen24h sets the "open_24h" field if the given value is not nil.
func (_u *PharmacyUpdateOne) SetNillableOpen24h(v *bool) *PharmacyUpdateOne {
	if v != nil {
		_u.SetOpen24h(*v)
	}
	return _u
}

// Mutation returns the PharmacyMutation object of the builder.
func (_u *PharmacyUpdateOne) Mutation() *PharmacyMutation {
	return _u.mutation
}

// Where appends a list predicates to the PharmacyUpdate builder.
func (_u *PharmacyUpdateOne) Where(ps ...predicate.Pharmacy) *PharmacyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PharmacyUpdateOne) Select(field string, fields ...string) *PharmacyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pharmacy entity.
func (_u *PharmacyUpdateOne) Save(ctx context.Context) (*Pharmacy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PharmacyUpdateOne) SaveX(ctx context.Context) *Pharmacy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PharmacyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PharmacyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PharmacyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pharmacy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PharmacyUpdateOne) sqlSave(ctx context.Context) (_node *Pharmacy, err error) {
	_spec := sqlgraph.NewUpdateSpec(pharmacy.Table, pharmacy.Columns, sqlgraph.NewFieldSpec(pharmacy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Pharmacy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pharmacy.FieldID)
		for _, f := range fields {
			if !pharmacy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != pharmacy.FieldID {
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
		_spec.SetField(pharmacy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pharmacy.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pharmacy.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pharmacy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(pharmacy.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(pharmacy.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(pharmacy.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(pharmacy.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(pharmacy.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(pharmacy.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceKm(); ok {
		_spec.SetField(pharmacy.FieldDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceKm(); ok {
		_spec.AddField(pharmacy.FieldDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DeliveryAvailable(); ok {
		_spec.SetField(pharmacy.FieldDeliveryAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeliveryMinutes(); ok {
		_spec.SetField(pharmacy.FieldDeliveryMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryMinutes(); ok {
		_spec.AddField(pharmacy.FieldDeliveryMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InsurerNetworks(); ok {
		_spec.SetField(pharmacy.FieldInsurerNetworks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsurerNetworks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pharmacy.FieldInsurerNetworks, value)
		})
	}
	if _u.mutation.InsurerNetworksCleared() {
		_spec.ClearField(pharmacy.FieldInsurerNetworks, field.TypeJSON)
	}
	if value, ok := _u.mutation.OpensAt(); ok {
		_spec.SetField(pharmacy.FieldOpensAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClosesAt(); ok {
		_spec.SetField(pharmacy.FieldClosesAt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Open24h(); ok {
		_spec.SetField(pharmacy.FieldOpen24h, field.TypeBool, value)
	}
	_node = &Pharmacy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pharmacy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
