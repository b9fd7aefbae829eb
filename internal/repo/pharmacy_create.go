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
	"github.com/auxillium/auxillium_backend/internal/repo/pharmacy"
	"github.com/google/uuid"
)

// PharmacyCreate is the builder for creating a Pharmacy entity.
type PharmacyCreate struct {
	config
	mutation *PharmacyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PharmacyCreate) SetCreatedAt(v time.Time) *PharmacyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableCreatedAt(v *time.Time) *PharmacyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PharmacyCreate) SetUpdatedAt(v time.Time) *PharmacyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableUpdatedAt(v *time.Time) *PharmacyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PharmacyCreate) SetDeletedAt(v time.Time) *PharmacyCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableDeletedAt(v *time.Time) *PharmacyCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PharmacyCreate) SetName(v string) *PharmacyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *PharmacyCreate) SetAddress(v string) *PharmacyCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableAddress(v *string) *PharmacyCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *PharmacyCreate) SetCity(v string) *PharmacyCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableCity(v *string) *PharmacyCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PharmacyCreate) SetPhone(v string) *PharmacyCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillablePhone(v *string) *PharmacyCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *PharmacyCreate) SetRating(v float64) *PharmacyCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableRating(v *float64) *PharmacyCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetDistanceKm sets the "distance_km" field.
func (_c *PharmacyCreate) SetDistanceKm(v float64) *PharmacyCreate {
	_c.mutation.SetDistanceKm(v)
	return _c
}

// SetNillableDistanceKm sets the "distance_km" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableDistanceKm(v *float64) *PharmacyCreate {
	if v != nil {
		_c.SetDistanceKm(*v)
	}
	return _c
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (_c *PharmacyCreate) SetDeliveryAvailable(v bool) *PharmacyCreate {
	_c.mutation.SetDeliveryAvailable(v)
	return _c
}

// SetNillableDeliveryAvailable sets the "delivery_available" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableDeliveryAvailable(v *bool) *PharmacyCreate {
	if v != nil {
		_c.SetDeliveryAvailable(*v)
	}
	return _c
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (_c *PharmacyCreate) SetDeliveryMinutes(v int) *PharmacyCreate {
	_c.mutation.SetDeliveryMinutes(v)
	return _c
}

// SetNillableDeliveryMinutes sets the "delivery_minutes" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableDeliveryMinutes(v *int) *PharmacyCreate {
	if v != nil {
		_c.SetDeliveryMinutes(*v)
	}
	return _c
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (_c *PharmacyCreate) SetInsurerNetworks(v []string) *PharmacyCreate {
	_c.mutation.SetInsurerNetworks(v)
	return _c
}

// SetOpensAt sets the "opens_at" field.
func (_c *PharmacyCreate) SetOpensAt(v string) *PharmacyCreate {
	_c.mutation.SetOpensAt(v)
	return _c
}

// SetNillableOpensAt sets the "opens_at" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableOpensAt(v *string) *PharmacyCreate {
	if v != nil {
		_c.SetOpensAt(*v)
	}
	return _c
}

// SetClosesAt sets the "closes_at" field.
func (_c *PharmacyCreate) SetClosesAt(v string) *PharmacyCreate {
	_c.mutation.SetClosesAt(v)
	return _c
}

// SetNillableClosesAt sets the "closes_at" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableClosesAt(v *string) *PharmacyCreate {
	if v != nil {
		_c.SetClosesAt(*v)
	}
	return _c
}

// SetOpen24h sets the "open_24h" field.
func (_c *PharmacyCreate) SetOpen24h(v bool) *PharmacyCreate {
	_c.mutation.SetOpen24h(v)
	return _c
}

// SetNillableOpen24h sets the "open_24h" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableOpen24h(v *bool) *PharmacyCreate {
	if v != nil {
		_c.SetOpen24h(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PharmacyCreate) SetID(v uuid.UUID) *PharmacyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PharmacyCreate) SetNillableID(v *uuid.UUID) *PharmacyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PharmacyMutation object of the builder.
func (_c *PharmacyCreate) Mutation() *PharmacyMutation {
	return _c.mutation
}

// Save creates the Pharmacy in the database.
func (_c *PharmacyCreate) Save(ctx context.Context) (*Pharmacy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PharmacyCreate) SaveX(ctx context.Context) *Pharmacy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmacyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmacyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PharmacyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pharmacy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pharmacy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Address(); !ok {
		v := pharmacy.DefaultAddress
		_c.mutation.SetAddress(v)
	}
	if _, ok := _c.mutation.City(); !ok {
		v := pharmacy.DefaultCity
		_c.mutation.SetCity(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := pharmacy.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.DistanceKm(); !ok {
		v := pharmacy.DefaultDistanceKm
		_c.mutation.SetDistanceKm(v)
	}
	if _, ok := _c.mutation.DeliveryAvailable(); !ok {
		v := pharmacy.DefaultDeliveryAvailable
		_c.mutation.SetDeliveryAvailable(v)
	}
	if _, ok := _c.mutation.DeliveryMinutes(); !ok {
		v := pharmacy.DefaultDeliveryMinutes
		_c.mutation.SetDeliveryMinutes(v)
	}
	if _, ok := _c.mutation.OpensAt(); !ok {
		v := pharmacy.DefaultOpensAt
		_c.mutation.SetOpensAt(v)
	}
	if _, ok := _c.mutation.ClosesAt(); !ok {
		v := pharmacy.DefaultClosesAt
		_c.mutation.SetClosesAt(v)
	}
	if _, ok := _c.mutation.Open24h(); !ok {
		v := pharmacy.DefaultOpen24h
		_c.mutation.SetOpen24h(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pharmacy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PharmacyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Pharmacy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Pharmacy.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Pharmacy.name"`)}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`repo: missing required field "Pharmacy.address"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`repo: missing required field "Pharmacy.city"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "Pharmacy.rating"`)}
	}
	if _, ok := _c.mutation.DistanceKm(); !ok {
		return &ValidationError{Name: "distance_km", err: errors.New(`repo: missing required field "Pharmacy.distance_km"`)}
	}
	if _, ok := _c.mutation.DeliveryAvailable(); !ok {
		return &ValidationError{Name: "delivery_available", err: errors.New(`repo: missing required field "Pharmacy.delivery_available"`)}
	}
	if _, ok := _c.mutation.DeliveryMinutes(); !ok {
		return &ValidationError{Name: "delivery_minutes", err: errors.New(`repo: missing required field "Pharmacy.delivery_minutes"`)}
	}
	if _, ok := _c.mutation.OpensAt(); !ok {
		return &ValidationError{Name: "opens_at", err: errors.New(`repo: missing required field "Pharmacy.opens_at"`)}
	}
	if _, ok := _c.mutation.ClosesAt(); !ok {
		return &ValidationError{Name: "closes_at", err: errors.New(`repo: missing required field "Pharmacy.closes_at"`)}
	}
	if _, ok := _c.mutation.Open24h(); !ok {
		return &ValidationError{Name: "open_24h", err: errors.New(`repo: missing required field "Pharmacy.open_24h"`)}
	}
	return nil
}

func (_c *PharmacyCreate) sqlSave(ctx context.Context) (*Pharmacy, error) {
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

func (_c *PharmacyCreate) createSpec() (*Pharmacy, *sqlgraph.CreateSpec) {
	var (
		_node = &Pharmacy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pharmacy.Table, sqlgraph.NewFieldSpec(pharmacy.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pharmacy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pharmacy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(pharmacy.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pharmacy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(pharmacy.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(pharmacy.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(pharmacy.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(pharmacy.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.DistanceKm(); ok {
		_spec.SetField(pharmacy.FieldDistanceKm, field.TypeFloat64, value)
		_node.DistanceKm = value
	}
	if value, ok := _c.mutation.DeliveryAvailable(); ok {
		_spec.SetField(pharmacy.FieldDeliveryAvailable, field.TypeBool, value)
		_node.DeliveryAvailable = value
	}
	if value, ok := _c.mutation.DeliveryMinutes(); ok {
		_spec.SetField(pharmacy.FieldDeliveryMinutes, field.TypeInt, value)
		_node.DeliveryMinutes = value
	}
	if value, ok := _c.mutation.InsurerNetworks(); ok {
		_spec.SetField(pharmacy.FieldInsurerNetworks, field.TypeJSON, value)
		_node.InsurerNetworks = value
	}
	if value, ok := _c.mutation.OpensAt(); ok {
		_spec.SetField(pharmacy.FieldOpensAt, field.TypeString, value)
		_node.OpensAt = value
	}
	if value, ok := _c.mutation.ClosesAt(); ok {
		_spec.SetField(pharmacy.FieldClosesAt, field.TypeString, value)
		_node.ClosesAt = value
	}
	if value, ok := _c.mutation.Open24h(); ok {
		_spec.SetField(pharmacy.FieldOpen24h, field.TypeBool, value)
		_node.Open24h = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pharmacy.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PharmacyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PharmacyCreate) OnConflict(opts ...sql.ConflictOption) *PharmacyUpsertOne {
	_c.conflict = opts
	return &PharmacyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PharmacyCreate) OnConflictColumns(columns ...string) *PharmacyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PharmacyUpsertOne{
		create: _c,
	}
}

type (
	// PharmacyUpsertOne is the builder for "upsert"-ing
	//  one Pharmacy node.
	PharmacyUpsertOne struct {
		create *PharmacyCreate
	}

	// PharmacyUpsert is the "OnConflict" setter.
	PharmacyUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacyUpsert) SetUpdatedAt(v time.Time) *PharmacyUpsert {
	u.Set(pharmacy.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateUpdatedAt() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PharmacyUpsert) SetDeletedAt(v time.Time) *PharmacyUpsert {
	u.Set(pharmacy.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateDeletedAt() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PharmacyUpsert) ClearDeletedAt() *PharmacyUpsert {
	u.SetNull(pharmacy.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *PharmacyUpsert) SetName(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateName() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldName)
	return u
}

// SetAddress sets the "address" field.
func (u *PharmacyUpsert) SetAddress(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateAddress() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *PharmacyUpsert) SetCity(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateCity() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldCity)
	return u
}

// SetPhone sets the "phone" field.
func (u *PharmacyUpsert) SetPhone(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdatePhone() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PharmacyUpsert) ClearPhone() *PharmacyUpsert {
	u.SetNull(pharmacy.FieldPhone)
	return u
}

// SetRating sets the "rating" field.
func (u *PharmacyUpsert) SetRating(v float64) *PharmacyUpsert {
	u.Set(pharmacy.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateRating() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *PharmacyUpsert) AddRating(v float64) *PharmacyUpsert {
	u.Add(pharmacy.FieldRating, v)
	return u
}

// SetDistanceKm sets the "distance_km" field.
func (u *PharmacyUpsert) SetDistanceKm(v float64) *PharmacyUpsert {
	u.Set(pharmacy.FieldDistanceKm, v)
	return u
}

// UpdateDistanceKm sets the "distance_km" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateDistanceKm() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldDistanceKm)
	return u
}

// AddDistanceKm adds v to the "distance_km" field.
func (u *PharmacyUpsert) AddDistanceKm(v float64) *PharmacyUpsert {
	u.Add(pharmacy.FieldDistanceKm, v)
	return u
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (u *PharmacyUpsert) SetDeliveryAvailable(v bool) *PharmacyUpsert {
	u.Set(pharmacy.FieldDeliveryAvailable, v)
	return u
}

// UpdateDeliveryAvailable sets the "delivery_available" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateDeliveryAvailable() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldDeliveryAvailable)
	return u
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (u *PharmacyUpsert) SetDeliveryMinutes(v int) *PharmacyUpsert {
	u.Set(pharmacy.FieldDeliveryMinutes, v)
	return u
}

// UpdateDeliveryMinutes sets the "delivery_minutes" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateDeliveryMinutes() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldDeliveryMinutes)
	return u
}

// AddDeliveryMinutes adds v to the "delivery_minutes" field.
func (u *PharmacyUpsert) AddDeliveryMinutes(v int) *PharmacyUpsert {
	u.Add(pharmacy.FieldDeliveryMinutes, v)
	return u
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (u *PharmacyUpsert) SetInsurerNetworks(v []string) *PharmacyUpsert {
	u.Set(pharmacy.FieldInsurerNetworks, v)
	return u
}

// UpdateInsurerNetworks sets the "insurer_networks" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateInsurerNetworks() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldInsurerNetworks)
	return u
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (u *PharmacyUpsert) ClearInsurerNetworks() *PharmacyUpsert {
	u.SetNull(pharmacy.FieldInsurerNetworks)
	return u
}

// SetOpensAt sets the "opens_at" field.
func (u *PharmacyUpsert) SetOpensAt(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldOpensAt, v)
	return u
}

// UpdateOpensAt sets the "opens_at" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateOpensAt() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldOpensAt)
	return u
}

// SetClosesAt sets the "closes_at" field.
func (u *PharmacyUpsert) SetClosesAt(v string) *PharmacyUpsert {
	u.Set(pharmacy.FieldClosesAt, v)
	return u
}

// UpdateClosesAt sets the "closes_at" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateClosesAt() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldClosesAt)
	return u
}

// SetOpen24h sets the "open_24h" field.
func (u *PharmacyUpsert) SetOpen24h(v bool) *PharmacyUpsert {
	u.Set(pharmacy.FieldOpen24h, v)
	return u
}

// UpdateOpen24h sets the "open_24h" field to the value that was provided on create.
func (u *PharmacyUpsert) UpdateOpen24h() *PharmacyUpsert {
	u.SetExcluded(pharmacy.FieldOpen24h)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pharmacy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PharmacyUpsertOne) UpdateNewValues() *PharmacyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pharmacy.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pharmacy.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PharmacyUpsertOne) Ignore() *PharmacyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PharmacyUpsertOne) DoNothing() *PharmacyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PharmacyCreate.OnConflict
// documentation for more info.
func (u *PharmacyUpsertOne) Update(set func(*PharmacyUpsert)) *PharmacyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PharmacyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacyUpsertOne) SetUpdatedAt(v time.Time) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateUpdatedAt() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PharmacyUpsertOne) SetDeletedAt(v time.Time) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateDeletedAt() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PharmacyUpsertOne) ClearDeletedAt() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *PharmacyUpsertOne) SetName(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateName() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *PharmacyUpsertOne) SetAddress(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateAddress() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateAddress()
	})
}

// SetCity sets the "city" field.
func (u *PharmacyUpsertOne) SetCity(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateCity() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateCity()
	})
}

// SetPhone sets the "phone" field.
func (u *PharmacyUpsertOne) SetPhone(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdatePhone() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PharmacyUpsertOne) ClearPhone() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearPhone()
	})
}

// SetRating sets the "rating" field.
func (u *PharmacyUpsertOne) SetRating(v float64) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *PharmacyUpsertOne) AddRating(v float64) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateRating() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateRating()
	})
}

// SetDistanceKm sets the "distance_km" field.
func (u *PharmacyUpsertOne) SetDistanceKm(v float64) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDistanceKm(v)
	})
}

// AddDistanceKm adds v to the "distance_km" field.
func (u *PharmacyUpsertOne) AddDistanceKm(v float64) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddDistanceKm(v)
	})
}

// UpdateDistanceKm sets the "distance_km" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateDistanceKm() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDistanceKm()
	})
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (u *PharmacyUpsertOne) SetDeliveryAvailable(v bool) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeliveryAvailable(v)
	})
}

// UpdateDeliveryAvailable sets the "delivery_available" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateDeliveryAvailable() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeliveryAvailable()
	})
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (u *PharmacyUpsertOne) SetDeliveryMinutes(v int) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeliveryMinutes(v)
	})
}

// AddDeliveryMinutes adds v to the "delivery_minutes" field.
func (u *PharmacyUpsertOne) AddDeliveryMinutes(v int) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddDeliveryMinutes(v)
	})
}

// UpdateDeliveryMinutes sets the "delivery_minutes" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateDeliveryMinutes() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeliveryMinutes()
	})
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (u *PharmacyUpsertOne) SetInsurerNetworks(v []string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetInsurerNetworks(v)
	})
}

// UpdateInsurerNetworks sets the "insurer_networks" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateInsurerNetworks() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateInsurerNetworks()
	})
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (u *PharmacyUpsertOne) ClearInsurerNetworks() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearInsurerNetworks()
	})
}

// SetOpensAt sets the "opens_at" field.
func (u *PharmacyUpsertOne) SetOpensAt(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetOpensAt(v)
	})
}

// UpdateOpensAt sets the "opens_at" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateOpensAt() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateOpensAt()
	})
}

// SetClosesAt sets the "closes_at" field.
func (u *PharmacyUpsertOne) SetClosesAt(v string) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetClosesAt(v)
	})
}

// UpdateClosesAt sets the "closes_at" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateClosesAt() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateClosesAt()
	})
}

// SetOpen24h sets the "open_24h" field.
func (u *PharmacyUpsertOne) SetOpen24h(v bool) *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetOpen24h(v)
	})
}

// UpdateOpen24h sets the "open_24h" field to the value that was provided on create.
func (u *PharmacyUpsertOne) UpdateOpen24h() *PharmacyUpsertOne {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateOpen24h()
	})
}

// Exec executes the query.
func (u *PharmacyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PharmacyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PharmacyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PharmacyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PharmacyUpsertOne.ID is not supported by MySQL driver. Use PharmacyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PharmacyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PharmacyCreateBulk is the builder for creating many Pharmacy entities in bulk.
type PharmacyCreateBulk struct {
	config
	err      error
	builders []*PharmacyCreate
	conflict []sql.ConflictOption
}

// Save creates the Pharmacy entities in the database.
func (_c *PharmacyCreateBulk) Save(ctx context.Context) ([]*Pharmacy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pharmacy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PharmacyMutation)
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
func (_c *PharmacyCreateBulk) SaveX(ctx context.Context) []*Pharmacy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PharmacyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PharmacyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pharmacy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PharmacyUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PharmacyCreateBulk) OnConflict(opts ...sql.ConflictOption) *PharmacyUpsertBulk {
	_c.conflict = opts
	return &PharmacyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PharmacyCreateBulk) OnConflictColumns(columns ...string) *PharmacyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PharmacyUpsertBulk{
		create: _c,
	}
}

// PharmacyUpsertBulk is the builder for "upsert"-ing
// a bulk of Pharmacy nodes.
type PharmacyUpsertBulk struct {
	create *PharmacyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pharmacy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PharmacyUpsertBulk) UpdateNewValues() *PharmacyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pharmacy.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pharmacy.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pharmacy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PharmacyUpsertBulk) Ignore() *PharmacyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PharmacyUpsertBulk) DoNothing() *PharmacyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PharmacyCreateBulk.OnConflict
// documentation for more info.
func (u *PharmacyUpsertBulk) Update(set func(*PharmacyUpsert)) *PharmacyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PharmacyUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PharmacyUpsertBulk) SetUpdatedAt(v time.Time) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateUpdatedAt() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PharmacyUpsertBulk) SetDeletedAt(v time.Time) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateDeletedAt() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PharmacyUpsertBulk) ClearDeletedAt() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *PharmacyUpsertBulk) SetName(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateName() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *PharmacyUpsertBulk) SetAddress(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateAddress() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateAddress()
	})
}

// SetCity sets the "city" field.
func (u *PharmacyUpsertBulk) SetCity(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateCity() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateCity()
	})
}

// SetPhone sets the "phone" field.
func (u *PharmacyUpsertBulk) SetPhone(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdatePhone() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PharmacyUpsertBulk) ClearPhone() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearPhone()
	})
}

// SetRating sets the "rating" field.
func (u *PharmacyUpsertBulk) SetRating(v float64) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *PharmacyUpsertBulk) AddRating(v float64) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateRating() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateRating()
	})
}

// SetDistanceKm sets the "distance_km" field.
func (u *PharmacyUpsertBulk) SetDistanceKm(v float64) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDistanceKm(v)
	})
}

// AddDistanceKm adds v to the "distance_km" field.
func (u *PharmacyUpsertBulk) AddDistanceKm(v float64) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddDistanceKm(v)
	})
}

// UpdateDistanceKm sets the "distance_km" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateDistanceKm() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDistanceKm()
	})
}

// SetDeliveryAvailable sets the "delivery_available" field.
func (u *PharmacyUpsertBulk) SetDeliveryAvailable(v bool) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeliveryAvailable(v)
	})
}

// UpdateDeliveryAvailable sets the "delivery_available" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateDeliveryAvailable() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeliveryAvailable()
	})
}

// SetDeliveryMinutes sets the "delivery_minutes" field.
func (u *PharmacyUpsertBulk) SetDeliveryMinutes(v int) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetDeliveryMinutes(v)
	})
}

// AddDeliveryMinutes adds v to the "delivery_minutes" field.
func (u *PharmacyUpsertBulk) AddDeliveryMinutes(v int) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.AddDeliveryMinutes(v)
	})
}

// UpdateDeliveryMinutes sets the "delivery_minutes" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateDeliveryMinutes() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateDeliveryMinutes()
	})
}

// SetInsurerNetworks sets the "insurer_networks" field.
func (u *PharmacyUpsertBulk) SetInsurerNetworks(v []string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetInsurerNetworks(v)
	})
}

// UpdateInsurerNetworks sets the "insurer_networks" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateInsurerNetworks() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateInsurerNetworks()
	})
}

// ClearInsurerNetworks clears the value of the "insurer_networks" field.
func (u *PharmacyUpsertBulk) ClearInsurerNetworks() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.ClearInsurerNetworks()
	})
}

// SetOpensAt sets the "opens_at" field.
func (u *PharmacyUpsertBulk) SetOpensAt(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetOpensAt(v)
	})
}

// UpdateOpensAt sets the "opens_at" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateOpensAt() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateOpensAt()
	})
}

// SetClosesAt sets the "closes_at" field.
func (u *PharmacyUpsertBulk) SetClosesAt(v string) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetClosesAt(v)
	})
}

// UpdateClosesAt sets the "closes_at" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateClosesAt() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateClosesAt()
	})
}

// SetOpen24h sets the "open_24h" field.
func (u *PharmacyUpsertBulk) SetOpen24h(v bool) *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.SetOpen24h(v)
	})
}

// UpdateOpen24h sets the "open_24h" field to the value that was provided on create.
func (u *PharmacyUpsertBulk) UpdateOpen24h() *PharmacyUpsertBulk {
	return u.Update(func(s *PharmacyUpsert) {
		s.UpdateOpen24h()
	})
}

// Exec executes the query.
func (u *PharmacyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PharmacyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PharmacyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PharmacyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
