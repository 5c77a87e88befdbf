package driver

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through the NewDriver or RestoreDriver factory methods.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver represents a delivery driver who can be assigned to delivery orders
// once they reach Ready status.
//
// Driver follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a name and a contact phone
//   - Only active drivers accept new assignments
type Driver struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool

	isConstructed bool
}

// NewDriver creates a new Driver instance with validation.
// New drivers start active.
func NewDriver(id kernel.UUID, name string, phone string) (*Driver, error) {
	d := &Driver{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(id kernel.UUID, name string, phone string, active bool) (*Driver, error) {
	d, err := NewDriver(id, name, phone)
	if err != nil {
		return nil, err
	}

	d.active = active
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Active reports whether the driver accepts new assignments.
func (d *Driver) Active() bool {
	return d.active
}

// Deactivate takes the driver off the roster. Existing assignments are
// unaffected; the driver simply receives no new ones.
func (d *Driver) Deactivate() {
	d.active = false
}

// Activate returns the driver to the roster.
func (d *Driver) Activate() {
	d.active = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}
	d.phone = phone
	return nil
}
