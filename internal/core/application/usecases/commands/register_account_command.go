package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// maxPasswordLength is the longest secret bcrypt accepts.
const maxPasswordLength = 72

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrEmailIsRequired    = errs.NewValueIsRequiredError("email")
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterAccountCommand creates an account for a customer, shipper, staff
// member or manager. The password is plaintext here and is hashed by the
// handler before anything is stored.
//
// Example:
//
//	point := pickupPointID
//	cmd, err := NewRegisterAccountCommand(kernel.NewUUID(), "Lan", "lan@example.com",
//	    "s3cret-pass", "0900000000", account.Staff, account.Workplace{PickupPoint: &point})
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	name      string
	email     string
	password  string
	phone     string
	role      account.Role
	workplace account.Workplace

	guard guard.ConstructorGuard
}

func NewRegisterAccountCommand(
	id kernel.UUID,
	name, email, password, phone string,
	role account.Role,
	workplace account.Workplace,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		phone:     phone,
		workplace: workplace,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) ID() kernel.UUID {
	return c.id
}

func (c RegisterAccountCommand) Name() string {
	return c.name
}

func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c RegisterAccountCommand) Workplace() account.Workplace {
	return c.workplace
}

func (c *RegisterAccountCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), 1, maxPasswordLength)
	}
	return nil
}
