package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateTransitHubCommandIsNotConstructed = errors.New(
		"CreateTransitHubCommand must be created via NewCreateTransitHubCommand constructor",
	)
	ErrNameIsRequired     = errs.NewValueIsRequiredError("name")
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// CreateTransitHubCommand registers a transit hub in the network topology.
//
// Example:
//
//	cmd, err := NewCreateTransitHubCommand(kernel.NewUUID(), "North", "12 Ring Road")
//	if err != nil {
//	    return err
//	}
//	err = NewCreateTransitHubCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateTransitHubCommand struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	name     string
	location string

	guard guard.ConstructorGuard
}

func NewCreateTransitHubCommand(id kernel.UUID, name, location string) (CreateTransitHubCommand, error) {
	cmd := CreateTransitHubCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setLocation(location),
	); err != nil {
		return CreateTransitHubCommand{}, err
	}

	return cmd, nil
}

func (c CreateTransitHubCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransitHubCommandIsNotConstructed)
}

func (c CreateTransitHubCommand) ID() kernel.UUID {
	return c.id
}

func (c CreateTransitHubCommand) Name() string {
	return c.name
}

func (c CreateTransitHubCommand) Location() string {
	return c.location
}

func (c *CreateTransitHubCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *CreateTransitHubCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTransitHubCommand) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
