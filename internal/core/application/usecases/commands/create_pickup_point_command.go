package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreatePickupPointCommandIsNotConstructed = errors.New(
	"CreatePickupPointCommand must be created via NewCreatePickupPointCommand constructor",
)

// CreatePickupPointCommand registers a pickup point served by an existing hub.
type CreatePickupPointCommand struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	name     string
	location string
	hub      kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePickupPointCommand(id kernel.UUID, name, location string, hub kernel.UUID) (CreatePickupPointCommand, error) {
	cmd := CreatePickupPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setHub(hub),
	); err != nil {
		return CreatePickupPointCommand{}, err
	}

	return cmd, nil
}

func (c CreatePickupPointCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupPointCommandIsNotConstructed)
}

func (c CreatePickupPointCommand) ID() kernel.UUID {
	return c.id
}

func (c CreatePickupPointCommand) Name() string {
	return c.name
}

func (c CreatePickupPointCommand) Location() string {
	return c.location
}

func (c CreatePickupPointCommand) Hub() kernel.UUID {
	return c.hub
}

func (c *CreatePickupPointCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *CreatePickupPointCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePickupPointCommand) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}

func (c *CreatePickupPointCommand) setHub(hub kernel.UUID) error {
	if err := hub.Validate(); err != nil {
		return err
	}

	c.hub = hub
	return nil
}
