package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pack"
	"logistics/internal/pkg/guard"
)

var ErrAdvancePackageCommandIsNotConstructed = errors.New(
	"AdvancePackageCommand must be created via NewAdvancePackageCommand constructor",
)

// AdvancePackageCommand moves a package to the next stage of its pipeline and
// carries every linked order along.
//
// Example:
//
//	cmd, err := NewAdvancePackageCommand(packageID, pack.Delivering1, time.Now())
//	if err != nil {
//	    return err
//	}
//	err = NewAdvancePackageCommandHandler(uowFactory).Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPartialFailure) {
//	    // nothing was stored, send the same command again
//	}
type AdvancePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	next      pack.Status
	at        time.Time

	guard guard.ConstructorGuard
}

func NewAdvancePackageCommand(packageID kernel.UUID, next pack.Status, at time.Time) (AdvancePackageCommand, error) {
	cmd := AdvancePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setNext(next),
		cmd.setAt(at),
	); err != nil {
		return AdvancePackageCommand{}, err
	}

	return cmd, nil
}

func (c AdvancePackageCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePackageCommandIsNotConstructed)
}

func (c AdvancePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c AdvancePackageCommand) Next() pack.Status {
	return c.next
}

// At is the moment of the stage change. It becomes the transit date on
// delivering1 and the arrival date on delivered.
func (c AdvancePackageCommand) At() time.Time {
	return c.at
}

func (c *AdvancePackageCommand) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.packageID = id
	return nil
}

func (c *AdvancePackageCommand) setNext(next pack.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *AdvancePackageCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return pack.ErrDateIsRequired
	}

	c.at = at
	return nil
}
