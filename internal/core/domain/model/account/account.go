package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrAccountIsNotConstructed is returned when using a zero-value Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// Account is a registered network participant.
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	role         Role
	status       Status
	pickupPoint  *kernel.UUID
	transitHub   *kernel.UUID
	guard        guard.ConstructorGuard
}

// Workplace is the optional pickup point or transit hub a staff member or
// manager works at. At most one of the two may be set.
type Workplace struct {
	PickupPoint *kernel.UUID
	TransitHub  *kernel.UUID
}

// NewAccount builds an active account. passwordHash must already be hashed.
//
// Example:
//
//	hash, _ := hasher.Hash(ctx, "s3cret")
//	point := pickupPointID
//	acc, err := account.NewAccount(id, "Lan", "lan@example.com", hash, "0900000000",
//	    account.Staff, account.Workplace{PickupPoint: &point})
func NewAccount(
	id kernel.UUID,
	name, email, passwordHash, phone string,
	role Role,
	workplace Workplace,
) (*Account, error) {
	return RestoreAccount(id, name, email, passwordHash, phone, role, Active, workplace)
}

// RestoreAccount rebuilds an account loaded from storage, re-checking every
// invariant.
func RestoreAccount(
	id kernel.UUID,
	name, email, passwordHash, phone string,
	role Role,
	status Status,
	workplace Workplace,
) (*Account, error) {
	acc := &Account{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		acc.setID(id),
		acc.setName(name),
		acc.setEmail(email),
		acc.SetPasswordHash(passwordHash),
		acc.setRoleAndWorkplace(role, workplace),
		acc.setStatus(status),
	); err != nil {
		return nil, err
	}
	acc.phone = strings.TrimSpace(phone)

	return acc, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Phone() string {
	return a.phone
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) Status() Status {
	return a.status
}

func (a *Account) PickupPoint() *kernel.UUID {
	return a.pickupPoint
}

func (a *Account) TransitHub() *kernel.UUID {
	return a.transitHub
}

// SetPasswordHash replaces the stored digest.
func (a *Account) SetPasswordHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q is not an address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Account) setRoleAndWorkplace(role Role, workplace Workplace) error {
	if err := role.Validate(); err != nil {
		return err
	}

	hasPoint := workplace.PickupPoint != nil
	hasHub := workplace.TransitHub != nil

	if role.HasWorkplace() {
		if hasPoint == hasHub {
			return errs.NewValueIsInvalidErrorWithCause(
				"workplace is invalid",
				fmt.Errorf("%s must have exactly one of pickup point or transit hub", role),
			)
		}
	} else if hasPoint || hasHub {
		return errs.NewValueIsInvalidErrorWithCause(
			"workplace is invalid",
			fmt.Errorf("%s cannot have a pickup point or transit hub", role),
		)
	}

	for _, ref := range []*kernel.UUID{workplace.PickupPoint, workplace.TransitHub} {
		if ref != nil {
			if err := ref.Validate(); err != nil {
				return err
			}
		}
	}

	a.role = role
	a.pickupPoint = workplace.PickupPoint
	a.transitHub = workplace.TransitHub
	return nil
}
