package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New("GetAccountQuery must be created via NewGetAccountQuery constructor")

	ErrLookupEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// GetAccountQuery finds an account by id or by email. The password hash is
// never part of the response.
type GetAccountQuery struct {
	id    *kernel.UUID
	email string
	guard guard.ConstructorGuard
}

func NewGetAccountQuery(id kernel.UUID) (GetAccountQuery, error) {
	if err := id.Validate(); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetAccountByEmailQuery matches case-insensitively; emails are stored
// lower-cased.
func NewGetAccountByEmailQuery(email string) (GetAccountQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetAccountQuery{}, ErrLookupEmailIsRequired
	}
	return GetAccountQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

// ID is nil for a lookup by email.
func (q GetAccountQuery) ID() *kernel.UUID {
	return q.id
}

func (q GetAccountQuery) Email() string {
	return q.email
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

type AccountResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Phone       string
	Role        account.Role
	Status      account.Status
	PickupPoint *kernel.UUID
	TransitHub  *kernel.UUID
}
