package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetPackagesQueryIsNotConstructed = errors.New("GetPackagesQuery must be created via NewGetPackagesQuery constructor")
	ErrGetPackageQueryIsNotConstructed  = errors.New("GetPackageQuery must be created via NewGetPackageQuery constructor")
)

// GetPackagesQuery lists packages matching a filter. Packages that have left
// their origin come first, latest transit date first.
type GetPackagesQuery struct {
	filter PackageFilter
	guard  guard.ConstructorGuard
}

func NewGetPackagesQuery(filter PackageFilter) (GetPackagesQuery, error) {
	if err := filter.Validate(); err != nil {
		return GetPackagesQuery{}, err
	}
	return GetPackagesQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackagesQuery) Filter() PackageFilter {
	return q.filter
}

func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

type GetPackageQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetPackageQuery(id kernel.UUID) (GetPackageQuery, error) {
	if err := id.Validate(); err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageQuery) ID() kernel.UUID {
	return q.id
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}
