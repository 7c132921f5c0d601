package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPackagesQueryHandler struct {
	db *gorm.DB
}

func NewGetPackagesQueryHandler(db *gorm.DB) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{db: db}
}

// Handle returns the matching packages. Pending packages have no transit date
// and sort last.
func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cond, args := where(query.Filter().Predicates())

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+packageColumns+" FROM packages"+cond+" ORDER BY transit_date DESC NULLS LAST, id",
		args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]PackageResponse, 0)
	for rows.Next() {
		resp, scanErr := scanPackage(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		packages = append(packages, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

type GetPackageQueryHandler struct {
	db *gorm.DB
}

func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT "+packageColumns+" FROM packages WHERE id = ?",
		query.ID().Bytes(),
	).Rows()
	if err != nil {
		return PackageResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PackageResponse{}, err
		}
		return PackageResponse{}, errs.NewObjectNotFoundError("package", query.ID())
	}
	return scanPackage(rows)
}
