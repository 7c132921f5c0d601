package http

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func optional(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func fromRaw(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func fromOptionalRaw(raw *uuid.UUID) (*kernel.UUID, error) {
	return kernel.OptionalUUIDFromRaw(raw)
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	id, err := fromRaw(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryID returns nil when the parameter is absent or blank.
func queryID(ctx echo.Context, name string) (*kernel.UUID, error) {
	if strings.TrimSpace(ctx.QueryParam(name)) == "" {
		return nil, nil
	}
	var raw *uuid.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	id, err := fromOptionalRaw(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryString returns nil when the parameter is absent; an empty value is kept.
func queryString(ctx echo.Context, name string) (*string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// queryTime accepts RFC 3339 timestamps and plain dates. A plain date used
// as an upper bound covers the whole day.
func queryTime(ctx echo.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	var t time.Time
	if err := runtime.BindStringToObject(raw, &t); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is neither a date nor an RFC 3339 time", raw))
	}
	if endOfDay && len(raw) == len(time.DateOnly) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
