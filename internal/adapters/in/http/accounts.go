package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterAccount handles POST /api/v1/accounts.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var body NewAccount
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.ParseRole(body.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}
	point, err := fromOptionalRaw(body.PickupPoint)
	if err != nil {
		return s.writeError(ctx, err)
	}
	hub, err := fromOptionalRaw(body.TransitHub)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		id, body.Name, body.Email, body.Password, body.Phone, role,
		account.Workplace{PickupPoint: point, TransitHub: hub},
	)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.RegisterAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// GetAccount handles GET /api/v1/accounts/:id.
func (s *Server) GetAccount(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetAccountQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondAccount(ctx, query)
}

// FindAccount handles GET /api/v1/accounts?email=.
func (s *Server) FindAccount(ctx echo.Context) error {
	query, err := queries.NewGetAccountByEmailQuery(ctx.QueryParam("email"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondAccount(ctx, query)
}

func (s *Server) respondAccount(ctx echo.Context, query queries.GetAccountQuery) error {
	acc, err := s.h.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAccount(acc))
}

// ChangePassword handles PUT /api/v1/accounts/:id/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body PasswordChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(id, body.Current, body.Next)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.ChangePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAccount handles DELETE /api/v1/accounts/:id.
func (s *Server) DeleteAccount(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewDeleteAccountCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.DeleteAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
