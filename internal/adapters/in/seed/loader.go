package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pack"
)

type commandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type queryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers are the use cases the loader drives.
type Handlers struct {
	CreateTransitHub    commandHandler[commands.CreateTransitHubCommand]
	CreatePickupPoint   commandHandler[commands.CreatePickupPointCommand]
	RegisterAccount     commandHandler[commands.RegisterAccountCommand]
	CreatePackage       commandHandler[commands.CreatePackageCommand]
	CreateOrder         commandHandler[commands.CreateOrderCommand]
	AddOrderToPackage   commandHandler[commands.AddOrderToPackageCommand]
	AdvancePackage      commandHandler[commands.AdvancePackageCommand]
	SetOrderShipper     commandHandler[commands.SetOrderShipperCommand]
	MarkOrderDelivering commandHandler[commands.MarkOrderDeliveringCommand]
	DeliverOrder        commandHandler[commands.DeliverOrderCommand]
	CancelOrder         commandHandler[commands.CancelOrderCommand]

	GetTransitHub  queryHandler[queries.GetTransitHubQuery, queries.TransitHubResponse]
	GetPickupPoint queryHandler[queries.GetPickupPointQuery, queries.PickupPointResponse]
	GetAccount     queryHandler[queries.GetAccountQuery, queries.AccountResponse]
}

// Loader creates a Network through the command handlers. It stops at the
// first failure; records created before it stay.
type Loader struct {
	h      Handlers
	logger *slog.Logger
}

func NewLoader(handlers Handlers, logger *slog.Logger) *Loader {
	return &Loader{h: handlers, logger: logger}
}

func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("seed: %w", err)
	}
	defer f.Close()
	return l.Load(ctx, f)
}

// Load decodes r strictly: unknown fields are rejected.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var network Network
	if err := dec.Decode(&network); err != nil {
		return Summary{}, fmt.Errorf("seed: decode: %w", err)
	}

	run := &loadRun{Loader: l, packages: make(map[string]kernel.UUID)}
	if err := run.load(ctx, network); err != nil {
		return run.summary, err
	}

	l.logger.InfoContext(ctx, "seed loaded",
		"transitHubs", run.summary.TransitHubs,
		"pickupPoints", run.summary.PickupPoints,
		"accounts", run.summary.Accounts,
		"packages", run.summary.Packages,
		"orders", run.summary.Orders)
	return run.summary, nil
}

type loadRun struct {
	*Loader
	summary  Summary
	packages map[string]kernel.UUID
}

func (r *loadRun) load(ctx context.Context, n Network) error {
	for i, h := range n.TransitHubs {
		if err := r.transitHub(ctx, h); err != nil {
			return fmt.Errorf("seed: transit hub #%d %q: %w", i+1, h.Name, err)
		}
		r.summary.TransitHubs++
	}
	for i, p := range n.PickupPoints {
		if err := r.pickupPoint(ctx, p); err != nil {
			return fmt.Errorf("seed: pickup point #%d %q: %w", i+1, p.Name, err)
		}
		r.summary.PickupPoints++
	}
	for i, a := range n.Accounts {
		if err := r.account(ctx, a); err != nil {
			return fmt.Errorf("seed: account #%d %q: %w", i+1, a.Email, err)
		}
		r.summary.Accounts++
	}
	for i, p := range n.Packages {
		if err := r.createPackage(ctx, p); err != nil {
			return fmt.Errorf("seed: package #%d %q: %w", i+1, p.Ref, err)
		}
		r.summary.Packages++
	}
	for i, o := range n.Orders {
		if err := r.order(ctx, o); err != nil {
			return fmt.Errorf("seed: order #%d: %w", i+1, err)
		}
		r.summary.Orders++
	}
	// Packages advance last so that every linked order follows them.
	for i, p := range n.Packages {
		if err := r.advancePackage(ctx, p); err != nil {
			return fmt.Errorf("seed: package #%d %q: %w", i+1, p.Ref, err)
		}
	}
	return nil
}

func (r *loadRun) transitHub(ctx context.Context, h TransitHub) error {
	cmd, err := commands.NewCreateTransitHubCommand(kernel.NewUUID(), h.Name, h.Location)
	if err != nil {
		return err
	}
	return r.h.CreateTransitHub.Handle(ctx, cmd)
}

func (r *loadRun) pickupPoint(ctx context.Context, p PickupPoint) error {
	hub, err := r.hubID(ctx, p.Hub)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePickupPointCommand(kernel.NewUUID(), p.Name, p.Location, hub)
	if err != nil {
		return err
	}
	return r.h.CreatePickupPoint.Handle(ctx, cmd)
}

func (r *loadRun) account(ctx context.Context, a Account) error {
	role, err := account.ParseRole(a.Role)
	if err != nil {
		return err
	}

	var workplace account.Workplace
	if a.PickupPoint != "" {
		point, pointErr := r.pointID(ctx, a.PickupPoint)
		if pointErr != nil {
			return pointErr
		}
		workplace.PickupPoint = &point
	}
	if a.TransitHub != "" {
		hub, hubErr := r.hubID(ctx, a.TransitHub)
		if hubErr != nil {
			return hubErr
		}
		workplace.TransitHub = &hub
	}

	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), a.Name, a.Email, a.Password, a.Phone, role, workplace)
	if err != nil {
		return err
	}
	return r.h.RegisterAccount.Handle(ctx, cmd)
}

func (r *loadRun) createPackage(ctx context.Context, p Package) error {
	if p.Ref == "" {
		return errors.New("ref is required")
	}
	if _, dup := r.packages[p.Ref]; dup {
		return errors.New("ref is used twice")
	}

	from, err := r.pointID(ctx, p.PickupFrom)
	if err != nil {
		return err
	}
	to, err := r.pointID(ctx, p.PickupTo)
	if err != nil {
		return err
	}
	shipper, err := r.optionalAccountID(ctx, p.Shipper)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(id, from, to, shipper)
	if err != nil {
		return err
	}
	if err = r.h.CreatePackage.Handle(ctx, cmd); err != nil {
		return err
	}
	r.packages[p.Ref] = id
	return nil
}

// advancePackage walks the package through every stage up to p.Status. Legs
// before delivered are stamped with the transit date.
func (r *loadRun) advancePackage(ctx context.Context, p Package) error {
	if p.Status == "" || p.Status == pack.Pending.String() {
		return nil
	}
	target, err := pack.ParseStatus(p.Status)
	if err != nil {
		return err
	}
	if p.TransitDate == nil {
		return errors.New("transitDate is required once a package has left pending")
	}
	if target == pack.Delivered && p.ArrivalDate == nil {
		return errors.New("arrivalDate is required for a delivered package")
	}

	id := r.packages[p.Ref]
	for status := pack.Pending; status != target; {
		next, nextErr := status.Next()
		if nextErr != nil {
			return nextErr
		}
		at := *p.TransitDate
		if next == pack.Delivered {
			at = *p.ArrivalDate
		}

		cmd, cmdErr := commands.NewAdvancePackageCommand(id, next, at)
		if cmdErr != nil {
			return cmdErr
		}
		if err = r.h.AdvancePackage.Handle(ctx, cmd); err != nil {
			return err
		}
		status = next
	}
	return nil
}

func (r *loadRun) order(ctx context.Context, o Order) error {
	if o.Package != "" && o.Status != "" {
		return errors.New("status of a packaged order follows its package")
	}

	sender, err := r.accountID(ctx, o.Sender)
	if err != nil {
		return err
	}
	from, err := r.pointID(ctx, o.PickupFrom)
	if err != nil {
		return err
	}
	to, err := r.pointID(ctx, o.PickupTo)
	if err != nil {
		return err
	}
	shipper, err := r.optionalAccountID(ctx, o.Shipper)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	create, err := commands.NewCreateOrderCommand(
		id, sender, o.Weight, o.ReceiverNumber, o.ReceiverAddress, from, to, o.Charge, o.SendDate,
	)
	if err != nil {
		return err
	}
	if err = r.h.CreateOrder.Handle(ctx, create); err != nil {
		return err
	}

	if shipper != nil {
		cmd, cmdErr := commands.NewSetOrderShipperCommand(id, shipper)
		if cmdErr != nil {
			return cmdErr
		}
		if err = r.h.SetOrderShipper.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	if o.Package != "" {
		packageID, ok := r.packages[o.Package]
		if !ok {
			return fmt.Errorf("package %q is not defined", o.Package)
		}
		cmd, cmdErr := commands.NewAddOrderToPackageCommand(id, packageID)
		if cmdErr != nil {
			return cmdErr
		}
		return r.h.AddOrderToPackage.Handle(ctx, cmd)
	}

	return r.orderStatus(ctx, id, o)
}

func (r *loadRun) orderStatus(ctx context.Context, id kernel.UUID, o Order) error {
	if o.Status == "" {
		return nil
	}
	status, err := order.ParseStatus(o.Status)
	if err != nil {
		return err
	}

	switch status {
	case order.Pending:
		return nil
	case order.Delivering:
		cmd, cmdErr := commands.NewMarkOrderDeliveringCommand(id)
		if cmdErr != nil {
			return cmdErr
		}
		return r.h.MarkOrderDelivering.Handle(ctx, cmd)
	case order.Delivered:
		if o.ArrivalDate == nil {
			return errors.New("arrivalDate is required for a delivered order")
		}
		cmd, cmdErr := commands.NewDeliverOrderCommand(id, *o.ArrivalDate)
		if cmdErr != nil {
			return cmdErr
		}
		return r.h.DeliverOrder.Handle(ctx, cmd)
	case order.Cancelled:
		cmd, cmdErr := commands.NewCancelOrderCommand(id)
		if cmdErr != nil {
			return cmdErr
		}
		return r.h.CancelOrder.Handle(ctx, cmd)
	default:
		return fmt.Errorf("unsupported status %q", o.Status)
	}
}

func (r *loadRun) hubID(ctx context.Context, name string) (kernel.UUID, error) {
	query, err := queries.NewGetTransitHubByNameQuery(name)
	if err != nil {
		return kernel.UUID{}, err
	}
	hub, err := r.h.GetTransitHub.Handle(ctx, query)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("transit hub %q: %w", name, err)
	}
	return hub.ID, nil
}

func (r *loadRun) pointID(ctx context.Context, name string) (kernel.UUID, error) {
	query, err := queries.NewGetPickupPointByNameQuery(name)
	if err != nil {
		return kernel.UUID{}, err
	}
	point, err := r.h.GetPickupPoint.Handle(ctx, query)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("pickup point %q: %w", name, err)
	}
	return point.ID, nil
}

func (r *loadRun) accountID(ctx context.Context, email string) (kernel.UUID, error) {
	query, err := queries.NewGetAccountByEmailQuery(email)
	if err != nil {
		return kernel.UUID{}, err
	}
	acc, err := r.h.GetAccount.Handle(ctx, query)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("account %q: %w", email, err)
	}
	return acc.ID, nil
}

func (r *loadRun) optionalAccountID(ctx context.Context, email string) (*kernel.UUID, error) {
	if strings.TrimSpace(email) == "" {
		return nil, nil
	}
	id, err := r.accountID(ctx, email)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
