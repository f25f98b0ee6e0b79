package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/inmem"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/jobs"
)

// CompositionRoot wires the reservation engine, its adapters, and the
// application handlers. All state is in memory; one root owns one engine.
type CompositionRoot struct {
	engine  *services.ReservationEngine
	archive *inmem.OrderArchive
	clock   inmem.SystemClock
	logger  *slog.Logger
}

// NewCompositionRoot assembles the system from configuration: provisions the
// fleet, builds the rate table, and constructs the engine with its in-memory
// adapters.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	fleet, err := provisionFleet(config)
	if err != nil {
		return nil, fmt.Errorf("provision fleet: %w", err)
	}

	rates, err := buildRateTable(config)
	if err != nil {
		return nil, fmt.Errorf("build rate table: %w", err)
	}

	archive := inmem.NewOrderArchive()
	clock := inmem.NewSystemClock()
	engine, err := services.NewReservationEngine(
		fleet, rates, inmem.NewUUIDGenerator(), clock, archive)
	if err != nil {
		return nil, fmt.Errorf("build reservation engine: %w", err)
	}

	return &CompositionRoot{
		engine:  engine,
		archive: archive,
		clock:   clock,
		logger:  logger,
	}, nil
}

func provisionFleet(config Config) (map[vehicle.Category][]*vehicle.Vehicle, error) {
	provisioning := map[vehicle.Category][]int{
		vehicle.Sedan: config.SedanMileages,
		vehicle.SUV:   config.SUVMileages,
		vehicle.Van:   config.VanMileages,
	}

	fleet := make(map[vehicle.Category][]*vehicle.Vehicle, len(provisioning))
	for category, mileages := range provisioning {
		vehicles := make([]*vehicle.Vehicle, 0, len(mileages))
		for _, mileage := range mileages {
			v, err := vehicle.NewVehicle(kernel.NewUUID(), category, mileage)
			if err != nil {
				return nil, err
			}
			vehicles = append(vehicles, v)
		}
		fleet[category] = vehicles
	}

	return fleet, nil
}

func buildRateTable(config Config) (services.RateTable, error) {
	rates := make(map[vehicle.Category]kernel.Money, 3)
	for category, raw := range map[vehicle.Category]string{
		vehicle.Sedan: config.SedanRate,
		vehicle.SUV:   config.SUVRate,
		vehicle.Van:   config.VanRate,
	} {
		rate, err := kernel.MoneyFromString(raw)
		if err != nil {
			return services.RateTable{}, fmt.Errorf("rate for %s: %w", category, err)
		}
		rates[category] = rate
	}

	return services.NewRateTable(rates)
}

func (c *CompositionRoot) CreateReserveCommandHandler() commands.ReserveCommandHandler {
	return commands.NewReserveCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateStartRentalCommandHandler() commands.StartRentalCommandHandler {
	return commands.NewStartRentalCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateCancelCommandHandler() commands.CancelCommandHandler {
	return commands.NewCancelCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateReturnVehicleCommandHandler() commands.ReturnVehicleCommandHandler {
	return commands.NewReturnVehicleCommandHandler(c.engine)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetFleetStatusQueryHandler() queries.GetFleetStatusQueryHandler {
	return queries.NewGetFleetStatusQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.engine, c.archive)
}

// CreateHTTPServer builds the HTTP adapter over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateReserveCommandHandler(),
		c.CreateStartRentalCommandHandler(),
		c.CreateCancelCommandHandler(),
		c.CreateReturnVehicleCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetFleetStatusQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.engine,
	)
}

// CreateJobManager builds the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetFleetStatusQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.clock,
		c.logger,
	)
}
