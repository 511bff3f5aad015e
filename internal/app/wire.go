//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	driver_get "fleet/internal/handlers/rest/driver_get"
	driver_post "fleet/internal/handlers/rest/driver_post"
	driver_put "fleet/internal/handlers/rest/driver_put"
	drivers_get "fleet/internal/handlers/rest/drivers_get"
	order_assign_post "fleet/internal/handlers/rest/order_assign_post"
	order_get "fleet/internal/handlers/rest/order_get"
	order_history_get "fleet/internal/handlers/rest/order_history_get"
	order_post "fleet/internal/handlers/rest/order_post"
	order_status_put "fleet/internal/handlers/rest/order_status_put"
	order_unassign_post "fleet/internal/handlers/rest/order_unassign_post"
	orders_get "fleet/internal/handlers/rest/orders_get"
	route_cancel_post "fleet/internal/handlers/rest/route_cancel_post"
	route_complete_post "fleet/internal/handlers/rest/route_complete_post"
	route_get "fleet/internal/handlers/rest/route_get"
	route_post "fleet/internal/handlers/rest/route_post"
	route_start_post "fleet/internal/handlers/rest/route_start_post"
	route_waypoint_put "fleet/internal/handlers/rest/route_waypoint_put"
	vehicle_get "fleet/internal/handlers/rest/vehicle_get"
	vehicle_post "fleet/internal/handlers/rest/vehicle_post"
	vehicle_put "fleet/internal/handlers/rest/vehicle_put"
	vehicles_get "fleet/internal/handlers/rest/vehicles_get"
	"fleet/internal/handlers/tasks/fleet_reconcile"
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/factory/order_event_handle"
	"fleet/internal/pkg/factory/route_estimate"
	"fleet/internal/pkg/factory/route_sequencer"

	driverRepo "fleet/internal/repository/driver"
	orderRepo "fleet/internal/repository/order"
	routeRepo "fleet/internal/repository/route"
	vehicleRepo "fleet/internal/repository/vehicle"
	assignmentService "fleet/internal/service/assignment"
	fleetService "fleet/internal/service/fleet"
	intakeService "fleet/internal/service/intake"
	orderService "fleet/internal/service/order"
	routelifecycleService "fleet/internal/service/routelifecycle"
	routeplannerService "fleet/internal/service/routeplanner"

	"fleet/pkg/background"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceOrder          ServiceOrder
	ServiceFleet          ServiceFleet
	ServiceAssignment     ServiceAssignment
	ServiceRoutePlanner   ServiceRoutePlanner
	ServiceRouteLifecycle ServiceRouteLifecycle
	BackgroundWorkers     *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_history_get.Service
}

type ServiceFleet interface {
	driver_post.Service
	driver_put.Service
	driver_get.Service
	drivers_get.Service
	vehicle_post.Service
	vehicle_put.Service
	vehicle_get.Service
	vehicles_get.Service
}

type ServiceAssignment interface {
	order_assign_post.Service
	order_unassign_post.Service
}

type ServiceRoutePlanner interface {
	route_post.Service
}

type ServiceRouteLifecycle interface {
	route_get.Service
	route_start_post.Service
	route_complete_post.Service
	route_cancel_post.Service
	route_waypoint_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,
		provideDriverRepository,
		provideVehicleRepository,
		provideRouteRepository,

		provideServiceOrder,
		provideServiceFleet,
		provideServiceAssignment,
		provideServiceRoutePlanner,
		provideServiceRouteLifecycle,
		route_sequencer.New,
		route_estimate.New,

		provideFleetReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Registry)),
		wire.Bind(new(ServiceFleet), new(*fleetService.Registry)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Coordinator)),
		wire.Bind(new(ServiceRoutePlanner), new(*routeplannerService.Planner)),
		wire.Bind(new(ServiceRouteLifecycle), new(*routelifecycleService.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(fleetService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(fleetService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(fleetService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(assignmentService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(routeplannerService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(routeplannerService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(routeplannerService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(routeplannerService.VehicleRepository), new(*vehicleRepo.Repository)),
		wire.Bind(new(routeplannerService.Sequencer), new(*route_sequencer.ExpressFirstSequencer)),
		wire.Bind(new(routeplannerService.Estimator), new(*route_estimate.EstimateFactory)),
		wire.Bind(new(routelifecycleService.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(routelifecycleService.OrderRegistry), new(*orderService.Registry)),
		wire.Bind(new(routelifecycleService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(routelifecycleService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(routelifecycleService.VehicleRepository), new(*vehicleRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fleetService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routeplannerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(routelifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fleet_reconcile.Service), new(*fleetService.Registry)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	IntakeService *intakeService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-intake)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,

		provideServiceOrder,
		provideStatusHandlerFactory,
		provideIntakeService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(order_event_handle.OrderRegistry), new(*orderService.Registry)),
		wire.Bind(new(intakeService.OrderRegistry), new(*orderService.Registry)),
		wire.Bind(new(intakeService.HandlerFactory), new(*order_event_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Registry {
	return orderService.New(repository, txManager)
}

func provideServiceFleet(
	drivers fleetService.DriverRepository,
	vehicles fleetService.VehicleRepository,
	orders fleetService.OrderRepository,
	txManager fleetService.TxManager,
) *fleetService.Registry {
	return fleetService.New(drivers, vehicles, orders, txManager)
}

func provideServiceAssignment(
	orders assignmentService.OrderRepository,
	drivers assignmentService.DriverRepository,
	vehicles assignmentService.VehicleRepository,
	txManager assignmentService.TxManager,
) *assignmentService.Coordinator {
	return assignmentService.New(orders, drivers, vehicles, txManager)
}

func provideServiceRoutePlanner(
	routes routeplannerService.RouteRepository,
	orders routeplannerService.OrderRepository,
	drivers routeplannerService.DriverRepository,
	vehicles routeplannerService.VehicleRepository,
	sequencer routeplannerService.Sequencer,
	estimator routeplannerService.Estimator,
	txManager routeplannerService.TxManager,
) *routeplannerService.Planner {
	return routeplannerService.New(
		routes,
		orders,
		drivers,
		vehicles,
		sequencer,
		estimator,
		txManager,
	)
}

func provideServiceRouteLifecycle(
	routes routelifecycleService.RouteRepository,
	orderRegistry routelifecycleService.OrderRegistry,
	orders routelifecycleService.OrderRepository,
	drivers routelifecycleService.DriverRepository,
	vehicles routelifecycleService.VehicleRepository,
	txManager routelifecycleService.TxManager,
) *routelifecycleService.Manager {
	return routelifecycleService.New(
		routes,
		orderRegistry,
		orders,
		drivers,
		vehicles,
		txManager,
	)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.FleetReconcileInterval)
}

func provideStatusHandlerFactory(orderRegistry order_event_handle.OrderRegistry) *order_event_handle.StatusHandlerFactory {
	return order_event_handle.NewStatusHandlerFactory(orderRegistry)
}

// provideIntakeService создает intakeService для обработки событий Kafka
func provideIntakeService(
	orderRegistry intakeService.OrderRegistry,
	handlerFactory intakeService.HandlerFactory,
) *intakeService.Service {
	return intakeService.New(orderRegistry, handlerFactory)
}

func provideFleetReconcileTask(
	log logger.Logger,
	fleetService fleet_reconcile.Service,
	interval ReconcileInterval,
) *fleet_reconcile.FleetReconcile {
	return fleet_reconcile.NewFleetReconcile(log, fleetService, time.Duration(interval))
}

func provideTaskList(
	fleetReconcileTask *fleet_reconcile.FleetReconcile,
) []background.Task {
	return []background.Task{
		fleetReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
