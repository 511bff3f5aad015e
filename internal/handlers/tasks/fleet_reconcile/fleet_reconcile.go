package fleet_reconcile

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	ReconcileAvailability(ctx context.Context) (int64, error)
}

// FleetReconcile страхует инвариант занятости: если водитель или машина
// остались занятыми без активных заказов, фоновая сверка их отпускает.
type FleetReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewFleetReconcile(log logger.Logger, service Service, interval time.Duration) *FleetReconcile {
	return &FleetReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (f *FleetReconcile) TTL() time.Duration {
	return f.interval
}

func (f *FleetReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, f.interval)
	defer cancel()

	released, err := f.service.ReconcileAvailability(ctxWithTimeout)

	if released > 0 {
		f.log.With(
			logger.NewField("released_resources", released),
		).Info("fleet reconcile")
	}

	return err
}

func (f *FleetReconcile) Info() string {
	return "fleet reconcile"
}
