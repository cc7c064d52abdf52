package service

import (
	"ubjewellers/internal/domain/entity"
)

// DashboardNotifier pushes order book changes to live admin dashboards.
type DashboardNotifier interface {
	Publish(event entity.DashboardEvent)
}
