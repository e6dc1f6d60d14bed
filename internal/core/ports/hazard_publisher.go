package ports

import (
	"context"

	"fleet/internal/core/domain/model/container"
)

// HazardPublisher delivers hazard notices raised by containers to whoever watches
// the fleet. Delivery has no failure mode visible to the caller.
type HazardPublisher interface {
	Publish(ctx context.Context, notice container.HazardNotice)
}
