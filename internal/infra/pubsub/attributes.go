package pubsub

import (
	"context"
	"strings"

	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/entity"
)

// transitionAttributes are attached to every transported event for filtering and tracing.
func transitionAttributes(ctx context.Context, event *entity.TransitionEvent) map[string]string {
	attributes := map[string]string{
		"transition": event.Kind.String(),
	}
	if event.DeviceID != "" {
		attributes["device_id"] = event.DeviceID
	}
	if len(event.Regions) > 0 {
		attributes["region_ids"] = strings.Join(event.Regions, ",")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes[deliverycontext.AttrRequestID] = requestID
	}

	return attributes
}
