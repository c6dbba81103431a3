package pubsub

import "authcore/internal/domain/service"

// messageAttributes exposes routing metadata without the code itself
func messageAttributes(event *service.OtpEmailEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"purpose":  event.Purpose,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
