package service

import "authcore/internal/domain/entity"

// DeviceResolver turns transport-level device hints into a session key and display metadata.
type DeviceResolver interface {
	// Fingerprint prefers the explicit device id and otherwise derives a stable id from IP and user agent.
	Fingerprint(device entity.DeviceContext) string

	// Describe classifies the user agent. It never fails; unknown agents get a generic label.
	Describe(device entity.DeviceContext) entity.DeviceInfo
}
