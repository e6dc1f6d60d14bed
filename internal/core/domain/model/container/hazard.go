package container

import "fleet/internal/core/domain/model/kernel"

// HazardOverfillMessage is the notice raised when a liquid load passes its fill limit.
const HazardOverfillMessage = "Przekroczono maksymalna ladownosc!"

// HazardNotifier is implemented by variants whose cargo can pose a hazard.
type HazardNotifier interface {
	NotifyHazard(message string)
}

// HazardReporter lets the application layer collect the notices a container raised,
// so they reach a publisher even when the operation that raised them failed.
type HazardReporter interface {
	HazardNotifier
	PullHazardNotices() []HazardNotice
}

// HazardNotice is one hazard notification tagged with the container's serial number.
type HazardNotice struct {
	Serial  kernel.SerialNumber
	Message string
}

// hazardLog buffers notices until they are pulled.
type hazardLog struct {
	notices []HazardNotice
}

func (h *hazardLog) record(serial kernel.SerialNumber, message string) {
	h.notices = append(h.notices, HazardNotice{Serial: serial, Message: message})
}

func (h *hazardLog) pull() []HazardNotice {
	out := h.notices
	h.notices = nil
	return out
}
