package kernel

import "sync"

// SerialCounter hands out serial sequence values. One counter is shared by every
// container variant; values start at 1, increase by one and are never reused.
type SerialCounter struct {
	mu   sync.Mutex
	last uint64
}

// NewSerialCounter returns a counter whose first Next call yields 1.
func NewSerialCounter() *SerialCounter {
	return &SerialCounter{}
}

// ResumeSerialCounter returns a counter whose first Next call yields last+1, for a
// registry that already issued sequences up to last.
func ResumeSerialCounter(last uint64) *SerialCounter {
	return &SerialCounter{last: last}
}

// Next reserves the next sequence value and returns the serial number for kind.
// A rejected kind does not consume a value.
func (c *SerialCounter) Next(kind ContainerKind) (SerialNumber, error) {
	if err := kind.Validate(); err != nil {
		return SerialNumber{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.last++
	return NewSerialNumber(kind, c.last)
}

// Last returns the most recently issued sequence value, 0 before the first call.
func (c *SerialCounter) Last() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
