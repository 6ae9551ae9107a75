package scale

import (
	"encoding/binary"
	"io"
	"os"
	"time"
)

const (
	defaultDevicePath  = "/dev/usb/hiddev0"
	defaultReadTimeout = 500 * time.Millisecond

	// A hiddev event record consists of four unsigned 32 bit integers, the
	// gram reading occupies the last field
	recordSize = 16
)

// HIDScale denotes a USB HID kitchen scale exposed as a character device
type HIDScale struct {
	devicePath  string
	readTimeout time.Duration

	logger Logger
}

// NewHIDScale instantiates a new HIDScale, executing functional options, if any
func NewHIDScale(options ...func(*HIDScale)) *HIDScale {

	s := &HIDScale{
		devicePath:  defaultDevicePath,
		readTimeout: defaultReadTimeout,
		logger:      &NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(s)
	}

	return s
}

// ReadWeight acquires a single sample from the device. The device node is
// opened per read, so an unplugged scale simply yields the sentinel until it
// reappears on the next tick
func (s *HIDScale) ReadWeight() Sample {

	sample := Sample{
		TimeStamp: time.Now().UTC(),
		Grams:     Unavailable,
	}

	f, err := os.Open(s.devicePath)
	if err != nil {
		s.logger.Warnf("failed to open scale device `%s`: %s", s.devicePath, err)
		return sample
	}
	defer func() {
		_ = f.Close()
	}()

	// Bound the read so a wedged device cannot stall the poll loop
	if err := f.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
		s.logger.Debugf("failed to set read deadline on `%s`: %s", s.devicePath, err)
	}

	var record [recordSize]byte
	if _, err := io.ReadFull(f, record[:]); err != nil {
		s.logger.Warnf("failed to read from scale device `%s`: %s", s.devicePath, err)
		return sample
	}

	sample.Grams = int(binary.LittleEndian.Uint32(record[recordSize-4:]))
	return sample
}

// Close terminates the connection to the device (a no-op, since the device
// node is opened per read)
func (s *HIDScale) Close() error {
	return nil
}
