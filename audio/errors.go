package audio

import "fmt"

// SizeError reports a buffer whose length the DSP core cannot accept:
// a non-power-of-two transform input, or data that would overflow a
// fixed buffer. The offending buffer is left untouched.
type SizeError struct {
	Op  string
	Len int
	Msg string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %s (got length %d)", e.Op, e.Msg, e.Len)
}

// ConversionError reports a numeric narrowing that would lose the
// value entirely, such as converting NaN to a PCM sample.
type ConversionError struct {
	Value float64
	To    string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v to %s", e.Value, e.To)
}

// DeviceError wraps an output-device failure: no device found, or a
// rejected stream configuration. Device errors are fatal.
type DeviceError struct {
	Backend string
	Err     error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s output device: %v", e.Backend, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// ChannelError reports a cross-thread send that could not complete
// because the peer is gone or its queue is full.
type ChannelError struct {
	Ch     string
	Reason string
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s channel: %s", e.Ch, e.Reason)
}
