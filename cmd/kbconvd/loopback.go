package main

import "example.com/kbconv/kbconv"

// loopbackTransport is a zero-hardware kbconv.Transport for smoke-testing
// kbconvd without a real serial line: Send accepts and discards every byte,
// and Recv never yields anything, so the identify command is sent but never
// ACKed. The lifecycle records ID 0xFFFE, classifies the device as AT, and
// then idles in Loop.
type loopbackTransport struct {
	led byte
	err kbconv.TransportError
}

func newLoopbackTransport() *loopbackTransport {
	return &loopbackTransport{}
}

func (l *loopbackTransport) Send(b byte) bool { return true }
func (l *loopbackTransport) Recv() (byte, bool) { return 0, false }
func (l *loopbackTransport) SetLED(mask byte)  { l.led = mask }
func (l *loopbackTransport) Init() error        { return nil }
func (l *loopbackTransport) Reset() error       { return nil }
func (l *loopbackTransport) Error() kbconv.TransportError { return l.err }
func (l *loopbackTransport) ClearError()        { l.err = kbconv.ErrNone }
