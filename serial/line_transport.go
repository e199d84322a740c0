// Package serial bridges kbconv.Transport to a real host tty, for bring-up
// against a PS/2-to-serial or PS/2-to-USB adapter. The core protocol package
// never imports this one back.
package serial

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"

	"example.com/kbconv/kbconv"
)

// LineTransport implements kbconv.Transport over a host tty put into raw 8N1
// mode, grounded on core_engine/network/tap_device.go's pattern of opening a
// device node and configuring it via golang.org/x/sys/unix ioctls before
// handing the fd to the rest of the system.
type LineTransport struct {
	fd   int
	path string
	led  byte
	err  kbconv.TransportError
}

// Open opens path (e.g. "/dev/ttyUSB0") and puts it into raw 8N1 mode at the
// given baud rate.
func Open(path string, baud uint32) (*LineTransport, error) {
	fd, err := syscall.Open(path, syscall.O_RDWR|syscall.O_NOCTTY|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", path, err)
	}

	t := &LineTransport{fd: fd, path: path}
	if err := t.setRaw(baud); err != nil {
		syscall.Close(fd)
		return nil, err
	}
	return t, nil
}

func (t *LineTransport) setRaw(baud uint32) error {
	termios, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("serial: get termios on %s: %w", t.path, err)
	}

	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0

	if err := setBaud(termios, baud); err != nil {
		return fmt.Errorf("serial: unsupported baud rate %d on %s: %w", baud, t.path, err)
	}

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("serial: set termios on %s: %w", t.path, err)
	}
	return nil
}

// Init re-applies a fresh raw-mode configuration at 9600 baud (spec §6
// Transport.init()).
func (t *LineTransport) Init() error {
	return t.setRaw(9600)
}

// Reset drops and re-opens nothing by itself; it simply clears the sticky
// error flag, matching the teacher's TapDevice which has no reset concept
// beyond close/reopen at the composition-root layer.
func (t *LineTransport) Reset() error {
	t.err = kbconv.ErrNone
	return nil
}

// Send writes one byte to the line. A write failure sets the sticky
// send-error flag and reports false rather than returning a Go error,
// matching spec §6's Transport.send(byte) -> ok|fail contract.
func (t *LineTransport) Send(b byte) bool {
	buf := [1]byte{b}
	_, err := syscall.Write(t.fd, buf[:])
	if err != nil {
		t.err = kbconv.ErrSend
		return false
	}
	return true
}

// Recv reads one byte if available. EAGAIN/EWOULDBLOCK on a non-blocking fd
// means "no data, not an error" — exactly as TapDevice.ReadPacket treats
// those errnos.
func (t *LineTransport) Recv() (byte, bool) {
	var buf [1]byte
	n, err := syscall.Read(t.fd, buf[:])
	if err != nil {
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			return 0, false
		}
		t.err = kbconv.ErrReceive
		return 0, false
	}
	if n == 0 {
		return 0, false
	}
	return buf[0], true
}

// SetLED remembers the last LED mask pushed down the wire; real hardware
// bring-up would translate this into the keyboard's 0xED command sequence,
// which is a lifecycle-layer concern, not this transport's.
func (t *LineTransport) SetLED(mask byte) {
	t.led = mask
}

// Error reports the sticky transport error flag (spec §6).
func (t *LineTransport) Error() kbconv.TransportError {
	return t.err
}

// ClearError clears the sticky transport error flag.
func (t *LineTransport) ClearError() {
	t.err = kbconv.ErrNone
}

// Close releases the underlying file descriptor.
func (t *LineTransport) Close() error {
	return syscall.Close(t.fd)
}
