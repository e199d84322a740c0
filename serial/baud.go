package serial

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setBaud maps a plain integer baud rate onto the POSIX termios Bnnnn
// constants and writes it into both the control-mode field and the input/
// output speed fields, matching how glibc's cfsetspeed keeps all three in
// sync on Linux.
func setBaud(t *unix.Termios, baud uint32) error {
	b, ok := baudConstants[baud]
	if !ok {
		return fmt.Errorf("no termios constant for %d baud", baud)
	}
	t.Cflag &^= unix.CBAUD
	t.Cflag |= b
	t.Ispeed = baud
	t.Ospeed = baud
	return nil
}

var baudConstants = map[uint32]uint32{
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}
