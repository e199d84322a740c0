// Command kbconvd is a thin composition root: it wires a transport (a real
// serial.LineTransport, or an in-memory loopback for smoke-testing without
// hardware) to a kbconv.DeviceContext and drives the periodic scan loop. It
// contains no protocol logic of its own.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"example.com/kbconv/kbconv"
	"example.com/kbconv/scancode"
	"example.com/kbconv/serial"
)

func main() {
	device := flag.String("device", "", "serial device node to bridge (e.g. /dev/ttyUSB0); empty uses an in-memory loopback transport")
	baud := flag.Uint("baud", 9600, "baud rate for -device")
	tick := flag.Duration("tick", 5*time.Millisecond, "interval between scan ticks")
	flag.Parse()

	logger := kbconv.NewStdLogger(log.New(os.Stderr, "kbconvd: ", log.LstdFlags))

	var transport kbconv.Transport
	if *device != "" {
		lt, err := serial.Open(*device, uint32(*baud))
		if err != nil {
			log.Fatalf("kbconvd: %v", err)
		}
		defer lt.Close()
		transport = lt
	} else {
		transport = newLoopbackTransport()
	}

	host := &stubHost{}
	timer := kbconv.SystemTimer{}
	actions := scancode.NewActionTable(nil)

	ctx := kbconv.NewDeviceContext(transport, timer, host, logger, actions)

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	for range ticker.C {
		if ctx.MatrixScan() && ctx.State() == kbconv.StateLoop {
			dumpMatrix(ctx)
		}
	}
}

// dumpMatrix prints every currently-held matrix row, for bring-up debugging.
func dumpMatrix(ctx *kbconv.DeviceContext) {
	for row := uint8(0); row < scancode.MatrixRows; row++ {
		if r := ctx.MatrixGetRow(row); r != 0 {
			log.Printf("kbconvd: row 0x%02X = 0x%02X (keys held: %d)", row, r, ctx.MatrixKeyCount())
		}
	}
}

// stubHost is a minimal kbconv.Host for the demo binary: it reports no LEDs
// lit and discards clear-keyboard requests, since kbconvd has no real host
// key-state tracker to flush.
type stubHost struct{}

func (stubHost) KeyboardLEDs() byte { return 0 }
func (stubHost) ClearKeyboard()     {}
