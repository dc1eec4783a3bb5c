/*
 * psxcore - DMA controller: seven channels plus the global control and
 * interrupt registers
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package dma models the PSX's seven-channel DMA controller: per-channel
// register state (package-level Channel) plus the shared control and
// interrupt registers. The block and linked-list transfers themselves
// are run by the interconnect, which reads this state.
package dma

import "fmt"

// Port identifies one of the seven DMA channels.
type Port uint8

const (
	MdecIn Port = iota
	MdecOut
	GPU
	CDROM
	SPU
	PIO
	OTC
)

// NumPorts is the number of DMA channels.
const NumPorts = 7

func (p Port) String() string {
	switch p {
	case MdecIn:
		return "MDECin"
	case MdecOut:
		return "MDECout"
	case GPU:
		return "GPU"
	case CDROM:
		return "CDROM"
	case SPU:
		return "SPU"
	case PIO:
		return "PIO"
	case OTC:
		return "OTC"
	default:
		return fmt.Sprintf("Port(%d)", uint8(p))
	}
}

// PortFromIndex maps a DMA major register index (0..6) to its Port.
func PortFromIndex(index uint32) (Port, error) {
	if index > uint32(OTC) {
		return 0, fmt.Errorf("dma: invalid port index %d", index)
	}
	return Port(index), nil
}

// Controller owns the seven DMA channels plus the global control and
// interrupt registers.
type Controller struct {
	control uint32

	irqEnable bool

	channelIRQEnable uint8
	channelIRQFlags  uint8

	forceIRQ bool
	irqDummy uint8

	channels [NumPorts]Channel
}

// New returns a Controller in its power-on state.
func New() *Controller {
	return &Controller{control: 0x07654321}
}

// Channel returns the channel for port.
func (d *Controller) Channel(port Port) *Channel {
	return &d.channels[port]
}

// Control returns the global DMA control register.
func (d *Controller) Control() uint32 {
	return d.control
}

// SetControl sets the global DMA control register.
func (d *Controller) SetControl(value uint32) {
	d.control = value
}

func (d *Controller) irq() bool {
	channelIRQ := d.channelIRQFlags & d.channelIRQEnable
	return d.forceIRQ || (d.irqEnable && channelIRQ != 0)
}

// Interrupt returns the packed interrupt register.
func (d *Controller) Interrupt() uint32 {
	var r uint32
	r |= uint32(d.irqDummy)
	r |= b2u(d.forceIRQ) << 15
	r |= uint32(d.channelIRQEnable) << 16
	r |= b2u(d.irqEnable) << 23
	r |= uint32(d.channelIRQFlags) << 24
	r |= b2u(d.irq()) << 31
	return r
}

// SetInterrupt writes the interrupt register. Bits 24..30 are
// write-1-to-clear against the current flags.
func (d *Controller) SetInterrupt(value uint32) {
	d.irqDummy = uint8(value & 0x3f)
	d.forceIRQ = (value>>15)&1 != 0
	d.channelIRQEnable = uint8((value >> 16) & 0x7f)
	d.irqEnable = (value>>23)&1 != 0

	ack := uint8((value >> 24) & 0x7f)
	d.channelIRQFlags &^= ack
}
