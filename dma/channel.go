/*
 * psxcore - DMA channel register state
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

package dma

import "fmt"

// Direction is the transfer direction of a DMA channel.
type Direction uint8

const (
	ToRam Direction = iota
	FromRam
)

// Step is the address stepping direction of a DMA channel.
type Step uint8

const (
	Increment Step = iota
	Decrement
)

// Sync is the channel's synchronization mode.
type Sync uint8

const (
	Manual Sync = iota
	Request
	LinkedList
)

// Channel holds the per-channel control, block-control, and base-address
// registers of one of the seven DMA ports.
type Channel struct {
	enable      bool
	direction   Direction
	step        Step
	sync        Sync
	trigger     bool
	chop        bool
	chopDMASize uint8
	chopCPUSize uint8
	dummy       uint8

	base uint32

	blockSize  uint16
	blockCount uint16
}

// Base returns the 24-bit channel base address.
func (c *Channel) Base() uint32 {
	return c.base
}

// SetBase sets the channel base address, masked to 24 bits.
func (c *Channel) SetBase(value uint32) {
	c.base = value & 0xffffff
}

// BlockControl returns the packed block-size/block-count register.
func (c *Channel) BlockControl() uint32 {
	bs := uint32(c.blockSize)
	bc := uint32(c.blockCount)
	return (bc << 16) | bs
}

// SetBlockControl unpacks the block-size/block-count register.
func (c *Channel) SetBlockControl(value uint32) {
	c.blockSize = uint16(value)
	c.blockCount = uint16(value >> 16)
}

// Active reports whether the channel is currently enabled for transfer:
// always true once enabled except in Manual sync, which additionally
// requires the trigger bit.
func (c *Channel) Active() bool {
	trigger := c.trigger
	if c.sync != Manual {
		trigger = true
	}
	return c.enable && trigger
}

// Control returns the packed channel control word.
func (c *Channel) Control() uint32 {
	var r uint32
	r |= uint32(c.direction) << 0
	r |= uint32(c.step) << 1
	r |= b2u(c.chop) << 8
	r |= uint32(c.sync) << 9
	r |= uint32(c.chopDMASize) << 16
	r |= uint32(c.chopCPUSize) << 20
	r |= b2u(c.enable) << 24
	r |= b2u(c.trigger) << 28
	r |= uint32(c.dummy) << 29
	return r
}

// SetControl unpacks a channel control word.
func (c *Channel) SetControl(value uint32) error {
	if value&1 != 0 {
		c.direction = FromRam
	} else {
		c.direction = ToRam
	}

	if (value>>1)&1 != 0 {
		c.step = Decrement
	} else {
		c.step = Increment
	}

	c.chop = (value>>8)&1 != 0

	switch (value >> 9) & 3 {
	case 0:
		c.sync = Manual
	case 1:
		c.sync = Request
	case 2:
		c.sync = LinkedList
	default:
		return &InvalidSyncError{Value: (value >> 9) & 3}
	}

	c.chopDMASize = uint8((value >> 16) & 7)
	c.chopCPUSize = uint8((value >> 20) & 7)

	c.enable = (value>>24)&1 != 0
	c.trigger = (value>>28)&1 != 0
	c.dummy = uint8((value >> 29) & 3)

	return nil
}

// Direction reports the channel's configured transfer direction.
func (c *Channel) Direction() Direction { return c.direction }

// DMAStep reports the channel's configured address stepping direction.
func (c *Channel) DMAStep() Step { return c.step }

// SyncMode reports the channel's configured synchronization mode.
func (c *Channel) SyncMode() Sync { return c.sync }

// TransferSize returns the word count for Manual and Request sync modes.
// LinkedList has no fixed size; ok is false in that case.
func (c *Channel) TransferSize() (size uint32, ok bool) {
	bs := uint32(c.blockSize)
	bc := uint32(c.blockCount)

	switch c.sync {
	case Manual:
		return bs, true
	case Request:
		return bc * bs, true
	default:
		return 0, false
	}
}

// Done clears enable and trigger, marking the channel's transfer complete.
func (c *Channel) Done() {
	c.enable = false
	c.trigger = false
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// InvalidSyncError reports an out-of-range sync-mode field in a channel
// control word. This is an emulator error, not an emulated exception.
type InvalidSyncError struct {
	Value uint32
}

func (e *InvalidSyncError) Error() string {
	return fmt.Sprintf("dma: unknown sync mode %d", e.Value)
}
