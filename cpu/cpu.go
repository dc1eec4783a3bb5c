/*
 * psxcore - MIPS R3000A interpreter: registers, the load/branch-delay
 * pipeline illusion, and the fetch/execute step
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

// Package cpu implements a MIPS R3000A interpreter: instruction decode
// and dispatch, the load-delay and branch-delay pipeline illusion via a
// shadow register file, the coprocessor-0 exception machine, and
// integer overflow/alignment semantics. It drives the emulated machine
// by stepping one instruction at a time through a Bus.
package cpu

import (
	"fmt"
	"log/slog"

	"github.com/go-psx/psxcore/instruction"
)

// Bus is the memory-mapped access surface the CPU drives. An
// *interconnect.Interconnect satisfies this without any adapter.
type Bus interface {
	Load8(addr uint32) (uint8, error)
	Load16(addr uint32) (uint16, error)
	Load32(addr uint32) (uint32, error)
	Store8(addr uint32, value uint8) error
	Store16(addr uint32, value uint16) error
	Store32(addr uint32, value uint32) error
}

// ExceptionKind is a coprocessor-0 exception cause code.
type ExceptionKind uint32

const (
	LoadAddressError  ExceptionKind = 4
	StoreAddressError ExceptionKind = 5
	SysCall           ExceptionKind = 8
	Overflow          ExceptionKind = 12
)

// FatalError reports a condition the interpreter cannot recover from:
// an unrecognized opcode, an out-of-range coprocessor-0 register
// access, or a write to a read-only coprocessor-0 register. It is an
// emulator error, never an emulated CPU exception.
type FatalError struct {
	Op   string
	Addr uint32
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("cpu: %s (%#08x)", e.Op, e.Addr)
}

// loadSlot is the pending load-delay write: register 0 means no-op,
// matching the invariant that a pending load either targets nothing or
// a non-zero register.
type loadSlot struct {
	reg   uint32
	value uint32
}

// CPU is a MIPS R3000A interpreter instance.
type CPU struct {
	pc        uint32
	nextPC    uint32
	currentPC uint32

	regs    [32]uint32
	outRegs [32]uint32

	hi, lo uint32

	sr, cause, epc uint32

	// restrictedCop0 holds the always-zero value of coprocessor-0
	// registers 3, 5, 6, 7, 9 and 11, which accept only writes of zero.
	restrictedCop0 [32]uint32

	load loadSlot

	branch    bool
	delaySlot bool

	bus Bus
	log *slog.Logger
}

// New returns a CPU at its power-on state: pc = 0xBFC00000, every
// general-purpose register except r0 holding the PSX's classic
// uninitialized-register poison value.
func New(bus Bus, log *slog.Logger) *CPU {
	if log == nil {
		log = slog.Default()
	}
	c := &CPU{
		pc:     0xbfc00000,
		nextPC: 0xbfc00004,
		bus:    bus,
		log:    log,
	}
	for i := range c.regs {
		c.regs[i] = 0xdeadbeef
		c.outRegs[i] = 0xdeadbeef
	}
	c.regs[0] = 0
	c.outRegs[0] = 0
	return c
}

// PC returns the address of the instruction about to be fetched.
func (c *CPU) PC() uint32 { return c.pc }

// Reg returns general-purpose register index's current value.
func (c *CPU) Reg(index uint32) uint32 { return c.regs[index] }

// SR returns the coprocessor-0 status register.
func (c *CPU) SR() uint32 { return c.sr }

// SetSR sets the coprocessor-0 status register directly. Exposed for
// callers outside the package; ordinary execution reaches it only
// through MTC0.
func (c *CPU) SetSR(value uint32) { c.sr = value }

// Cause returns the coprocessor-0 cause register.
func (c *CPU) Cause() uint32 { return c.cause }

// EPC returns the coprocessor-0 exception-PC register.
func (c *CPU) EPC() uint32 { return c.epc }

func (c *CPU) reg(index uint32) uint32 { return c.regs[index] }

func (c *CPU) setReg(index uint32, value uint32) {
	c.outRegs[index] = value
	c.outRegs[0] = 0
}

// cacheIsolated reports whether SR bit 16 is set, in which case all
// data loads and stores are silently dropped. The BIOS uses this to
// flush the instruction cache during boot.
func (c *CPU) cacheIsolated() bool {
	return c.sr&0x10000 != 0
}

// RunNextInstruction advances the emulated machine by exactly one
// instruction, per the seven-step procedure: alignment check, fetch,
// PC advance, load-delay resolution, branch-delay promotion, decode
// and execute, and shadow-register commit.
func (c *CPU) RunNextInstruction() error {
	c.currentPC = c.pc

	if c.currentPC%4 != 0 {
		c.exception(LoadAddressError)
		return nil
	}

	data, err := c.bus.Load32(c.pc)
	if err != nil {
		return err
	}

	c.pc = c.nextPC
	c.nextPC += 4

	if c.load.reg != 0 {
		c.outRegs[c.load.reg] = c.load.value
	}
	c.load = loadSlot{}

	c.delaySlot = c.branch
	c.branch = false

	if err := c.execute(instruction.Instruction(data)); err != nil {
		return err
	}

	c.regs = c.outRegs

	return nil
}

// exception enters the coprocessor-0 exception handler: it pushes the
// interrupt-enable/kernel-user mode stack, records the cause and
// faulting PC, and redirects pc/next_pc to the BEV-selected vector.
func (c *CPU) exception(kind ExceptionKind) {
	handler := uint32(0x80000080)
	if c.sr&(1<<22) != 0 {
		handler = 0xbfc00180
	}

	mode := c.sr & 0x3f
	c.sr = (c.sr &^ 0x3f) | ((mode << 2) & 0x3f)

	c.cause = uint32(kind) << 2
	c.epc = c.currentPC
	if c.delaySlot {
		c.epc -= 4
		c.cause |= 1 << 31
	}

	c.pc = handler
	c.nextPC = handler + 4
}
