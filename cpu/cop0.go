/*
 * psxcore - coprocessor-0 access: MFC0, MTC0, RFE
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

package cpu

import "github.com/go-psx/psxcore/instruction"

// restrictedCop0Register reports whether index is one of the
// coprocessor-0 registers that tolerate only a write of zero.
func restrictedCop0Register(index uint32) bool {
	switch index {
	case 3, 5, 6, 7, 9, 11:
		return true
	default:
		return false
	}
}

func (c *CPU) executeCop0(inst instruction.Instruction) error {
	switch inst.Cop0Op() {
	case 0x00:
		return c.opMFC0(inst)
	case 0x04:
		return c.opMTC0(inst)
	case 0x10:
		return c.opRFE(inst)
	default:
		return &FatalError{Op: "unhandled coprocessor-0 sub-opcode", Addr: uint32(inst)}
	}
}

func (c *CPU) opMFC0(inst instruction.Instruction) error {
	cop0Reg := inst.RD()

	var value uint32
	switch cop0Reg {
	case 12:
		value = c.sr
	case 13:
		value = c.cause
	case 14:
		value = c.epc
	default:
		if !restrictedCop0Register(cop0Reg) {
			return &FatalError{Op: "read of unhandled cop0 register", Addr: cop0Reg}
		}
		value = c.restrictedCop0[cop0Reg]
	}

	c.load = loadSlot{reg: inst.RT(), value: value}
	return nil
}

func (c *CPU) opMTC0(inst instruction.Instruction) error {
	cop0Reg := inst.RD()
	value := c.reg(inst.RT())

	switch cop0Reg {
	case 12:
		c.sr = value
	case 13:
		if value != 0 {
			return &FatalError{Op: "write of nonzero value to CAUSE", Addr: value}
		}
	default:
		if !restrictedCop0Register(cop0Reg) {
			return &FatalError{Op: "write to unhandled cop0 register", Addr: cop0Reg}
		}
		if value != 0 {
			return &FatalError{Op: "write of nonzero value to restricted cop0 register", Addr: value}
		}
		c.restrictedCop0[cop0Reg] = 0
	}
	return nil
}

func (c *CPU) opRFE(inst instruction.Instruction) error {
	if inst.Special() != 0b010000 {
		return &FatalError{Op: "malformed RFE encoding", Addr: uint32(inst)}
	}
	mode := c.sr & 0x3f
	c.sr &^= 0xf
	c.sr |= (mode >> 2) & 0xf
	return nil
}
