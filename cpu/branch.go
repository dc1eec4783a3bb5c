/*
 * psxcore - jump and branch instruction family
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

// branchTo sets the delay-slot successor address to pc + offset, where
// pc is the address of the instruction currently in the delay slot.
func (c *CPU) branchTo(offset uint32) {
	c.nextPC = c.pc + offset
	c.branch = true
}

func (c *CPU) opJ(inst instruction.Instruction) error {
	c.nextPC = (c.pc & 0xf0000000) | (inst.Target() << 2)
	c.branch = true
	return nil
}

func (c *CPU) opJAL(inst instruction.Instruction) error {
	ra := c.nextPC
	if err := c.opJ(inst); err != nil {
		return err
	}
	c.setReg(31, ra)
	return nil
}

func (c *CPU) opJR(inst instruction.Instruction) error {
	c.nextPC = c.reg(inst.RS())
	c.branch = true
	return nil
}

func (c *CPU) opJALR(inst instruction.Instruction) error {
	ra := c.nextPC
	c.nextPC = c.reg(inst.RS())
	c.branch = true
	c.setReg(inst.RD(), ra)
	return nil
}

func (c *CPU) opBEQ(inst instruction.Instruction) error {
	if c.reg(inst.RS()) == c.reg(inst.RT()) {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

func (c *CPU) opBNE(inst instruction.Instruction) error {
	if c.reg(inst.RS()) != c.reg(inst.RT()) {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

func (c *CPU) opBLEZ(inst instruction.Instruction) error {
	if int32(c.reg(inst.RS())) <= 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

func (c *CPU) opBGTZ(inst instruction.Instruction) error {
	if int32(c.reg(inst.RS())) > 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

// opBLTZ takes the branch when rs's sign bit is set. This tests the
// sign bit directly rather than comparing the raw register value
// against a literal 0 or 1, which mishandles the all-ones negative
// case.
func (c *CPU) opBLTZ(inst instruction.Instruction) error {
	if int32(c.reg(inst.RS())) < 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

func (c *CPU) opBGEZ(inst instruction.Instruction) error {
	if int32(c.reg(inst.RS())) >= 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

// opBLTZAL links r31 unconditionally, per the MIPS ISA, even when the
// branch itself is not taken.
func (c *CPU) opBLTZAL(inst instruction.Instruction) error {
	c.setReg(31, c.nextPC)
	if int32(c.reg(inst.RS())) < 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}

func (c *CPU) opBGEZAL(inst instruction.Instruction) error {
	c.setReg(31, c.nextPC)
	if int32(c.reg(inst.RS())) >= 0 {
		c.branchTo(inst.ImmSE() << 2)
	}
	return nil
}
