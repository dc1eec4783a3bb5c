/*
 * psxcore - multiply/divide instruction family
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

func (c *CPU) opMFHI(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.hi)
	return nil
}

func (c *CPU) opMTHI(inst instruction.Instruction) error {
	c.hi = c.reg(inst.RS())
	return nil
}

func (c *CPU) opMFLO(inst instruction.Instruction) error {
	c.setReg(inst.RD(), c.lo)
	return nil
}

func (c *CPU) opMTLO(inst instruction.Instruction) error {
	c.lo = c.reg(inst.RS())
	return nil
}

func (c *CPU) opMULTU(inst instruction.Instruction) error {
	product := uint64(c.reg(inst.RS())) * uint64(c.reg(inst.RT()))
	c.hi = uint32(product >> 32)
	c.lo = uint32(product)
	return nil
}

// opDIV implements signed division with the R3000A's documented
// quirks: division by zero doesn't trap; it leaves the dividend in hi
// and a lo of the opposite sign (0xFFFFFFFF for a non-negative
// dividend, 1 for a negative one); the one case that would overflow a
// 32-bit signed quotient (MinInt32 / -1) yields 0 in hi and 0x80000000
// in lo.
func (c *CPU) opDIV(inst instruction.Instruction) error {
	n := int32(c.reg(inst.RS()))
	d := int32(c.reg(inst.RT()))

	switch {
	case d == 0:
		c.hi = uint32(n)
		if n >= 0 {
			c.lo = 0xffffffff
		} else {
			c.lo = 1
		}
	case uint32(n) == 0x80000000 && d == -1:
		c.hi = 0
		c.lo = 0x80000000
	default:
		c.hi = uint32(n % d)
		c.lo = uint32(n / d)
	}
	return nil
}

func (c *CPU) opDIVU(inst instruction.Instruction) error {
	n := c.reg(inst.RS())
	d := c.reg(inst.RT())

	if d == 0 {
		c.hi = n
		c.lo = 0xffffffff
		return nil
	}
	c.hi = n % d
	c.lo = n / d
	return nil
}
