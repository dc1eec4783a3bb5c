/*
 * psxcore - interactive single-step debug console
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

package machine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
)

// commands is the set of words Console's completer and dispatcher
// recognize.
var commands = []string{"step", "regs", "continue", "quit"}

// Console is an optional interactive front-end: a liner-backed prompt
// loop issuing single-step and register-dump commands against a
// Machine.
type Console struct {
	m    *Machine
	line *liner.State
}

// NewConsole returns a Console wired to m.
func NewConsole(m *Machine) *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		var matches []string
		for _, c := range commands {
			if strings.HasPrefix(c, in) {
				matches = append(matches, c)
			}
		}
		return matches
	})

	return &Console{m: m, line: line}
}

// Close releases the underlying line-editor state.
func (c *Console) Close() error {
	return c.line.Close()
}

// Run reads commands from stdin until the user enters continue or
// quit, or aborts with Ctrl-C. Run returns in all three cases without
// reporting which one occurred, so continue and quit look the same to
// its caller; Run itself never resumes free-running execution.
func (c *Console) Run() {
	for {
		input, err := c.line.Prompt("psx> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("console: reading line", "err", err)
			return
		}
		c.line.AppendHistory(input)

		switch strings.TrimSpace(input) {
		case "step", "s":
			if err := c.m.CPU.RunNextInstruction(); err != nil {
				fmt.Println("error:", err)
			}
			c.printRegs()
		case "regs", "r":
			c.printRegs()
		case "continue", "c", "quit", "q":
			return
		case "":
		default:
			fmt.Println("unknown command:", input)
		}
	}
}

func (c *Console) printRegs() {
	fmt.Printf("pc=%#08x sr=%#08x cause=%#08x epc=%#08x\n",
		c.m.CPU.PC(), c.m.CPU.SR(), c.m.CPU.Cause(), c.m.CPU.EPC())
}
