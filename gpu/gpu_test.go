package gpu

import "testing"

func TestPowerOnStatus(t *testing.T) {
	g := New()
	status := g.Status()

	if status>>23&1 == 0 {
		t.Errorf("display_disable bit not set at power-on")
	}
	if status>>26&7 != 7 {
		t.Errorf("ready bits (26-28) = %#x, want all set", (status>>26)&7)
	}
}

func TestGP0DrawModeUpdatesStatusBits(t *testing.T) {
	g := New()

	value := uint32(0xe1<<24) | 0x1f | (1 << 4) | (1 << 9)
	if err := g.GP0(value); err != nil {
		t.Fatalf("GP0: %v", err)
	}

	status := g.Status()
	if status&0xf != 0xf {
		t.Errorf("page_base_x = %#x, want 0xf", status&0xf)
	}
	if (status>>4)&1 != 1 {
		t.Errorf("page_base_y bit not set")
	}
	if (status>>9)&1 != 1 {
		t.Errorf("dithering bit not set")
	}
}

func TestGP0MultiWordCommandWaitsForAllWords(t *testing.T) {
	g := New()

	// 0x28 (quad mono opaque) takes 5 words; the command stays pending
	// (and no error is raised) until the last word arrives.
	if err := g.GP0(0x28 << 24); err != nil {
		t.Fatalf("GP0 word 0: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := g.GP0(0); err != nil {
			t.Fatalf("GP0 word %d: %v", i+1, err)
		}
	}
	if g.gp0CommandRemaining != 1 {
		t.Errorf("gp0CommandRemaining = %d, want 1 before final word", g.gp0CommandRemaining)
	}
	if err := g.GP0(0); err != nil {
		t.Fatalf("GP0 final word: %v", err)
	}
	if g.gp0CommandRemaining != 0 {
		t.Errorf("gp0CommandRemaining = %d, want 0 after final word", g.gp0CommandRemaining)
	}
}

func TestGP0UnknownOpcodeIsError(t *testing.T) {
	g := New()
	if err := g.GP0(0xff << 24); err == nil {
		t.Errorf("GP0 with unhandled opcode returned nil error")
	}
}

func TestGP0ImageLoadSwitchesMode(t *testing.T) {
	g := New()

	if err := g.GP0(0xa0 << 24); err != nil {
		t.Fatalf("GP0 opcode word: %v", err)
	}
	if err := g.GP0(0); err != nil { // dest coords
		t.Fatalf("GP0 coord word: %v", err)
	}
	// width=4, height=2 => image_size=8, remaining words = 4 (2 px/word)
	if err := g.GP0(4 | (2 << 16)); err != nil {
		t.Fatalf("GP0 size word: %v", err)
	}

	if g.gp0Mode != modeImageLoad {
		t.Fatalf("gp0Mode = %v, want modeImageLoad", g.gp0Mode)
	}
	if g.gp0CommandRemaining != 4 {
		t.Errorf("gp0CommandRemaining = %d, want 4", g.gp0CommandRemaining)
	}

	for i := uint32(0); i < 4; i++ {
		if err := g.GP0(0); err != nil {
			t.Fatalf("GP0 pixel word %d: %v", i, err)
		}
	}
	if g.gp0Mode != modeCommand {
		t.Errorf("gp0Mode = %v, want modeCommand after image load completes", g.gp0Mode)
	}
}

func TestGP0DrawingOffsetSignExtends(t *testing.T) {
	g := New()

	// x = -1 (0x7ff), y = -1 (0x7ff)
	value := uint32(0xe5<<24) | 0x7ff | (0x7ff << 11)
	if err := g.GP0(value); err != nil {
		t.Fatalf("GP0: %v", err)
	}

	if g.drawingXOffset != -1 {
		t.Errorf("drawingXOffset = %d, want -1", g.drawingXOffset)
	}
	if g.drawingYOffset != -1 {
		t.Errorf("drawingYOffset = %d, want -1", g.drawingYOffset)
	}
}

func TestGP1ResetClearsState(t *testing.T) {
	g := New()
	_ = g.GP0(uint32(0xe6<<24) | 1) // set mask bit force

	if err := g.GP1(0x00 << 24); err != nil {
		t.Fatalf("GP1 reset: %v", err)
	}

	if g.maskSetForce {
		t.Errorf("maskSetForce still set after GP1 reset")
	}
	if g.displayDisable != true {
		t.Errorf("displayDisable = false after reset, want true")
	}
}

func TestGP1DMADirectionAffectsStatusRequestBit(t *testing.T) {
	g := New()

	if err := g.GP1(uint32(0x04<<24) | 1); err != nil { // FIFO
		t.Fatalf("GP1: %v", err)
	}
	if g.Status()>>25&1 != 1 {
		t.Errorf("dma request bit not set for FIFO direction")
	}

	if err := g.GP1(uint32(0x04<<24) | 0); err != nil { // Off
		t.Fatalf("GP1: %v", err)
	}
	if g.Status()>>25&1 != 0 {
		t.Errorf("dma request bit set for Off direction")
	}
}

func TestGP1DisplayModeUnsupportedBitIsError(t *testing.T) {
	g := New()
	if err := g.GP1(uint32(0x08<<24) | 0x80); err == nil {
		t.Errorf("GP1 display mode with reserved bit 7 set returned nil error")
	}
}

func TestGP1UnknownOpcodeIsError(t *testing.T) {
	g := New()
	if err := g.GP1(0xff << 24); err == nil {
		t.Errorf("GP1 with unhandled opcode returned nil error")
	}
}
