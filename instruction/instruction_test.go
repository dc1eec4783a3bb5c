package instruction

import "testing"

func TestFieldExtraction(t *testing.T) {
	// ADDIU r9, r8, -1  encoded as 0b001001 01000 01001 1111111111111111
	word := Instruction(0b001001<<26 | 8<<21 | 9<<16 | 0xffff)

	if op := word.Opcode(); op != 0b001001 {
		t.Errorf("Opcode() = %#b, want 0b001001", op)
	}
	if rs := word.RS(); rs != 8 {
		t.Errorf("RS() = %d, want 8", rs)
	}
	if rt := word.RT(); rt != 9 {
		t.Errorf("RT() = %d, want 9", rt)
	}
	if v := word.ImmSE(); v != 0xffffffff {
		t.Errorf("ImmSE() = %#08x, want 0xffffffff", v)
	}
	if v := word.Imm(); v != 0xffff {
		t.Errorf("Imm() = %#08x, want 0x0000ffff", v)
	}
}

func TestSpecialAndShiftFields(t *testing.T) {
	// SLL r1, r2, 4 -> opcode 0, rt=2, rd=1, sa=4, special=0
	word := Instruction(2<<16 | 1<<11 | 4<<6)

	if word.Opcode() != 0 {
		t.Errorf("Opcode() = %d, want 0", word.Opcode())
	}
	if word.Special() != 0 {
		t.Errorf("Special() = %d, want 0", word.Special())
	}
	if word.RD() != 1 {
		t.Errorf("RD() = %d, want 1", word.RD())
	}
	if word.SA() != 4 {
		t.Errorf("SA() = %d, want 4", word.SA())
	}
}

func TestTargetField(t *testing.T) {
	word := Instruction(0x3ffffff)
	if word.Target() != 0x3ffffff {
		t.Errorf("Target() = %#x, want 0x3ffffff", word.Target())
	}
}
