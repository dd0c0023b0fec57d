package cpu

func compl(v uint8) uint8 {
	return 0xff ^ v
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func bitN8(n uint8, index uint8) bool {
	return ((n >> index) & 1) != 0
}

func add8(x, y uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	sum := x + y + b2u8(carry)
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 7) != 0
	return sum, carryOut
}

func add4(xu8, yu8 uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	x, y := xu8&0x0f, yu8&0x0f
	sum := (x + y + b2u8(carry)) & 0x0f
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 3) != 0
	return sum, carryOut
}

func sub8(x, y uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	diff := x - y - b2u8(borrow)
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 7) != 0
	return diff, borrowOut
}

func sub4(xu8, yu8 uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	x, y := xu8&0x0f, yu8&0x0f
	diff := (x - y - b2u8(borrow)) & 0x0f
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 3) != 0
	return diff, borrowOut
}

// alu applies one of the eight accumulator operations, indexed as they are
// laid out in the 0x80-0xbf block: ADD ADC SUB SBC AND XOR OR CP.
func (cpu *CPU) alu(op uint8, val uint8) {
	var res uint8
	n, h, c := false, false, false
	switch op {
	case 0: // ADD
		res, c = add8(cpu.a, val, false)
		_, h = add4(cpu.a, val, false)
	case 1: // ADC
		res, c = add8(cpu.a, val, cpu.FlagC())
		_, h = add4(cpu.a, val, cpu.FlagC())
	case 2: // SUB
		res, c = sub8(cpu.a, val, false)
		_, h = sub4(cpu.a, val, false)
		n = true
	case 3: // SBC
		res, c = sub8(cpu.a, val, cpu.FlagC())
		_, h = sub4(cpu.a, val, cpu.FlagC())
		n = true
	case 4: // AND
		res = cpu.a & val
		h = true
	case 5: // XOR
		res = cpu.a ^ val
	case 6: // OR
		res = cpu.a | val
	case 7: // CP
		res, c = sub8(cpu.a, val, false)
		_, h = sub4(cpu.a, val, false)
		n = true
		cpu.SetFlagZNHC(res == 0, n, h, c)
		return
	}
	cpu.a = res
	cpu.SetFlagZNHC(res == 0, n, h, c)
}

func (cpu *CPU) addHL(val uint16) {
	hl := cpu.HL()
	sum := uint32(hl) + uint32(val)
	cpu.SetFlagN(false)
	cpu.SetFlagH((hl&0x0fff)+(val&0x0fff) > 0x0fff)
	cpu.SetFlagC(sum > 0xffff)
	cpu.SetHL(uint16(sum))
}

// addSPOffset computes SP+e8 with the flags ADD SP,e8 and LD HL,SP+e8 share.
func (cpu *CPU) addSPOffset(e uint8) uint16 {
	sp := cpu.sp
	_, h := add4(uint8(sp), e, false)
	_, c := add8(uint8(sp), e, false)
	cpu.SetFlagZNHC(false, false, h, c)
	return uint16(int(sp) + int(int8(e)))
}

func (cpu *CPU) daa() {
	a := cpu.a
	carry := cpu.FlagC()
	if !cpu.FlagN() {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if cpu.FlagH() || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if cpu.FlagH() {
			a -= 0x06
		}
	}
	cpu.a = a
	cpu.SetFlagZ(a == 0)
	cpu.SetFlagH(false)
	cpu.SetFlagC(carry)
}

// shift applies one of the CB-prefixed rotate/shift operations:
// RLC RRC RL RR SLA SRA SWAP SRL. The returned carry is the bit shifted out.
func (cpu *CPU) shift(op uint8, val uint8) (uint8, bool) {
	carryIn := b2u8(cpu.FlagC())
	switch op {
	case 0: // RLC
		return val<<1 | val>>7, bitN8(val, 7)
	case 1: // RRC
		return val>>1 | val<<7, bitN8(val, 0)
	case 2: // RL
		return val<<1 | carryIn, bitN8(val, 7)
	case 3: // RR
		return val>>1 | carryIn<<7, bitN8(val, 0)
	case 4: // SLA
		return val << 1, bitN8(val, 7)
	case 5: // SRA
		return val>>1 | val&0x80, bitN8(val, 0)
	case 6: // SWAP
		return val<<4 | val>>4, false
	}
	// SRL
	return val >> 1, bitN8(val, 0)
}
