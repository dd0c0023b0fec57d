package cpu

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/ushitora-anqou/gbcore/bus"
	"github.com/ushitora-anqou/gbcore/util"
)

type CPU struct {
	mem bus.Memory

	pc, sp                 uint16
	a, f, b, c, d, e, h, l uint8
	ime                    bool  // Interrupt Master Enable flag (IME)
	eiDelay                uint8 // steps left until EI takes effect
	halted                 bool
}

// NewCPU returns a CPU holding the register values the DMG boot ROM leaves
// behind, so execution starts at the cartridge entry point.
func NewCPU(mem bus.Memory) *CPU {
	return &CPU{
		mem: mem,
		a:   0x01,
		f:   0xb0,
		b:   0x00,
		c:   0x13,
		d:   0x00,
		e:   0xd8,
		h:   0x01,
		l:   0x4d,
		sp:  0xfffe,
		pc:  0x0100,
		ime: false,
	}
}

func (cpu *CPU) PC() uint16 {
	return cpu.pc
}
func (cpu *CPU) SP() uint16 {
	return cpu.sp
}
func (cpu *CPU) A() uint8 {
	return cpu.a
}
func (cpu *CPU) F() uint8 {
	return cpu.f
}
func (cpu *CPU) B() uint8 {
	return cpu.b
}
func (cpu *CPU) C() uint8 {
	return cpu.c
}
func (cpu *CPU) D() uint8 {
	return cpu.d
}
func (cpu *CPU) E() uint8 {
	return cpu.e
}
func (cpu *CPU) H() uint8 {
	return cpu.h
}
func (cpu *CPU) L() uint8 {
	return cpu.l
}
func (cpu *CPU) AF() uint16 {
	return (uint16(cpu.a) << 8) | uint16(cpu.f)
}
func (cpu *CPU) BC() uint16 {
	return (uint16(cpu.b) << 8) | uint16(cpu.c)
}
func (cpu *CPU) DE() uint16 {
	return (uint16(cpu.d) << 8) | uint16(cpu.e)
}
func (cpu *CPU) HL() uint16 {
	return (uint16(cpu.h) << 8) | uint16(cpu.l)
}
func (cpu *CPU) IME() bool {
	return cpu.ime
}
func (cpu *CPU) Halted() bool {
	return cpu.halted
}
func (cpu *CPU) SetSP(sp uint16) {
	cpu.sp = sp
}
func (cpu *CPU) IncPC(val int) {
	cpu.pc = uint16(int(cpu.pc) + val)
}
func (cpu *CPU) SetA(a uint8) {
	cpu.a = a
}

// SetF stores the flags. The low nibble of F always reads as zero.
func (cpu *CPU) SetF(f uint8) {
	cpu.f = f & 0xf0
}
func (cpu *CPU) SetB(b uint8) {
	cpu.b = b
}
func (cpu *CPU) SetC(c uint8) {
	cpu.c = c
}
func (cpu *CPU) SetD(d uint8) {
	cpu.d = d
}
func (cpu *CPU) SetE(e uint8) {
	cpu.e = e
}
func (cpu *CPU) SetH(h uint8) {
	cpu.h = h
}
func (cpu *CPU) SetL(l uint8) {
	cpu.l = l
}
func (cpu *CPU) SetAF(af uint16) {
	cpu.a = uint8(af >> 8)
	cpu.SetF(uint8(af))
}
func (cpu *CPU) SetBC(bc uint16) {
	cpu.b = uint8(bc >> 8)
	cpu.c = uint8(bc)
}
func (cpu *CPU) SetDE(de uint16) {
	cpu.d = uint8(de >> 8)
	cpu.e = uint8(de)
}
func (cpu *CPU) SetHL(hl uint16) {
	cpu.h = uint8(hl >> 8)
	cpu.l = uint8(hl)
}
func (cpu *CPU) FlagZ() bool {
	return ((cpu.f & (1 << 7)) != 0)
}
func (cpu *CPU) FlagN() bool {
	return ((cpu.f & (1 << 6)) != 0)
}
func (cpu *CPU) FlagH() bool {
	return ((cpu.f & (1 << 5)) != 0)
}
func (cpu *CPU) FlagC() bool {
	return ((cpu.f & (1 << 4)) != 0)
}
func (cpu *CPU) SetFlag(flag bool, n uint) {
	if flag {
		cpu.f |= (1 << n)
	} else {
		cpu.f &= compl(1 << n)
	}
}
func (cpu *CPU) SetFlagZ(flag bool) {
	cpu.SetFlag(flag, 7)
}
func (cpu *CPU) SetFlagN(flag bool) {
	cpu.SetFlag(flag, 6)
}
func (cpu *CPU) SetFlagH(flag bool) {
	cpu.SetFlag(flag, 5)
}
func (cpu *CPU) SetFlagC(flag bool) {
	cpu.SetFlag(flag, 4)
}
func (cpu *CPU) SetFlagZNHC(z, n, h, c bool) {
	cpu.SetFlagZ(z)
	cpu.SetFlagN(n)
	cpu.SetFlagH(h)
	cpu.SetFlagC(c)
}
func (cpu *CPU) SetIME(flag bool) {
	cpu.ime = flag
	cpu.eiDelay = 0
}

// getReg reads r8 operand num: B C D E H L (HL) A.
func (cpu *CPU) getReg(num uint8) uint8 {
	switch num & 0x07 {
	case 0:
		return cpu.b
	case 1:
		return cpu.c
	case 2:
		return cpu.d
	case 3:
		return cpu.e
	case 4:
		return cpu.h
	case 5:
		return cpu.l
	case 6:
		return cpu.mem.Get8(cpu.HL())
	}
	return cpu.a
}

func (cpu *CPU) setReg(dst, val uint8) {
	switch dst & 0x07 {
	case 0:
		cpu.b = val
	case 1:
		cpu.c = val
	case 2:
		cpu.d = val
	case 3:
		cpu.e = val
	case 4:
		cpu.h = val
	case 5:
		cpu.l = val
	case 6:
		cpu.mem.Set8(cpu.HL(), val)
	case 7:
		cpu.a = val
	}
}

// getReg16 reads r16 operand dst: BC DE HL and then SP or AF.
func (cpu *CPU) getReg16(dst uint8, is3rdSP bool) uint16 {
	switch dst & 0x03 {
	case 0:
		return cpu.BC()
	case 1:
		return cpu.DE()
	case 2:
		return cpu.HL()
	}
	if is3rdSP {
		return cpu.sp
	}
	return cpu.AF()
}

func (cpu *CPU) setReg16(dst uint8, val uint16, is3rdSP bool) {
	switch dst & 0x03 {
	case 0:
		cpu.SetBC(val)
	case 1:
		cpu.SetDE(val)
	case 2:
		cpu.SetHL(val)
	case 3:
		if is3rdSP {
			cpu.sp = val
		} else {
			cpu.SetAF(val)
		}
	}
}

func (cpu *CPU) fetch8() uint8 {
	val := cpu.mem.Get8(cpu.pc)
	cpu.pc++
	return val
}

func (cpu *CPU) fetch16() uint16 {
	val := cpu.mem.Get16(cpu.pc)
	cpu.pc += 2
	return val
}

func (cpu *CPU) push16(val uint16) {
	cpu.sp -= 2
	cpu.mem.Set16(cpu.sp, val)
}

func (cpu *CPU) pop16() uint16 {
	val := cpu.mem.Get16(cpu.sp)
	cpu.sp += 2
	return val
}

// condition evaluates cc operand index: NZ Z NC C.
func (cpu *CPU) condition(index uint8) bool {
	switch index & 0x03 {
	case 0:
		return !cpu.FlagZ()
	case 1:
		return cpu.FlagZ()
	case 2:
		return !cpu.FlagC()
	}
	return cpu.FlagC()
}

// Step executes one instruction, or dispatches one interrupt, or idles for
// one machine cycle while halted. The elapsed clocks are fed to the bus
// before returning.
func (cpu *CPU) Step() (uint, error) {
	cycles, err := cpu.step()
	if err != nil {
		return 0, err
	}
	cpu.mem.Tick(cycles)
	return cycles, nil
}

func (cpu *CPU) step() (uint, error) {
	if cpu.eiDelay > 0 {
		cpu.eiDelay--
		if cpu.eiDelay == 0 {
			cpu.ime = true
		}
	}

	if cycles, ok := cpu.serviceInterrupt(); ok {
		return cycles, nil
	}
	if cpu.halted {
		return haltCycles, nil
	}

	pc := cpu.pc
	opcode := cpu.fetch8()
	if util.TraceEnabled() {
		cpu.trace(pc, opcode)
	}

	cycles, err := cpu.execute(opcode)
	if err != nil {
		cpu.pc = pc
		return 0, err
	}
	return cycles, nil
}

// serviceInterrupt wakes a halted CPU on any pending enabled interrupt and,
// with IME set, jumps to the vector of the highest priority one.
func (cpu *CPU) serviceInterrupt() (uint, bool) {
	pending := bus.Pending(cpu.mem.IE(), cpu.mem.IF())
	if pending == 0 {
		return 0, false
	}
	cpu.halted = false
	if !cpu.ime {
		return 0, false
	}

	irq, _ := pending.Next()
	if util.TraceEnabled() {
		util.Trace("Interrupt", log.Stringer("source", irq), log.Hex("pc", cpu.pc))
	}
	cpu.ime = false
	cpu.mem.SetIF(cpu.mem.IF() &^ uint8(irq))
	cpu.push16(cpu.pc)
	cpu.pc = irq.Vector()
	return interruptCycles, true
}

func (cpu *CPU) trace(pc uint16, opcode uint8) {
	util.Trace("Execute",
		log.Hex("pc", pc),
		log.Hex("opcode", opcode),
		log.Hex("af", cpu.AF()),
		log.Hex("bc", cpu.BC()),
		log.Hex("de", cpu.DE()),
		log.Hex("hl", cpu.HL()),
		log.Hex("sp", cpu.sp))
}
