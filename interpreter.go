// interpreter.go - fetch/decode/execute for the full required R3000A
// instruction set, grounded on the original reference's
// r3000_interpreter.c semantics (deliberately diverging from it in one
// place: an unrecognized opcode raises ReservedInstruction rather than
// aborting the process)

package main

// Step executes exactly one instruction, advancing the PC triple and
// branch-delay bookkeeping before decode so that a raised exception
// correctly overwrites the speculative PC advance.
func (s *System) Step() {
	c := &s.cpu

	c.currentPC = c.pc
	word := s.fetch(c.currentPC)

	c.pc = c.nextPC
	c.nextPC += 4

	c.branchDelay = c.branch
	c.branch = false

	s.execute(instruction(word))
}

func overflow32(a, b, result uint32) bool {
	return (^(a ^ b) & (a ^ result) & 0x80000000) != 0
}

func (s *System) execute(i instruction) {
	c := &s.cpu

	switch i.opcode() {
	case opSpecial:
		s.executeSpecial(i)
	case opBcond:
		s.executeBcond(i)
	case opJ:
		c.jump((c.pc & 0xf0000000) | (i.target() << 2))
	case opJAL:
		c.writeReg(31, c.nextPC)
		c.jump((c.pc & 0xf0000000) | (i.target() << 2))
	case opBEQ:
		if c.reg(i.rs()) == c.reg(i.rt()) {
			c.branchTo(i.immSE() << 2)
		}
	case opBNE:
		if c.reg(i.rs()) != c.reg(i.rt()) {
			c.branchTo(i.immSE() << 2)
		}
	case opBLEZ:
		if int32(c.reg(i.rs())) <= 0 {
			c.branchTo(i.immSE() << 2)
		}
	case opBGTZ:
		if int32(c.reg(i.rs())) > 0 {
			c.branchTo(i.immSE() << 2)
		}
	case opADDI:
		a := c.reg(i.rs())
		b := i.immSE()
		r := a + b
		if overflow32(a, b, r) {
			c.raise(ExceptionOverflow)
			return
		}
		c.writeReg(i.rt(), r)
	case opADDIU:
		c.writeReg(i.rt(), c.reg(i.rs())+i.immSE())
	case opSLTI:
		c.writeReg(i.rt(), boolToWord(int32(c.reg(i.rs())) < int32(i.immSE())))
	case opSLTIU:
		c.writeReg(i.rt(), boolToWord(c.reg(i.rs()) < i.immSE()))
	case opANDI:
		c.writeReg(i.rt(), c.reg(i.rs())&i.imm())
	case opORI:
		c.writeReg(i.rt(), c.reg(i.rs())|i.imm())
	case opXORI:
		c.writeReg(i.rt(), c.reg(i.rs())^i.imm())
	case opLUI:
		c.writeReg(i.rt(), i.imm()<<16)
	case opCOP0:
		s.executeCop0(i)
	case opCOP2:
		c.raise(ExceptionCoprocessorUnusable)
	case opLB:
		addr := c.reg(i.rs()) + i.immSE()
		c.writeReg(i.rt(), uint32(int32(int8(s.dataRead8(addr)))))
	case opLBU:
		addr := c.reg(i.rs()) + i.immSE()
		c.writeReg(i.rt(), uint32(s.dataRead8(addr)))
	case opLH:
		addr := c.reg(i.rs()) + i.immSE()
		if addr&1 != 0 {
			c.raise(ExceptionAddressLoad)
			return
		}
		c.writeReg(i.rt(), uint32(int32(int16(s.dataRead16(addr)))))
	case opLHU:
		addr := c.reg(i.rs()) + i.immSE()
		if addr&1 != 0 {
			c.raise(ExceptionAddressLoad)
			return
		}
		c.writeReg(i.rt(), uint32(s.dataRead16(addr)))
	case opLW:
		addr := c.reg(i.rs()) + i.immSE()
		if addr&3 != 0 {
			c.raise(ExceptionAddressLoad)
			return
		}
		c.writeReg(i.rt(), s.dataRead32(addr))
	case opLWL:
		s.executeLWL(i)
	case opLWR:
		s.executeLWR(i)
	case opSB:
		addr := c.reg(i.rs()) + i.immSE()
		s.dataWrite8(addr, byte(c.reg(i.rt())))
	case opSH:
		addr := c.reg(i.rs()) + i.immSE()
		if addr&1 != 0 {
			c.raise(ExceptionAddressStore)
			return
		}
		s.dataWrite16(addr, uint16(c.reg(i.rt())))
	case opSW:
		addr := c.reg(i.rs()) + i.immSE()
		if addr&3 != 0 {
			c.raise(ExceptionAddressStore)
			return
		}
		s.dataWrite32(addr, c.reg(i.rt()))
	case opSWL:
		s.executeSWL(i)
	case opSWR:
		s.executeSWR(i)
	case opLWC2, opSWC2:
		c.raise(ExceptionCoprocessorUnusable)
	default:
		c.raise(ExceptionReservedInstruction)
	}
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// lwlShiftTable/lwrShiftTable implement the byte-merge table for LWL/LWR
// keyed on addr&3. LWL loads into the high-order bytes of rt, starting at
// the addressed byte and working down toward the word's low end, so its
// shift decreases as addr&3 increases (addr&3==0 keeps only the top byte,
// addr&3==3 loads the whole word). LWR is the mirror image, loading into
// the low-order bytes with shift increasing as addr&3 increases. SWL/SWR
// share the same tables for the store direction.
var lwlShiftTable = [4]uint{24, 16, 8, 0}
var lwrShiftTable = [4]uint{0, 8, 16, 24}

func (s *System) executeLWL(i instruction) {
	c := &s.cpu
	addr := c.reg(i.rs()) + i.immSE()
	aligned := addr &^ 3
	word := s.dataRead32(aligned)

	shift := lwlShiftTable[addr&3]
	mask := uint32(0xFFFFFFFF) << shift
	cur := c.reg(i.rt())
	c.writeReg(i.rt(), (cur &^ mask) | (word << shift))
}

func (s *System) executeLWR(i instruction) {
	c := &s.cpu
	addr := c.reg(i.rs()) + i.immSE()
	aligned := addr &^ 3
	word := s.dataRead32(aligned)

	shift := lwrShiftTable[addr&3]
	mask := uint32(0xFFFFFFFF) >> shift
	cur := c.reg(i.rt())
	c.writeReg(i.rt(), (cur &^ mask) | (word >> shift))
}

func (s *System) executeSWL(i instruction) {
	c := &s.cpu
	addr := c.reg(i.rs()) + i.immSE()
	aligned := addr &^ 3
	cur := s.dataRead32(aligned)
	rt := c.reg(i.rt())

	shift := lwlShiftTable[addr&3]
	mask := uint32(0xFFFFFFFF) >> shift
	s.dataWrite32(aligned, (cur &^ mask) | (rt >> shift))
}

func (s *System) executeSWR(i instruction) {
	c := &s.cpu
	addr := c.reg(i.rs()) + i.immSE()
	aligned := addr &^ 3
	cur := s.dataRead32(aligned)
	rt := c.reg(i.rt())

	shift := lwrShiftTable[addr&3]
	mask := uint32(0xFFFFFFFF) << shift
	s.dataWrite32(aligned, (cur &^ mask) | (rt << shift))
}

func (s *System) executeBcond(i instruction) {
	c := &s.cpu
	v := int32(c.reg(i.rs()))
	link := (i.rt() & 0x1e) == 0x10

	var taken bool
	switch i.rt() & 1 {
	case 0:
		taken = v < 0
	case 1:
		taken = v >= 0
	}

	if link {
		c.writeReg(31, c.nextPC)
	}
	if taken {
		c.branchTo(i.immSE() << 2)
	}
}

func (s *System) executeSpecial(i instruction) {
	c := &s.cpu
	rs, rt, rd, sh := i.rs(), i.rt(), i.rd(), i.shift()

	switch i.fn() {
	case fnSLL:
		c.writeReg(rd, c.reg(rt)<<sh)
	case fnSRL:
		c.writeReg(rd, c.reg(rt)>>sh)
	case fnSRA:
		c.writeReg(rd, uint32(int32(c.reg(rt))>>sh))
	case fnSLLV:
		c.writeReg(rd, c.reg(rt)<<(c.reg(rs)&0x1f))
	case fnSRLV:
		c.writeReg(rd, c.reg(rt)>>(c.reg(rs)&0x1f))
	case fnSRAV:
		c.writeReg(rd, uint32(int32(c.reg(rt))>>(c.reg(rs)&0x1f)))
	case fnJR:
		c.jump(c.reg(rs))
	case fnJALR:
		link := c.nextPC
		c.jump(c.reg(rs))
		c.writeReg(rd, link)
	case fnSYSCALL:
		c.raise(ExceptionSyscall)
	case fnBREAK:
		c.raise(ExceptionBreakpoint)
	case fnMFHI:
		c.writeReg(rd, c.reg(regHI))
	case fnMTHI:
		c.writeReg(regHI, c.reg(rs))
	case fnMFLO:
		c.writeReg(rd, c.reg(regLO))
	case fnMTLO:
		c.writeReg(regLO, c.reg(rs))
	case fnMULT:
		a := int64(int32(c.reg(rs)))
		b := int64(int32(c.reg(rt)))
		r := uint64(a * b)
		c.writeReg(regLO, uint32(r))
		c.writeReg(regHI, uint32(r>>32))
	case fnMULTU:
		r := uint64(c.reg(rs)) * uint64(c.reg(rt))
		c.writeReg(regLO, uint32(r))
		c.writeReg(regHI, uint32(r>>32))
	case fnDIV:
		s.executeDiv(rs, rt)
	case fnDIVU:
		s.executeDivu(rs, rt)
	case fnADD:
		a, b := c.reg(rs), c.reg(rt)
		r := a + b
		if overflow32(a, b, r) {
			c.raise(ExceptionOverflow)
			return
		}
		c.writeReg(rd, r)
	case fnADDU:
		c.writeReg(rd, c.reg(rs)+c.reg(rt))
	case fnSUB:
		a, b := c.reg(rs), c.reg(rt)
		r := a - b
		if overflow32(a, ^b+1, r) {
			c.raise(ExceptionOverflow)
			return
		}
		c.writeReg(rd, r)
	case fnSUBU:
		c.writeReg(rd, c.reg(rs)-c.reg(rt))
	case fnAND:
		c.writeReg(rd, c.reg(rs)&c.reg(rt))
	case fnOR:
		c.writeReg(rd, c.reg(rs)|c.reg(rt))
	case fnXOR:
		c.writeReg(rd, c.reg(rs)^c.reg(rt))
	case fnNOR:
		c.writeReg(rd, ^(c.reg(rs) | c.reg(rt)))
	case fnSLT:
		c.writeReg(rd, boolToWord(int32(c.reg(rs)) < int32(c.reg(rt))))
	case fnSLTU:
		c.writeReg(rd, boolToWord(c.reg(rs) < c.reg(rt)))
	default:
		c.raise(ExceptionReservedInstruction)
	}
}

// executeDiv implements DIV's documented edge cases: division by zero
// yields LO=-1 (sign-adjusted per dividend sign by the reference) and
// HI=dividend; INT32_MIN/-1 yields LO=INT32_MIN, HI=0, avoiding the Go
// runtime's trap on that quotient.
func (s *System) executeDiv(rs, rt uint) {
	c := &s.cpu
	n := int32(c.reg(rs))
	d := int32(c.reg(rt))

	switch {
	case d == 0:
		c.writeReg(regHI, uint32(n))
		if n >= 0 {
			c.writeReg(regLO, 0xFFFFFFFF)
		} else {
			c.writeReg(regLO, 1)
		}
	case n == -0x80000000 && d == -1:
		c.writeReg(regLO, 0x80000000)
		c.writeReg(regHI, 0)
	default:
		c.writeReg(regLO, uint32(n/d))
		c.writeReg(regHI, uint32(n%d))
	}
}

func (s *System) executeDivu(rs, rt uint) {
	c := &s.cpu
	n := c.reg(rs)
	d := c.reg(rt)

	if d == 0 {
		c.writeReg(regLO, 0xFFFFFFFF)
		c.writeReg(regHI, n)
		return
	}
	c.writeReg(regLO, n/d)
	c.writeReg(regHI, n%d)
}

func (s *System) executeCop0(i instruction) {
	c := &s.cpu
	switch i.rs() {
	case cop0MF:
		v, ok := c.cop0.read(uint(i.rd()))
		if !ok {
			c.raise(ExceptionReservedInstruction)
			return
		}
		c.writeReg(i.rt(), v)
	case cop0MT:
		if !c.cop0.write(uint(i.rd()), c.reg(i.rt())) {
			c.raise(ExceptionReservedInstruction)
		}
	case cop0RFE:
		if i.fn() != cop0RFEFunc {
			c.raise(ExceptionReservedInstruction)
			return
		}
		c.exitException()
	default:
		c.raise(ExceptionReservedInstruction)
	}
}
