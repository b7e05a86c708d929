package filter

import (
	"fmt"

	"golang.org/x/net/bpf"
)

// MaxJumpDistance is the largest forward jump a conditional can encode.
// The jt/jf fields of a sock_filter are a single byte each; this is a
// property of the kernel ABI, not something the builder can widen.
const MaxJumpDistance = 255

// JumpRangeError reports a forward jump whose resolved distance does not
// fit the 8-bit jump field. The program cannot be expressed in this
// encoding and must not be installed.
type JumpRangeError struct {
	Distance int
}

func (e *JumpRangeError) Error() string {
	return fmt.Sprintf("jump distance %d exceeds the %d-instruction limit of a BPF conditional", e.Distance, MaxJumpDistance)
}

// PatchPoint is a handle to a conditional jump whose target was unknown
// when it was emitted. It is resolved exactly once via Program.Resolve.
type PatchPoint struct {
	index int
}

// Program is an append-only instruction buffer. Instructions are only ever
// added at the end, so an instruction's index is its final position in the
// installed filter. Freeze assembles the buffer and shuts off mutation.
type Program struct {
	insns   []bpf.Instruction
	pending map[int]struct{}
	frozen  bool
}

func NewProgram() *Program {
	return &Program{pending: map[int]struct{}{}}
}

// Len is the current instruction count, which doubles as the index of the
// next instruction to be emitted.
func (p *Program) Len() int {
	return len(p.insns)
}

// Emit appends instructions in order.
func (p *Program) Emit(insns ...bpf.Instruction) error {
	if p.frozen {
		return fmt.Errorf("emit into a frozen program")
	}
	p.insns = append(p.insns, insns...)
	return nil
}

// EmitRaw appends pre-assembled instructions verbatim. Raw instructions
// pass through Freeze untouched, so a block generated elsewhere keeps its
// exact encoding.
func (p *Program) EmitRaw(block []bpf.RawInstruction) error {
	if p.frozen {
		return fmt.Errorf("emit into a frozen program")
	}
	for _, ins := range block {
		p.insns = append(p.insns, ins)
	}
	return nil
}

// EmitPatchableJumpEq emits a jump-if-equal whose true-branch distance is
// not yet known and returns a PatchPoint for it. The placeholder falls
// through on both outcomes until Resolve rewrites it.
func (p *Program) EmitPatchableJumpEq(val uint32) (PatchPoint, error) {
	if p.frozen {
		return PatchPoint{}, fmt.Errorf("emit into a frozen program")
	}
	idx := len(p.insns)
	p.insns = append(p.insns, JmpEqual(val, 0, 0))
	p.pending[idx] = struct{}{}
	return PatchPoint{index: idx}, nil
}

// Resolve points the patchable jump at the current end of the program,
// i.e. at the next instruction to be emitted. The false branch keeps
// falling through to the instruction right after the jump.
//
// Resolving a point twice, or a handle that never came from
// EmitPatchableJumpEq, is a caller bug and is rejected.
func (p *Program) Resolve(pp PatchPoint) error {
	if p.frozen {
		return fmt.Errorf("resolve on a frozen program")
	}
	if _, ok := p.pending[pp.index]; !ok {
		return fmt.Errorf("patch point %d is not pending (already resolved or never emitted)", pp.index)
	}
	distance := len(p.insns) - pp.index - 1
	if distance > MaxJumpDistance {
		return &JumpRangeError{Distance: distance}
	}
	jump, ok := p.insns[pp.index].(bpf.JumpIf)
	if !ok {
		return fmt.Errorf("patch point %d does not reference a conditional jump", pp.index)
	}
	jump.SkipTrue = uint8(distance)
	p.insns[pp.index] = jump
	delete(p.pending, pp.index)
	return nil
}

// Freeze assembles the program into raw kernel instructions and marks it
// immutable. It fails if any patch point is still unresolved.
func (p *Program) Freeze() ([]bpf.RawInstruction, error) {
	if len(p.pending) != 0 {
		return nil, fmt.Errorf("%d unresolved patch point(s)", len(p.pending))
	}
	raw, err := bpf.Assemble(p.insns)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	p.frozen = true
	return raw, nil
}
