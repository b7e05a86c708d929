package filter

import (
	"fmt"

	"golang.org/x/net/bpf"
)

// EmbedPolicyBlock appends a pre-generated per-architecture policy block
// verbatim, then caps it with a Trap. The blocks are treated as opaque
// data; they may legitimately end in fallthrough, and the cap guarantees
// the path terminates either way.
func EmbedPolicyBlock(p *Program, block []bpf.RawInstruction) error {
	if err := p.EmitRaw(block); err != nil {
		return err
	}
	return p.Emit(Trap())
}

// Assemble builds the complete dual-architecture filter program:
// architecture gate, 64-bit policy block, back-patch of the gate's 32-bit
// branch, 32-bit policy block. The result is frozen and ready for Install.
//
// The build is deterministic: identical inputs produce byte-identical
// programs.
func Assemble(arch64, arch32 uint32, block64, block32 []bpf.RawInstruction) ([]bpf.RawInstruction, error) {
	p := NewProgram()

	jumpTo32, err := EmitArchGate(p, arch64, arch32)
	if err != nil {
		return nil, err
	}

	if err := p.Emit(LoadSyscallNr()); err != nil {
		return nil, err
	}
	if err := EmbedPolicyBlock(p, block64); err != nil {
		return nil, err
	}

	// 32-bit syscalls cannot hit anything between the gate and here
	if err := p.Resolve(jumpTo32); err != nil {
		return nil, fmt.Errorf("32-bit dispatch: %w", err)
	}

	if err := p.Emit(LoadSyscallNr()); err != nil {
		return nil, err
	}
	if err := EmbedPolicyBlock(p, block32); err != nil {
		return nil, err
	}

	return p.Freeze()
}
