package filter

// EmitArchGate emits the dispatch prologue of a dual-architecture filter.
// A 64-bit process can still issue 32-bit compat syscalls, and the two
// numbering spaces differ, so the architecture tag has to be checked
// before the syscall number means anything.
//
// Layout:
//
//	ld  seccomp_data.arch
//	jeq arch64, +2          ; over the 32-bit check and the trap
//	jeq arch32, ?           ; patched to the start of the 32-bit block
//	ret trap                ; any other architecture
//
// The 64-bit block follows immediately. The returned PatchPoint must be
// resolved once the 32-bit block's position is known.
func EmitArchGate(p *Program, arch64, arch32 uint32) (PatchPoint, error) {
	if err := p.Emit(LoadArch(), JmpEqual(arch64, 2, 0)); err != nil {
		return PatchPoint{}, err
	}
	pp, err := p.EmitPatchableJumpEq(arch32)
	if err != nil {
		return PatchPoint{}, err
	}
	if err := p.Emit(Trap()); err != nil {
		return PatchPoint{}, err
	}
	return pp, nil
}
