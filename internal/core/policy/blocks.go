package policy

import (
	"fmt"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"

	"github.com/sandboxkit/seccomp-gate/internal/core/filter"
	"github.com/sandboxkit/seccomp-gate/internal/static"
)

// errno returned for the soft-fail table
const errnoCode = uint16(unix.EPERM)

// compileBlock renders allow and soft-fail tables into the block shape the
// offline generator emits: one jeq/ret pair per syscall, ending in
// fallthrough. The embedder caps the fallthrough with its own trap, so the
// block stays self-contained and relocatable.
func compileBlock(allow []int, errs []int) ([]bpf.RawInstruction, error) {
	insns := make([]bpf.Instruction, 0, 2*(len(allow)+len(errs)))
	for _, nr := range allow {
		insns = append(insns, filter.JmpEqual(uint32(nr), 0, 1), filter.Allow())
	}
	for _, nr := range errs {
		insns = append(insns, filter.JmpEqual(uint32(nr), 0, 1), filter.Errno(errnoCode))
	}
	return bpf.Assemble(insns)
}

// tablesFor looks up the generated tables for one audit architecture.
func tablesFor(tag uint32) (allow []int, errs []int, network []int, err error) {
	switch tag {
	case unix.AUDIT_ARCH_X86_64:
		return static.ALLOW_SYSCALLS_X86_64, static.ALLOW_ERROR_SYSCALLS_X86_64, static.ALLOW_NETWORK_SYSCALLS_X86_64, nil
	case unix.AUDIT_ARCH_I386:
		return static.ALLOW_SYSCALLS_I386, static.ALLOW_ERROR_SYSCALLS_I386, static.ALLOW_NETWORK_SYSCALLS_I386, nil
	case unix.AUDIT_ARCH_AARCH64:
		return static.ALLOW_SYSCALLS_AARCH64, static.ALLOW_ERROR_SYSCALLS_AARCH64, static.ALLOW_NETWORK_SYSCALLS_AARCH64, nil
	case unix.AUDIT_ARCH_ARM:
		return static.ALLOW_SYSCALLS_ARM, static.ALLOW_ERROR_SYSCALLS_ARM, static.ALLOW_NETWORK_SYSCALLS_ARM, nil
	default:
		return nil, nil, nil, fmt.Errorf("no policy table for audit arch %#08x", tag)
	}
}
