// Package filter assembles seccomp BPF programs. A program is built as a
// sequence of golang.org/x/net/bpf instructions and frozen into the raw
// sock_filter records the kernel consumes.
package filter

import (
	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

// offsets into struct seccomp_data
const (
	seccompDataOffsetNR   = 0
	seccompDataOffsetArch = 4
)

// Allow lets the syscall proceed.
func Allow() bpf.Instruction {
	return bpf.RetConstant{Val: unix.SECCOMP_RET_ALLOW}
}

// Kill and Trace are not used by the default policy but are kept for
// debugging and future development.

// Kill terminates the whole process, not just the calling thread.
func Kill() bpf.Instruction {
	return bpf.RetConstant{Val: unix.SECCOMP_RET_KILL_PROCESS}
}

// Trap delivers SIGSYS to the calling thread.
func Trap() bpf.Instruction {
	return bpf.RetConstant{Val: unix.SECCOMP_RET_TRAP}
}

// Errno fails the syscall with the given errno instead of executing it.
func Errno(code uint16) bpf.Instruction {
	return bpf.RetConstant{Val: unix.SECCOMP_RET_ERRNO | uint32(code)&unix.SECCOMP_RET_DATA}
}

// Trace notifies an attached tracer, if any.
func Trace() bpf.Instruction {
	return bpf.RetConstant{Val: unix.SECCOMP_RET_TRACE}
}

// LoadSyscallNr loads seccomp_data.nr into the accumulator.
func LoadSyscallNr() bpf.Instruction {
	return bpf.LoadAbsolute{Off: seccompDataOffsetNR, Size: 4}
}

// LoadArch loads seccomp_data.arch (an AUDIT_ARCH_* tag) into the accumulator.
func LoadArch() bpf.Instruction {
	return bpf.LoadAbsolute{Off: seccompDataOffsetArch, Size: 4}
}

// JmpEqual compares the accumulator against val and skips skipTrue or
// skipFalse instructions depending on the outcome.
func JmpEqual(val uint32, skipTrue, skipFalse uint8) bpf.Instruction {
	return bpf.JumpIf{Cond: bpf.JumpEqual, Val: val, SkipTrue: skipTrue, SkipFalse: skipFalse}
}
