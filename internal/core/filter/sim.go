package filter

import (
	"fmt"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

// SeccompData is the part of the kernel's struct seccomp_data the emitted
// programs inspect.
type SeccompData struct {
	NR   uint32
	Arch uint32
}

// opcodes this package emits
const (
	opLoadAbs = unix.BPF_LD | unix.BPF_W | unix.BPF_ABS
	opJmpEqK  = unix.BPF_JMP | unix.BPF_JEQ | unix.BPF_K
	opRetK    = unix.BPF_RET | unix.BPF_K
)

// Evaluate interprets a frozen program against one syscall event and
// returns the SECCOMP_RET_* action it would produce. It understands only
// the opcode subset this package emits; anything else, an out-of-range
// load, or execution running off the end of the program is an error.
func Evaluate(prog []bpf.RawInstruction, data SeccompData) (uint32, error) {
	var acc uint32
	for pc := 0; pc < len(prog); pc++ {
		ins := prog[pc]
		switch ins.Op {
		case opLoadAbs:
			switch ins.K {
			case seccompDataOffsetNR:
				acc = data.NR
			case seccompDataOffsetArch:
				acc = data.Arch
			default:
				return 0, fmt.Errorf("load from unexpected seccomp_data offset %d at pc %d", ins.K, pc)
			}
		case opJmpEqK:
			if acc == ins.K {
				pc += int(ins.Jt)
			} else {
				pc += int(ins.Jf)
			}
		case opRetK:
			return ins.K, nil
		default:
			return 0, fmt.Errorf("unsupported opcode %#04x at pc %d", ins.Op, pc)
		}
	}
	return 0, fmt.Errorf("program ran off the end without returning")
}

// ActionName renders a SECCOMP_RET_* value for logs and the dump tool.
func ActionName(action uint32) string {
	code := action & unix.SECCOMP_RET_DATA
	switch action & unix.SECCOMP_RET_ACTION_FULL {
	case unix.SECCOMP_RET_ALLOW:
		return "allow"
	case unix.SECCOMP_RET_KILL_PROCESS:
		return "kill_process"
	case unix.SECCOMP_RET_KILL_THREAD:
		return "kill_thread"
	case unix.SECCOMP_RET_TRAP:
		return "trap"
	case unix.SECCOMP_RET_ERRNO:
		return fmt.Sprintf("errno(%d)", code)
	case unix.SECCOMP_RET_TRACE:
		return "trace"
	default:
		return fmt.Sprintf("unknown(%#08x)", action)
	}
}
