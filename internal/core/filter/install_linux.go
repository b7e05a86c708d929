package filter

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

// the kernel refuses larger programs (BPF_MAXINSNS)
const maxProgramLen = 4096

// InstallError reports the kernel rejecting the assembled program. The
// process is running without the filter and must not continue; that
// decision belongs to the caller.
type InstallError struct {
	Errno syscall.Errno
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("kernel rejected seccomp filter: %v", e.Errno)
}

// SetNoNewPrivs sets the no_new_privs bit for the calling thread. The
// kernel requires it before an unprivileged process may attach a filter.
func SetNoNewPrivs() error {
	if _, _, errno := syscall.RawSyscall6(syscall.SYS_PRCTL, unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0, 0); errno != 0 {
		return fmt.Errorf("prctl(PR_SET_NO_NEW_PRIVS) failed: %v", errno)
	}
	return nil
}

// Install attaches the program as the active seccomp filter for the
// current process and its future descendants, in one prctl call. The
// attach is irreversible: from the moment it succeeds every syscall the
// process makes runs through the filter, and later filters can only
// narrow it further.
func Install(prog []bpf.RawInstruction) error {
	if len(prog) == 0 {
		return fmt.Errorf("refusing to install an empty filter")
	}
	if len(prog) > maxProgramLen {
		return fmt.Errorf("filter program has %d instructions, kernel limit is %d", len(prog), maxProgramLen)
	}

	sock_filters := make([]syscall.SockFilter, 0, len(prog))
	for _, ins := range prog {
		sock_filters = append(sock_filters, syscall.SockFilter{
			Code: ins.Op,
			Jt:   ins.Jt,
			Jf:   ins.Jf,
			K:    ins.K,
		})
	}

	fprog := syscall.SockFprog{
		Len:    uint16(len(sock_filters)),
		Filter: &sock_filters[0],
	}

	if err := SetNoNewPrivs(); err != nil {
		return err
	}

	_, _, errno := syscall.RawSyscall6(
		syscall.SYS_PRCTL,
		syscall.PR_SET_SECCOMP,
		unix.SECCOMP_MODE_FILTER,
		uintptr(unsafe.Pointer(&fprog)),
		0, 0, 0,
	)
	if errno != 0 {
		return &InstallError{Errno: errno}
	}
	return nil
}
