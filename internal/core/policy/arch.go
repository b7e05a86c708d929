// Package policy turns the pre-generated per-architecture allow tables
// into policy blocks and owns the single install entry point used by the
// bootstrap.
package policy

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// ArchPair names the two audit architectures that share one filter: the
// native 64-bit tag and the 32-bit compat tag its processes can still
// invoke syscalls through.
type ArchPair struct {
	Name  string
	Tag64 uint32
	Tag32 uint32
}

var (
	PairX86 = ArchPair{Name: "x86", Tag64: unix.AUDIT_ARCH_X86_64, Tag32: unix.AUDIT_ARCH_I386}
	PairARM = ArchPair{Name: "arm", Tag64: unix.AUDIT_ARCH_AARCH64, Tag32: unix.AUDIT_ARCH_ARM}
)

func pairFor(goarch string) (ArchPair, bool) {
	switch goarch {
	case "amd64":
		return PairX86, true
	case "arm64":
		return PairARM, true
	default:
		return ArchPair{}, false
	}
}

// NativePair returns the pair for the running process. ok is false on any
// other architecture; the gate deliberately installs nothing there.
func NativePair() (ArchPair, bool) {
	return pairFor(runtime.GOARCH)
}

// PairByName resolves "x86" or "arm", used by the dump tool to inspect a
// non-native pair.
func PairByName(name string) (ArchPair, bool) {
	switch name {
	case PairX86.Name:
		return PairX86, true
	case PairARM.Name:
		return PairARM, true
	default:
		return ArchPair{}, false
	}
}
