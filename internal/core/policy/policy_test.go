package policy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"

	"github.com/sandboxkit/seccomp-gate/internal/core/filter"
	"github.com/sandboxkit/seccomp-gate/internal/static"
)

func resetConfig(t *testing.T) {
	t.Helper()
	// point at a missing file so the built-in defaults apply
	if err := static.InitConfig(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("init config: %v", err)
	}
}

func evaluate(t *testing.T, prog []bpf.RawInstruction, arch, nr uint32) uint32 {
	t.Helper()
	action, err := filter.Evaluate(prog, filter.SeccompData{NR: nr, Arch: arch})
	if err != nil {
		t.Fatalf("evaluate arch=%#x nr=%d: %v", arch, nr, err)
	}
	return action
}

func TestBuildProgramDispositions(t *testing.T) {
	resetConfig(t)

	prog, err := BuildProgram(PairX86)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	cases := []struct {
		name string
		arch uint32
		nr   uint32
		want uint32
	}{
		{"read on x86_64", PairX86.Tag64, 0, unix.SECCOMP_RET_ALLOW},
		{"read on i386", PairX86.Tag32, 3, unix.SECCOMP_RET_ALLOW},
		{"x86_64 number under i386 tag", PairX86.Tag32, 0, unix.SECCOMP_RET_TRAP},
		{"socket blocked by default", PairX86.Tag64, 41, unix.SECCOMP_RET_TRAP},
		{"ioctl fails soft", PairX86.Tag64, 16, uint32(unix.SECCOMP_RET_ERRNO) | uint32(unix.EPERM)},
		{"foreign arch tag", uint32(unix.AUDIT_ARCH_PPC64), 0, unix.SECCOMP_RET_TRAP},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluate(t, prog, tc.arch, tc.nr); got != tc.want {
				t.Fatalf("got %s, want %s", filter.ActionName(got), filter.ActionName(tc.want))
			}
		})
	}
}

func TestBuildProgramDeterministic(t *testing.T) {
	resetConfig(t)

	for _, pair := range []ArchPair{PairX86, PairARM} {
		a, err := BuildProgram(pair)
		if err != nil {
			t.Fatalf("%s: build: %v", pair.Name, err)
		}
		b, err := BuildProgram(pair)
		if err != nil {
			t.Fatalf("%s: build: %v", pair.Name, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: identical inputs produced different programs", pair.Name)
		}
	}
}

func TestDisableSyscallOverride(t *testing.T) {
	resetConfig(t)
	t.Setenv("DISABLE_SYSCALL", "0")

	prog, err := BuildProgram(PairX86)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := evaluate(t, prog, PairX86.Tag64, 0); got != unix.SECCOMP_RET_TRAP {
		t.Fatalf("disabled syscall: got %s, want trap", filter.ActionName(got))
	}
	// everything else keeps its disposition
	if got := evaluate(t, prog, PairX86.Tag64, 1); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("write: got %s, want allow", filter.ActionName(got))
	}
}

func TestAllowedSyscallsOverride(t *testing.T) {
	resetConfig(t)
	t.Setenv("ALLOWED_SYSCALLS", "1, 2,bogus,60")

	prog, err := BuildProgram(PairX86)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := evaluate(t, prog, PairX86.Tag64, 1); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("listed syscall: got %s, want allow", filter.ActionName(got))
	}
	if got := evaluate(t, prog, PairX86.Tag64, 0); got != unix.SECCOMP_RET_TRAP {
		t.Fatalf("unlisted syscall: got %s, want trap", filter.ActionName(got))
	}
	// the override replaces the native 64-bit table only
	if got := evaluate(t, prog, PairX86.Tag32, 3); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("compat read: got %s, want allow", filter.ActionName(got))
	}
}

func TestEnableNetworkConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	conf := "policy:\n  enable_network: true\n"
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := static.InitConfig(path); err != nil {
		t.Fatalf("init config: %v", err)
	}
	t.Cleanup(func() { resetConfig(t) })

	prog, err := BuildProgram(PairX86)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := evaluate(t, prog, PairX86.Tag64, 41); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("socket with network enabled: got %s, want allow", filter.ActionName(got))
	}
	if got := evaluate(t, prog, PairX86.Tag32, 359); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("compat socket with network enabled: got %s, want allow", filter.ActionName(got))
	}
}

func TestExtraAllowConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	conf := "policy:\n  extra_allow: [499]\n"
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := static.InitConfig(path); err != nil {
		t.Fatalf("init config: %v", err)
	}
	t.Cleanup(func() { resetConfig(t) })

	prog, err := BuildProgram(PairX86)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := evaluate(t, prog, PairX86.Tag64, 499); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("extra allow: got %s, want allow", filter.ActionName(got))
	}
	// extras apply to the native table only
	if got := evaluate(t, prog, PairX86.Tag32, 499); got != unix.SECCOMP_RET_TRAP {
		t.Fatalf("extra allow on compat: got %s, want trap", filter.ActionName(got))
	}
}
