package filter

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

const (
	testArch64 = uint32(unix.AUDIT_ARCH_X86_64)
	testArch32 = uint32(unix.AUDIT_ARCH_I386)
)

// allowBlock builds the generator-shaped jeq/ret block allowing exactly
// the given syscall numbers, ending in fallthrough.
func allowBlock(t *testing.T, nrs ...uint32) []bpf.RawInstruction {
	t.Helper()
	insns := []bpf.Instruction{}
	for _, nr := range nrs {
		insns = append(insns, JmpEqual(nr, 0, 1), Allow())
	}
	raw, err := bpf.Assemble(insns)
	if err != nil {
		t.Fatalf("assemble block: %v", err)
	}
	return raw
}

func rawTraps(n int) []bpf.RawInstruction {
	block := make([]bpf.RawInstruction, n)
	for i := range block {
		block[i] = bpf.RawInstruction{Op: opRetK, K: unix.SECCOMP_RET_TRAP}
	}
	return block
}

func evaluate(t *testing.T, prog []bpf.RawInstruction, arch, nr uint32) uint32 {
	t.Helper()
	action, err := Evaluate(prog, SeccompData{NR: nr, Arch: arch})
	if err != nil {
		t.Fatalf("evaluate arch=%#x nr=%d: %v", arch, nr, err)
	}
	return action
}

func TestAssembleDispatch(t *testing.T) {
	prog, err := Assemble(testArch64, testArch32, allowBlock(t, 5), allowBlock(t, 7))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	cases := []struct {
		name string
		arch uint32
		nr   uint32
		want uint32
	}{
		{"allowed on 64-bit", testArch64, 5, unix.SECCOMP_RET_ALLOW},
		{"absent on 64-bit", testArch64, 6, unix.SECCOMP_RET_TRAP},
		{"not shared across archs", testArch32, 5, unix.SECCOMP_RET_TRAP},
		{"allowed on 32-bit", testArch32, 7, unix.SECCOMP_RET_ALLOW},
		{"foreign arch", 0xdeadbeef, 5, unix.SECCOMP_RET_TRAP},
		{"foreign arch allowed nr", 0xdeadbeef, 7, unix.SECCOMP_RET_TRAP},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := evaluate(t, prog, tc.arch, tc.nr); got != tc.want {
				t.Fatalf("got %s, want %s", ActionName(got), ActionName(tc.want))
			}
		})
	}
}

func TestAssembleErrnoAction(t *testing.T) {
	insns := []bpf.Instruction{JmpEqual(16, 0, 1), Errno(uint16(unix.EPERM))}
	block, err := bpf.Assemble(insns)
	if err != nil {
		t.Fatalf("assemble block: %v", err)
	}
	prog, err := Assemble(testArch64, testArch32, block, nil)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := uint32(unix.SECCOMP_RET_ERRNO) | uint32(unix.EPERM)
	if got := evaluate(t, prog, testArch64, 16); got != want {
		t.Fatalf("got %s, want %s", ActionName(got), ActionName(want))
	}
}

// Every (arch, nr) combination must reach a terminal instruction; nothing
// may run off the end of the program.
func TestAssembleAlwaysTerminates(t *testing.T) {
	prog, err := Assemble(testArch64, testArch32, allowBlock(t, 0, 5, 9), allowBlock(t, 3))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	arches := []uint32{testArch64, testArch32, 0, 0xdeadbeef}
	for _, arch := range arches {
		for nr := uint32(0); nr < 16; nr++ {
			if _, err := Evaluate(prog, SeccompData{NR: nr, Arch: arch}); err != nil {
				t.Fatalf("arch=%#x nr=%d: %v", arch, nr, err)
			}
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	build := func() []bpf.RawInstruction {
		prog, err := Assemble(testArch64, testArch32, allowBlock(t, 1, 2, 3), allowBlock(t, 4, 5))
		if err != nil {
			t.Fatalf("assemble: %v", err)
		}
		return prog
	}
	if a, b := build(), build(); !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different programs")
	}
}

func TestAssembleOversized64BitBlock(t *testing.T) {
	// 300 instructions push the gate's jump to the 32-bit block past the
	// 8-bit limit: gate(4) + load(1) + 300 + trap(1) puts the target 303
	// instructions after the patched branch.
	_, err := Assemble(testArch64, testArch32, rawTraps(300), nil)
	var rangeErr *JumpRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("assemble = %v, want JumpRangeError", err)
	}
	if rangeErr.Distance != 303 {
		t.Fatalf("distance = %d, want 303", rangeErr.Distance)
	}
}

func TestAssembleLargest64BitBlock(t *testing.T) {
	// 252 instructions put the 32-bit block exactly 255 away
	prog, err := Assemble(testArch64, testArch32, rawTraps(252), allowBlock(t, 9))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got := evaluate(t, prog, testArch32, 9); got != unix.SECCOMP_RET_ALLOW {
		t.Fatalf("32-bit dispatch across max jump: got %s, want allow", ActionName(got))
	}
}

func TestEmbedPolicyBlockCapsFallthrough(t *testing.T) {
	p := NewProgram()
	if err := p.Emit(LoadSyscallNr()); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := EmbedPolicyBlock(p, allowBlock(t, 2)); err != nil {
		t.Fatalf("embed: %v", err)
	}
	prog, err := p.Freeze()
	if err != nil {
		t.Fatalf("freeze: %v", err)
	}

	// nr 3 falls through the block and must land on the embedder's trap
	if got := evaluate(t, prog, 0, 3); got != unix.SECCOMP_RET_TRAP {
		t.Fatalf("fallthrough: got %s, want trap", ActionName(got))
	}
}
