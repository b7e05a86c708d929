package policy

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestPairFor(t *testing.T) {
	cases := []struct {
		goarch string
		want   string
		ok     bool
	}{
		{"amd64", "x86", true},
		{"arm64", "arm", true},
		{"386", "", false},
		{"arm", "", false},
		{"riscv64", "", false},
		{"ppc64le", "", false},
	}
	for _, tc := range cases {
		pair, ok := pairFor(tc.goarch)
		if ok != tc.ok || pair.Name != tc.want {
			t.Errorf("pairFor(%q) = (%q, %v), want (%q, %v)", tc.goarch, pair.Name, ok, tc.want, tc.ok)
		}
	}
}

func TestPairTags(t *testing.T) {
	if PairX86.Tag64 != unix.AUDIT_ARCH_X86_64 || PairX86.Tag32 != unix.AUDIT_ARCH_I386 {
		t.Errorf("x86 pair tags = %#x/%#x", PairX86.Tag64, PairX86.Tag32)
	}
	if PairARM.Tag64 != unix.AUDIT_ARCH_AARCH64 || PairARM.Tag32 != unix.AUDIT_ARCH_ARM {
		t.Errorf("arm pair tags = %#x/%#x", PairARM.Tag64, PairARM.Tag32)
	}
}

func TestPairByName(t *testing.T) {
	if pair, ok := PairByName("x86"); !ok || pair != PairX86 {
		t.Errorf("PairByName(x86) = (%v, %v)", pair, ok)
	}
	if pair, ok := PairByName("arm"); !ok || pair != PairARM {
		t.Errorf("PairByName(arm) = (%v, %v)", pair, ok)
	}
	if _, ok := PairByName("mips"); ok {
		t.Error("PairByName(mips) resolved, want miss")
	}
}
