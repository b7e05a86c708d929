// policygen regenerates the per-architecture syscall tables under
// internal/static from the bootstrap profile below. Syscall names are
// resolved to per-arch numbers through libseccomp, so the tables never
// depend on the numbering of the machine running the generator.
//
// Run from the repository root:
//
//	go run ./cmd/policygen
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	sg "github.com/seccomp/libseccomp-golang"
)

// candidate lists: the first name that resolves on the target arch wins,
// so one profile covers 64-bit and 32-bit naming differences
// (fstat/fstat64, mmap/mmap2, readlink/readlinkat).
type group struct {
	comment string
	calls   [][]string
}

var allowProfile = []group{
	{"file io", [][]string{
		{"read"}, {"write"}, {"close"}, {"lseek"}, {"fcntl"}, {"fcntl64"},
		{"fstat", "fstat64"}, {"getdents64"}, {"openat"},
	}},
	{"memory", [][]string{
		{"mmap", "mmap2"}, {"mprotect"}, {"munmap"}, {"brk"}, {"mremap"}, {"madvise"},
	}},
	{"signals", [][]string{
		{"rt_sigaction"}, {"rt_sigprocmask"}, {"rt_sigreturn"}, {"sigaltstack"},
	}},
	{"thread/process", [][]string{
		{"exit"}, {"exit_group"}, {"getpid"}, {"gettid"}, {"sched_yield"},
		{"sched_getaffinity"}, {"futex"}, {"set_tid_address"}, {"set_robust_list"},
		{"set_thread_area"}, {"arch_prctl"}, {"tgkill"}, {"membarrier"}, {"rseq"},
		{"clone"}, {"execve"}, {"wait4"}, {"dup"}, {"dup2", "dup3"},
		{"pipe2"}, {"getcwd"}, {"prlimit64"},
	}},
	{"time", [][]string{
		{"nanosleep"}, {"gettimeofday"}, {"clock_gettime"}, {"clock_nanosleep"},
	}},
	{"polling", [][]string{
		{"epoll_ctl"}, {"epoll_pwait"},
	}},
	{"misc", [][]string{
		{"getrandom"},
	}},
}

var errorProfile = [][]string{
	{"ioctl"}, {"uname"}, {"readlink", "readlinkat"},
	{"newfstatat", "fstatat64"}, {"statx"},
}

var networkProfile = [][]string{
	{"socketcall"}, {"socket"}, {"socketpair"}, {"bind"}, {"connect"},
	{"listen"}, {"accept"}, {"accept4"}, {"getsockname"}, {"getpeername"},
	{"sendto"}, {"recvfrom"}, {"sendmsg"}, {"recvmsg"},
	{"setsockopt"}, {"getsockopt"},
}

// private arch-specific syscalls libseccomp has no names for
var extraAllow = map[string][]entry{
	"arm": {{983045, "__ARM_NR_set_tls"}},
}

type entry struct {
	nr   int
	name string
}

type targetArch struct {
	scmpName string // libseccomp arch token
	suffix   string // variable name suffix in the generated table
}

type pairFile struct {
	file   string
	name   string // audit pair name in the header comment
	native targetArch
	compat targetArch
}

var pairs = []pairFile{
	{
		file:   "syscalls_x86.go",
		name:   "x86 pair (AUDIT_ARCH_X86_64 native,\n// AUDIT_ARCH_I386 compat). The tables are plain data and are compiled on\n// every platform so any host can assemble and inspect any pair.",
		native: targetArch{"x86_64", "X86_64"},
		compat: targetArch{"x86", "I386"},
	},
	{
		file:   "syscalls_arm.go",
		name:   "arm pair (AUDIT_ARCH_AARCH64 native,\n// AUDIT_ARCH_ARM compat).",
		native: targetArch{"aarch64", "AARCH64"},
		compat: targetArch{"arm", "ARM"},
	},
}

func resolve(arch sg.ScmpArch, candidates []string) (entry, bool) {
	for _, name := range candidates {
		nr, err := sg.GetSyscallFromNameByArch(name, arch)
		if err != nil {
			continue
		}
		if nr < 0 {
			// libseccomp pseudo-number, not a real kernel nr on this arch
			continue
		}
		return entry{int(nr), name}, true
	}
	return entry{}, false
}

func resolveAll(arch sg.ScmpArch, profile [][]string) []entry {
	entries := []entry{}
	for _, candidates := range profile {
		e, ok := resolve(arch, candidates)
		if !ok {
			fmt.Fprintf(os.Stderr, "policygen: %v not available on %v, skipped\n", candidates, arch)
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].nr < entries[j].nr })
	return entries
}

func writeEntries(b *strings.Builder, entries []entry) {
	for _, e := range entries {
		fmt.Fprintf(b, "\t%d, // %s\n", e.nr, e.name)
	}
}

func generate(p pairFile) (string, error) {
	var b strings.Builder
	b.WriteString("package static\n\n")
	b.WriteString("// Code generated by policygen from the bootstrap profile; DO NOT EDIT.\n//\n")
	fmt.Fprintf(&b, "// Syscall numbers for the %s\n\n", p.name)

	for _, target := range []targetArch{p.native, p.compat} {
		arch, err := sg.GetArchFromString(target.scmpName)
		if err != nil {
			return "", fmt.Errorf("arch %s: %w", target.scmpName, err)
		}

		fmt.Fprintf(&b, "var ALLOW_SYSCALLS_%s = []int{\n", target.suffix)
		for _, g := range allowProfile {
			entries := resolveAll(arch, g.calls)
			if len(entries) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\t// %s\n", g.comment)
			writeEntries(&b, entries)
		}
		writeEntries(&b, extraAllow[target.scmpName])
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "var ALLOW_ERROR_SYSCALLS_%s = []int{\n", target.suffix)
		writeEntries(&b, resolveAll(arch, errorProfile))
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "var ALLOW_NETWORK_SYSCALLS_%s = []int{\n", target.suffix)
		writeEntries(&b, resolveAll(arch, networkProfile))
		b.WriteString("}\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func writeFile(path string, content string) error {
	// temp file next to the target so the rename stays atomic
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func main() {
	out := flag.String("out", "internal/static", "directory to write the generated tables to")
	flag.Parse()

	for _, p := range pairs {
		content, err := generate(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "policygen: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(*out, p.file)
		if err := writeFile(path, content); err != nil {
			fmt.Fprintf(os.Stderr, "policygen: write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
