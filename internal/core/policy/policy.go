package policy

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/bpf"

	"github.com/sandboxkit/seccomp-gate/internal/core/filter"
	"github.com/sandboxkit/seccomp-gate/internal/static"
	"github.com/sandboxkit/seccomp-gate/internal/utils/log"
)

// Result is the outcome of an install attempt that did not fail.
type Result int

const (
	// ResultInstalled means the filter is active for this process and its
	// descendants.
	ResultInstalled Result = iota
	// ResultSkipped means the running architecture is not gated and no
	// filter was built or installed.
	ResultSkipped
)

// blockOptions are the table adjustments applied before compiling.
type blockOptions struct {
	enableNetwork bool
	extraAllow    []int // native 64-bit table only
	disabled      int   // single syscall forced out, -1 when unset
	replaceAllow  []int // replaces the native 64-bit allow table, nil when unset
}

func optionsFromEnv() blockOptions {
	opts := blockOptions{
		enableNetwork: static.GetSeccompGateGlobalConfigurations().Policy.EnableNetwork,
		extraAllow:    static.GetSeccompGateGlobalConfigurations().Policy.ExtraAllow,
		disabled:      -1,
	}

	disabled, err := strconv.Atoi(os.Getenv("DISABLE_SYSCALL"))
	if err == nil {
		opts.disabled = disabled
	}

	// a non-empty ALLOWED_SYSCALLS replaces the native allow table
	if allowed := os.Getenv("ALLOWED_SYSCALLS"); allowed != "" {
		nums := strings.Split(allowed, ",")
		replace := make([]int, 0, len(nums))
		for _, num := range nums {
			nr, err := strconv.Atoi(strings.TrimSpace(num))
			if err != nil {
				continue
			}
			replace = append(replace, nr)
		}
		opts.replaceAllow = replace
	}

	return opts
}

func buildTable(tag uint32, native64 bool, opts blockOptions) (allow []int, errs []int, err error) {
	baseAllow, errs, network, err := tablesFor(tag)
	if err != nil {
		return nil, nil, err
	}

	allow = make([]int, 0, len(baseAllow)+len(network)+len(opts.extraAllow))
	if native64 && opts.replaceAllow != nil {
		allow = append(allow, opts.replaceAllow...)
	} else {
		allow = append(allow, baseAllow...)
		if opts.enableNetwork {
			allow = append(allow, network...)
		}
		if native64 {
			allow = append(allow, opts.extraAllow...)
		}
	}

	if opts.disabled >= 0 {
		kept := allow[:0]
		for _, nr := range allow {
			if nr != opts.disabled {
				kept = append(kept, nr)
			}
		}
		allow = kept
	}

	return allow, errs, nil
}

// buildProgram assembles the full dual-arch filter for a pair with the
// given table adjustments.
func buildProgram(pair ArchPair, opts blockOptions) ([]bpf.RawInstruction, error) {
	allow64, errs64, err := buildTable(pair.Tag64, true, opts)
	if err != nil {
		return nil, err
	}
	block64, err := compileBlock(allow64, errs64)
	if err != nil {
		return nil, err
	}

	allow32, errs32, err := buildTable(pair.Tag32, false, opts)
	if err != nil {
		return nil, err
	}
	block32, err := compileBlock(allow32, errs32)
	if err != nil {
		return nil, err
	}

	return filter.Assemble(pair.Tag64, pair.Tag32, block64, block32)
}

// BuildProgram assembles the filter for a pair with the current config and
// environment overrides applied. It performs no kernel interaction; the
// dump tool and tests use it directly.
func BuildProgram(pair ArchPair) ([]bpf.RawInstruction, error) {
	return buildProgram(pair, optionsFromEnv())
}

// InstallDefaultPolicy is the one-shot bootstrap entry point. It builds
// the filter for the native architecture pair and installs it. On a
// non-gated architecture it installs nothing and reports ResultSkipped.
//
// Any error means the process is running without the filter; the caller
// owns the fail-closed decision to terminate.
func InstallDefaultPolicy() (Result, error) {
	pair, ok := NativePair()
	if !ok {
		log.Warn("seccomp: no syscall policy for this architecture, skipping filter install")
		return ResultSkipped, nil
	}

	prog, err := BuildProgram(pair)
	if err != nil {
		return ResultSkipped, err
	}

	if err := filter.Install(prog); err != nil {
		return ResultSkipped, err
	}

	log.Info("seccomp: global filter of size %d installed (%s pair)", len(prog), pair.Name)
	return ResultInstalled, nil
}
