// dumpfilter assembles the configured syscall filter and prints it, one
// raw instruction per line. With -nr it also simulates the disposition of
// a single syscall without installing anything.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/sandboxkit/seccomp-gate/internal/core/filter"
	"github.com/sandboxkit/seccomp-gate/internal/core/policy"
	"github.com/sandboxkit/seccomp-gate/internal/static"
)

func main() {
	pairName := flag.String("pair", "", "architecture pair to assemble (x86 or arm, default: native)")
	config := flag.String("config", "conf/config.yaml", "path to config file")
	nr := flag.Int("nr", -1, "simulate this syscall number instead of dumping")
	compat := flag.Bool("compat", false, "simulate under the 32-bit compat tag")
	flag.Parse()

	if err := static.InitConfig(*config); err != nil {
		fmt.Fprintf(os.Stderr, "dumpfilter: config: %v\n", err)
		os.Exit(1)
	}

	pair, ok := policy.NativePair()
	want := runtime.GOARCH
	if *pairName != "" {
		pair, ok = policy.PairByName(*pairName)
		want = *pairName
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "dumpfilter: no architecture pair for %q\n", want)
		os.Exit(1)
	}

	prog, err := policy.BuildProgram(pair)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dumpfilter: %v\n", err)
		os.Exit(1)
	}

	if *nr >= 0 {
		tag := pair.Tag64
		if *compat {
			tag = pair.Tag32
		}
		action, err := filter.Evaluate(prog, filter.SeccompData{NR: uint32(*nr), Arch: tag})
		if err != nil {
			fmt.Fprintf(os.Stderr, "dumpfilter: evaluate: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("arch=%#08x nr=%d -> %s\n", tag, *nr, filter.ActionName(action))
		return
	}

	fmt.Printf("; %s pair, %d instructions\n", pair.Name, len(prog))
	for i, ins := range prog {
		fmt.Printf("%4d: { op: %#04x, jt: %3d, jf: %3d, k: %#08x }\n", i, ins.Op, ins.Jt, ins.Jf, ins.K)
	}
}
