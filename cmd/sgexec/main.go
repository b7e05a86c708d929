// sgexec is the bootstrap wrapper: it installs the default syscall policy
// for this process and then execs the given command under it. If the
// policy cannot be built or installed it refuses to run the command at
// all; running unprotected is never an option.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/sandboxkit/seccomp-gate/internal/core/policy"
	"github.com/sandboxkit/seccomp-gate/internal/static"
	"github.com/sandboxkit/seccomp-gate/internal/utils/log"
)

func main() {
	config := flag.String("config", "conf/config.yaml", "path to config file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: sgexec [-config path] command [args...]")
		os.Exit(2)
	}

	if err := static.InitConfig(*config); err != nil {
		log.Panic("failed to init config: %v", err)
	}
	config_values := static.GetSeccompGateGlobalConfigurations()
	if config_values.Log.Path != "" {
		if err := log.SetLogPath(config_values.Log.Path); err != nil {
			log.Panic("failed to init log: %v", err)
		}
	}
	log.SetLogLevelName(config_values.Log.Level)

	// resolve the target before the filter narrows what we may do
	target, err := exec.LookPath(flag.Arg(0))
	if err != nil {
		log.Error("cannot resolve %s: %v", flag.Arg(0), err)
		os.Exit(1)
	}

	result, err := policy.InstallDefaultPolicy()
	if err != nil {
		// fail closed: the process must not continue unsandboxed
		log.Error("failed to install syscall policy, refusing to run: %v", err)
		os.Exit(1)
	}
	if result == policy.ResultSkipped {
		log.Warn("running %s without a syscall filter on this architecture", target)
	}

	if err := syscall.Exec(target, flag.Args(), os.Environ()); err != nil {
		log.Error("exec %s: %v", target, err)
		os.Exit(1)
	}
}
