package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/internal/config"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
	_ "github.com/nestybox/go-syscall-inspect/syscall/decode"
)

const usage = `rstrace [options] -- command [args...]

rstrace runs command under ptrace and prints every syscall it makes,
entry and exit, decoded with argument values read from the tracee's own
memory.
`

// callState tracks one in-flight syscall between its entry stop and its
// exit stop, keyed by tid since ptrace reports syscall-enter/syscall-exit
// pairs per thread, not per process.
type callState struct {
	raw   sysc.RawArgs
	entry sysc.Entry
}

func main() {
	app := cli.NewApp()
	app.Name = "rstrace"
	app.Usage = usage
	app.Flags = config.Flags

	app.Before = config.Setup

	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return fmt.Errorf("missing command to trace")
		}
		cfg, err := config.FromContext(ctx)
		if err != nil {
			return err
		}
		return run(cfg, ctx.Args())
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg config.Config, argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", argv[0], err)
	}
	pid := cmd.Process.Pid

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
		return fmt.Errorf("waiting for initial stop: %w", err)
	}

	opts := syscall.PTRACE_O_TRACESYSGOOD
	if cfg.FollowForks {
		opts |= syscall.PTRACE_O_TRACECLONE | syscall.PTRACE_O_TRACEFORK | syscall.PTRACE_O_TRACEVFORK
	}
	if err := syscall.PtraceSetOptions(pid, opts); err != nil {
		return fmt.Errorf("setting ptrace options: %w", err)
	}

	states := map[int]*callState{}
	enc := json.NewEncoder(os.Stdout)

	// tid is the thread to resume at the top of the loop (0: none, it has
	// exited) and sig the signal to deliver to it when resuming.
	tid, sig := pid, 0
	for {
		if tid != 0 {
			if err := syscall.PtraceSyscall(tid, sig); err != nil {
				return fmt.Errorf("PTRACE_SYSCALL: %w", err)
			}
		}
		sig = 0

		wpid, err := syscall.Wait4(-1, &ws, 0, nil)
		if err != nil {
			return fmt.Errorf("wait4: %w", err)
		}
		tid = wpid

		if ws.Exited() || ws.Signaled() {
			delete(states, wpid)
			if wpid == pid {
				logrus.Infof("traced process %d exited", pid)
				return nil
			}
			tid = 0
			continue
		}
		if !ws.Stopped() || ws.StopSignal() != syscall.SIGTRAP|0x80 {
			// Not a syscall-stop: pass the signal through untouched.
			if ws.Stopped() {
				sig = int(ws.StopSignal())
			}
			continue
		}

		regs, err := arch.Capture(wpid)
		if err != nil {
			logrus.Warnf("capturing registers for %d: %v", wpid, err)
			continue
		}

		st, inFlight := states[wpid]
		if !inFlight {
			raw := sysc.FromRegisters(wpid, regs)
			entry := sysc.DecodeEntryFull(raw, wpid)
			states[wpid] = &callState{raw: raw, entry: entry}
			if cfg.Categories != 0 && !cfg.Categories.Has(entry.Category) && entry.Category != 0 {
				continue
			}
			emit(enc, cfg, wpid, "entry", entry.Args)
			continue
		}

		exit := sysc.DecodeExitFull(st.raw, wpid, regs)
		delete(states, wpid)
		if cfg.Categories != 0 && !cfg.Categories.Has(exit.Category) && exit.Category != 0 {
			continue
		}
		emit(enc, cfg, wpid, "exit", exit.Args)
	}
}

// emit prints one decoded entry or exit stop. ExitArgs implementations carry
// their own SyscallResult field, so the raw return value rides along inside
// args and never needs threading through separately.
func emit(enc *json.Encoder, cfg config.Config, pid int, phase string, args interface{ SyscallName() string }) {
	if cfg.JSON {
		enc.Encode(map[string]interface{}{
			"pid":   pid,
			"phase": phase,
			"name":  args.SyscallName(),
			"args":  args,
		})
		return
	}
	fmt.Printf("%-6d %-5s %-16s %+v\n", pid, phase, args.SyscallName(), args)
}
