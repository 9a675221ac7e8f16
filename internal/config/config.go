// Package config wires rstrace's command-line flags, following the same
// urfave/cli App.Flags / App.Before convention cmd/sysbox-fs/main.go uses
// for its own log setup.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/nestybox/go-syscall-inspect/syscall"
)

// Config holds rstrace's resolved settings after App.Before has run.
type Config struct {
	LogPath     string
	LogLevel    string
	LogFormat   string
	JSON        bool
	Categories  syscall.Category
	FollowForks bool
}

// Flags is the urfave/cli flag set shared by rstrace's single command.
var Flags = []cli.Flag{
	cli.StringFlag{
		Name:  "log",
		Value: "",
		Usage: "log file path or empty string for stderr output",
	},
	cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "log categories to include (debug, info, warning, error, fatal)",
	},
	cli.StringFlag{
		Name:  "log-format",
		Value: "text",
		Usage: "log format; must be json or text",
	},
	cli.BoolFlag{
		Name:  "json",
		Usage: "emit decoded syscall records as JSON instead of text",
	},
	cli.StringFlag{
		Name:  "categories",
		Value: "",
		Usage: "comma-separated category filter (File,Desc,Network,Process,Signal,Memory,Stat,...); empty means all",
	},
	cli.BoolFlag{
		Name:  "follow-forks",
		Usage: "keep tracing children created by clone/fork/vfork",
	},
}

// Setup applies log destination, level and format from ctx, mirroring
// sysbox-fs's cli.App.Before. Call it from the App.Before hook.
func Setup(ctx *cli.Context) error {
	if path := ctx.GlobalString("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0666)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", path, err)
		}
		logrus.SetOutput(f)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	if ctx.GlobalString("log-format") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{TimestampFormat: "2006-01-02 15:04:05", FullTimestamp: true})
	}

	switch ctx.GlobalString("log-level") {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info", "":
		logrus.SetLevel(logrus.InfoLevel)
	case "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logrus.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("log-level option %q not recognized", ctx.GlobalString("log-level"))
	}

	return nil
}

// FromContext builds a Config from a resolved cli.Context.
func FromContext(ctx *cli.Context) (Config, error) {
	cats, err := ParseCategories(ctx.GlobalString("categories"))
	if err != nil {
		return Config{}, err
	}
	return Config{
		LogPath:     ctx.GlobalString("log"),
		LogLevel:    ctx.GlobalString("log-level"),
		LogFormat:   ctx.GlobalString("log-format"),
		JSON:        ctx.GlobalBool("json"),
		Categories:  cats,
		FollowForks: ctx.GlobalBool("follow-forks"),
	}, nil
}

var categoryByName = map[string]syscall.Category{
	"Desc": syscall.Desc, "File": syscall.File, "IPC": syscall.IPC,
	"Network": syscall.Network, "Process": syscall.Process, "Signal": syscall.Signal,
	"Memory": syscall.Memory, "Stat": syscall.Stat, "LStat": syscall.LStat,
	"FStat": syscall.FStat, "StatLike": syscall.StatLike, "StatFs": syscall.StatFs,
	"FStatFs": syscall.FStatFs, "StatFsLike": syscall.StatFsLike, "Pure": syscall.Pure,
	"Creds": syscall.Creds, "Clock": syscall.Clock,
}

// ParseCategories turns a comma-separated list of category names into a
// bitmask. An empty string matches every category (the returned mask has
// every known bit set).
func ParseCategories(s string) (syscall.Category, error) {
	if s == "" {
		var all syscall.Category
		for _, c := range categoryByName {
			all |= c
		}
		return all, nil
	}
	var mask syscall.Category
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			name := s[start:i]
			c, ok := categoryByName[name]
			if !ok {
				return 0, fmt.Errorf("unknown category %q", name)
			}
			mask |= c
			start = i + 1
		}
	}
	return mask, nil
}
