package main

import (
	"flag"
	"os"

	"github.com/jcorbin/esh/internal/logio"
	"github.com/jcorbin/esh/internal/panicerr"
)

func main() {
	var (
		useReadline bool
		useColor    bool
		scriptFile  string
		trace       bool
		noRC        bool
	)
	flag.BoolVar(&useReadline, "readline", true, "use readline for interactive input when stdin is a terminal")
	flag.BoolVar(&useColor, "color", true, "colorize the interactive prompt and error banners")
	flag.StringVar(&scriptFile, "f", "", "load and run `file` instead of reading stdin")
	flag.BoolVar(&trace, "trace", false, "log every builtin dispatch at TRACE level")
	flag.BoolVar(&noRC, "norc", false, "skip loading /etc/eshrc and $HOME/.eshrc")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	var opts []ShellOption
	if useColor {
		opts = append(opts, WithColorizer(NewFatihColorizer()))
	}
	if useReadline && isTerminal(os.Stdin) {
		if ls, err := NewReadlineSource(""); err == nil {
			opts = append(opts, WithLineSource(ls))
		} else {
			log.ErrorIf(err)
		}
	}
	if scriptFile != "" {
		opts = append(opts, WithScriptFile(scriptFile))
	}
	if trace {
		opts = append(opts, WithTrace(true))
	}
	if noRC {
		opts = append(opts, WithNoRC(true))
	}

	sh := New(opts...)

	var code int
	err := panicerr.Recover("esh", func() error {
		code = sh.Main(flag.Args())
		return nil
	})
	log.ErrorIf(err)
	if err != nil {
		code = 1
	}
	os.Exit(code)
}
