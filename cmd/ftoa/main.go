// Command ftoa prints each float argument in exact positional decimal form.
//
//	ftoa [-precision N] [-bytes N] [-words N] [-v] value...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ykiselev/arena"
	"github.com/ykiselev/arena/ftoa"
)

func main() {
	precision := flag.Int("precision", ftoa.DefaultPrecision, "maximum significant digits")
	bytes := flag.Int("bytes", arena.DefaultBytes, "arena byte buffer capacity")
	words := flag.Int("words", arena.DefaultWords, "arena word buffer capacity")
	verbose := flag.Bool("v", false, "log arena configuration")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	defer func() { _ = log.Sync() }()

	arena.Configure(arena.Config{Bytes: *bytes, Words: *words, Logger: log})
	if err := run(os.Stdout, flag.Args(), *precision, log); err != nil {
		log.Error("ftoa failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, precision int, log *zap.Logger) error {
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "argument %q", arg)
		}
		if err := ftoa.Format(w, v, precision); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(err, "ftoa: write")
		}
		log.Debug("formatted", zap.String("input", arg), zap.Float64("value", v))
	}
	return nil
}
