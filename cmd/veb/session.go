package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/min1324/veb"
)

var errUnknownCommand = errors.New("unknown command")

// session applies line commands to one tree.
type session struct {
	t      *veb.Tree
	out    io.Writer
	logger *zap.Logger
}

func newSession(t *veb.Tree, out io.Writer, logger *zap.Logger) *session {
	return &session{t: t, out: out, logger: logger}
}

// run executes every line of r. A bad line is logged and skipped;
// only a read failure ends the session with an error.
func (s *session) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		s.logger.Debug("command", zap.Int("line", line), zap.Strings("fields", fields))
		if err := s.exec(fields[0], fields[1:]); err != nil {
			s.logger.Warn("command failed",
				zap.Int("line", line),
				zap.String("command", fields[0]),
				zap.Error(err))
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return sc.Err()
}

func (s *session) exec(cmd string, args []string) error {
	switch cmd {
	case "min", "max", "len", "print", "stats", "clear":
		if len(args) != 0 {
			return errors.Errorf("%s takes no argument", cmd)
		}
		s.query(cmd)
		return nil
	case "insert", "delete", "contains", "pred", "succ":
	default:
		return errors.Wrap(errUnknownCommand, cmd)
	}

	if len(args) != 1 {
		return errors.Errorf("%s takes one value", cmd)
	}
	x, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "parse %q", args[0])
	}

	switch cmd {
	case "insert":
		ok, err := s.t.Insert(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, ok)
	case "delete":
		ok, err := s.t.Delete(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, ok)
	case "contains":
		ok, err := s.t.Contains(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, ok)
	case "pred":
		p, ok, err := s.t.Predecessor(x)
		if err != nil {
			return err
		}
		s.printOptional(p, ok)
	case "succ":
		v, ok, err := s.t.Successor(x)
		if err != nil {
			return err
		}
		s.printOptional(v, ok)
	}
	return nil
}

func (s *session) query(cmd string) {
	switch cmd {
	case "min":
		s.printOptional(s.t.Min())
	case "max":
		s.printOptional(s.t.Max())
	case "len":
		fmt.Fprintln(s.out, s.t.Len())
	case "print":
		fmt.Fprintln(s.out, s.t)
	case "stats":
		fmt.Fprintf(s.out, "universe=%d len=%d nodes=%d\n", s.t.Universe(), s.t.Len(), s.t.Nodes())
	case "clear":
		s.t.Clear()
		s.logger.Info("tree cleared", zap.Uint64("universe", s.t.Universe()))
	}
}

func (s *session) printOptional(x uint64, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, "none")
		return
	}
	fmt.Fprintln(s.out, x)
}
