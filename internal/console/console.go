package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/timzifer/listqueue"
)

var (
	// ErrUnknownCommand is returned for commands the console does not know.
	ErrUnknownCommand = errors.New("console: unknown command")
	// ErrNoQueue is returned when a command needs a queue but none was created.
	ErrNoQueue = errors.New("console: no queue, use new")
	// ErrBadArgument is returned when a command argument is missing or malformed.
	ErrBadArgument = errors.New("console: bad argument")

	errQuit = errors.New("quit")
)

// Console holds a chain of queues and applies commands to the current one,
// which is the most recently created queue.
type Console struct {
	out     io.Writer
	opts    options
	chain   *listqueue.Chain
	current *listqueue.Context
}

// New creates a console writing its results to out.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:   out,
		opts:  defaultOptions(),
		chain: listqueue.NewChain(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Close releases every queue held by the console.
func (c *Console) Close() {
	c.chain.Free()
	c.current = nil
}

// Run executes commands read from r, one per line, until r is exhausted, the
// quit command is read or ctx is done. Blank lines and lines starting with
// '#' are skipped. Command errors are reported on the output and do not stop
// the run.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c.opts.echo {
			fmt.Fprintf(c.out, "cmd> %s\n", line)
		}
		err := c.Exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.opts.logger.Warn("command failed", slog.String("line", line), slog.Any("error", err))
			fmt.Fprintf(c.out, "ERROR: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	c.opts.logger.Debug("exec", slog.String("cmd", name), slog.Any("args", args))

	switch name {
	case "quit":
		return errQuit
	case "new":
		return c.cmdNew()
	case "free":
		c.Close()
		fmt.Fprintln(c.out, "freed all queues")
		return nil
	case "merge":
		return c.cmdMerge(args)
	}

	if c.current == nil {
		return ErrNoQueue
	}
	q := c.current.Queue

	switch name {
	case "ih", "it":
		if len(args) == 0 {
			return fmt.Errorf("%w: %s needs a string", ErrBadArgument, name)
		}
		value := strings.Join(args, " ")
		if name == "ih" {
			q.InsertHead(value)
		} else {
			q.InsertTail(value)
		}
	case "rh", "rt":
		if err := c.cmdRemove(q, name == "rh"); err != nil {
			return err
		}
	case "size":
		fmt.Fprintf(c.out, "size = %d\n", q.Size())
		return nil
	case "show":
	case "dm":
		if !q.DeleteMid() {
			fmt.Fprintln(c.out, "queue is empty")
		}
	case "dedup":
		if !q.DeleteDup() {
			fmt.Fprintln(c.out, "queue is empty")
		}
	case "swap":
		q.Swap()
	case "reverse":
		q.Reverse()
	case "reverseK":
		k, err := intArg(args)
		if err != nil {
			return err
		}
		q.ReverseK(k)
	case "sort":
		q.Sort(descendArg(args))
	case "ascend":
		fmt.Fprintf(c.out, "remaining = %d\n", q.Ascend())
	case "descend":
		fmt.Fprintf(c.out, "remaining = %d\n", q.Descend())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	c.current.Size = q.Size()
	c.show()
	return nil
}

func (c *Console) cmdNew() error {
	ctx, err := c.chain.Add(listqueue.New())
	if err != nil {
		return err
	}
	c.current = ctx
	c.show()
	return nil
}

func (c *Console) cmdRemove(q *listqueue.Queue, head bool) error {
	buf := make([]byte, c.opts.bufSize)
	var e *listqueue.Element
	if head {
		e = q.RemoveHead(buf)
	} else {
		e = q.RemoveTail(buf)
	}
	if e == nil {
		fmt.Fprintln(c.out, "queue is empty")
		return nil
	}
	e.Release()

	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}
	fmt.Fprintf(c.out, "removed %s from queue\n", buf)
	return nil
}

func (c *Console) cmdMerge(args []string) error {
	if c.chain.Len() == 0 {
		return ErrNoQueue
	}
	count := c.chain.Merge(descendArg(args))
	c.current = c.chain.First()
	fmt.Fprintf(c.out, "merged %d elements\n", count)
	c.show()
	return nil
}

func (c *Console) show() {
	if c.current == nil {
		return
	}
	fmt.Fprintf(c.out, "l = [%s]\n", strings.Join(c.current.Queue.Values(), " "))
}

func intArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: missing number", ErrBadArgument)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	return n, nil
}

func descendArg(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch strings.ToLower(args[0]) {
	case "1", "desc", "descend", "true":
		return true
	}
	return false
}
