package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/timzifer/listqueue/internal/telemetry"
)

func TestRootCmdRunsScript(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader("new\nit b\nit a\nsort\nrh\nquit\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--echo", "--bufsize", "16"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v (stderr: %s)", err, errOut.String())
	}

	got := out.String()
	for _, want := range []string{"cmd> sort\n", "l = [a b]\n", "removed a from queue\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRootCmdReportsRunError(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader("new\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("expected bufio.ErrTooLong, got %v", err)
	}
}

func TestRootCmdKeepsRunErrorAlongsideLeak(t *testing.T) {
	telemetry.TrackAlloc()
	defer telemetry.TrackRelease()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("expected run error to be kept, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "1 elements still allocated") {
		t.Fatalf("expected leak to be reported, got %v", err)
	}
}
