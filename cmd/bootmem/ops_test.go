package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	op, err := parseOp("alloc:0x10:16")
	require.NoError(t, err)
	require.Equal(t, operation{kind: opAlloc, a: 0x10, b: 16}, op)

	op, err = parseOp("alloc:24")
	require.NoError(t, err)
	require.Equal(t, operation{kind: opAlloc, a: 24, b: 1}, op)

	op, err = parseOp("free")
	require.NoError(t, err)
	require.Equal(t, operation{kind: opFree, b: 1}, op)

	op, err = parseOp("pages:3")
	require.NoError(t, err)
	require.Equal(t, operation{kind: opPages, a: 3}, op)

	op, err = parseOp("addmem:0x6000:0x1000")
	require.NoError(t, err)
	require.Equal(t, operation{kind: opAddMemory, a: 0x6000, b: 0x1000}, op)

	for _, bad := range []string{"", "grow:1", "alloc", "alloc:1:2:3", "alloc:x", "freepages:1", "stats:1"} {
		_, err = parseOp(bad)
		require.Error(t, err, bad)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	var out, logs bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func TestScenarioCommand(t *testing.T) {
	out, _, err := execute(t, "scenario")
	require.NoError(t, err)

	for _, line := range []string{
		"init start=0x2000 size=0x4000 page_size=4096\n",
		"alloc size=0x8 align=0x8 -> 0x2000\n",
		"alloc size=0x10 align=0x10 -> 0x2010\n",
		"pages count=1 align_pow2=0 -> 0x5000\n",
		"bytes: total=16,384 used=4,128 available=12,256\n",
		"free -> allocations=1 byte_pos=0x2020\n",
		"free -> allocations=0 byte_pos=0x2000\n",
		"addmem start=0x6000 size=0x1000 -> error:",
		"alloc size=0x0 align=0x1 -> error:",
	} {
		require.Contains(t, out, line)
	}
}

func TestRunCommandJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--start", "0x10000", "--size", "0x8000", "--json", "alloc:0x100:0x40", "pages:2:1")
	require.NoError(t, err)
	require.Contains(t, out, "alloc size=0x100 align=0x40 -> 0x10000\n")
	require.Contains(t, out, "pages count=2 align_pow2=1 -> 0x16000\n")

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	var state struct {
		BytePos     string
		PagePos     string
		Allocations int
		UsedPages   int
	}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &state))
	require.Equal(t, "0x10100", state.BytePos)
	require.Equal(t, "0x16000", state.PagePos)
	require.Equal(t, 1, state.Allocations)
	require.Equal(t, 2, state.UsedPages)
}

func TestRunCommandVerboseLogs(t *testing.T) {
	_, logs, err := execute(t, "run", "-v", "alloc:8", "free", "free")
	require.NoError(t, err)
	require.Contains(t, logs, "Allocator::Alloc")
	require.Contains(t, logs, "dealloc called with no outstanding byte allocations")
}

func TestRunCommandBacked(t *testing.T) {
	out, _, err := execute(t, "run", "--backed", "--size", "0x10000", "alloc:64:16", "pages:4", "stats")
	require.NoError(t, err)
	require.Contains(t, out, "pages: total=16 used=4 available=11\n")
}

func TestRunCommandErrors(t *testing.T) {
	_, _, err := execute(t, "run", "bogus")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--page-size", "3000", "alloc:8")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--size", "lots", "alloc:8")
	require.Error(t, err)

	_, _, err = execute(t, "run")
	require.Error(t, err)
}
