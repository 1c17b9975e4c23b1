package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/min1324/veb"
)

func runSession(t *testing.T, valueRange uint64, script string) []string {
	t.Helper()
	tree, err := veb.New(valueRange)
	require.NoError(t, err)

	var out bytes.Buffer
	s := newSession(tree, &out, zaptest.NewLogger(t))
	require.NoError(t, s.run(strings.NewReader(script)))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestSessionCommands(t *testing.T) {
	got := runSession(t, 16, `
# build {1 2 3 4 5 6 9}
insert 3
insert 1
insert 4
insert 1
insert 5
insert 9
insert 2
insert 6
print
len
min
max
pred 1
pred 7
succ 6
succ 9
contains 4
delete 4
delete 4
contains 4
stats
clear
print
`)
	want := []string{
		"true", "true", "true", "false", "true", "true", "true", "true",
		"{1 2 3 4 5 6 9}",
		"7",
		"1",
		"9",
		"none",
		"6",
		"9",
		"none",
		"true",
		"true",
		"false",
		"false",
		"universe=16 len=6 nodes=3",
		"{}",
	}
	assert.Equal(t, want, got)
}

func TestSessionRejectsBadInput(t *testing.T) {
	got := runSession(t, 8, `
insert 8
insert x
frobnicate 1
insert
min 3
insert 7
print
`)
	require.Len(t, got, 7)
	assert.Contains(t, got[0], "outside the universe")
	assert.Contains(t, got[1], "parse")
	assert.Contains(t, got[2], "unknown command")
	assert.Contains(t, got[3], "takes one value")
	assert.Contains(t, got[4], "takes no argument")
	assert.Equal(t, "true", got[5])
	assert.Equal(t, "{7}", got[6])
}

func TestSessionEmptyQueries(t *testing.T) {
	got := runSession(t, 4, "min\nmax\nlen\npred 3\nsucc 0\n")
	assert.Equal(t, []string{"none", "none", "0", "none", "none"}, got)
}
