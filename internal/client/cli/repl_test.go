package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
}

func (f *fakeExec) rec(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error { return f.rec("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) Profile(context.Context) error   { return f.rec("profile") }
func (f *fakeExec) ListPosts(context.Context) error { return f.rec("list") }
func (f *fakeExec) NewPost(context.Context) error   { return f.rec("post new") }
func (f *fakeExec) EditPost(_ context.Context, id int64) error {
	return f.rec(fmt.Sprintf("post edit %d", id))
}
func (f *fakeExec) DeletePost(_ context.Context, id int64) error {
	return f.rec(fmt.Sprintf("post delete %d", id))
}
func (f *fakeExec) AddComment(_ context.Context, id int64) error {
	return f.rec(fmt.Sprintf("comment add %d", id))
}
func (f *fakeExec) EditComment(_ context.Context, id int64) error {
	return f.rec(fmt.Sprintf("comment edit %d", id))
}
func (f *fakeExec) DeleteComment(_ context.Context, id int64) error {
	return f.rec(fmt.Sprintf("comment delete %d", id))
}
func (f *fakeExec) Report(context.Context) error { return f.rec("report") }

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrint(t)

	input := strings.Join([]string{
		"help",
		"login",
		"l",
		"posts",
		"post new",
		"post edit 3",
		"post delete 4",
		"comment add 3",
		"comment edit 7",
		"comment delete 8",
		"report",
		"profile",
		"logout",
		"register",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "list", "list",
		"post new", "post edit 3", "post delete 4",
		"comment add 3", "comment edit 7", "comment delete 8",
		"report", "profile", "logout", "register",
	}, exec.calls)
}

func TestRunREPL_UsageErrorsSendNothing(t *testing.T) {
	lines := capturePrint(t)

	input := "post\npost edit\npost edit abc\npost add 1\ncomment new\ncomment delete -1\nfoobar\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)

	var usage, unknown int
	for _, l := range *lines {
		if strings.Contains(l, "usage") {
			usage++
		}
		if strings.HasPrefix(l, "Unknown command:") {
			unknown++
		}
	}
	assert.Equal(t, 6, usage)
	assert.Equal(t, 1, unknown)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{loggedIn: true, err: errors.New("server unavailable")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("l\nreport\n")))

	assert.Equal(t, []string{"list", "report"}, exec.calls)
	joined := strings.Join(*lines, "\n")
	assert.Equal(t, 2, strings.Count(joined, "Error: server unavailable"))
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrint(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("report")))
	assert.Equal(t, []string{"report"}, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	assert.Contains(t, *lines, helpAnonymous)
	assert.Contains(t, *lines, helpLoggedIn)
}

func TestSubcommand(t *testing.T) {
	sub, id, err := subcommand("post", []string{"new"})
	require.NoError(t, err)
	assert.Equal(t, "new", sub)
	assert.Zero(t, id)

	sub, id, err = subcommand("comment", []string{"add", "12"})
	require.NoError(t, err)
	assert.Equal(t, "add", sub)
	assert.Equal(t, int64(12), id)

	_, _, err = subcommand("comment", []string{"add"})
	require.ErrorIs(t, err, errUsage)

	_, _, err = subcommand("post", []string{"delete", "0"})
	require.ErrorIs(t, err, errUsage)
}
