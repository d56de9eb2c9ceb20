package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Profile(ctx context.Context) error { return f.record("profile", nil) }
func (f *fakeExec) List(ctx context.Context) error    { return f.record("list", nil) }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) Filter(ctx context.Context, args []string) error {
	return f.record("filter", args)
}
func (f *fakeExec) Sort(ctx context.Context, args []string) error { return f.record("sort", args) }
func (f *fakeExec) Page(ctx context.Context, args []string) error { return f.record("page", args) }
func (f *fakeExec) PageSize(ctx context.Context, args []string) error {
	return f.record("pagesize", args)
}
func (f *fakeExec) AddEnquiry(ctx context.Context) error { return f.record("add", nil) }
func (f *fakeExec) Dashboard(ctx context.Context) error  { return f.record("dashboard", nil) }
func (f *fakeExec) FollowUps(ctx context.Context) error  { return f.record("followups", nil) }
func (f *fakeExec) Chat(ctx context.Context, args []string) error { return f.record("chat", args) }
func (f *fakeExec) Send(ctx context.Context, args []string) error { return f.record("send", args) }
func (f *fakeExec) Theme(ctx context.Context, args []string) error {
	return f.record("theme", args)
}

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func runLines(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runLines(exec,
		"help",
		"login",
		"help",
		"list",
		"search priya",
		"sort name desc",
		"page next",
		"dashboard",
		"logout",
		"exit",
	)

	want := []string{"login", "list", "search", "sort", "page", "dashboard", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_ArgumentsArePassedThrough(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: true}
	runLines(exec,
		"filter status Not Interested",
		"send 1 hello there",
		"exit",
	)

	if exec.calls[0] != "filter" || strings.Join(exec.args[0], " ") != "status Not Interested" {
		t.Fatalf("filter args = %v", exec.args[0])
	}
	if exec.calls[1] != "send" || strings.Join(exec.args[1], " ") != "1 hello there" {
		t.Fatalf("send args = %v", exec.args[1])
	}
}

func TestRunREPL_LoggedOutCommandsAreGated(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runLines(exec,
		"list",
		"dashboard",
		"register",
		"exit",
	)

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("calls = %v, want only register before login", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runLines(exec) // empty input hits EOF immediately

	if len(exec.calls) != 0 {
		t.Fatalf("no commands expected, got %v", exec.calls)
	}
}
