package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	screen Screen

	calls []string
	args  []string
}

func (f *fakeExec) currentScreen() Screen { return f.screen }

func (f *fakeExec) record(name, arg string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
}

func (f *fakeExec) Login(context.Context) error {
	f.record("login", "")
	f.screen = ScreenHome
	return nil
}
func (f *fakeExec) Signup(context.Context) error {
	f.record("signup", "")
	f.screen = ScreenSignup
	return nil
}
func (f *fakeExec) Back(context.Context) error {
	f.record("back", "")
	f.screen = ScreenLogin
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.record("logout", "")
	f.screen = ScreenLogin
	return nil
}
func (f *fakeExec) Weather(_ context.Context, city string) error {
	f.record("weather", city)
	return nil
}
func (f *fakeExec) Users(context.Context) error { f.record("users", ""); return nil }
func (f *fakeExec) Search(_ context.Context, text string) error {
	f.record("search", text)
	return nil
}
func (f *fakeExec) Type(_ context.Context, chars string) error {
	f.record("type", chars)
	return nil
}
func (f *fakeExec) Stats(context.Context) error { f.record("stats", ""); return nil }

func captureREPL(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_ScreensGateCommands(t *testing.T) {
	printed := captureREPL(t)

	input := strings.Join([]string{
		"weather Paris", // not available on the login screen
		"signup",
		"back",
		"login",
		"weather   New York",
		"search  a",
		"type",
		"type an",
		"users",
		"stats",
		"signup", // not available at home
		"logout",
		"exit",
		"users",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"signup", "back", "login", "weather", "search", "type", "users", "stats", "logout"}, exec.calls)
	assert.Equal(t, "  New York", exec.args[3], "argument is the rest of the line")
	assert.Equal(t, " a", exec.args[4], "search text is taken literally")
	assert.Equal(t, "an", exec.args[5])

	assert.Contains(t, *printed, "Unknown command: weather")
	assert.Contains(t, *printed, "Unknown command: signup")
	assert.Contains(t, *printed, "Usage: type <chars>")
	assert.Contains(t, *printed, "Bye!")
}

func TestRunREPL_HelpDependsOnScreen(t *testing.T) {
	printed := captureREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("help\nlogin\nhelp\nquit\n"))

	assert.Contains(t, *printed, "Available commands: login, signup, back, exit")
	assert.Contains(t, *printed, "Available commands: weather [city], users, search [text], type <chars>, stats, logout, exit")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	captureREPL(t)

	exec := &fakeExec{screen: ScreenHome}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("\n   \nusers"))

	assert.Equal(t, []string{"users"}, exec.calls, "last line without newline still runs")
}
