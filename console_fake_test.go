package consolelog

// consoleCall records one host console invocation.
type consoleCall struct {
	method string
	args   []any
}

// fakeConsole records every console invocation for assertions.
type fakeConsole struct {
	calls []consoleCall
}

func (f *fakeConsole) Error(args ...any) { f.record("error", args) }
func (f *fakeConsole) Warn(args ...any)  { f.record("warn", args) }
func (f *fakeConsole) Info(args ...any)  { f.record("info", args) }
func (f *fakeConsole) Log(args ...any)   { f.record("log", args) }
func (f *fakeConsole) Debug(args ...any) { f.record("debug", args) }

func (f *fakeConsole) record(method string, args []any) {
	f.calls = append(f.calls, consoleCall{method: method, args: args})
}
