//go:build js && wasm

package console

import "syscall/js"

// browser binds the global console object of the hosting page.
type browser struct {
	value js.Value
}

// Platform returns the browser console.
func Platform() Console {
	return &browser{value: js.Global().Get("console")}
}

func (b *browser) Error(args ...any) { b.value.Call("error", args...) }
func (b *browser) Warn(args ...any)  { b.value.Call("warn", args...) }
func (b *browser) Info(args ...any)  { b.value.Call("info", args...) }
func (b *browser) Log(args ...any)   { b.value.Call("log", args...) }
func (b *browser) Debug(args ...any) { b.value.Call("debug", args...) }
