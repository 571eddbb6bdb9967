// Package console abstracts the host console behind a five-method interface
// matching the browser's error/warn/info/log/debug operations.
//
// On js/wasm builds Platform binds the real browser console through
// syscall/js. On every other build it degrades to per-level lines on standard
// error so importing packages stay buildable and testable on the host.
package console
