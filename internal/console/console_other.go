//go:build !(js && wasm)

package console

import "os"

// Platform returns a console printing to standard error. Non-browser builds
// have no console object, so output degrades to plain labeled lines.
func Platform() Console {
	return NewWriter(os.Stderr)
}
