// Package consolelog routes records from the log/slog façade to the
// browser's console API when compiled for js/wasm.
//
// A minimal program looks like this:
//
//	func main() {
//		if err := consolelog.InitWithLevel(slog.LevelDebug); err != nil {
//			panic(err)
//		}
//
//		slog.Info("It works!")
//	}
//
// # Log levels
//
// Severities map to the browser console in the following way:
//
//	slog            Web Console
//	-------------   ---------------
//	LevelError      console.error()
//	LevelWarn       console.warn()
//	LevelInfo       console.info()
//	LevelDebug      console.log()
//	LevelTrace      console.debug()
//
// The Debug and Trace rows are intentionally shifted by one: browsers hide
// console.debug() output behind a verbosity toggle, which is the behavior
// users expect from trace records, while console.log() stays visible.
//
// # Styling
//
// Building with the "consolestyle" tag renders each record as a %c composite
// string so the console shows a colored level badge, a bold source location
// and the message text. HandlerOptions.Styled selects either path explicitly
// regardless of build tags.
//
// # Outside the browser
//
// On non-js builds the handler degrades to plain per-level lines on standard
// error, so host-side tests and tooling that import the package keep working.
package consolelog
