// Package demo runs the HTTP server that hosts the browser demo page for the
// console logger: a static file server over the web/ assets (index.html, the
// wasm_exec bootstrap and the compiled demo.wasm).
package demo
