// Package hostlog builds the zap logger used by the demo server binary on
// the host side. The browser side logs through the consolelog handler; this
// package only covers the process serving the demo page.
package hostlog
