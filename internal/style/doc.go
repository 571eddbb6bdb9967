// Package style holds the CSS declarations applied to styled console output:
// one badge style per severity plus shared styles for the source location and
// the message text.
package style
