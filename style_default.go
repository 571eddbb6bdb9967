//go:build !consolestyle

package consolelog

// styledByDefault is flipped by the consolestyle build tag. Without the tag,
// new handlers dispatch plain message text.
const styledByDefault = false
