//go:build consolestyle

package consolelog

// styledByDefault is flipped by the consolestyle build tag. With the tag, new
// handlers render %c composites with the default style table.
const styledByDefault = true
