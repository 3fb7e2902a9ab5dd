// Package kicadio carries module-level metadata shared by the CLI and
// the build tooling.
package kicadio

const Version = "0.1.0"
