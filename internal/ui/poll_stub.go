//go:build !ebiten

package ui

// PollEbiten reports no pointers in headless builds.
func PollEbiten(buf []Sample) []Sample { return buf }
