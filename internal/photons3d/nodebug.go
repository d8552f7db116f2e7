//go:build !debug
// +build !debug

package photons3d

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
