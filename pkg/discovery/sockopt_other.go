//go:build !unix

package discovery

import "syscall"

// Socket options are best-effort off unix: offers still flow, but only one
// listener per host gets the port.
func broadcastControl(network, address string, c syscall.RawConn) error { return nil }

func reuseControl(network, address string, c syscall.RawConn) error { return nil }
