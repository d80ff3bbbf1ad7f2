// Package mail defines the outgoing mail message and the contracts of the
// components that render and deliver it.
package mail
