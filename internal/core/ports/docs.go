// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work, the event publisher and the
// OTP store and sender.
package ports
