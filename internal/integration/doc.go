// Package integration exercises the controller, scheduler, shaper and
// shutdown path together.
package integration
