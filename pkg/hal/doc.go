// Package hal defines the interface of a vendor audio driver as seen by the
// bridge, the errors it reports and a registry of available drivers.
//
// All driver calls are synchronous and may block. Failures are *Status
// errors carrying a negative errno value; Code recovers that value from any
// error.
package hal
