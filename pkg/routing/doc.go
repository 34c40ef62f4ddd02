// Package routing derives the routing graph of a hardware module from the
// routes in its configuration.
//
// Every (route, source) pair becomes a mapping update. A mix port source
// feeding a device port sink is an output mapping, a device port source
// feeding a mix port sink is an input mapping. Mappings are keyed by mix
// port name, so all devices reachable from one mix port accumulate on one
// Mapping.
//
// Device ports become routing ports keyed by their fancy name across the
// whole ProfileSet. Each direction also gets a parking port without a
// device, used to park hardware routing during mode transitions.
//
// A ProfileSet currently holds a single profile named "default" that
// covers every mapping.
package routing
