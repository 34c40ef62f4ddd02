// Package config implements the audio HAL configuration model and the two
// parsers that build it.
//
// # Model
//
// A parse produces one Device:
//
//	Device
//	├── GlobalConfig (key/value vendor properties)
//	└── Module "primary" (HAL version 3.0)
//	    ├── Ports (unified arena, indexed by PortID)
//	    │   ├── mix port "primary output"   (role source, flags, profiles)
//	    │   └── device port "Speaker"       (role sink, type, profiles)
//	    ├── MixPorts / DevicePorts          (PortIDs into Ports)
//	    ├── AttachedDevices / DefaultOutputDevice
//	    └── Routes                          (sink PortID <- source PortIDs)
//
// Ports are owned by their module's Ports slice and every other reference
// is a PortID. This makes Device.Dup a plain copy and removes any ordering
// constraint on teardown.
//
// # Parsers
//
// ParseXML reads the audio_policy_configuration.xml format including
// xi:include directives. ParseLegacy reads the older brace-delimited
// audio_policy.conf format and converts it into the same model.
//
// Both parsers drop elements whose values are not recognised (unknown
// devices, formats, channel masks) and log them, and fail the whole parse
// on structural problems.
package config
