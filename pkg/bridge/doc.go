// Package bridge holds the process level setup shared by the commands:
// settings loading, hardware description probing and logger construction.
//
// Settings are read from a YAML file:
//
//	module: primary
//	xmlConfigs:
//	  - /vendor/etc/audio_policy_configuration.xml
//	legacyConfigs:
//	  - /vendor/etc/audio_policy.conf
//	eventLog: /var/log/droid/routes.rlog
//	logLevel: debug
//
// Missing keys keep their defaults.
package bridge
