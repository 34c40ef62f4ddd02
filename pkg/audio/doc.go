// Package audio defines the symbolic HAL capability types used in audio
// policy configuration files and the tables that convert between them and
// their configuration-file spellings.
//
// # Tables
//
// Every capability domain (formats, channel masks, devices, flags, modes,
// sources) is an ordered [Table] of (value, canonical string) pairs. Lookups
// scan linearly in both directions, so the first entry wins when a value has
// several spellings (for example AUDIO_DEVICE_OUT_AUX_DIGITAL and
// AUDIO_DEVICE_OUT_HDMI).
//
// # Lists
//
// Configuration files express sets of capabilities as separated lists:
//
//	AUDIO_OUTPUT_FLAG_PRIMARY|AUDIO_OUTPUT_FLAG_FAST
//	44100,48000
//	AUDIO_CHANNEL_OUT_MONO, AUDIO_CHANNEL_OUT_STEREO
//
// [ParseList] accumulates recognised tokens into a bitmask and reports the
// unrecognised ones separately; callers decide whether an unknown token is
// fatal. [ParseSamplingRates] and [ParseChannelMasks] build ordered lists
// instead of bitmasks.
//
// # Fancy names
//
// Fancy names ("output-speaker", "input-builtin_mic") are display names for
// devices and sources. They are only produced, never parsed.
package audio
