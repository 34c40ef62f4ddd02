package audio

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Separator sets accepted by the list parsers. Every character in the set
// splits the input.
const (
	// FlagSeparators splits flag and device lists ("A|B" or "A B").
	FlagSeparators = "| \t"
	// ValueSeparators splits rate, channel and format lists ("a,b" or "a b").
	ValueSeparators = ", \t"
	// LegacySeparators accepts both conventions.
	LegacySeparators = "|, \t"
)

// Limits on list lengths.
const (
	MaxSamplingRates = 32
	MaxChannelMasks  = 32
	MaxFormats       = 32
)

// RateDynamic as the first sampling rate means the rate is negotiated when
// the stream opens.
const RateDynamic uint32 = math.MaxUint32

// DynamicToken is the literal used in configuration files for dynamic
// rates.
const DynamicToken = "dynamic"

// Errors returned by the list parsers.
var (
	ErrTooManyRates    = errors.New("too many sampling rates")
	ErrInvalidRate     = errors.New("invalid sampling rate")
	ErrNoChannels      = errors.New("no recognized channel masks")
	ErrTooManyChannels = errors.New("too many channel masks")
	ErrTooManyFormats  = errors.New("too many formats")
)

func splitTokens(s, sep string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(sep, r)
	})
}

// ParseList splits s on any character of sep, looks every token up in
// table and ORs the recognised values into value. Unrecognised tokens are
// collected in unknown, joined with '|'. The returned count is the number
// of recognised tokens.
func ParseList(table Table, sep, s string) (count int, value uint32, unknown string) {
	var missing []string
	for _, tok := range splitTokens(s, sep) {
		v, ok := table.FromString(tok)
		if !ok {
			missing = append(missing, tok)
			continue
		}
		value |= v
		count++
	}
	return count, value, strings.Join(missing, "|")
}

// ParseOutputFlags parses a list of output flag names.
func ParseOutputFlags(s string) (OutputFlags, string) {
	_, v, unknown := ParseList(OutputFlagTable, FlagSeparators, s)
	return OutputFlags(v), unknown
}

// ParseInputFlags parses a list of input flag names.
func ParseInputFlags(s string) (InputFlags, string) {
	_, v, unknown := ParseList(InputFlagTable, FlagSeparators, s)
	return InputFlags(v), unknown
}

// ParseDevices parses a list of device names for the given direction.
func ParseDevices(dir Direction, sep, s string) (devices DeviceType, count int, unknown string) {
	count, v, unknown := ParseList(DeviceTable(dir), sep, s)
	return DeviceType(v), count, unknown
}

// ParseDevice parses a single device name, trying the output table first.
func ParseDevice(s string) (DeviceType, bool) {
	s = strings.TrimSpace(s)
	if v, ok := OutputDevices.FromString(s); ok {
		return DeviceType(v), true
	}
	if v, ok := InputDevices.FromString(s); ok {
		return DeviceType(v), true
	}
	return DeviceNone, false
}

// ParseFormat parses a single format name.
func ParseFormat(s string) (Format, bool) {
	v, ok := Formats.FromString(strings.TrimSpace(s))
	return Format(v), ok
}

// ParseFormats parses an ordered list of formats. Formats are not bitmasks,
// so the result is a list rather than an OR of values.
func ParseFormats(sep, s string) ([]Format, string, error) {
	var (
		out     []Format
		missing []string
	)
	for _, tok := range splitTokens(s, sep) {
		f, ok := ParseFormat(tok)
		if !ok {
			missing = append(missing, tok)
			continue
		}
		if len(out) == MaxFormats {
			return nil, "", ErrTooManyFormats
		}
		out = append(out, f)
	}
	return out, strings.Join(missing, "|"), nil
}

// ParseSamplingRates parses a list of sampling rates. The literal
// "dynamic" as the first token yields a single RateDynamic entry and the
// rest of the list is ignored.
func ParseSamplingRates(sep, s string) ([]uint32, error) {
	var rates []uint32
	for i, tok := range splitTokens(s, sep) {
		if i == 0 && tok == DynamicToken {
			return []uint32{RateDynamic}, nil
		}
		if len(rates) == MaxSamplingRates {
			return nil, ErrTooManyRates
		}
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil || v == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRate, tok)
		}
		rates = append(rates, uint32(v))
	}
	return rates, nil
}

// IsDynamicRates reports whether a rate list means "negotiated at open".
func IsDynamicRates(rates []uint32) bool {
	return len(rates) > 0 && rates[0] == RateDynamic
}

// ParseChannelMasks parses an ordered list of channel masks for dir.
// Unrecognised tokens are skipped and reported in unknown. A first
// recognised mask of AUDIO_CHANNEL_NONE (or the "dynamic" literal) yields a
// single ChannelMaskDynamic entry. ErrNoChannels is returned if nothing was
// recognised.
func ParseChannelMasks(dir Direction, sep, s string) (masks []ChannelMask, unknown string, err error) {
	table := ChannelTable(dir)
	var missing []string
	for _, tok := range splitTokens(s, sep) {
		if len(masks) == 0 && tok == DynamicToken {
			return []ChannelMask{ChannelMaskDynamic}, strings.Join(missing, "|"), nil
		}
		v, ok := table.FromString(tok)
		if !ok {
			missing = append(missing, tok)
			continue
		}
		if ChannelMask(v) == ChannelMaskDynamic {
			if len(masks) == 0 {
				return []ChannelMask{ChannelMaskDynamic}, strings.Join(missing, "|"), nil
			}
			continue
		}
		if len(masks) == MaxChannelMasks {
			return nil, "", ErrTooManyChannels
		}
		masks = append(masks, ChannelMask(v))
	}
	unknown = strings.Join(missing, "|")
	if len(masks) == 0 {
		return nil, unknown, ErrNoChannels
	}
	return masks, unknown, nil
}

// IsDynamicChannels reports whether a mask list means "negotiated at open".
func IsDynamicChannels(masks []ChannelMask) bool {
	return len(masks) > 0 && masks[0] == ChannelMaskDynamic
}

// ListString formats a bitmask as the '|'-joined canonical names of the
// single-bit entries of table present in mask. Combination entries are
// skipped so that every bit is named once.
func ListString(table Table, mask uint32) string {
	return listString(table, mask, 0)
}

// DeviceListString formats a device bitmask. The input direction bit is
// ignored when deciding whether an entry names a single device.
func DeviceListString(dir Direction, devices DeviceType) string {
	if dir == DirectionInput {
		return listString(InputDevices, uint32(devices), uint32(DeviceBitIn))
	}
	return listString(OutputDevices, uint32(devices), 0)
}

func listString(table Table, mask, ignore uint32) string {
	var names []string
	for _, e := range table {
		if e.Alias || bits.OnesCount32(e.Value&^ignore) != 1 {
			continue
		}
		if mask&e.Value == e.Value {
			names = append(names, e.Name)
		}
	}
	return strings.Join(names, "|")
}

// SplitDevices returns the single devices contained in a device bitmask, in
// table order. For input devices each result keeps DeviceBitIn.
func SplitDevices(dir Direction, devices DeviceType) []DeviceType {
	var ignore uint32
	if dir == DirectionInput {
		ignore = uint32(DeviceBitIn)
	}
	var out []DeviceType
	for _, e := range DeviceTable(dir) {
		if e.Alias || bits.OnesCount32(e.Value&^ignore) != 1 {
			continue
		}
		if uint32(devices)&e.Value == e.Value {
			out = append(out, DeviceType(e.Value))
		}
	}
	return out
}
