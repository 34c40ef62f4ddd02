package sample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/droidaudio/droid-go/pkg/audio"
)

// Errors returned by conversions.
var (
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrUnmappableChannel = errors.New("channel position has no HAL equivalent")
	ErrInvalidSpec       = errors.New("invalid sample spec")
)

// MaxChannels is the largest channel count a Spec may carry.
const MaxChannels = 32

// Format is a sound server sample format.
type Format uint8

const (
	FormatInvalid Format = iota
	FormatU8
	FormatS16LE
	FormatS24LE
	FormatS32LE
	FormatFloat32LE
	FormatS24In32LE
)

var formatNames = map[Format]string{
	FormatInvalid:   "invalid",
	FormatU8:        "u8",
	FormatS16LE:     "s16le",
	FormatS24LE:     "s24le",
	FormatS32LE:     "s32le",
	FormatFloat32LE: "float32le",
	FormatS24In32LE: "s24-32le",
}

// String returns the format name.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "invalid"
}

// ParseFormat parses a format name such as "s16le".
func ParseFormat(s string) (Format, bool) {
	for f, name := range formatNames {
		if name == s && f != FormatInvalid {
			return f, true
		}
	}
	return FormatInvalid, false
}

// SampleSize returns the size of one sample in bytes.
func (f Format) SampleSize() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16LE:
		return 2
	case FormatS24LE:
		return 3
	case FormatS32LE, FormatFloat32LE, FormatS24In32LE:
		return 4
	}
	return 0
}

var halFormats = []struct {
	format Format
	hal    audio.Format
}{
	{FormatU8, audio.FormatPCM8Bit},
	{FormatS16LE, audio.FormatPCM16Bit},
	{FormatS24LE, audio.FormatPCM24BitPacked},
	{FormatS32LE, audio.FormatPCM32Bit},
	{FormatFloat32LE, audio.FormatPCMFloat},
	{FormatS24In32LE, audio.FormatPCM824Bit},
}

// HAL returns the HAL format of f.
func (f Format) HAL() (audio.Format, error) {
	for _, e := range halFormats {
		if e.format == f {
			return e.hal, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// FormatFromHAL returns the sample format matching a HAL format.
func FormatFromHAL(f audio.Format) (Format, error) {
	for _, e := range halFormats {
		if e.hal == f {
			return e.format, nil
		}
	}
	return FormatInvalid, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// Spec describes a stream of samples.
type Spec struct {
	Format   Format
	Rate     uint32
	Channels uint8
}

// Valid reports whether the spec can describe a stream.
func (s Spec) Valid() bool {
	return s.Format != FormatInvalid && s.Format.SampleSize() > 0 &&
		s.Rate > 0 && s.Channels > 0 && s.Channels <= MaxChannels
}

// FrameSize returns the size of one frame in bytes.
func (s Spec) FrameSize() int {
	return s.Format.SampleSize() * int(s.Channels)
}

// String returns e.g. "s16le 2ch 48000Hz".
func (s Spec) String() string {
	return fmt.Sprintf("%s %dch %dHz", s.Format, s.Channels, s.Rate)
}

// Position is a channel position.
type Position int8

const (
	PositionInvalid Position = iota - 1
	PositionMono
	PositionFrontLeft
	PositionFrontRight
	PositionFrontCenter
	PositionRearCenter
	PositionRearLeft
	PositionRearRight
	PositionLFE
	PositionFrontLeftOfCenter
	PositionFrontRightOfCenter
	PositionSideLeft
	PositionSideRight
	PositionTopCenter
	PositionTopFrontLeft
	PositionTopFrontRight
	PositionTopFrontCenter
	PositionTopRearLeft
	PositionTopRearRight
	PositionTopRearCenter
)

var positionNames = [...]string{
	"mono", "front-left", "front-right", "front-center", "rear-center", "rear-left", "rear-right",
	"lfe", "front-left-of-center", "front-right-of-center", "side-left", "side-right",
	"top-center", "top-front-left", "top-front-right", "top-front-center",
	"top-rear-left", "top-rear-right", "top-rear-center",
}

// String returns the position name.
func (p Position) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "invalid"
}

// ChannelMap assigns a position to every channel.
type ChannelMap []Position

// String returns the comma separated position names.
func (m ChannelMap) String() string {
	names := make([]string, len(m))
	for i, p := range m {
		names[i] = p.String()
	}
	return strings.Join(names, ",")
}

// Equal reports whether both maps are identical.
func (m ChannelMap) Equal(o ChannelMap) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Compatible reports whether the map can describe a stream of spec.
func (m ChannelMap) Compatible(s Spec) bool {
	return len(m) == int(s.Channels)
}

// DefaultChannelMap returns the conventional map for n channels. Channel
// counts without a convention yield nil.
func DefaultChannelMap(n int) ChannelMap {
	switch n {
	case 1:
		return ChannelMap{PositionMono}
	case 2:
		return ChannelMap{PositionFrontLeft, PositionFrontRight}
	case 4:
		return ChannelMap{PositionFrontLeft, PositionFrontRight, PositionRearLeft, PositionRearRight}
	case 6:
		return ChannelMap{PositionFrontLeft, PositionFrontRight, PositionFrontCenter, PositionLFE,
			PositionRearLeft, PositionRearRight}
	case 8:
		return ChannelMap{PositionFrontLeft, PositionFrontRight, PositionFrontCenter, PositionLFE,
			PositionRearLeft, PositionRearRight, PositionSideLeft, PositionSideRight}
	}
	return nil
}

type positionBit struct {
	pos Position
	bit audio.ChannelMask
}

var outputPositions = []positionBit{
	{PositionMono, audio.ChannelOutMono},
	{PositionFrontLeft, audio.ChannelOutFrontLeft},
	{PositionFrontRight, audio.ChannelOutFrontRight},
	{PositionFrontCenter, audio.ChannelOutFrontCenter},
	{PositionLFE, audio.ChannelOutLowFrequency},
	{PositionRearLeft, audio.ChannelOutBackLeft},
	{PositionRearRight, audio.ChannelOutBackRight},
	{PositionFrontLeftOfCenter, audio.ChannelOutFrontLeftOfCenter},
	{PositionFrontRightOfCenter, audio.ChannelOutFrontRightOfCenter},
	{PositionRearCenter, audio.ChannelOutBackCenter},
	{PositionSideLeft, audio.ChannelOutSideLeft},
	{PositionSideRight, audio.ChannelOutSideRight},
	{PositionTopCenter, audio.ChannelOutTopCenter},
	{PositionTopFrontLeft, audio.ChannelOutTopFrontLeft},
	{PositionTopFrontCenter, audio.ChannelOutTopFrontCenter},
	{PositionTopFrontRight, audio.ChannelOutTopFrontRight},
	{PositionTopRearLeft, audio.ChannelOutTopBackLeft},
	{PositionTopRearCenter, audio.ChannelOutTopBackCenter},
	{PositionTopRearRight, audio.ChannelOutTopBackRight},
}

var inputPositions = []positionBit{
	{PositionMono, audio.ChannelInMono},
	{PositionFrontLeft, audio.ChannelInLeft},
	{PositionFrontRight, audio.ChannelInRight},
	{PositionFrontCenter, audio.ChannelInFront},
	{PositionRearCenter, audio.ChannelInBack},
}

func positions(dir audio.Direction) []positionBit {
	if dir == audio.DirectionInput {
		return inputPositions
	}
	return outputPositions
}

// Mask converts the map into a HAL channel mask by summing the bit of
// every position.
func (m ChannelMap) Mask(dir audio.Direction) (audio.ChannelMask, error) {
	var mask audio.ChannelMask
	table := positions(dir)
next:
	for _, p := range m {
		for _, e := range table {
			if e.pos == p {
				mask += e.bit
				continue next
			}
		}
		return 0, fmt.Errorf("%w: %s (%s)", ErrUnmappableChannel, p, dir)
	}
	return mask, nil
}

// ChannelMapFromMask converts a HAL channel mask into a channel map. A
// single channel mask yields a mono map.
func ChannelMapFromMask(dir audio.Direction, mask audio.ChannelMask) ChannelMap {
	if mask.Count() == 1 {
		return ChannelMap{PositionMono}
	}
	var m ChannelMap
	for _, e := range positions(dir) {
		if e.pos == PositionMono {
			continue
		}
		if mask&e.bit == e.bit {
			m = append(m, e.pos)
		}
	}
	return m
}
