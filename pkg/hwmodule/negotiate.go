package hwmodule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/droidaudio/droid-go/pkg/audio"
	"github.com/droidaudio/droid-go/pkg/config"
	"github.com/droidaudio/droid-go/pkg/sample"
)

var (
	// ErrNoCompatibleProfile is returned when no profile of a port can carry
	// the requested channels in the requested format.
	ErrNoCompatibleProfile = errors.New("no compatible profile")

	// ErrStalePort is returned for ports that are not part of the module's
	// enabled configuration.
	ErrStalePort = errors.New("port not in enabled configuration")

	// ErrWrongDirection is returned for ports of the other direction.
	ErrWrongDirection = errors.New("port has wrong direction")

	// ErrStreamClosed is returned by operations on closed streams.
	ErrStreamClosed = errors.New("stream closed")

	// ErrStandby is returned when reading from an input stream in standby.
	ErrStandby = errors.New("stream in standby")

	// ErrUnknownModule is returned by GetOrOpen for ids missing from the
	// hardware description.
	ErrUnknownModule = errors.New("unknown hardware module")
)

// Negotiated is the outcome of CompatiblePort.
type Negotiated struct {
	// Profile is the first profile of the port that matched.
	Profile *config.Profile

	// Spec is the requested spec with rate and channel count adjusted.
	Spec sample.Spec

	// Channels is the channel map to open the stream with.
	Channels sample.ChannelMap

	// Mask is the channel mask the profile declares for Channels, or the
	// mask computed from Channels for dynamic profiles.
	Mask audio.ChannelMask
}

// CompatiblePort finds the first profile of port that can carry spec.
//
// The format must match exactly. Rates always negotiate: an exact match,
// then the highest declared rate that is a multiple of the request, then
// the first rate above the request, then the lowest rate. Channels must
// match by count, except that mono and stereo substitute for each other.
// Dynamic profiles only match maps that have a mask in the port direction.
// A nil channels uses the default map for spec.Channels.
func CompatiblePort(port *config.Port, spec sample.Spec, channels sample.ChannelMap) (Negotiated, error) {
	format, err := spec.Format.HAL()
	if err != nil {
		return Negotiated{}, err
	}
	if channels == nil {
		channels = sample.DefaultChannelMap(int(spec.Channels))
	}
	if len(channels) == 0 || !channels.Compatible(spec) {
		return Negotiated{}, fmt.Errorf("%w: %s with map %s", sample.ErrInvalidSpec, spec, channels)
	}

	dir := port.Direction()
	for _, p := range port.Profiles {
		if p.Format != format {
			continue
		}
		cm, mask, ok := negotiateChannels(dir, p.ChannelMasks, channels)
		if !ok {
			continue
		}
		out := spec
		out.Rate = negotiateRate(p.SamplingRates, spec.Rate)
		out.Channels = uint8(len(cm))
		return Negotiated{Profile: p, Spec: out, Channels: cm, Mask: mask}, nil
	}
	return Negotiated{}, fmt.Errorf("%w: port %q for %s", ErrNoCompatibleProfile, port.Name, spec)
}

func negotiateRate(rates []uint32, want uint32) uint32 {
	if len(rates) == 0 || audio.IsDynamicRates(rates) || want == 0 {
		return want
	}
	if slices.Contains(rates, want) {
		return want
	}

	sorted := slices.Clone(rates)
	slices.Sort(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i]%want == 0 {
			return sorted[i]
		}
	}
	for _, r := range sorted {
		if r > want {
			return r
		}
	}
	return sorted[0]
}

func negotiateChannels(dir audio.Direction, masks []audio.ChannelMask, want sample.ChannelMap) (sample.ChannelMap, audio.ChannelMask, bool) {
	if len(masks) == 0 || audio.IsDynamicChannels(masks) {
		mask, err := want.Mask(dir)
		if err != nil {
			return nil, 0, false
		}
		return want, mask, true
	}
	for _, m := range masks {
		if m.Count() == len(want) {
			return want, m, true
		}
	}

	// Mono and stereo stand in for each other.
	var swap int
	switch len(want) {
	case 1:
		swap = 2
	case 2:
		swap = 1
	default:
		return nil, 0, false
	}
	for _, m := range masks {
		if m.Count() == swap {
			return sample.DefaultChannelMap(swap), m, true
		}
	}
	return nil, 0, false
}
