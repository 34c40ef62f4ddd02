package log

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// An .rlog file is a plain concatenation of CBOR encoded events. There is no
// header, so files written by separate runs can be appended to each other.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	opts.NilContainers = cbor.NilContainerAsNull
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: cbor encoder: %v", err))
	}

	dm, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: 8,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: cbor decoder: %v", err))
	}
	encMode, decMode = em, dm
}

// EncodeEvent returns the CBOR encoding of event.
func EncodeEvent(event Event) ([]byte, error) {
	return encMode.Marshal(event)
}

// DecodeEvent decodes a single event. Trailing bytes are an error.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	err := decMode.Unmarshal(data, &event)
	return event, err
}

// DecodeEvents decodes every event of a concatenated buffer, such as the
// complete contents of an .rlog file.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	for len(data) > 0 {
		var event Event
		rest, err := decMode.UnmarshalFirst(data, &event)
		if err != nil {
			return events, fmt.Errorf("log: event %d: %w", len(events), err)
		}
		events = append(events, event)
		data = rest
	}
	return events, nil
}
