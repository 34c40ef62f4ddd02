package log

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionNone, "NONE"},
		{DirectionOutput, "OUTPUT"},
		{DirectionInput, "INPUT"},
		{Direction(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryStream, "STREAM"},
		{CategoryRoute, "ROUTE"},
		{CategoryMode, "MODE"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStreamActionString(t *testing.T) {
	tests := []struct {
		a    StreamAction
		want string
	}{
		{StreamOpen, "OPEN"},
		{StreamClose, "CLOSE"},
		{StreamStandby, "STANDBY"},
		{StreamResume, "RESUME"},
		{StreamReconfigure, "RECONFIGURE"},
		{StreamAction(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("StreamAction(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestCategoryValues(t *testing.T) {
	// Values are persisted in log files and must not change.
	if CategoryStream != 0 || CategoryRoute != 1 || CategoryMode != 2 || CategoryError != 3 {
		t.Error("category values changed")
	}
	if DirectionNone != 0 || DirectionOutput != 1 || DirectionInput != 2 {
		t.Error("direction values changed")
	}
}

func TestEventPortsAndLabel(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		ports []string
		label string
	}{
		{
			"stream",
			Event{Category: CategoryStream, Stream: &StreamEvent{Action: StreamStandby, MixPort: "primary output", DevicePort: "Speaker"}},
			[]string{"primary output", "Speaker"},
			"STANDBY",
		},
		{
			"first route",
			Event{Category: CategoryRoute, Route: &RouteEvent{NewDevice: "Earpiece"}},
			[]string{"Earpiece"},
			"Route",
		},
		{
			"mode",
			Event{Category: CategoryMode, Mode: &ModeEvent{NewMode: "IN_CALL"}},
			nil,
			"Mode",
		},
		{
			"error",
			Event{Category: CategoryError, Error: &ErrorEventData{Op: "OpenInputStream"}},
			nil,
			"OpenInputStream",
		},
		{"no payload", Event{Category: CategoryRoute}, nil, "ROUTE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			got := tt.event.Ports()
			if len(got) != len(tt.ports) {
				t.Fatalf("Ports() = %q, want %q", got, tt.ports)
			}
			for i := range got {
				if got[i] != tt.ports[i] {
					t.Errorf("Ports()[%d] = %q, want %q", i, got[i], tt.ports[i])
				}
			}
		})
	}
}
