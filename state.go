package prana

import (
	"sort"
	"time"
)

// Sample is one time-series value.
type Sample struct {
	Timestamp int64 // milliseconds since epoch
	Value     any
}

// Telemetry is a time-series snapshot keyed by telemetry key, newest sample first.
type Telemetry map[string][]Sample

// TelemetryFromJSON converts a decoded timeseries response of the form
// {"key": [{"ts": ..., "value": ...}]}. Entries that are not lists are kept as
// a single sample; anything that is not an object yields an empty snapshot.
func TelemetryFromJSON(v any) Telemetry {
	obj, ok := v.(map[string]any)
	if !ok {
		return Telemetry{}
	}
	out := make(Telemetry, len(obj))
	for key, raw := range obj {
		switch vals := raw.(type) {
		case nil:
			out[key] = nil
		case []any:
			samples := make([]Sample, 0, len(vals))
			for _, elem := range vals {
				m, ok := elem.(map[string]any)
				if !ok {
					samples = append(samples, Sample{Value: elem})
					continue
				}
				ts, _ := numberField(m, "ts")
				samples = append(samples, Sample{Timestamp: int64(ts), Value: m["value"]})
			}
			out[key] = samples
		default:
			out[key] = []Sample{{Value: vals}}
		}
	}
	return out
}

// Latest returns the newest non-null value for key.
func (t Telemetry) Latest(key string) (any, bool) {
	samples := t[key]
	if len(samples) == 0 || samples[0].Value == nil {
		return nil, false
	}
	return samples[0].Value, true
}

// AttributeEntry is one attribute as returned in list form.
type AttributeEntry struct {
	Key          string
	Value        any
	LastUpdateTs int64
}

// Attributes is an attribute snapshot in either of the two shapes the platform
// returns: a flat key/value object or a list of key/value entries.
type Attributes struct {
	flat   map[string]any
	list   []AttributeEntry
	isList bool
}

// FlatAttributes wraps a key/value object.
func FlatAttributes(m map[string]any) Attributes {
	if m == nil {
		m = map[string]any{}
	}
	return Attributes{flat: m}
}

// ListAttributes wraps a list of entries.
func ListAttributes(entries []AttributeEntry) Attributes {
	return Attributes{list: entries, isList: true}
}

// AttributesFromJSON converts a decoded attributes response. Objects become
// flat snapshots, arrays become list snapshots and anything else is empty.
func AttributesFromJSON(v any) Attributes {
	switch raw := v.(type) {
	case map[string]any:
		return FlatAttributes(raw)
	case []any:
		entries := make([]AttributeEntry, 0, len(raw))
		for _, elem := range raw {
			m, ok := elem.(map[string]any)
			if !ok {
				continue
			}
			ts, _ := numberField(m, "lastUpdateTs")
			entries = append(entries, AttributeEntry{
				Key:          stringValue(m, "key"),
				Value:        m["value"],
				LastUpdateTs: int64(ts),
			})
		}
		return ListAttributes(entries)
	default:
		return FlatAttributes(nil)
	}
}

// IsList reports whether the snapshot came in list form.
func (a Attributes) IsList() bool {
	return a.isList
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	if a.isList {
		return len(a.list)
	}
	return len(a.flat)
}

// Lookup returns the non-null value for key. In list form the first entry
// with a matching key wins.
func (a Attributes) Lookup(key string) (any, bool) {
	if a.isList {
		for _, entry := range a.list {
			if entry.Key == key {
				return entry.Value, entry.Value != nil
			}
		}
		return nil, false
	}
	v, ok := a.flat[key]
	return v, ok && v != nil
}

// Entries returns the attributes as a list. Flat snapshots are sorted by key.
func (a Attributes) Entries() []AttributeEntry {
	if a.isList {
		return a.list
	}
	keys := make([]string, 0, len(a.flat))
	for k := range a.flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]AttributeEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, AttributeEntry{Key: k, Value: a.flat[k]})
	}
	return entries
}

// Map returns the attributes as a key/value map. In list form later entries
// overwrite earlier ones with the same key.
func (a Attributes) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a.isList {
		for _, entry := range a.list {
			out[entry.Key] = entry.Value
		}
		return out
	}
	for k, v := range a.flat {
		out[k] = v
	}
	return out
}

// PranaState is the operational snapshot of a device, rebuilt from a
// telemetry and attribute pair on every request.
//
// Pointer fields are nil when the device reported no value; a nil fan speed
// means "unknown", not "off".
type PranaState struct {
	// Fan speeds on the 0-5 display scale.
	SupplySpeed  *int
	ExtractSpeed *int

	PowerOn     bool
	AutoMode    bool
	BoundedMode bool // supply and extract speeds linked
	NightMode   bool
	HeaterOn    bool

	SleepTimer   bool
	SleepSeconds int

	Brightness *int

	CO2         *int
	VOC         *int
	Humidity    *float64
	Temperature *float64
	Pressure    *int

	Online          bool
	Defrosting      bool
	WiFiRSSI        *int
	FirmwareVersion *int

	LastActivityTime *time.Time

	// Every telemetry and attribute value received, mapped or not.
	RawTelemetry  Telemetry
	RawAttributes map[string]any
}

// SleepDuration returns the remaining sleep timer as a duration.
func (s *PranaState) SleepDuration() time.Duration {
	return time.Duration(s.SleepSeconds) * time.Second
}

// stateDecoder resolves keys against telemetry first, then attributes.
type stateDecoder struct {
	telemetry Telemetry
	attrs     Attributes
}

func (d stateDecoder) value(key string) (any, bool) {
	if v, ok := d.telemetry.Latest(key); ok {
		return v, true
	}
	return d.attrs.Lookup(key)
}

func (d stateDecoder) position(key string) bool {
	v, _ := d.value(key)
	return toPosition(v)
}

func (d stateDecoder) intOpt(key string) *int {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		return nil
	}
	return &n
}

func (d stateDecoder) floatOpt(key string) *float64 {
	v, ok := d.value(key)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// attrInt reads an integer from attributes only, defaulting to 0.
func (d stateDecoder) attrInt(key string) int {
	v, ok := d.attrs.Lookup(key)
	if !ok {
		return 0
	}
	n, _ := toInt(v)
	return n
}

// displaySpeed converts a 0-50 motor value to the 0-5 display scale.
func (d stateDecoder) displaySpeed(key string) *int {
	raw := d.intOpt(key)
	if raw == nil {
		return nil
	}
	speed := floorDiv(*raw, motorSpeedScale)
	return &speed
}

func (d stateDecoder) lastActivity() *time.Time {
	v, ok := d.attrs.Lookup(KeyLastActivityTime)
	if !ok {
		return nil
	}
	t, ok := timeFromMillis(v)
	if !ok {
		return nil
	}
	return &t
}

// DecodeState merges a telemetry snapshot and an attribute snapshot into a
// PranaState. It never fails; unparseable values decode as absent.
func DecodeState(telemetry Telemetry, attrs Attributes) *PranaState {
	if telemetry == nil {
		telemetry = Telemetry{}
	}
	d := stateDecoder{telemetry: telemetry, attrs: attrs}

	lsb := d.attrInt(KeySleepSecondsLSB)
	msb := d.attrInt(KeySleepSecondsMSB)

	return &PranaState{
		SupplySpeed:  d.displaySpeed(KeyMotorsSupply),
		ExtractSpeed: d.displaySpeed(KeyMotorsExtract),

		PowerOn:     d.position(KeyPowerPosition),
		AutoMode:    d.position(KeyAutoModePosition),
		BoundedMode: d.position(KeyBoundedPosition),
		NightMode:   d.position(KeyNightModePosition),
		HeaterOn:    d.position(KeyHeaterPosition),

		SleepTimer:   d.position(KeySleepPosition),
		SleepSeconds: lsb + msb<<8,

		Brightness: d.intOpt(KeyBrightnessPosition),

		CO2:         d.intOpt(KeyCO2),
		VOC:         d.intOpt(KeyVOC),
		Humidity:    d.floatOpt(KeyHumidity),
		Temperature: d.floatOpt(KeyTemperature),
		Pressure:    d.intOpt(KeyPressure),

		Online:          d.position(KeyActive),
		Defrosting:      d.position(KeyDefrostingPosition),
		WiFiRSSI:        d.intOpt(KeyWiFiRSSI),
		FirmwareVersion: d.intOpt(KeyFirmwareVersion),

		LastActivityTime: d.lastActivity(),

		RawTelemetry:  telemetry,
		RawAttributes: attrs.Map(),
	}
}
