package models

// Icon is the closed set of route icons. Unknown names decode to IconNone.
type Icon uint8

const (
	IconNone Icon = iota
	IconBolt
	IconWrench
	IconTool
	IconMonitor
)

var iconNames = map[Icon]string{
	IconBolt:    "bolt",
	IconWrench:  "wrench",
	IconTool:    "tool",
	IconMonitor: "monitor",
}

// ParseIcon maps a name to its Icon. The second result is false for unknown names.
func ParseIcon(name string) (Icon, bool) {
	for icon, n := range iconNames {
		if n == name {
			return icon, true
		}
	}
	return IconNone, false
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler
func (i Icon) MarshalText() ([]byte, error) {
	if i == IconNone {
		return []byte{}, nil
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Icon) UnmarshalText(text []byte) error {
	*i, _ = ParseIcon(string(text))
	return nil
}
