package preset

import (
	"encoding/json"

	"github.com/lucasb-eyer/go-colorful"
)

// PaintColor is an RGB triple with each channel normalized to [0, 1].
// Every construction and parse path clamps into that range, so two colors
// compare with plain ==.
type PaintColor struct {
	R float64
	G float64
	B float64
}

// Hex returns the color as "#rrggbb" for UI consumption.
func (c PaintColor) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

type paintColorJSON struct {
	R   *float64 `json:"r,omitempty"`
	G   *float64 `json:"g,omitempty"`
	B   *float64 `json:"b,omitempty"`
	Hex string   `json:"hex,omitempty"`
}

func (c PaintColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(paintColorJSON{R: &c.R, G: &c.G, B: &c.B, Hex: c.Hex()})
}

// UnmarshalJSON accepts either explicit r/g/b channels or a "#rrggbb" hex
// string. Explicit channels win when both are present, so a marshal/unmarshal
// cycle never loses precision to the 8-bit hex form.
func (c *PaintColor) UnmarshalJSON(data []byte) error {
	var aux paintColorJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.R == nil && aux.G == nil && aux.B == nil && aux.Hex != "" {
		parsed, err := colorful.Hex(aux.Hex)
		if err == nil {
			*c = PaintColor{R: parsed.R, G: parsed.G, B: parsed.B}
			return nil
		}
	}
	out := PaintColor{}
	if aux.R != nil {
		out.R = clamp01(*aux.R)
	}
	if aux.G != nil {
		out.G = clamp01(*aux.G)
	}
	if aux.B != nil {
		out.B = clamp01(*aux.B)
	}
	*c = out
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Customization bundles the cosmetic attributes attached to a preset.
// The two finish flags are independent; both may be set at once.
type Customization struct {
	PrimaryColor PaintColor `json:"primaryColor"`
	AccentColor  PaintColor `json:"accentColor"`
	CarLabel     string     `json:"car"`
	DecalLabel   string     `json:"decal"`
	WheelsLabel  string     `json:"wheels"`
	Matte        bool       `json:"matte"`
	Pearlescent  bool       `json:"pearlescent"`
}

// DefaultCustomization returns the stock look: dark gray body, warm orange
// accent, Octane with no decal on OEM wheels, glossy finish.
func DefaultCustomization() Customization {
	return Customization{
		PrimaryColor: PaintColor{R: 0.18, G: 0.18, B: 0.18},
		AccentColor:  PaintColor{R: 0.9, G: 0.35, B: 0.15},
		CarLabel:     "Octane",
		DecalLabel:   "None",
		WheelsLabel:  "OEM",
	}
}

// Preset is a named loadout code plus its customization. Name is the sole
// identity: the store treats two presets with equal names as the same entry.
type Preset struct {
	Name          string        `json:"name"`
	LoadoutCode   string        `json:"loadoutCode"`
	Customization Customization `json:"customization"`
}
