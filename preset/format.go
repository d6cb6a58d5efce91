package preset

import "strings"

// Storage format: one record per line, 9 pipe-delimited fields in fixed
// order: name, loadout code, primary color, accent color, car, decal,
// wheels, matte flag, pearlescent flag. Fields from the third onward are
// optional on read; missing ones keep their defaults.
//
// Vanilla format: one record per line, name and loadout code separated by
// the last run of spaces/tabs on the line.
//
// Both formats skip blank lines and lines starting with '#'.

const lineCutset = " \t\r\n"

func trimLine(s string) string {
	return strings.Trim(s, lineCutset)
}

// skippable reports whether a trimmed line carries no record (blank or
// comment).
func skippable(line string) bool {
	return line == "" || line[0] == '#'
}

// parseStorageLine parses one storage-format line. ok is false for blank,
// comment, or sub-2-field lines; field-level problems degrade to defaults
// instead of failing the line.
func parseStorageLine(line string) (p Preset, ok bool) {
	line = trimLine(line)
	if skippable(line) {
		return Preset{}, false
	}
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return Preset{}, false
	}

	p = Preset{
		Name:          trimLine(fields[0]),
		LoadoutCode:   trimLine(fields[1]),
		Customization: DefaultCustomization(),
	}
	if len(fields) >= 3 {
		p.Customization.PrimaryColor = ParseColorToken(fields[2])
	}
	if len(fields) >= 4 {
		p.Customization.AccentColor = ParseColorToken(fields[3])
	}
	if len(fields) >= 5 {
		p.Customization.CarLabel = trimLine(fields[4])
	}
	if len(fields) >= 6 {
		p.Customization.DecalLabel = trimLine(fields[5])
	}
	if len(fields) >= 7 {
		p.Customization.WheelsLabel = trimLine(fields[6])
	}
	if len(fields) >= 8 {
		p.Customization.Matte = parseFlag(fields[7], "matte")
	}
	if len(fields) >= 9 {
		p.Customization.Pearlescent = parseFlag(fields[8], "pearlescent")
	}
	return p, true
}

// parseFlag accepts "1", "true", or the flag's own name as true; anything
// else is false.
func parseFlag(field, word string) bool {
	field = trimLine(field)
	return field == "1" || field == "true" || field == word
}

func formatStorageLine(p Preset) string {
	c := p.Customization
	return strings.Join([]string{
		p.Name,
		p.LoadoutCode,
		EncodeColorToken(c.PrimaryColor),
		EncodeColorToken(c.AccentColor),
		c.CarLabel,
		c.DecalLabel,
		c.WheelsLabel,
		formatFlag(c.Matte),
		formatFlag(c.Pearlescent),
	}, "|")
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// parseVanillaLine parses one vanilla-format line. The name is everything
// before the last run of whitespace, so names with internal single spaces
// survive intact. Lines without a delimiter, or with an empty name or code,
// carry no record.
func parseVanillaLine(line string) (p Preset, ok bool) {
	line = trimLine(line)
	if skippable(line) {
		return Preset{}, false
	}
	split := strings.LastIndexAny(line, " \t")
	if split < 0 {
		return Preset{}, false
	}

	p = Preset{
		Name:          trimLine(line[:split]),
		LoadoutCode:   trimLine(line[split+1:]),
		Customization: DefaultCustomization(),
	}
	if p.Name == "" || p.LoadoutCode == "" {
		return Preset{}, false
	}
	return p, true
}
