package curve

import (
	"strconv"
	"strings"
)

// Mode is the interpolation scheme used to evaluate a curve.
type Mode uint8

const (
	Linear Mode = iota + 1
	Cosine
	CatmullRom
	Bezier3
	Bezier4
	Bezier
	Constant
)

// Modes lists every valid mode in the order they are usually displayed.
var Modes = []Mode{
	Constant, Linear, Cosine, Bezier, Bezier3, Bezier4, CatmullRom,
}

// DetermineMode returns the mode a curve with the given type code and number
// of points is evaluated with. It is defined for every input, although curves
// without points cannot be evaluated under any mode.
func DetermineMode(typeCode uint8, pointCount int) Mode {
	switch typeCode {
	case 1:
		if pointCount < 4 {
			return Cosine
		}
		return CatmullRom
	case 2:
		switch pointCount {
		case 1:
			return Constant
		case 2:
			return Linear
		case 3:
			return Bezier3
		case 4:
			return Bezier4
		}
		return Bezier
	case 3:
		return Cosine
	}

	if pointCount == 1 {
		return Constant
	}
	return Linear
}

// ModeFromString returns the mode with the given name. Names are not case
// sensitive.
func ModeFromString(s string) (Mode, bool) {
	for _, m := range Modes {
		if strings.EqualFold(m.String(), s) {
			return m, true
		}
	}
	return 0, false
}

// Valid returns true if m is one of the seven interpolation modes.
func (m Mode) Valid() bool {
	return m >= Linear && m <= Constant
}

func (m Mode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case Cosine:
		return "Cosine"
	case CatmullRom:
		return "CatmullRom"
	case Bezier3:
		return "Bezier3"
	case Bezier4:
		return "Bezier4"
	case Bezier:
		return "Bezier"
	case Constant:
		return "Constant"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// MinPoints returns the smallest number of points a curve needs to be
// evaluated with m. It returns 0 for invalid modes.
func (m Mode) MinPoints() int {
	switch m {
	case Linear, Cosine, Bezier, Constant:
		return 1
	case Bezier3:
		return 3
	case CatmullRom, Bezier4:
		return 4
	}
	return 0
}

// ModeMask is a set of Modes.
type ModeMask uint32

// AllModes contains every valid mode.
var AllModes = MaskOf(Modes...)

// MaskOf returns the set containing the given modes.
func MaskOf(modes ...Mode) ModeMask {
	var mask ModeMask
	for _, m := range modes {
		mask = mask.Add(m)
	}
	return mask
}

func (mask ModeMask) Has(m Mode) bool { return mask&(1<<m) != 0 }
func (mask ModeMask) Add(m Mode) ModeMask { return mask | 1<<m }
func (mask ModeMask) Remove(m Mode) ModeMask { return mask &^ (1 << m) }

// Modes returns the valid modes in the set, in the order given by Modes.
func (mask ModeMask) Modes() []Mode {
	out := []Mode{}
	for _, m := range Modes {
		if mask.Has(m) {
			out = append(out, m)
		}
	}
	return out
}
