package conv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SizeSuffix is a size in bytes which is written and parsed with
// binary suffixes, eg 32Ki or 1.5Mi
type SizeSuffix int64

// Binary multipliers for SizeSuffix
const (
	SizeSuffixBase SizeSuffix = 1 << (iota * 10)
	Kibi
	Mebi
	Gibi
)

// sizeUnits are the suffixes String uses, largest first
var sizeUnits = []struct {
	size   SizeSuffix
	suffix string
}{
	{Gibi, "Gi"},
	{Mebi, "Mi"},
	{Kibi, "Ki"},
	{SizeSuffixBase, "B"},
}

// String returns the size in the largest unit it reaches, "off" if
// negative
func (x SizeSuffix) String() string {
	if x < 0 {
		return "off"
	}
	if x == 0 {
		return "0"
	}
	for _, unit := range sizeUnits {
		if x < unit.size {
			continue
		}
		scaled := float64(x) / float64(unit.size)
		if scaled == math.Floor(scaled) {
			return fmt.Sprintf("%.0f%s", scaled, unit.suffix)
		}
		return fmt.Sprintf("%.3f%s", scaled, unit.suffix)
	}
	return strconv.FormatInt(int64(x), 10)
}

// suffixMultiplier maps the letter of a suffix to its size
var suffixMultiplier = map[byte]SizeSuffix{
	'k': Kibi,
	'm': Mebi,
	'g': Gibi,
}

// splitSuffix splits s into its number and the multiplier its suffix
// means. K, Ki and KiB are all the same and B is bytes. No suffix at
// all is KiB.
func splitSuffix(s string) (number string, multiplier SizeSuffix, err error) {
	lower := strings.ToLower(s)
	binary := false
	if strings.HasSuffix(lower, "ib") {
		lower, binary = lower[:len(lower)-2], true
	} else if strings.HasSuffix(lower, "i") {
		lower, binary = lower[:len(lower)-1], true
	} else if strings.HasSuffix(lower, "b") {
		return s[:len(s)-1], SizeSuffixBase, nil
	}
	if lower == "" {
		return "", 0, errors.Errorf("bad suffix in %q", s)
	}
	last := lower[len(lower)-1]
	if m, ok := suffixMultiplier[last]; ok {
		return s[:len(lower)-1], m, nil
	}
	if !binary && (last == '.' || (last >= '0' && last <= '9')) {
		return s, Kibi, nil
	}
	return "", 0, errors.Errorf("bad suffix %q", last)
}

// Set parses a size, "off" sets it negative
func (x *SizeSuffix) Set(s string) error {
	if s == "" {
		return errors.New("empty string")
	}
	if strings.EqualFold(s, "off") {
		*x = -1
		return nil
	}
	number, multiplier, err := splitSuffix(s)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return err
	}
	if value < 0 {
		return errors.Errorf("size can't be negative %q", s)
	}
	value *= float64(multiplier)
	if value > math.MaxInt64 {
		return errors.Errorf("size too large %q", s)
	}
	*x = SizeSuffix(value)
	return nil
}

// Type of the value
func (x *SizeSuffix) Type() string {
	return "SizeSuffix"
}
