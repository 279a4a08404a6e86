package electro

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultCharges is a ±1 nC dipole on the x axis.
const DefaultCharges = "-1,0,1e-9; 1,0,-1e-9"

// InputError reports a malformed charge list.
type InputError struct {
	Segment string
	Reason  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("electro: invalid charge %q: %s (expected x,y,q; x,y,q ...)", e.Segment, e.Reason)
}

// ParseCharges reads "x,y,q; x,y,q ..." triples. Blank segments are ignored.
func ParseCharges(s string) ([]Charge, error) {
	var charges []Charge
	for _, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		parts := strings.Split(seg, ",")
		if len(parts) != 3 {
			return nil, &InputError{Segment: seg, Reason: fmt.Sprintf("got %d values", len(parts))}
		}

		var vals [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, &InputError{Segment: seg, Reason: fmt.Sprintf("%q is not a number", strings.TrimSpace(p))}
			}
			vals[i] = v
		}
		charges = append(charges, Charge{X: vals[0], Y: vals[1], Q: vals[2]})
	}
	if len(charges) == 0 {
		return nil, &InputError{Segment: s, Reason: "no charges"}
	}
	return charges, nil
}

func FormatCharges(charges []Charge) string {
	parts := make([]string, len(charges))
	for i, c := range charges {
		parts[i] = strings.Join([]string{
			strconv.FormatFloat(c.X, 'g', -1, 64),
			strconv.FormatFloat(c.Y, 'g', -1, 64),
			strconv.FormatFloat(c.Q, 'g', -1, 64),
		}, ",")
	}
	return strings.Join(parts, "; ")
}
