package limbint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is wrapped by the errors returned from IntFromString and
	// IntFromStringRadix for malformed input.
	ErrSyntax = errors.New("limbint: invalid syntax")

	// ErrRadix is wrapped by the error returned from IntFromStringRadix when
	// the radix is outside 2 to 36.
	ErrRadix = errors.New("limbint: radix out of range")
)

// IntFromString creates an Int from a decimal string, with an optional
// leading '+' or '-'. There is no limit on the length of the string.
func IntFromString(s string) (Int, error) {
	return IntFromStringRadix(s, 10)
}

// IntFromStringRadix creates an Int from a string in the given radix, which
// must be between 2 and 36 inclusive. Digits above 9 may be upper or lower
// case.
func IntFromStringRadix(s string, radix int) (out Int, err error) {
	if radix < 2 || radix > 36 {
		return out, fmt.Errorf("limbint: radix %d: %w", radix, ErrRadix)
	}

	body, neg := s, false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if len(body) == 0 {
		return out, fmt.Errorf("limbint: string %q: %w", s, ErrSyntax)
	}

	// Consume the digits a limb-sized chunk at a time, so each chunk costs a
	// single multiply-add over the accumulated magnitude.
	chunk := radixChunks[radix]

	var mag []uint32
	for pos := 0; pos < len(body); pos += chunk.digits {
		end := pos + chunk.digits
		if end > len(body) {
			end = len(body)
		}

		var v, scale uint64 = 0, 1
		for _, c := range []byte(body[pos:end]) {
			d := digitValue(c)
			if d >= radix {
				return Int{}, fmt.Errorf("limbint: string %q: %w", s, ErrSyntax)
			}
			v = v*uint64(radix) + uint64(d)
			scale *= uint64(radix)
		}
		mag = mulAddMagLimb(mag, uint32(scale), uint32(v))
	}

	return fromMag(mag, neg), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func (i Int) String() string {
	return i.Text(10)
}

// Text returns the string representation of i in the given radix, which must
// be between 2 and 36 inclusive. Digits above 9 are lower case. Negative
// values are prefixed with '-'.
func (i Int) Text(radix int) string {
	if radix < 2 || radix > 36 {
		panic("limbint: illegal radix " + strconv.Itoa(radix))
	}
	if i.IsZero() {
		return "0"
	}
	if v, ok := i.Int64(); ok {
		return strconv.FormatInt(v, radix)
	}

	chunk := radixChunks[radix]

	// parts is filled least significant chunk first.
	mag := i.mag()
	var parts []string
	for len(mag) > 0 {
		var rem uint32
		mag, rem = quoRemMagLimb(mag, chunk.pow)
		parts = append(parts, strconv.FormatUint(uint64(rem), radix))
	}

	var sb strings.Builder
	sb.Grow(len(parts)*chunk.digits + 1)
	if i.IsNegative() {
		sb.WriteByte('-')
	}
	sb.WriteString(parts[len(parts)-1])
	for k := len(parts) - 2; k >= 0; k-- {
		for pad := chunk.digits - len(parts[k]); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(parts[k])
	}
	return sb.String()
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("limbint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
