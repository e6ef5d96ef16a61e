package circuit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// anglePattern matches a single angle: numbers, pi expressions, or combinations.
// Examples: "1.5707", "pi", "pi/2", "3*pi/4", "-pi", "-2*pi/3", "3.14e-2"
const anglePattern = `-?(?:\d*\.?\d*\*?pi(?:/\d+\.?\d*)?|(?:\d+\.?\d*|\.\d+)(?:[eE][+\-]?\d+)?)`

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// angleDenominators are tried in order when writing an angle as a multiple of pi.
// Phase-domain arithmetic only produces powers of two; 3 and 6 are kept for
// hand-written input.
var angleDenominators = func() []float64 {
	ds := []float64{1, 2, 3, 4, 6}
	for d := 8.0; d <= 1<<40; d *= 2 {
		ds = append(ds, d)
	}
	return ds
}()

// ParseAngle parses an angle expression, supporting plain numbers and pi expressions.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/1024"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func ParseAngle(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}

	s = strings.ToLower(s)
	matches := piExprRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}
	negative := matches[1] == "-"
	coeffStr := matches[2]
	denomStr := matches[3]

	coeff := 1.0
	if coeffStr != "" {
		var err error
		coeff, err = strconv.ParseFloat(coeffStr, 64)
		if err != nil {
			return 0, false
		}
	}

	result := coeff * math.Pi
	if denomStr != "" {
		denom, err := strconv.ParseFloat(denomStr, 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		result /= denom
	}

	if negative {
		result = -result
	}
	return result, true
}

// FormatAngle writes an angle as k*pi/m when that is exact to within a few ulps,
// and as the shortest round-tripping decimal otherwise.
func FormatAngle(val float64) string {
	if val == 0 {
		return "0"
	}
	sign := ""
	abs := val
	if val < 0 {
		sign = "-"
		abs = -val
	}
	for _, denom := range angleDenominators {
		coeff := abs * denom / math.Pi
		k := math.Round(coeff)
		if k < 1 || k > 1<<53 || math.Abs(coeff-k) > 1e-9 {
			continue
		}
		if math.Abs(k*math.Pi/denom-abs) > 1e-15*abs {
			continue
		}
		var sb strings.Builder
		sb.WriteString(sign)
		if k != 1 {
			sb.WriteString(strconv.FormatFloat(k, 'f', -1, 64))
			sb.WriteString("*")
		}
		sb.WriteString("pi")
		if denom != 1 {
			sb.WriteString("/")
			sb.WriteString(strconv.FormatFloat(denom, 'f', -1, 64))
		}
		return sb.String()
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}
