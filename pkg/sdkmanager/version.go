// pkg/sdkmanager/version.go
package sdkmanager

import (
	"strconv"
	"strings"
)

// CompareVersions orders two dotted version strings the way the listing
// reports them. The result is negative when a is older than b, positive
// when newer, zero when equal.
//
// Trailing ".0" segments are insignificant ("1.2.0" equals "1.2"), the
// remaining segments compare numerically ("1.10" is newer than "1.9"), and
// an equal prefix makes the longer version the newer one ("1.2" < "1.2.3").
// A segment that does not parse as an integer, such as the suffix in
// "1.2-beta", compares lexicographically against its counterpart; that
// keeps the order total and deterministic without guessing at pre-release
// semantics.
func CompareVersions(a, b string) int {
	as := strings.Split(stripTrailingZeros(a), ".")
	bs := strings.Split(stripTrailingZeros(b), ".")

	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		ai, aErr := strconv.Atoi(as[i])
		bi, bErr := strconv.Atoi(bs[i])

		if aErr != nil || bErr != nil {
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
			continue
		}

		if ai != bi {
			return ai - bi
		}
	}

	return len(as) - len(bs)
}

// stripTrailingZeros removes the trailing run of ".0" segments:
// "1.2.0.0" -> "1.2".
func stripTrailingZeros(v string) string {
	for strings.HasSuffix(v, ".0") {
		v = strings.TrimSuffix(v, ".0")
	}
	return v
}
