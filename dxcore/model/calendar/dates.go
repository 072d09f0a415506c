/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// dateSeparators normalizes the accepted field separators to '/'.
var dateSeparators = strings.NewReplacer("-", "/", ".", "/")

// parseTriple splits "Y/M/D" (also "Y-M-D" and "Y.M.D") into three
// integers. Local digits are folded to ASCII first. Signs are not accepted,
// so years before 1 have no text form.
func parseTriple(s string) (y, m, d int, ok bool) {
	s = dateSeparators.Replace(FromLocalDigits(strings.TrimSpace(s)))
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	var fields [3]int
	for i, p := range parts {
		if p == "" || strings.HasPrefix(p, "+") {
			return 0, 0, 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		fields[i] = n
	}
	return fields[0], fields[1], fields[2], true
}

// formatTriple renders a zero-padded date with the given separator.
func formatTriple(y, m, d int, sep rune) string {
	return fmt.Sprintf("%04d%c%02d%c%02d", y, sep, m, sep, d)
}

// compareTriples orders two dates field by field.
func compareTriples(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(m1 - m2)
	default:
		return sign(d1 - d2)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
