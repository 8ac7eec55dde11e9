/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package gotranscripts

/* -------------------------------------------------------------------------- */

import "strings"

/* -------------------------------------------------------------------------- */

// ExtractAttribute parses the attributes column of a GTF/GFF table and
// returns for every row the value of the given field. The attribute text is
// split on the literal separator (canonically "; ") into key/value tokens,
// each token is split on its first space character, where the first piece
// is the key and the second piece the value. The value of the first token
// whose key equals field is returned verbatim, i.e. including any
// surrounding quotes. Rows with no matching key yield an empty string,
// which serves as the missing value marker. The result has the same length
// and order as the input. Tokens with irregular spacing are not repaired.
func ExtractAttribute(attributes []string, field, separator string) []string {
  values := make([]string, len(attributes))

  for i := 0; i < len(attributes); i++ {
    values[i] = extractAttribute(attributes[i], field, separator)
  }
  return values
}

func extractAttribute(attributes, field, separator string) string {
  for _, token := range strings.Split(attributes, separator) {
    pieces := strings.SplitN(token, " ", 3)
    if pieces[0] != field {
      continue
    }
    if len(pieces) < 2 {
      // key without value
      return ""
    }
    return pieces[1]
  }
  return ""
}
