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

import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

// SchemaError indicates that an annotation table does not conform to the
// fixed nine column GTF schema.
type SchemaError struct {
  Reason string
}

func (e SchemaError) Error() string {
  return fmt.Sprintf("invalid annotation schema: %s", e.Reason)
}

/* -------------------------------------------------------------------------- */

// DataError indicates that a structurally valid annotation table carries
// invalid values, e.g. missing start or end coordinates.
type DataError struct {
  Reason string
}

func (e DataError) Error() string {
  return fmt.Sprintf("invalid annotation data: %s", e.Reason)
}

/* -------------------------------------------------------------------------- */

// MissingSequenceError indicates that the annotation references chromosomes
// for which no sequence is available.
type MissingSequenceError struct {
  Seqnames []string
}

func (e MissingSequenceError) Error() string {
  return fmt.Sprintf("sequences not available for the following chromosomes: %s",
    strings.Join(e.Seqnames, ", "))
}
