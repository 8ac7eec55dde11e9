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

import "bytes"
import "bufio"
import "fmt"
import "io"
import "io/ioutil"

/* convert to string
 * -------------------------------------------------------------------------- */

func (annotation Annotation) PrettyPrint(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) {
    width, _ := fmt.Fprintf(ioutil.Discard, format, args...)
    if width > widths[j] {
      widths[j] = width
    }
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) {
    updateMaxWidth("%d", widths, 0, i+1)
    updateMaxWidth("%s", widths, 1, annotation.Seqnames[i])
    updateMaxWidth("%s", widths, 2, annotation.Features[i])
    updateMaxWidth("%d", widths, 3, annotation.From[i])
    updateMaxWidth("%d", widths, 4, annotation.To[i])
  }
  printHeader := func(writer io.Writer, format string) {
    fmt.Fprintf(writer, format,
      "", "seqnames", "features", "ranges", "strand", "attributes")
    fmt.Fprintf(writer, "\n")
  }
  printRow := func(writer io.Writer, format string, i int) {
    if i != 0 {
      fmt.Fprintf(writer, "\n")
    }
    fmt.Fprintf(writer, format,
      i+1,
      annotation.Seqnames[i],
      annotation.Features[i],
      annotation.From[i],
      annotation.To[i],
      annotation.Strands[i],
      annotation.Attributes[i])
  }
  applyRows := func(f1 func(i int), f2 func()) {
    if annotation.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < annotation.Length(); i++ { f1(i) }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ { f1(i) }
      // between first and last n/2 rows
      f2()
      // apply to last n/2 rows
      for i := annotation.Length() - n/2; i < annotation.Length(); i++ { f1(i) }
    }
  }
  // maximum column widths
  widths := []int{1, 8, 8, 1, 1}
  // determine column widths
  applyRows(func(i int) { updateMaxWidths(i, widths) }, func() {})
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds %%%ds [%%%dd, %%%dd] %%6c %%s",
    widths[0], widths[1], widths[2], widths[3], widths[4])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%6s %%s",
    widths[0], widths[1], widths[2], widths[3]+widths[4]+4)
  // print header
  printHeader(writer, formatHeader)
  // print rows
  applyRows(
    func(i int) {
      printRow(writer, formatRow, i)
    },
    func() {
      fmt.Fprintf(writer, "\n")
      fmt.Fprintf(writer, formatHeader, "", "...", "...", "...", "", "")
    })
  writer.Flush()

  return buffer.String()
}

func (annotation Annotation) String() string {
  return annotation.PrettyPrint(10)
}
