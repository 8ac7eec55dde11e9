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

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

func parseGTFCoordinate(str string, line int) (int, error) {
  if str == "." || str == "" {
    return MissingCoordinate, nil
  }
  v, err := strconv.ParseInt(str, 10, 64)
  if err != nil {
    return 0, SchemaError{fmt.Sprintf("line %d: coordinate `%s' is not an integer", line, str)}
  }
  return int(v), nil
}

// ReadGTF parses a GTF/GFF file (gene transfer format). The file must be
// tab-separated with exactly nine columns: seqname, source, feature, start,
// end, score, strand, frame, and attributes. Lines starting with `#' are
// skipped. Rows with a different number of columns or non-numeric
// start/end values cause a SchemaError; start/end values given as `.' are
// recorded as MissingCoordinate.
func (annotation *Annotation) ReadGTF(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '#' {
      continue
    }
    fields := strings.Split(line, "\t")
    if len(fields) != 9 {
      return SchemaError{fmt.Sprintf("line %d: expected 9 columns but found %d", i, len(fields))}
    }
    from, err := parseGTFCoordinate(fields[3], i)
    if err != nil {
      return err
    }
    to, err := parseGTFCoordinate(fields[4], i)
    if err != nil {
      return err
    }
    if len(fields[6]) == 0 {
      return SchemaError{fmt.Sprintf("line %d: strand column is empty", i)}
    }
    annotation.Seqnames   = append(annotation.Seqnames,   fields[0])
    annotation.Sources    = append(annotation.Sources,    fields[1])
    annotation.Features   = append(annotation.Features,   fields[2])
    annotation.From       = append(annotation.From,       from)
    annotation.To         = append(annotation.To,         to)
    annotation.Scores     = append(annotation.Scores,     fields[5])
    annotation.Strands    = append(annotation.Strands,    fields[6][0])
    annotation.Frames     = append(annotation.Frames,     fields[7])
    annotation.Attributes = append(annotation.Attributes, fields[8])
  }
  return scanner.Err()
}

func (annotation *Annotation) ImportGTF(filename string) error {

  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return annotation.ReadGTF(reader)
}

/* -------------------------------------------------------------------------- */

func writeGTFCoordinate(value int) string {
  if value == MissingCoordinate {
    return "."
  }
  return strconv.Itoa(value)
}

func (annotation *Annotation) WriteGTF(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  defer w.Flush()

  for i := 0; i < annotation.Length(); i++ {
    if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%c\t%s\t%s\n",
      annotation.Seqnames[i],
      annotation.Sources [i],
      annotation.Features[i],
      writeGTFCoordinate(annotation.From[i]),
      writeGTFCoordinate(annotation.To  [i]),
      annotation.Scores  [i],
      annotation.Strands [i],
      annotation.Frames  [i],
      annotation.Attributes[i]); err != nil {
      return err
    }
  }
  return nil
}

func (annotation *Annotation) ExportGTF(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := annotation.WriteGTF(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
