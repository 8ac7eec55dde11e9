/* Copyright (C) 2018 Philipp Benner
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
import "sort"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Structure containing named nucleotide sequences, e.g. the chromosomes of
// a genome or assembled transcripts.
type StringSet map[string][]byte

/* -------------------------------------------------------------------------- */

func NewStringSet(seqnames []string, sequences [][]byte) StringSet {
  if len(seqnames) != len(sequences) {
    panic("NewStringSet(): invalid parameters")
  }
  s := make(StringSet)

  for i := 0; i < len(sequences); i++ {
    s[seqnames[i]] = sequences[i]
  }
  return s
}

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

func (s StringSet) Seqnames() ([]string, error) {
  seqnames := make([]string, 0, len(s))
  for name, _ := range s {
    seqnames = append(seqnames, name)
  }
  sort.Strings(seqnames)
  return seqnames, nil
}

func (s StringSet) Get(name string) ([]byte, error) {
  sequence, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("sequence `%s' not available", name)
  }
  return sequence, nil
}

// GetSlice returns the subsequence [r.From, r.To] of the named sequence,
// where coordinates are 1-based and inclusive. Coordinates extending past
// the end of the sequence are clamped.
func (s StringSet) GetSlice(name string, r Range) ([]byte, error) {
  sequence, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("sequence `%s' not available", name)
  }
  return sliceSequence(sequence, r), nil
}

func sliceSequence(sequence []byte, r Range) []byte {
  from := iMax(r.From-1, 0)
  to   := iMin(r.To, len(sequence))
  if from > to {
    from = to
  }
  return sequence[from:to]
}

/* i/o
 * -------------------------------------------------------------------------- */

func (s StringSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  // current sequence
  name := ""
  seq  := []byte{}

  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if name != "" {
        if _, ok := s[name]; ok {
          return fmt.Errorf("ReadFasta(): sequence name `%s' occurred multiple times", name)
        }
        s[name] = seq
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, line...)
    }
  }
  if name != "" {
    if _, ok := s[name]; ok {
      return fmt.Errorf("ReadFasta(): sequence name `%s' occurred multiple times", name)
    }
    s[name] = seq
  }
  return scanner.Err()
}

func (s StringSet) ImportFasta(filename string) error {

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
  return s.ReadFasta(reader)
}

func (s StringSet) WriteFasta(writer io.Writer) error {
  seqnames, _ := s.Seqnames()
  for _, name := range seqnames {
    seq := s[name]
    if _, err := fmt.Fprintf(writer, ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := iMin(i+80, len(seq))
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (s StringSet) ExportFasta(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := s.WriteFasta(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
