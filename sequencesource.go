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
import "os"
import "path/filepath"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// SequenceSource provides chromosome sequences for transcript assembly.
// Seqnames lists the available chromosome names, Get returns the full
// sequence of a single chromosome. StringSet implements this interface for
// pre-loaded sequences, FastaDir reads sequences lazily from a directory of
// fasta files.
type SequenceSource interface {
  Seqnames() ([]string, error)
  Get(name string) ([]byte, error)
}

/* -------------------------------------------------------------------------- */

// Directory containing one fasta file per chromosome, named
// `<seqname><Ext>'.
type FastaDir struct {
  Dir string
  Ext string
}

func NewFastaDir(dir string) FastaDir {
  return FastaDir{dir, ".fa"}
}

/* -------------------------------------------------------------------------- */

func (obj FastaDir) Seqnames() ([]string, error) {
  entries, err := os.ReadDir(obj.Dir)
  if err != nil {
    return nil, err
  }
  seqnames := []string{}
  for _, entry := range entries {
    if entry.IsDir() {
      continue
    }
    if !strings.HasSuffix(entry.Name(), obj.Ext) {
      continue
    }
    seqnames = append(seqnames, strings.TrimSuffix(entry.Name(), obj.Ext))
  }
  sort.Strings(seqnames)
  return seqnames, nil
}

func (obj FastaDir) Get(name string) ([]byte, error) {
  s := EmptyStringSet()
  if err := s.ImportFasta(filepath.Join(obj.Dir, name+obj.Ext)); err != nil {
    return nil, err
  }
  if sequence, ok := s[name]; ok {
    return sequence, nil
  }
  // accept a single unnamed match so that files may carry descriptive
  // headers
  if len(s) == 1 {
    for _, sequence := range s {
      return sequence, nil
    }
  }
  return nil, fmt.Errorf("fasta file for chromosome `%s' does not contain a matching sequence", name)
}
