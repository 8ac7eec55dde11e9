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

/* -------------------------------------------------------------------------- */

// Value representing missing start/end coordinates. GTF files denote
// missing values by `.'.
const MissingCoordinate = -1

/* -------------------------------------------------------------------------- */

// Annotation holds the rows of a GTF/GFF table as parallel columns. The
// nine columns are fixed: seqname, source, feature, start, end, score,
// strand, frame, and attributes. Coordinates are 1-based and inclusive.
type Annotation struct {
  Seqnames   []string
  Sources    []string
  Features   []string
  From       []int
  To         []int
  Scores     []string
  Strands    []byte
  Frames     []string
  Attributes []string
}

/* constructors
 * -------------------------------------------------------------------------- */

// NewAnnotation creates an annotation table from pre-loaded columns. All
// nine columns must be present and of equal length, otherwise a SchemaError
// is returned.
func NewAnnotation(seqnames, sources, features []string, from, to []int, scores []string, strands []byte, frames, attributes []string) (Annotation, error) {
  annotation := Annotation{}

  n := len(seqnames)
  if len(sources)    != n || len(features) != n ||
     len(from)       != n || len(to)       != n ||
     len(scores)     != n || len(strands)  != n ||
     len(frames)     != n || len(attributes) != n {
    return annotation, SchemaError{"columns have unequal lengths"}
  }
  annotation.Seqnames   = seqnames
  annotation.Sources    = sources
  annotation.Features   = features
  annotation.From       = from
  annotation.To         = to
  annotation.Scores     = scores
  annotation.Strands    = strands
  annotation.Frames     = frames
  annotation.Attributes = attributes

  return annotation, nil
}

func (annotation *Annotation) Clone() Annotation {
  result := Annotation{}
  n := annotation.Length()
  result.Seqnames   = make([]string, n)
  result.Sources    = make([]string, n)
  result.Features   = make([]string, n)
  result.From       = make([]int,    n)
  result.To         = make([]int,    n)
  result.Scores     = make([]string, n)
  result.Strands    = make([]byte,   n)
  result.Frames     = make([]string, n)
  result.Attributes = make([]string, n)
  copy(result.Seqnames,   annotation.Seqnames)
  copy(result.Sources,    annotation.Sources)
  copy(result.Features,   annotation.Features)
  copy(result.From,       annotation.From)
  copy(result.To,         annotation.To)
  copy(result.Scores,     annotation.Scores)
  copy(result.Strands,    annotation.Strands)
  copy(result.Frames,     annotation.Frames)
  copy(result.Attributes, annotation.Attributes)
  return result
}

/* -------------------------------------------------------------------------- */

func (annotation *Annotation) Length() int {
  return len(annotation.Seqnames)
}

func (annotation *Annotation) Subset(indices []int) Annotation {
  n := len(indices)
  result := Annotation{}
  result.Seqnames   = make([]string, n)
  result.Sources    = make([]string, n)
  result.Features   = make([]string, n)
  result.From       = make([]int,    n)
  result.To         = make([]int,    n)
  result.Scores     = make([]string, n)
  result.Strands    = make([]byte,   n)
  result.Frames     = make([]string, n)
  result.Attributes = make([]string, n)

  for i := 0; i < n; i++ {
    result.Seqnames  [i] = annotation.Seqnames  [indices[i]]
    result.Sources   [i] = annotation.Sources   [indices[i]]
    result.Features  [i] = annotation.Features  [indices[i]]
    result.From      [i] = annotation.From      [indices[i]]
    result.To        [i] = annotation.To        [indices[i]]
    result.Scores    [i] = annotation.Scores    [indices[i]]
    result.Strands   [i] = annotation.Strands   [indices[i]]
    result.Frames    [i] = annotation.Frames    [indices[i]]
    result.Attributes[i] = annotation.Attributes[indices[i]]
  }
  return result
}

// Filter returns the subset of rows whose feature column equals the given
// feature exactly, preserving relative row order.
func (annotation *Annotation) Filter(feature string) Annotation {
  indices := []int{}
  for i := 0; i < annotation.Length(); i++ {
    if annotation.Features[i] == feature {
      indices = append(indices, i)
    }
  }
  return annotation.Subset(indices)
}

// Chromosomes returns the distinct seqnames of the table in order of first
// appearance.
func (annotation *Annotation) Chromosomes() []string {
  seqnames := []string{}
  visited  := make(map[string]bool)
  for i := 0; i < annotation.Length(); i++ {
    if !visited[annotation.Seqnames[i]] {
      visited[annotation.Seqnames[i]] = true
      seqnames = append(seqnames, annotation.Seqnames[i])
    }
  }
  return seqnames
}

// CheckCoordinates returns a DataError if any start or end value of the
// table is missing.
func (annotation *Annotation) CheckCoordinates() error {
  for i := 0; i < annotation.Length(); i++ {
    if annotation.From[i] == MissingCoordinate || annotation.To[i] == MissingCoordinate {
      return DataError{fmt.Sprintf("row %d has missing coordinates", i+1)}
    }
    if annotation.From[i] < 1 || annotation.To[i] < annotation.From[i] {
      return DataError{fmt.Sprintf("row %d has invalid coordinates [%d, %d]", i+1, annotation.From[i], annotation.To[i])}
    }
  }
  return nil
}
