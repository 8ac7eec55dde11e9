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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type AssemblyOptions struct {
  // consider only rows whose feature column equals "exon"
  ExonOnly  bool
  // attribute field carrying the transcript identifier
  IdField   string
  // token separator of the attributes column
  Separator string
  // verify that the exons of each transcript are listed with strictly
  // increasing coordinates
  Strict    bool
  // number of threads used for processing chromosomes
  Threads   int
}

func NewAssemblyOptions() AssemblyOptions {
  options := AssemblyOptions{}
  options.ExonOnly  = true
  options.IdField   = "transcript_id"
  options.Separator = "; "
  options.Strict    = false
  options.Threads   = 1
  return options
}

/* -------------------------------------------------------------------------- */

type labeledSlice struct {
  id       string
  sequence []byte
}

/* -------------------------------------------------------------------------- */

// assembleChromosome extracts one sequence slice per annotation row of a
// single chromosome, in original row order, each labeled with the row's
// transcript id.
func assembleChromosome(annotation Annotation, sequence []byte, labels []string, indices []int, strict bool) ([]labeledSlice, error) {
  slices := make([]labeledSlice, 0, len(indices))
  last   := make(map[string]int)

  for _, i := range indices {
    from := annotation.From[i]
    to   := annotation.To  [i]
    if strict {
      if t, ok := last[labels[i]]; ok && from <= t {
        return nil, DataError{fmt.Sprintf(
          "exons of transcript `%s' are not listed in increasing order on chromosome `%s'",
          labels[i], annotation.Seqnames[i])}
      }
      last[labels[i]] = to
    }
    slices = append(slices, labeledSlice{labels[i], sliceSequence(sequence, NewRange(from, to))})
  }
  return slices, nil
}

/* -------------------------------------------------------------------------- */

// AssembleTranscripts computes the spliced sequence of every transcript in
// the given annotation by concatenating the chromosome subsequences of its
// exons in table order. The result maps transcript ids, as extracted from
// the attributes column, to assembled sequences; its enumeration order
// carries no guarantee. Rows for which the id field cannot be extracted are
// collected under the empty string. The operation is atomic, on error no
// partial result is returned: missing start/end coordinates cause a
// DataError and chromosomes without a sequence a MissingSequenceError. The
// annotation is expected to list exons in increasing genomic order per
// transcript, no sorting is performed; set options.Strict to verify this
// precondition.
func AssembleTranscripts(annotation Annotation, source SequenceSource, options AssemblyOptions) (StringSet, error) {
  if err := annotation.CheckCoordinates(); err != nil {
    return nil, err
  }
  if options.ExonOnly {
    annotation = annotation.Filter("exon")
  }
  chromosomes := annotation.Chromosomes()

  // check that a sequence is available for every chromosome before any
  // slicing begins
  available, err := source.Seqnames()
  if err != nil {
    return nil, err
  }
  isAvailable := make(map[string]bool)
  for _, name := range available {
    isAvailable[name] = true
  }
  missing := []string{}
  for _, name := range chromosomes {
    if !isAvailable[name] {
      missing = append(missing, name)
    }
  }
  if len(missing) > 0 {
    return nil, MissingSequenceError{missing}
  }
  // transcript id of every row
  labels := ExtractAttribute(annotation.Attributes, options.IdField, options.Separator)

  // row indices per chromosome, in first-appearance order of chromosomes
  indices := make(map[string][]int)
  for i := 0; i < annotation.Length(); i++ {
    indices[annotation.Seqnames[i]] = append(indices[annotation.Seqnames[i]], i)
  }
  // one private result buffer per chromosome, merged in order below so
  // that the output does not depend on scheduling
  results := make([][]labeledSlice, len(chromosomes))

  process := func(c int) error {
    name := chromosomes[c]
    sequence, err := source.Get(name)
    if err != nil {
      return err
    }
    slices, err := assembleChromosome(annotation, sequence, labels, indices[name], options.Strict)
    if err != nil {
      return err
    }
    results[c] = slices
    return nil
  }
  if options.Threads > 1 {
    pool  := threadpool.New(options.Threads, 100*options.Threads)
    group := pool.NewJobGroup()
    if err := pool.AddRangeJob(0, len(chromosomes), group, func(c int, pool threadpool.ThreadPool, erf func() error) error {
      return process(c)
    }); err != nil {
      return nil, err
    }
    if err := pool.Wait(group); err != nil {
      return nil, err
    }
  } else {
    for c := 0; c < len(chromosomes); c++ {
      if err := process(c); err != nil {
        return nil, err
      }
    }
  }
  // group slices by transcript id and concatenate in order
  transcripts := EmptyStringSet()
  for c := 0; c < len(chromosomes); c++ {
    for _, slice := range results[c] {
      transcripts[slice.id] = append(transcripts[slice.id], slice.sequence...)
    }
  }
  return transcripts, nil
}

/* -------------------------------------------------------------------------- */

// AssembleTranscriptsFromFile reads the annotation from a GTF/GFF file and
// assembles all transcript sequences.
func AssembleTranscriptsFromFile(filename string, source SequenceSource, options AssemblyOptions) (StringSet, error) {
  annotation := Annotation{}
  if err := annotation.ImportGTF(filename); err != nil {
    return nil, err
  }
  return AssembleTranscripts(annotation, source, options)
}
