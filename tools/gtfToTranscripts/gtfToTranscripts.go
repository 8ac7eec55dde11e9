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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gotranscripts"

/* -------------------------------------------------------------------------- */

type Config struct {
  IdField    string
  Separator  string
  AllRows    bool
  Strict     bool
  Threads    int
  FastaDir   bool
  Verbose    int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importAnnotation(config Config, filename string) Annotation {
  annotation := Annotation{}
  PrintStderr(config, 1, "Reading gtf file `%s'... ", filename)
  if err := annotation.ImportGTF(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return annotation
}

func importSequences(config Config, filename string) SequenceSource {
  if config.FastaDir {
    return NewFastaDir(filename)
  }
  s := EmptyStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func exportFasta(config Config, transcripts StringSet, filename string) {
  if filename == "" {
    if err := transcripts.WriteFasta(os.Stdout); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing fasta file `%s'... ", filename)
    if err := transcripts.ExportFasta(filename, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

// attribute values carry the surrounding quotes of the gtf file, strip
// them for fasta headers
func cleanName(name string) string {
  return strings.Trim(name, "\";")
}

func gtfToTranscripts(config Config, filenameGTF, filenameFasta, filenameOutput string) {
  annotation := importAnnotation(config, filenameGTF)
  sequences  := importSequences (config, filenameFasta)

  options := NewAssemblyOptions()
  options.ExonOnly  = !config.AllRows
  options.IdField   = config.IdField
  options.Separator = config.Separator
  options.Strict    = config.Strict
  options.Threads   = config.Threads

  PrintStderr(config, 1, "Assembling transcript sequences... ")
  transcripts, err := AssembleTranscripts(annotation, sequences, options)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  result := EmptyStringSet()
  for name, sequence := range transcripts {
    if name == "" {
      PrintStderr(config, 1, "Discarding %d bases without a `%s' attribute\n", len(sequence), config.IdField)
      continue
    }
    result[cleanName(name)] = sequence
  }
  exportFasta(config, result, filenameOutput)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optIdField    := options.StringLong("id-attribute",   0 , "transcript_id", "attribute carrying the transcript id [default: transcript_id]")
  optSeparator  := options.StringLong("separator",      0 , "; ",            "attribute separator [default: \"; \"]")
  optAllRows    := options.  BoolLong("all-features",   0 ,                  "use all rows instead of only exons")
  optStrict     := options.  BoolLong("strict",         0 ,                  "verify that exons are listed in increasing order")
  optThreads    := options.   IntLong("threads",       't', 1,               "number of threads [default: 1]")
  optFastaDir   := options.  BoolLong("fasta-dir",      0 ,                  "interpret the fasta argument as a directory with one file per chromosome")
  optHelp       := options.  BoolLong("help",          'h',                  "print help")
  optVerbose    := options.CounterLong("verbose",      'v',                  "be verbose")

  options.SetParameters("<ANNOTATION.gtf> <SEQUENCES.fa|FASTA_DIR> [OUTPUT.fa]\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optThreads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.IdField   = *optIdField
  config.Separator = *optSeparator
  config.AllRows   = *optAllRows
  config.Strict    = *optStrict
  config.Threads   = *optThreads
  config.FastaDir  = *optFastaDir
  config.Verbose   = *optVerbose

  filenameGTF    := options.Args()[0]
  filenameFasta  := options.Args()[1]
  filenameOutput := ""
  if len(options.Args()) == 3 {
    filenameOutput = options.Args()[2]
  }
  gtfToTranscripts(config, filenameGTF, filenameFasta, filenameOutput)
}
