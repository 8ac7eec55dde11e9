/* Copyright (C) 2020 Philipp Benner
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

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/gotranscripts"

/* -------------------------------------------------------------------------- */

type Config struct {
  Bins    int
  Threads int
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importTranscripts(config Config, filename string) StringSet {
  s := EmptyStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func assembleTranscripts(config Config, filenameGTF, filenameFasta string) StringSet {
  sequences := importTranscripts(config, filenameFasta)

  options := NewAssemblyOptions()
  options.Threads = config.Threads

  PrintStderr(config, 1, "Assembling transcript sequences... ")
  transcripts, err := AssembleTranscriptsFromFile(filenameGTF, sequences, options)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return transcripts
}

/* -------------------------------------------------------------------------- */

func plotLengths(config Config, transcripts StringSet, filename string) {
  values := make(plotter.Values, 0, len(transcripts))
  for _, sequence := range transcripts {
    values = append(values, float64(len(sequence)))
  }
  if len(values) == 0 {
    log.Fatal("no transcripts available")
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "transcript length"
  p.Y.Label.Text = "count"

  h, err := plotter.NewHist(values, config.Bins)
  if err != nil {
    log.Fatal(err)
  }
  p.Add(h)

  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote histogram to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}

  options := getopt.New()

  optAnnotation := options.StringLong("annotation",     0 , "", "assemble transcripts from this gtf file, the positional argument then specifies the genome fasta file")
  optBins       := options.   IntLong("bins",           0 , 50, "number of histogram bins [default: 50]")
  optThreads    := options.   IntLong("threads",       't', 1,  "number of threads [default: 1]")
  optHelp       := options.  BoolLong("help",          'h',     "print help")
  optVerbose    := options.CounterLong("verbose",      'v',     "be verbose")

  options.SetParameters("<TRANSCRIPTS.fa|SEQUENCES.fa> [OUTPUT.pdf]\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Bins    = *optBins
  config.Threads = *optThreads
  config.Verbose = *optVerbose

  transcripts    := StringSet{}
  filenameOutput := "transcriptLengths.pdf"

  if *optAnnotation == "" {
    // pre-assembled transcript sequences
    transcripts = importTranscripts(config, options.Args()[0])
  } else {
    transcripts = assembleTranscripts(config, *optAnnotation, options.Args()[0])
  }
  if len(options.Args()) == 2 {
    filenameOutput = options.Args()[1]
  }
  plotLengths(config, transcripts, filenameOutput)
}
