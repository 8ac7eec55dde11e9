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

import   "bytes"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestReadGTF1(t *testing.T) {

  annotation := Annotation{}

  if err := annotation.ImportGTF("transcripts_test.gtf"); err != nil {
    t.Error("TestReadGTF1 failed")
  }
  if annotation.Length() != 6 {
    t.Error("TestReadGTF1 failed")
  }
  if annotation.Features[1] != "CDS" {
    t.Error("TestReadGTF1 failed")
  }
  if annotation.From[4] != 13 || annotation.To[4] != 16 {
    t.Error("TestReadGTF1 failed")
  }
  if annotation.Strands[5] != '-' {
    t.Error("TestReadGTF1 failed")
  }
  chromosomes := annotation.Chromosomes()
  if len(chromosomes) != 2 || chromosomes[0] != "chr1" || chromosomes[1] != "chr2" {
    t.Error("TestReadGTF1 failed")
  }
}

func TestReadGTF2(t *testing.T) {

  annotation := Annotation{}
  // row with eight columns
  err := annotation.ReadGTF(strings.NewReader(
    "chr1\ttest\texon\t1\t4\t.\t+\t.\n"))

  if _, ok := err.(SchemaError); !ok {
    t.Error("TestReadGTF2 failed")
  }
}

func TestReadGTF3(t *testing.T) {

  annotation := Annotation{}
  // missing start coordinate
  err := annotation.ReadGTF(strings.NewReader(
    "chr1\ttest\texon\t.\t4\t.\t+\t.\ttranscript_id \"t1\";\n"))

  if err != nil {
    t.Error("TestReadGTF3 failed")
  }
  if annotation.From[0] != MissingCoordinate {
    t.Error("TestReadGTF3 failed")
  }
  if _, ok := annotation.CheckCoordinates().(DataError); !ok {
    t.Error("TestReadGTF3 failed")
  }
}

func TestReadGTF4(t *testing.T) {

  annotation := Annotation{}
  // non-numeric end coordinate
  err := annotation.ReadGTF(strings.NewReader(
    "chr1\ttest\texon\t1\tfoo\t.\t+\t.\ttranscript_id \"t1\";\n"))

  if _, ok := err.(SchemaError); !ok {
    t.Error("TestReadGTF4 failed")
  }
}

func TestWriteGTF1(t *testing.T) {

  annotation := Annotation{}

  if err := annotation.ImportGTF("transcripts_test.gtf"); err != nil {
    t.Error("TestWriteGTF1 failed")
  }
  buffer := new(bytes.Buffer)
  if err := annotation.WriteGTF(buffer); err != nil {
    t.Error("TestWriteGTF1 failed")
  }
  result := Annotation{}
  if err := result.ReadGTF(buffer); err != nil {
    t.Error("TestWriteGTF1 failed")
  }
  if result.Length() != annotation.Length() {
    t.Error("TestWriteGTF1 failed")
  }
  if result.Attributes[0] != annotation.Attributes[0] {
    t.Error("TestWriteGTF1 failed")
  }
}
