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

//import   "fmt"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestStringSet1(t *testing.T) {

  ss  := EmptyStringSet()
  err := ss.ImportFasta("transcripts_test.fa")

  if err != nil {
    t.Error("TestStringSet1 failed")
  }
  if len(ss) != 2 {
    t.Error("TestStringSet1 failed")
  }
  if len(ss["chr1"]) != 40 {
    t.Error("TestStringSet1 failed")
  }
  if len(ss["chr2"]) != 24 {
    t.Error("TestStringSet1 failed")
  }
}

func TestStringSet2(t *testing.T) {

  ss := EmptyStringSet()

  if err := ss.ImportFasta("transcripts_test.fa"); err != nil {
    t.Error("TestStringSet2 failed")
  }
  if slice, err := ss.GetSlice("chr1", NewRange(1, 4)); err != nil || string(slice) != "AAAA" {
    t.Error("TestStringSet2 failed")
  }
  if slice, err := ss.GetSlice("chr1", NewRange(13, 16)); err != nil || string(slice) != "TTTT" {
    t.Error("TestStringSet2 failed")
  }
  // coordinates past the end of the sequence are clamped
  if slice, err := ss.GetSlice("chr1", NewRange(39, 100)); err != nil || string(slice) != "TT" {
    t.Error("TestStringSet2 failed")
  }
  if _, err := ss.GetSlice("chrZ", NewRange(1, 10)); err == nil {
    t.Error("TestStringSet2 failed")
  }
}
