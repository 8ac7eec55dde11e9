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

//import   "fmt"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestExtractAttribute1(t *testing.T) {

  attributes := []string{
    `transcript_id "t1"; gene_id "g1";`,
    `gene_id "g2"; transcript_id "t2"`,
    ``,
    `transcript_id "t3"; transcript_id "t4";`}

  values := ExtractAttribute(attributes, "transcript_id", "; ")

  if len(values) != len(attributes) {
    t.Error("TestExtractAttribute1 failed")
  }
  if values[0] != `"t1"` {
    t.Error("TestExtractAttribute1 failed")
  }
  if values[1] != `"t2"` {
    t.Error("TestExtractAttribute1 failed")
  }
  // empty attribute text yields the missing value marker
  if values[2] != "" {
    t.Error("TestExtractAttribute1 failed")
  }
  // the first occurrence of a field wins
  if values[3] != `"t3"` {
    t.Error("TestExtractAttribute1 failed")
  }
}

func TestExtractAttribute2(t *testing.T) {

  attributes := []string{
    `gene_id "g1";`,
    `gene_id "g2";`}

  values := ExtractAttribute(attributes, "transcript_id", "; ")

  if len(values) != 2 {
    t.Error("TestExtractAttribute2 failed")
  }
  if values[0] != "" || values[1] != "" {
    t.Error("TestExtractAttribute2 failed")
  }
  if r := ExtractAttribute([]string{}, "transcript_id", "; "); len(r) != 0 {
    t.Error("TestExtractAttribute2 failed")
  }
}

func TestExtractAttribute3(t *testing.T) {

  attributes := []string{
    `gene_id "g1"; transcript_id "t1"; exon_number "1";`}

  if values := ExtractAttribute(attributes, "gene_id", "; "); values[0] != `"g1"` {
    t.Error("TestExtractAttribute3 failed")
  }
  if values := ExtractAttribute(attributes, "exon_number", "; "); values[0] != `"1";` {
    // the last token keeps its trailing semicolon, values are not repaired
    t.Error("TestExtractAttribute3 failed")
  }
}
