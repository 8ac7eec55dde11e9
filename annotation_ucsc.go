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

import "database/sql"
import "fmt"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* import annotation from ucsc
 * -------------------------------------------------------------------------- */

// parse a comma separated list of exon coordinates, e.g. "100,200,300,"
func parseUCSCExonList(str string) ([]int, error) {
  result := []int{}
  for _, field := range strings.Split(str, ",") {
    if field == "" {
      continue
    }
    v, err := strconv.ParseInt(field, 10, 64)
    if err != nil {
      return nil, err
    }
    result = append(result, int(v))
  }
  return result, nil
}

// ImportAnnotationFromUCSC downloads a gene prediction table (e.g. refGene)
// from the UCSC database server and converts it to an exon annotation. Each
// exon of a transcript becomes one row with feature "exon" and a
// `transcript_id' attribute carrying the transcript name. UCSC stores
// 0-based half-open coordinates, which are converted to the 1-based
// inclusive convention used here.
func ImportAnnotationFromUCSC(genome, table string) (Annotation, error) {
  annotation := Annotation{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand, i_exonStarts, i_exonEnds string

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return annotation, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return annotation, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, exonStarts, exonEnds FROM %s", table))
  if err != nil {
    return annotation, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_exonStarts, &i_exonEnds)
    if err != nil {
      return annotation, err
    }
    exonStarts, err := parseUCSCExonList(i_exonStarts)
    if err != nil {
      return annotation, err
    }
    exonEnds, err := parseUCSCExonList(i_exonEnds)
    if err != nil {
      return annotation, err
    }
    if len(exonStarts) != len(exonEnds) {
      return annotation, fmt.Errorf("transcript `%s' has invalid exon coordinates", i_name)
    }
    for i := 0; i < len(exonStarts); i++ {
      annotation.Seqnames   = append(annotation.Seqnames,   i_seqname)
      annotation.Sources    = append(annotation.Sources,    table)
      annotation.Features   = append(annotation.Features,   "exon")
      annotation.From       = append(annotation.From,       exonStarts[i]+1)
      annotation.To         = append(annotation.To,         exonEnds  [i])
      annotation.Scores     = append(annotation.Scores,     ".")
      annotation.Strands    = append(annotation.Strands,    i_strand[0])
      annotation.Frames     = append(annotation.Frames,     ".")
      annotation.Attributes = append(annotation.Attributes, fmt.Sprintf("transcript_id \"%s\";", i_name))
    }
  }
  return annotation, rows.Err()
}
