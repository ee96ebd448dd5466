/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package resolution

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ConflictRelation describes one declared conflict partner of a rule.
type ConflictRelation struct {
	ConflictsWith      string `json:"conflicts_with" bson:"conflicts_with"`
	ConflictType       string `json:"conflict_type" bson:"conflict_type"`
	ResolutionStrategy string `json:"resolution_strategy" bson:"resolution_strategy"`
	PriorityOrder      string `json:"priority_order" bson:"priority_order"`
}

// ConflictMatrix holds the declared conflicts between rule pairs. The matrix is
// immutable after load; reloading swaps in a fresh instance.
type ConflictMatrix struct {
	relations map[string][]ConflictRelation
	size      int
}

// NewConflictMatrix returns an empty matrix. ConflictsOf returns no relations
// for every rule, which degrades resolution to standalone steps only.
func NewConflictMatrix() *ConflictMatrix {

	return &ConflictMatrix{relations: make(map[string][]ConflictRelation)}
}

// ConflictsOf returns the declared conflict partners of the rule in declaration
// order. The returned slice must not be mutated by callers.
func (m *ConflictMatrix) ConflictsOf(ruleID string) []ConflictRelation {

	return m.relations[ruleID]
}

// Relation looks up the declared relation between two specific rules.
func (m *ConflictMatrix) Relation(ruleID, partnerID string) (ConflictRelation, bool) {

	for _, rel := range m.relations[ruleID] {
		if rel.ConflictsWith == partnerID {
			return rel, true
		}
	}
	return ConflictRelation{}, false
}

// RuleIDs returns every rule with at least one declared relation, sorted.
func (m *ConflictMatrix) RuleIDs() []string {

	ids := make([]string, 0, len(m.relations))
	for ruleID := range m.relations {
		ids = append(ids, ruleID)
	}
	sort.Strings(ids)
	return ids
}

// Size returns the number of directed relations held by the matrix.
func (m *ConflictMatrix) Size() int {
	return m.size
}

// add records a directed relation, skipping duplicates for the same pair.
func (m *ConflictMatrix) add(ruleID string, rel ConflictRelation) {

	for _, existing := range m.relations[ruleID] {
		if existing.ConflictsWith == rel.ConflictsWith {
			return
		}
	}
	m.relations[ruleID] = append(m.relations[ruleID], rel)
	m.size++
}

// LoadConflictMatrixCSV loads the matrix from a CSV file with columns
// Rule_ID, Conflicts_With (pipe-delimited), Conflict_Type, Resolution_Strategy,
// Priority_Order. A missing file is not an error: the matrix degrades to empty.
// Any other read failure is reported so callers can distinguish "configuration
// unavailable" from "no conflicts declared".
func LoadConflictMatrixCSV(path string) (*ConflictMatrix, error) {

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConflictMatrix(), nil
		}
		return nil, fmt.Errorf("failed to open conflict matrix source: %w", err)
	}
	defer file.Close()

	return ParseConflictMatrixCSV(file)
}

// ParseConflictMatrixCSV parses conflict matrix rows from the reader. Malformed
// rows contribute zero relations instead of failing the whole load, so the
// matrix stays usable with partially bad configuration data. Declared relations
// are symmetrized: a row declaring A conflicts with B also makes B's lookup
// find A.
func ParseConflictMatrixCSV(r io.Reader) (*ConflictMatrix, error) {

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse conflict matrix source: %w", err)
	}

	matrix := NewConflictMatrix()
	if len(records) == 0 {
		return matrix, nil
	}

	cols := headerIndexes(records[0])
	for _, row := range records[1:] {
		ruleID := cell(row, colIndex(cols, "rule_id"))
		conflictsWith := cell(row, colIndex(cols, "conflicts_with"))
		if ruleID == "" || conflictsWith == "" {
			continue
		}

		conflictType := cell(row, colIndex(cols, "conflict_type"))
		strategy := cell(row, colIndex(cols, "resolution_strategy"))
		priorityOrder := cell(row, colIndex(cols, "priority_order"))

		// Multiple conflicting rules are packed into one row, pipe-delimited.
		for _, partner := range strings.Split(conflictsWith, "|") {
			partner = strings.TrimSpace(partner)
			if partner == "" || partner == ruleID {
				continue
			}
			matrix.add(ruleID, ConflictRelation{
				ConflictsWith:      partner,
				ConflictType:       conflictType,
				ResolutionStrategy: strategy,
				PriorityOrder:      priorityOrder,
			})
			matrix.add(partner, ConflictRelation{
				ConflictsWith:      ruleID,
				ConflictType:       conflictType,
				ResolutionStrategy: strategy,
				PriorityOrder:      priorityOrder,
			})
		}
	}

	return matrix, nil
}

// headerIndexes maps normalized column names to their positions.
func headerIndexes(header []string) map[string]int {

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// colIndex returns the position of the named column, or -1 when absent.
func colIndex(cols map[string]int, name string) int {

	if i, found := cols[name]; found {
		return i
	}
	return -1
}

// cell returns the trimmed value at the column index, or empty when the row is
// too short or the column was absent from the header.
func cell(row []string, index int) string {

	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
