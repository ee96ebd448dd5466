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

// UnrankedPriority is assigned to any rule absent from the priority table so
// that resolution never aborts on an unranked rule. Unranked rules sort last.
const UnrankedPriority = 999

// PriorityTable maps rule identifiers to integer ranks. Lower rank means the
// rule's remediation is ordered first. The table is immutable after construction
// and safe for concurrent readers.
type PriorityTable struct {
	ranks map[string]int
}

// NewPriorityTable builds a priority table from the given ranks. The input map
// is copied so later mutations by the caller have no effect.
func NewPriorityTable(ranks map[string]int) *PriorityTable {

	copied := make(map[string]int, len(ranks))
	for ruleID, rank := range ranks {
		copied[ruleID] = rank
	}
	return &PriorityTable{ranks: copied}
}

// PriorityOf returns the configured rank for the rule, or UnrankedPriority if
// the rule is not listed.
func (t *PriorityTable) PriorityOf(ruleID string) int {

	if rank, found := t.ranks[ruleID]; found {
		return rank
	}
	return UnrankedPriority
}

// Has reports whether the rule has a configured rank. Callers can use this to
// warn about configuration drift before resolving.
func (t *PriorityTable) Has(ruleID string) bool {

	_, found := t.ranks[ruleID]
	return found
}

// Size returns the number of ranked rules.
func (t *PriorityTable) Size() int {
	return len(t.ranks)
}
