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
	"fmt"
	"sort"
)

// FallbackStrategy is used for a standalone step when the originating violation
// carries no remediation text.
const FallbackStrategy = "Review rule violation and define remediation"

// ConflictResolver turns a batch of rule violations into a deterministic,
// non-contradictory remediation plan. Both inputs are read-only after
// construction, so one resolver instance may serve concurrent callers.
type ConflictResolver struct {
	priorities *PriorityTable
	matrix     *ConflictMatrix
}

// NewConflictResolver creates a resolver over the given priority table and
// conflict matrix. Nil arguments are replaced with empty defaults.
func NewConflictResolver(priorities *PriorityTable, matrix *ConflictMatrix) *ConflictResolver {

	if priorities == nil {
		priorities = NewPriorityTable(nil)
	}
	if matrix == nil {
		matrix = NewConflictMatrix()
	}
	return &ConflictResolver{
		priorities: priorities,
		matrix:     matrix,
	}
}

// Resolve produces the remediation plan for the given violations.
//
// Violations are processed in ascending priority rank, ties broken by input
// order. Each violation is addressed exactly once: either jointly with every
// still-unprocessed violated rule it conflicts with, or standalone. Duplicate
// rule ids in the input collapse to a single step.
func (r *ConflictResolver) Resolve(violations []RuleViolation) ResolutionResult {

	sorted := make([]RuleViolation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return r.priorities.PriorityOf(sorted[i].RuleID) < r.priorities.PriorityOf(sorted[j].RuleID)
	})

	violated := make(map[string]bool, len(sorted))
	for _, v := range sorted {
		violated[v.RuleID] = true
	}

	processed := make(map[string]bool, len(sorted))
	plan := make([]ResolutionStep, 0, len(sorted))
	warnings := make([]ConflictWarning, 0)

	for _, v := range sorted {
		if processed[v.RuleID] {
			continue
		}

		joint := false
		for _, rel := range r.matrix.ConflictsOf(v.RuleID) {
			partner := rel.ConflictsWith
			if partner == v.RuleID || !violated[partner] || processed[partner] {
				continue
			}

			warnings = append(warnings, ConflictWarning{
				PrimaryRule:        v.RuleID,
				ConflictingRule:    partner,
				ConflictType:       rel.ConflictType,
				ResolutionStrategy: rel.ResolutionStrategy,
				PriorityOrder:      rel.PriorityOrder,
			})
			plan = append(plan, ResolutionStep{
				Action:        fmt.Sprintf("Resolve %s and %s together", v.RuleID, partner),
				Strategy:      rel.ResolutionStrategy,
				RulesAffected: []string{v.RuleID, partner},
			})

			// The partner is settled in the same pass so it is never re-opened
			// at its own position in the sorted order.
			processed[partner] = true
			joint = true
		}

		if !joint {
			strategy := v.ActionRequired
			if strategy == "" {
				strategy = FallbackStrategy
			}
			plan = append(plan, ResolutionStep{
				Action:        fmt.Sprintf("Resolve %s", v.RuleID),
				Strategy:      strategy,
				RulesAffected: []string{v.RuleID},
			})
		}
		processed[v.RuleID] = true
	}

	for i := range plan {
		plan[i].StepNumber = i + 1
	}

	return ResolutionResult{
		PrioritizedActions: sorted,
		ConflictWarnings:   warnings,
		ResolutionPlan:     plan,
		TotalConflicts:     len(warnings),
	}
}
