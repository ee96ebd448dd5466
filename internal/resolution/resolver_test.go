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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixFromCSV(t *testing.T, csvData string) *ConflictMatrix {
	t.Helper()
	matrix, err := ParseConflictMatrixCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	return matrix
}

const matrixHeader = "Rule_ID,Conflicts_With,Conflict_Type,Resolution_Strategy,Priority_Order\n"

// ---------------------------------------------------------------------------
// Empty and degenerate inputs
// ---------------------------------------------------------------------------

func TestResolve_EmptyInput(t *testing.T) {
	resolver := NewConflictResolver(NewPriorityTable(nil), NewConflictMatrix())

	result := resolver.Resolve(nil)

	assert.Empty(t, result.ResolutionPlan)
	assert.Empty(t, result.ConflictWarnings)
	assert.Equal(t, 0, result.TotalConflicts)
}

func TestResolve_NilTablesDefaultToEmpty(t *testing.T) {
	resolver := NewConflictResolver(nil, nil)

	result := resolver.Resolve([]RuleViolation{{RuleID: "R001", ActionRequired: "Act"}})

	require.Len(t, result.ResolutionPlan, 1)
	assert.Equal(t, []string{"R001"}, result.ResolutionPlan[0].RulesAffected)
}

// ---------------------------------------------------------------------------
// Priority ordering
// ---------------------------------------------------------------------------

func TestResolve_PriorityOrdering_NoConflicts(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R001": 3, "R009": 26})
	resolver := NewConflictResolver(priorities, NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R009", RuleName: "Payment terms", ActionRequired: "Renegotiate terms"},
		{RuleID: "R001", RuleName: "Supplier concentration", ActionRequired: "Diversify suppliers"},
	})

	require.Len(t, result.ResolutionPlan, 2)
	assert.Equal(t, []string{"R001"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"R009"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, 1, result.ResolutionPlan[0].StepNumber)
	assert.Equal(t, 2, result.ResolutionPlan[1].StepNumber)
	assert.Empty(t, result.ConflictWarnings)
}

func TestResolve_UnrankedRulesSortLast(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R010": 2, "R024": 1})
	resolver := NewConflictResolver(priorities, NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "RX99", ActionRequired: "Investigate"},
		{RuleID: "R010", ActionRequired: "Rebalance"},
		{RuleID: "R024", ActionRequired: "Audit invoices"},
	})

	require.Len(t, result.ResolutionPlan, 3)
	assert.Equal(t, []string{"R024"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"R010"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, []string{"RX99"}, result.ResolutionPlan[2].RulesAffected)
}

func TestResolve_TieBrokenByInputOrder(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"RA": 5, "RB": 5, "RC": 5})
	resolver := NewConflictResolver(priorities, NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "RB", ActionRequired: "b"},
		{RuleID: "RA", ActionRequired: "a"},
		{RuleID: "RC", ActionRequired: "c"},
	})

	require.Len(t, result.ResolutionPlan, 3)
	assert.Equal(t, []string{"RB"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"RA"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, []string{"RC"}, result.ResolutionPlan[2].RulesAffected)
}

// ---------------------------------------------------------------------------
// Conflict pairing
// ---------------------------------------------------------------------------

func TestResolve_JointStepForConflictingPair(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R001": 3, "R003": 4, "R014": 10, "R009": 26})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "Diversify suppliers"},
		{RuleID: "R003", ActionRequired: "Consolidate volume"},
		{RuleID: "R014", ActionRequired: "Review contracts"},
		{RuleID: "R009", ActionRequired: "Renegotiate terms"},
	})

	require.Len(t, result.ResolutionPlan, 3)
	assert.Equal(t, "Resolve R001 and R003 together", result.ResolutionPlan[0].Action)
	assert.Equal(t, "Diversify jointly", result.ResolutionPlan[0].Strategy)
	assert.Equal(t, []string{"R001", "R003"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"R014"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, []string{"R009"}, result.ResolutionPlan[2].RulesAffected)

	require.Len(t, result.ConflictWarnings, 1)
	assert.Equal(t, "R001", result.ConflictWarnings[0].PrimaryRule)
	assert.Equal(t, "R003", result.ConflictWarnings[0].ConflictingRule)
	assert.Equal(t, "resource_contention", result.ConflictWarnings[0].ConflictType)
	assert.Equal(t, 1, result.TotalConflicts)
}

func TestResolve_ConflictDeclaredFromOtherSideIsStillDetected(t *testing.T) {
	// The matrix row points from the lower-priority rule at the
	// higher-priority one. Symmetrization at load time means the
	// higher-priority rule, processed first, still finds the pair.
	priorities := NewPriorityTable(map[string]int{"R001": 1, "R007": 9})
	matrix := matrixFromCSV(t, matrixHeader+
		"R007,R001,contradictory_remediation,Sequence remediations,R001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "a"},
		{RuleID: "R007", ActionRequired: "b"},
	})

	require.Len(t, result.ResolutionPlan, 1)
	assert.Equal(t, []string{"R001", "R007"}, result.ResolutionPlan[0].RulesAffected)
	require.Len(t, result.ConflictWarnings, 1)
	assert.Equal(t, "R001", result.ConflictWarnings[0].PrimaryRule)
	assert.Equal(t, "R007", result.ConflictWarnings[0].ConflictingRule)
}

func TestResolve_DeclaredConflictIgnoredWhenPartnerNotViolated(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R001": 1, "R003": 2})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "Diversify suppliers"},
	})

	require.Len(t, result.ResolutionPlan, 1)
	assert.Equal(t, "Resolve R001", result.ResolutionPlan[0].Action)
	assert.Empty(t, result.ConflictWarnings)
}

func TestResolve_MultiplePartnersResolvedInOnePass(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R001": 1, "R003": 2, "R005": 3})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003|R005,resource_contention,Coordinate remediation,R001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "a"},
		{RuleID: "R003", ActionRequired: "b"},
		{RuleID: "R005", ActionRequired: "c"},
	})

	// Each pairing yields its own joint step; all partners are settled with R001.
	require.Len(t, result.ResolutionPlan, 2)
	assert.Equal(t, []string{"R001", "R003"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"R001", "R005"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, 2, result.TotalConflicts)
}

func TestResolve_PartnerAlreadySettledGetsStandaloneStep(t *testing.T) {
	// R002 conflicts with R003, but R003 is already settled jointly with R001.
	// R002 must not re-open R003.
	priorities := NewPriorityTable(map[string]int{"R001": 1, "R002": 2, "R003": 3})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Settle with R001,R001 first\n"+
		"R002,R003,resource_contention,Settle with R002,R002 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "a"},
		{RuleID: "R002", ActionRequired: "b"},
		{RuleID: "R003", ActionRequired: "c"},
	})

	require.Len(t, result.ResolutionPlan, 2)
	assert.Equal(t, []string{"R001", "R003"}, result.ResolutionPlan[0].RulesAffected)
	assert.Equal(t, []string{"R002"}, result.ResolutionPlan[1].RulesAffected)
	assert.Equal(t, 1, result.TotalConflicts)
}

// ---------------------------------------------------------------------------
// Invariants: coverage and no double-processing
// ---------------------------------------------------------------------------

func TestResolve_EveryViolationAddressedExactlyOnce(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{
		"R001": 3, "R003": 4, "R009": 26, "R014": 10, "HC001": 7,
	})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n"+
		"R014,HC001,contradictory_remediation,Align certifications,HC001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	violations := []RuleViolation{
		{RuleID: "R009", ActionRequired: "a"},
		{RuleID: "R014", ActionRequired: "b"},
		{RuleID: "R001", ActionRequired: "c"},
		{RuleID: "HC001", ActionRequired: "d"},
		{RuleID: "R003", ActionRequired: "e"},
	}
	result := resolver.Resolve(violations)

	seen := map[string]int{}
	for _, step := range result.ResolutionPlan {
		for _, ruleID := range step.RulesAffected {
			seen[ruleID]++
		}
	}

	for _, v := range violations {
		assert.Equal(t, 1, seen[v.RuleID], "rule %s must be addressed exactly once", v.RuleID)
	}
	assert.Len(t, seen, len(violations))
}

func TestResolve_DuplicateViolationsCollapse(t *testing.T) {
	resolver := NewConflictResolver(NewPriorityTable(map[string]int{"R001": 3}), NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "R001", ActionRequired: "Diversify suppliers"},
		{RuleID: "R001", ActionRequired: "Diversify suppliers"},
	})

	require.Len(t, result.ResolutionPlan, 1)
	assert.Equal(t, []string{"R001"}, result.ResolutionPlan[0].RulesAffected)
}

// ---------------------------------------------------------------------------
// Standalone steps
// ---------------------------------------------------------------------------

func TestResolve_SingleViolationUsesActionRequired(t *testing.T) {
	resolver := NewConflictResolver(NewPriorityTable(nil), NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{
		{RuleID: "HC001", RuleName: "Certification coverage", ActionRequired: "Request ISO 22000"},
	})

	require.Len(t, result.ResolutionPlan, 1)
	step := result.ResolutionPlan[0]
	assert.Equal(t, 1, step.StepNumber)
	assert.Equal(t, "Resolve HC001", step.Action)
	assert.Equal(t, "Request ISO 22000", step.Strategy)
	assert.Equal(t, []string{"HC001"}, step.RulesAffected)
}

func TestResolve_MissingActionRequiredUsesFallback(t *testing.T) {
	resolver := NewConflictResolver(NewPriorityTable(nil), NewConflictMatrix())

	result := resolver.Resolve([]RuleViolation{{RuleID: "R042"}})

	require.Len(t, result.ResolutionPlan, 1)
	assert.Equal(t, FallbackStrategy, result.ResolutionPlan[0].Strategy)
}

// ---------------------------------------------------------------------------
// Determinism
// ---------------------------------------------------------------------------

func TestResolve_Deterministic(t *testing.T) {
	priorities := NewPriorityTable(map[string]int{"R001": 3, "R003": 4, "R009": 26})
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")
	resolver := NewConflictResolver(priorities, matrix)

	violations := []RuleViolation{
		{RuleID: "R009", ActionRequired: "a"},
		{RuleID: "R003", ActionRequired: "b"},
		{RuleID: "R001", ActionRequired: "c"},
	}

	first := resolver.Resolve(violations)
	second := resolver.Resolve(violations)

	assert.Equal(t, first, second)
}
