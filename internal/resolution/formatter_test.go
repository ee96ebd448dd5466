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
)

func TestFormatActionPlan_NoViolations(t *testing.T) {
	out := FormatActionPlan(ResolutionResult{})

	assert.Contains(t, out, NoViolationsMessage)
	assert.NotContains(t, out, "CONFLICT WARNINGS")
}

func TestFormatActionPlan_WithWarningsAndSteps(t *testing.T) {
	result := ResolutionResult{
		ConflictWarnings: []ConflictWarning{{
			PrimaryRule:        "R001",
			ConflictingRule:    "R003",
			ConflictType:       "resource_contention",
			ResolutionStrategy: "Diversify jointly",
			PriorityOrder:      "R001 first",
		}},
		ResolutionPlan: []ResolutionStep{
			{StepNumber: 1, Action: "Resolve R001 and R003 together", Strategy: "Diversify jointly",
				RulesAffected: []string{"R001", "R003"}},
			{StepNumber: 2, Action: "Resolve R009", Strategy: "Renegotiate terms",
				RulesAffected: []string{"R009"}},
		},
		TotalConflicts: 1,
	}

	out := FormatActionPlan(result)

	assert.Contains(t, out, "CONFLICT WARNINGS")
	assert.Contains(t, out, "R001 conflicts with R003 (resource_contention)")
	assert.Contains(t, out, "1. Resolve R001 and R003 together")
	assert.Contains(t, out, "2. Resolve R009")
	assert.Contains(t, out, "Rules affected: R001, R003")
	assert.Contains(t, out, "Total conflicts detected: 1")

	// The warnings section precedes the plan.
	assert.Less(t, strings.Index(out, "CONFLICT WARNINGS"), strings.Index(out, "PRIORITIZED ACTION PLAN"))
}

func TestFormatActionPlan_Deterministic(t *testing.T) {
	resolver := NewConflictResolver(
		NewPriorityTable(map[string]int{"R001": 3, "R009": 26}),
		NewConflictMatrix(),
	)
	violations := []RuleViolation{
		{RuleID: "R009", ActionRequired: "Renegotiate terms"},
		{RuleID: "R001", ActionRequired: "Diversify suppliers"},
	}

	first := FormatActionPlan(resolver.Resolve(violations))
	second := FormatActionPlan(resolver.Resolve(violations))

	assert.Equal(t, first, second)
}
