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
	"strings"
)

// NoViolationsMessage is rendered when the plan has no steps.
const NoViolationsMessage = "No rule violations detected. No remediation actions required."

// FormatActionPlan renders the resolver output as an ordered human-readable
// plan. The rendering is deterministic for identical inputs and is consumed by
// the report exporters and the API's formatted_plan field.
func FormatActionPlan(result ResolutionResult) string {

	var b strings.Builder

	if len(result.ConflictWarnings) > 0 {
		b.WriteString("CONFLICT WARNINGS\n")
		b.WriteString("-----------------\n")
		for _, w := range result.ConflictWarnings {
			fmt.Fprintf(&b, "* %s conflicts with %s (%s)\n", w.PrimaryRule, w.ConflictingRule, w.ConflictType)
			fmt.Fprintf(&b, "  Strategy: %s\n", w.ResolutionStrategy)
			if w.PriorityOrder != "" {
				fmt.Fprintf(&b, "  Priority order: %s\n", w.PriorityOrder)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("PRIORITIZED ACTION PLAN\n")
	b.WriteString("-----------------------\n")

	if len(result.ResolutionPlan) == 0 {
		b.WriteString(NoViolationsMessage)
		b.WriteString("\n")
		return b.String()
	}

	for _, step := range result.ResolutionPlan {
		fmt.Fprintf(&b, "%d. %s\n", step.StepNumber, step.Action)
		fmt.Fprintf(&b, "   Strategy: %s\n", step.Strategy)
		fmt.Fprintf(&b, "   Rules affected: %s\n", strings.Join(step.RulesAffected, ", "))
	}

	fmt.Fprintf(&b, "\nTotal conflicts detected: %d\n", result.TotalConflicts)

	return b.String()
}
