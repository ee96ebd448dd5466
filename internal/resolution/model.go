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

// RuleViolation represents one triggered business rule for a client/category context.
// Violations are produced by the rule evaluators and consumed once by the resolver.
type RuleViolation struct {
	RuleID         string `json:"rule_id" bson:"rule_id"`
	RuleName       string `json:"rule_name" bson:"rule_name"`
	ActionRequired string `json:"action_required" bson:"action_required"`
	Severity       string `json:"severity,omitempty" bson:"severity,omitempty"`
}

// ConflictWarning surfaces one detected conflicting pair among currently
// violated rules. Warnings are reported separately from the plan.
type ConflictWarning struct {
	PrimaryRule        string `json:"primary_rule" bson:"primary_rule"`
	ConflictingRule    string `json:"conflicting_rule" bson:"conflicting_rule"`
	ConflictType       string `json:"conflict_type" bson:"conflict_type"`
	ResolutionStrategy string `json:"resolution_strategy" bson:"resolution_strategy"`
	PriorityOrder      string `json:"priority_order" bson:"priority_order"`
}

// ResolutionStep is one line item of the output plan. A step covers either a
// single rule or a conflicting pair resolved together.
type ResolutionStep struct {
	StepNumber    int      `json:"step_number" bson:"step_number"`
	Action        string   `json:"action" bson:"action"`
	Strategy      string   `json:"strategy" bson:"strategy"`
	RulesAffected []string `json:"rules_affected" bson:"rules_affected"`
}

// ResolutionResult is the full output of a resolver run.
type ResolutionResult struct {
	PrioritizedActions []RuleViolation   `json:"prioritized_actions" bson:"prioritized_actions"`
	ConflictWarnings   []ConflictWarning `json:"conflict_warnings" bson:"conflict_warnings"`
	ResolutionPlan     []ResolutionStep  `json:"resolution_plan" bson:"resolution_plan"`
	TotalConflicts     int               `json:"total_conflicts" bson:"total_conflicts"`
}
