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

package model

import (
	"github.com/wso2/procurement-analytics-service/internal/resolution"
)

// AnalysisReport is one archived analysis run: the violations found, the
// resolved action plan, and the rendered summary.
type AnalysisReport struct {
	ReportID           string                       `json:"report_id" bson:"report_id"`
	OrgHandle          string                       `json:"org_handle" bson:"org_handle"`
	Violations         []resolution.RuleViolation   `json:"violations" bson:"violations"`
	PrioritizedActions []resolution.RuleViolation   `json:"prioritized_actions" bson:"prioritized_actions"`
	ConflictWarnings   []resolution.ConflictWarning `json:"conflict_warnings" bson:"conflict_warnings"`
	ResolutionPlan     []resolution.ResolutionStep  `json:"resolution_plan" bson:"resolution_plan"`
	TotalConflicts     int                          `json:"total_conflicts" bson:"total_conflicts"`
	ActionPlanText     string                       `json:"action_plan_text" bson:"action_plan_text"`
	RecordsAnalyzed    int                          `json:"records_analyzed" bson:"records_analyzed"`
	RulesEvaluated     int                          `json:"rules_evaluated" bson:"rules_evaluated"`
	CreatedAt          int64                        `json:"created_at" bson:"created_at"`
}
