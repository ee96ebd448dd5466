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

// Rule is a configured business rule of the procurement rule catalog.
type Rule struct {
	RuleID         string  `json:"rule_id"`
	OrgHandle      string  `json:"org_handle"`
	RuleName       string  `json:"rule_name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ActionRequired string  `json:"action_required"`
	Severity       string  `json:"severity"`
	Threshold      float64 `json:"threshold"`
	Priority       int     `json:"priority"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

type RuleAPIRequest struct {
	RuleName       string  `json:"rule_name" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Description    string  `json:"description"`
	ActionRequired string  `json:"action_required" binding:"required"`
	Severity       string  `json:"severity"`
	Threshold      float64 `json:"threshold"`
	Priority       int     `json:"priority" binding:"required"`
	IsActive       bool    `json:"is_active" binding:"required"`
}

type RuleAPIResponse struct {
	RuleID         string  `json:"rule_id"`
	RuleName       string  `json:"rule_name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	ActionRequired string  `json:"action_required"`
	Severity       string  `json:"severity"`
	Threshold      float64 `json:"threshold"`
	Priority       int     `json:"priority"`
	IsActive       bool    `json:"is_active"`
}

type RuleUpdateRequest struct {
	RuleName  *string  `json:"rule_name"`
	Threshold *float64 `json:"threshold"`
	Priority  *int     `json:"priority"`
	IsActive  *bool    `json:"is_active"`
}

// ToAPIResponse converts the internal rule into its API representation.
func (r Rule) ToAPIResponse() RuleAPIResponse {
	return RuleAPIResponse{
		RuleID:         r.RuleID,
		RuleName:       r.RuleName,
		Category:       r.Category,
		Description:    r.Description,
		ActionRequired: r.ActionRequired,
		Severity:       r.Severity,
		Threshold:      r.Threshold,
		Priority:       r.Priority,
		IsActive:       r.IsActive,
	}
}
