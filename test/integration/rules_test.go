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

package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/procurement-analytics-service/internal/resolution"
	"github.com/wso2/procurement-analytics-service/internal/rules/model"
	"github.com/wso2/procurement-analytics-service/internal/rules/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	"github.com/wso2/procurement-analytics-service/internal/system/errors"
)

func newTestRule(name, category string, priority int) model.Rule {
	return model.Rule{
		RuleID:         uuid.New().String(),
		RuleName:       name,
		Category:       category,
		Description:    "integration test rule",
		ActionRequired: "Review " + name,
		Severity:       constants.SeverityHigh,
		Threshold:      0.4,
		Priority:       priority,
		IsActive:       true,
	}
}

func TestRuleLifecycle(t *testing.T) {
	const org = "rules-org"
	svc := provider.NewRuleProvider().GetRuleService()

	rule := newTestRule("concentration-cap", constants.CategorySpendConcentration, 1)
	require.NoError(t, svc.AddRule(rule, org))

	// Duplicate names are rejected.
	duplicate := newTestRule("concentration-cap", constants.CategorySpendConcentration, 2)
	err := svc.AddRule(duplicate, org)
	require.Error(t, err)
	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, clientErr.StatusCode)

	fetched, err := svc.GetRule(rule.RuleID)
	require.NoError(t, err)
	assert.Equal(t, rule.RuleName, fetched.RuleName)
	assert.Equal(t, rule.Threshold, fetched.Threshold)
	assert.True(t, fetched.IsActive)

	// Patch deactivates the rule and bumps priority.
	require.NoError(t, svc.PatchRule(rule.RuleID, org, map[string]interface{}{
		"is_active": false,
		"priority":  7,
	}))
	patched, err := svc.GetRule(rule.RuleID)
	require.NoError(t, err)
	assert.False(t, patched.IsActive)
	assert.Equal(t, 7, patched.Priority)

	active, err := svc.GetActiveRules(org)
	require.NoError(t, err)
	for _, r := range active {
		assert.NotEqual(t, rule.RuleID, r.RuleID)
	}

	require.NoError(t, svc.DeleteRule(rule.RuleID, org))
	_, err = svc.GetRule(rule.RuleID)
	require.Error(t, err)
	clientErr, ok = err.(*errors.ClientError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestActiveRulesOrderedByPriority(t *testing.T) {
	const org = "priority-org"
	svc := provider.NewRuleProvider().GetRuleService()

	third := newTestRule("third", constants.CategoryCompliance, 30)
	first := newTestRule("first", constants.CategorySpendConcentration, 10)
	second := newTestRule("second", constants.CategorySupplierRisk, 20)
	for _, rule := range []model.Rule{third, first, second} {
		require.NoError(t, svc.AddRule(rule, org))
	}

	active, err := svc.GetActiveRules(org)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "first", active[0].RuleName)
	assert.Equal(t, "second", active[1].RuleName)
	assert.Equal(t, "third", active[2].RuleName)
}

func TestPriorityTableFromCatalog(t *testing.T) {
	const org = "table-org"
	svc := provider.NewRuleProvider().GetRuleService()

	rule := newTestRule("ranked-rule", constants.CategoryCompliance, 3)
	require.NoError(t, svc.AddRule(rule, org))

	table, err := svc.PriorityTable(org)
	require.NoError(t, err)
	assert.Equal(t, 3, table.PriorityOf(rule.RuleID))
	assert.Equal(t, resolution.UnrankedPriority, table.PriorityOf("not-in-catalog"))
}
