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

package service

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/procurement-analytics-service/internal/rules/model"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	"github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// AddRule – early-return validation (no DB required)
// ---------------------------------------------------------------------------

func TestAddRule_UnknownCategory_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := model.Rule{
		RuleName:       "untracked-category-rule",
		Category:       "marketing_spend",
		ActionRequired: "Review spend",
		Priority:       1,
	}
	err := svc.AddRule(rule, "org1")
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors.INVALID_RULE_CATEGORY.Code, clientErr.Code)
}

func TestAddRule_UnknownSeverity_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := model.Rule{
		RuleName:       "bad-severity-rule",
		Category:       constants.CategorySupplierRisk,
		ActionRequired: "Diversify suppliers",
		Severity:       "catastrophic",
		Priority:       1,
	}
	err := svc.AddRule(rule, "org1")
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

// ---------------------------------------------------------------------------
// PatchRule – field allow-list (no DB required)
// ---------------------------------------------------------------------------

func TestPatchRule_DisallowedField_Rejected(t *testing.T) {
	svc := &RuleService{}
	err := svc.PatchRule("rule-1", "org1", map[string]interface{}{
		"category": constants.CategoryCompliance,
	})
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors.INVALID_PATCH_FIELD.Code, clientErr.Code)
}

func TestPatchRule_OrgHandle_Rejected(t *testing.T) {
	svc := &RuleService{}
	err := svc.PatchRule("rule-1", "org1", map[string]interface{}{
		"org_handle": "other-org",
	})
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}
