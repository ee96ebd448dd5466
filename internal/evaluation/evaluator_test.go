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

package evaluation

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rulesmodel "github.com/wso2/procurement-analytics-service/internal/rules/model"
	spendmodel "github.com/wso2/procurement-analytics-service/internal/spend/model"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func concentrationAggregates(supplierTotals map[string]float64) spendmodel.SpendAggregates {
	total := 0.0
	for _, amount := range supplierTotals {
		total += amount
	}
	return spendmodel.SpendAggregates{TotalSpend: total, SupplierTotals: supplierTotals}
}

// ---------------------------------------------------------------------------
// SpendConcentrationEvaluator
// ---------------------------------------------------------------------------

func TestSpendConcentration_SupplierOverShare_Violated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySpendConcentration, Threshold: 0.4}
	aggregates := concentrationAggregates(map[string]float64{
		"Acme Corp": 600,
		"Beta Ltd":  400,
	})
	assert.True(t, SpendConcentrationEvaluator{}.Evaluate(rule, aggregates))
}

func TestSpendConcentration_BalancedSpend_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySpendConcentration, Threshold: 0.4}
	aggregates := concentrationAggregates(map[string]float64{
		"Acme Corp": 300,
		"Beta Ltd":  350,
		"Gamma Inc": 350,
	})
	assert.False(t, SpendConcentrationEvaluator{}.Evaluate(rule, aggregates))
}

func TestSpendConcentration_NoSpend_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySpendConcentration, Threshold: 0.4}
	assert.False(t, SpendConcentrationEvaluator{}.Evaluate(rule, spendmodel.SpendAggregates{}))
}

// ---------------------------------------------------------------------------
// SupplierRiskEvaluator
// ---------------------------------------------------------------------------

func TestSupplierRisk_SingleSourceCategory_Violated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySupplierRisk}
	aggregates := spendmodel.SpendAggregates{
		CategorySuppliers: map[string]map[string]bool{
			"IT Hardware": {"Acme Corp": true},
			"Logistics":   {"Beta Ltd": true, "Gamma Inc": true},
		},
	}
	assert.True(t, SupplierRiskEvaluator{}.Evaluate(rule, aggregates))
}

func TestSupplierRisk_ThresholdRaisesMinimum(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySupplierRisk, Threshold: 3}
	aggregates := spendmodel.SpendAggregates{
		CategorySuppliers: map[string]map[string]bool{
			"Logistics": {"Beta Ltd": true, "Gamma Inc": true},
		},
	}
	assert.True(t, SupplierRiskEvaluator{}.Evaluate(rule, aggregates))
}

func TestSupplierRisk_EnoughSuppliers_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategorySupplierRisk}
	aggregates := spendmodel.SpendAggregates{
		CategorySuppliers: map[string]map[string]bool{
			"Logistics": {"Beta Ltd": true, "Gamma Inc": true},
		},
	}
	assert.False(t, SupplierRiskEvaluator{}.Evaluate(rule, aggregates))
}

// ---------------------------------------------------------------------------
// ComplianceEvaluator
// ---------------------------------------------------------------------------

func TestCompliance_ExpiredSpendOverThreshold_Violated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCompliance, Threshold: 0.1}
	aggregates := spendmodel.SpendAggregates{TotalSpend: 1000, ExpiredContractSpend: 200}
	assert.True(t, ComplianceEvaluator{}.Evaluate(rule, aggregates))
}

func TestCompliance_ZeroThreshold_FlagsAnyExpiredSpend(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCompliance}
	aggregates := spendmodel.SpendAggregates{TotalSpend: 1000, ExpiredContractSpend: 1}
	assert.True(t, ComplianceEvaluator{}.Evaluate(rule, aggregates))
}

func TestCompliance_NoExpiredSpend_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCompliance}
	aggregates := spendmodel.SpendAggregates{TotalSpend: 1000}
	assert.False(t, ComplianceEvaluator{}.Evaluate(rule, aggregates))
}

// ---------------------------------------------------------------------------
// CostOptimizationEvaluator
// ---------------------------------------------------------------------------

func TestCostOptimization_GrowthOverThreshold_Violated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCostOptimization, Threshold: 0.2}
	aggregates := spendmodel.SpendAggregates{
		MonthlyTotals: map[string]float64{"2026-01": 1000, "2026-02": 1500},
	}
	assert.True(t, CostOptimizationEvaluator{}.Evaluate(rule, aggregates))
}

func TestCostOptimization_FlatSpend_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCostOptimization, Threshold: 0.2}
	aggregates := spendmodel.SpendAggregates{
		MonthlyTotals: map[string]float64{"2026-01": 1000, "2026-02": 1050},
	}
	assert.False(t, CostOptimizationEvaluator{}.Evaluate(rule, aggregates))
}

func TestCostOptimization_SingleMonth_NotViolated(t *testing.T) {
	rule := rulesmodel.Rule{Category: constants.CategoryCostOptimization, Threshold: 0.2}
	aggregates := spendmodel.SpendAggregates{
		MonthlyTotals: map[string]float64{"2026-01": 1000},
	}
	assert.False(t, CostOptimizationEvaluator{}.Evaluate(rule, aggregates))
}

// ---------------------------------------------------------------------------
// EvaluateRules dispatch
// ---------------------------------------------------------------------------

func TestEvaluateRules_DispatchAndViolationFields(t *testing.T) {
	rules := []rulesmodel.Rule{
		{
			RuleID:         "R001",
			RuleName:       "Supplier concentration cap",
			Category:       constants.CategorySpendConcentration,
			ActionRequired: "Diversify supplier base",
			Severity:       constants.SeverityHigh,
			Threshold:      0.4,
		},
		{
			RuleID:    "R002",
			RuleName:  "Expired contract block",
			Category:  constants.CategoryCompliance,
			Threshold: 0.5,
		},
		{
			RuleID:   "R003",
			RuleName: "Unknown category rule",
			Category: "unknown_category",
		},
	}
	aggregates := spendmodel.SpendAggregates{
		TotalSpend:           1000,
		SupplierTotals:       map[string]float64{"Acme Corp": 900, "Beta Ltd": 100},
		ExpiredContractSpend: 100,
	}

	violations := EvaluateRules(rules, aggregates)
	require.Len(t, violations, 1)
	assert.Equal(t, "R001", violations[0].RuleID)
	assert.Equal(t, "Supplier concentration cap", violations[0].RuleName)
	assert.Equal(t, "Diversify supplier base", violations[0].ActionRequired)
	assert.Equal(t, constants.SeverityHigh, violations[0].Severity)
}

func TestEvaluateRules_NoRules_EmptyNotNil(t *testing.T) {
	violations := EvaluateRules(nil, spendmodel.SpendAggregates{})
	assert.NotNil(t, violations)
	assert.Empty(t, violations)
}
