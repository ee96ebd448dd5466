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

// Package evaluation checks active business rules against an organization's
// spend aggregates and reports the violated ones. Each rule category has its
// own evaluator; rules of an unknown category are skipped.
package evaluation

import (
	"sort"

	"github.com/wso2/procurement-analytics-service/internal/resolution"
	rulesmodel "github.com/wso2/procurement-analytics-service/internal/rules/model"
	spendmodel "github.com/wso2/procurement-analytics-service/internal/spend/model"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// Evaluator decides whether one rule is violated by the spend aggregates.
type Evaluator interface {
	Evaluate(rule rulesmodel.Rule, aggregates spendmodel.SpendAggregates) bool
}

var evaluators = map[string]Evaluator{
	constants.CategorySpendConcentration: SpendConcentrationEvaluator{},
	constants.CategorySupplierRisk:       SupplierRiskEvaluator{},
	constants.CategoryCompliance:         ComplianceEvaluator{},
	constants.CategoryCostOptimization:   CostOptimizationEvaluator{},
}

// EvaluateRules runs every active rule against the aggregates and returns the
// violations in rule order.
func EvaluateRules(rules []rulesmodel.Rule, aggregates spendmodel.SpendAggregates) []resolution.RuleViolation {

	logger := log.GetLogger()
	violations := make([]resolution.RuleViolation, 0)
	for _, rule := range rules {
		evaluator, found := evaluators[rule.Category]
		if !found {
			logger.Debug("Skipping rule with unknown category",
				log.String("rule_id", rule.RuleID), log.String("category", rule.Category))
			continue
		}
		if evaluator.Evaluate(rule, aggregates) {
			violations = append(violations, resolution.RuleViolation{
				RuleID:         rule.RuleID,
				RuleName:       rule.RuleName,
				ActionRequired: rule.ActionRequired,
				Severity:       rule.Severity,
			})
		}
	}
	return violations
}

// SpendConcentrationEvaluator flags organizations whose spend leans too hard
// on a single supplier. The rule threshold is the maximum tolerated share of
// total spend, as a fraction between 0 and 1.
type SpendConcentrationEvaluator struct{}

func (SpendConcentrationEvaluator) Evaluate(rule rulesmodel.Rule, aggregates spendmodel.SpendAggregates) bool {

	if aggregates.TotalSpend <= 0 {
		return false
	}
	for _, total := range aggregates.SupplierTotals {
		if total/aggregates.TotalSpend > rule.Threshold {
			return true
		}
	}
	return false
}

// SupplierRiskEvaluator flags categories served by too few suppliers. The rule
// threshold is the minimum tolerated supplier count per category; thresholds
// below 2 fall back to flagging single-source categories.
type SupplierRiskEvaluator struct{}

func (SupplierRiskEvaluator) Evaluate(rule rulesmodel.Rule, aggregates spendmodel.SpendAggregates) bool {

	minSuppliers := int(rule.Threshold)
	if minSuppliers < 2 {
		minSuppliers = 2
	}
	for _, suppliers := range aggregates.CategorySuppliers {
		if len(suppliers) > 0 && len(suppliers) < minSuppliers {
			return true
		}
	}
	return false
}

// ComplianceEvaluator flags spend flowing through expired contracts. The rule
// threshold is the maximum tolerated expired share of total spend, as a
// fraction; a zero threshold flags any expired spend at all.
type ComplianceEvaluator struct{}

func (ComplianceEvaluator) Evaluate(rule rulesmodel.Rule, aggregates spendmodel.SpendAggregates) bool {

	if aggregates.TotalSpend <= 0 {
		return false
	}
	return aggregates.ExpiredContractSpend/aggregates.TotalSpend > rule.Threshold
}

// CostOptimizationEvaluator flags month-over-month spend growth beyond the
// rule threshold, expressed as a fraction of the previous month's spend.
type CostOptimizationEvaluator struct{}

func (CostOptimizationEvaluator) Evaluate(rule rulesmodel.Rule, aggregates spendmodel.SpendAggregates) bool {

	if len(aggregates.MonthlyTotals) < 2 {
		return false
	}
	months := make([]string, 0, len(aggregates.MonthlyTotals))
	for month := range aggregates.MonthlyTotals {
		months = append(months, month)
	}
	sort.Strings(months)

	previous := aggregates.MonthlyTotals[months[len(months)-2]]
	latest := aggregates.MonthlyTotals[months[len(months)-1]]
	if previous <= 0 {
		return false
	}
	return (latest-previous)/previous > rule.Threshold
}
