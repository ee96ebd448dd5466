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
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/procurement-analytics-service/internal/analysis/model"
	"github.com/wso2/procurement-analytics-service/internal/analysis/store"
	conflictsprovider "github.com/wso2/procurement-analytics-service/internal/conflicts/provider"
	"github.com/wso2/procurement-analytics-service/internal/evaluation"
	"github.com/wso2/procurement-analytics-service/internal/resolution"
	rulesprovider "github.com/wso2/procurement-analytics-service/internal/rules/provider"
	spendprovider "github.com/wso2/procurement-analytics-service/internal/spend/provider"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

type AnalysisServiceInterface interface {
	RunAnalysis(orgHandle string) (model.AnalysisReport, error)
	GetAnalysisReports(orgHandle string, limit int) ([]model.AnalysisReport, error)
	GetAnalysisReport(reportID string) (model.AnalysisReport, error)
}

// AnalysisService is the default implementation of the AnalysisServiceInterface.
type AnalysisService struct{}

// GetAnalysisService creates a new instance of AnalysisService.
func GetAnalysisService() AnalysisServiceInterface {

	return &AnalysisService{}
}

// RunAnalysis evaluates the active rule catalog against the organization's
// spend, resolves conflicts between the violated rules and archives the
// resulting report.
func (as *AnalysisService) RunAnalysis(orgHandle string) (model.AnalysisReport, error) {

	logger := log.GetLogger()

	ruleService := rulesprovider.NewRuleProvider().GetRuleService()
	activeRules, err := ruleService.GetActiveRules(orgHandle)
	if err != nil {
		return model.AnalysisReport{}, err
	}

	spendService := spendprovider.NewSpendProvider().GetSpendService()
	aggregates, err := spendService.GetAggregates(orgHandle, time.Now().UTC())
	if err != nil {
		return model.AnalysisReport{}, err
	}

	violations := evaluation.EvaluateRules(activeRules, aggregates)

	priorities, err := ruleService.PriorityTable(orgHandle)
	if err != nil {
		return model.AnalysisReport{}, err
	}
	for _, violation := range violations {
		if priorities.PriorityOf(violation.RuleID) == resolution.UnrankedPriority {
			logger.Warn("Violated rule has no priority rank and will be addressed last",
				log.String("rule_id", violation.RuleID), log.String("org_handle", orgHandle))
		}
	}

	matrixService := conflictsprovider.NewConflictMatrixProvider().GetConflictMatrixService()
	matrix, err := matrixService.CurrentMatrix()
	if err != nil {
		return model.AnalysisReport{}, err
	}

	resolver := resolution.NewConflictResolver(priorities, matrix)
	result := resolver.Resolve(violations)

	report := model.AnalysisReport{
		ReportID:           uuid.New().String(),
		OrgHandle:          orgHandle,
		Violations:         violations,
		PrioritizedActions: result.PrioritizedActions,
		ConflictWarnings:   result.ConflictWarnings,
		ResolutionPlan:     result.ResolutionPlan,
		TotalConflicts:     result.TotalConflicts,
		ActionPlanText:     resolution.FormatActionPlan(result),
		RecordsAnalyzed:    aggregates.RecordCount,
		RulesEvaluated:     len(activeRules),
		CreatedAt:          time.Now().UTC().Unix(),
	}

	if err := store.SaveReport(report); err != nil {
		return model.AnalysisReport{}, err
	}

	logger.Info("Analysis run completed", log.String("org_handle", orgHandle),
		log.Int("violations", len(violations)), log.Int("conflicts", result.TotalConflicts))
	return report, nil
}

// GetAnalysisReports fetches the most recent analysis reports of an organization.
func (as *AnalysisService) GetAnalysisReports(orgHandle string, limit int) ([]model.AnalysisReport, error) {

	return store.GetReports(orgHandle, limit)
}

// GetAnalysisReport fetches a specific archived analysis report.
func (as *AnalysisService) GetAnalysisReport(reportID string) (model.AnalysisReport, error) {

	report, err := store.GetReport(reportID)
	if err != nil {
		return model.AnalysisReport{}, err
	}
	if report == nil {
		return model.AnalysisReport{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ANALYSIS_REPORT_NOT_FOUND.Code,
			Message:     errors2.ANALYSIS_REPORT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No analysis report found with id: %s", reportID),
		}, http.StatusNotFound)
	}
	return *report, nil
}
