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

package handler

import (
	"net/http"

	"github.com/wso2/procurement-analytics-service/internal/analysis/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/authn"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	pascontext "github.com/wso2/procurement-analytics-service/internal/system/context"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
	"github.com/wso2/procurement-analytics-service/internal/system/pagination"
	"github.com/wso2/procurement-analytics-service/internal/system/security"
	"github.com/wso2/procurement-analytics-service/internal/system/utils"
)

type AnalysisHandler struct{}

func NewAnalysisHandler() *AnalysisHandler {

	return &AnalysisHandler{}
}

// RunAnalysis evaluates the rule catalog against the organization's spend and
// returns the archived report.
func (ah *AnalysisHandler) RunAnalysis(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "analyses:run")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	analysisProvider := provider.NewAnalysisProvider()
	analysisService := analysisProvider.GetAnalysisService()
	report, err := analysisService.RunAnalysis(orgHandle)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for analysis run
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      report.ReportID,
		TargetType:    log.TargetTypeAnalysisReport,
		ActionID:      log.ActionRunAnalysis,
		TraceID:       traceID,
		Data: map[string]string{
			"org_handle": orgHandle,
		},
	})

	utils.RespondJSON(w, http.StatusCreated, report, constants.AnalysisReportResource)
}

// GetAnalysisReports fetches the most recent reports of an organization.
func (ah *AnalysisHandler) GetAnalysisReports(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "analyses:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Invalid limit query parameter",
		}, http.StatusBadRequest))
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	analysisProvider := provider.NewAnalysisProvider()
	analysisService := analysisProvider.GetAnalysisService()
	reports, err := analysisService.GetAnalysisReports(orgHandle, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reports, constants.AnalysisReportResource)
}

// GetAnalysisReport fetches a specific archived report.
func (ah *AnalysisHandler) GetAnalysisReport(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "analyses:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	reportID := r.PathValue("reportId")
	if reportID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	analysisProvider := provider.NewAnalysisProvider()
	analysisService := analysisProvider.GetAnalysisService()
	report, err := analysisService.GetAnalysisReport(reportID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, report, constants.AnalysisReportResource)
}
