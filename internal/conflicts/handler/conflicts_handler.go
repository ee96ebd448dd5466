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

	"github.com/wso2/procurement-analytics-service/internal/conflicts/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/authn"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	pascontext "github.com/wso2/procurement-analytics-service/internal/system/context"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
	"github.com/wso2/procurement-analytics-service/internal/system/security"
	"github.com/wso2/procurement-analytics-service/internal/system/utils"
)

type ConflictsHandler struct{}

func NewConflictsHandler() *ConflictsHandler {

	return &ConflictsHandler{}
}

// GetConflictMatrix returns the declared conflicts of every rule.
func (ch *ConflictsHandler) GetConflictMatrix(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "conflict_matrix:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	matrixProvider := provider.NewConflictMatrixProvider()
	matrixService := matrixProvider.GetConflictMatrixService()
	entries, err := matrixService.GetConflictEntries()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, entries, constants.ConflictMatrixApiPath)
}

// GetConflictEntry returns the declared conflicts of a single rule.
func (ch *ConflictsHandler) GetConflictEntry(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "conflict_matrix:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	ruleID := r.PathValue("ruleId")
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	matrixProvider := provider.NewConflictMatrixProvider()
	matrixService := matrixProvider.GetConflictMatrixService()
	entry, err := matrixService.GetConflictEntry(ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, entry, constants.ConflictMatrixApiPath)
}

// ReloadConflictMatrix reloads the matrix from its configured source.
// Restricted to the admin credentials since it changes shared server state.
func (ch *ConflictsHandler) ReloadConflictMatrix(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnWithAdminCredentials(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	matrixProvider := provider.NewConflictMatrixProvider()
	matrixService := matrixProvider.GetConflictMatrixService()
	status, err := matrixService.Reload()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for matrix reload
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      status.Source,
		TargetType:    log.TargetTypeConflictMatrix,
		ActionID:      log.ActionReloadConflictMatrix,
		TraceID:       traceID,
		Data:          map[string]string{"source": status.Source},
	})

	utils.RespondJSON(w, http.StatusOK, status, constants.ConflictMatrixApiPath)
}

// GetMatrixStatus reports the load state of the matrix.
func (ch *ConflictsHandler) GetMatrixStatus(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "conflict_matrix:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	matrixProvider := provider.NewConflictMatrixProvider()
	matrixService := matrixProvider.GetConflictMatrixService()
	status, err := matrixService.Status()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, status, constants.ConflictMatrixApiPath)
}
