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
	"io"
	"net/http"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/spend/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/authn"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	pascontext "github.com/wso2/procurement-analytics-service/internal/system/context"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
	"github.com/wso2/procurement-analytics-service/internal/system/pagination"
	"github.com/wso2/procurement-analytics-service/internal/system/security"
	"github.com/wso2/procurement-analytics-service/internal/system/utils"
	"github.com/wso2/procurement-analytics-service/internal/system/workers"
)

// Upload size cap for spend import files.
const maxImportBytes = 20 << 20

type SpendHandler struct{}

func NewSpendHandler() *SpendHandler {

	return &SpendHandler{}
}

// ImportSpendRecords ingests a CSV spend file uploaded as multipart form data
// under the "file" field, or as a raw CSV request body.
func (sh *SpendHandler) ImportSpendRecords(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "spend_records:import")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	source, cleanup, err := importSource(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	defer cleanup()

	spendProvider := provider.NewSpendProvider()
	spendService := spendProvider.GetSpendService()
	summary, err := spendService.ImportSpendRecords(orgHandle, source)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for spend record import
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      orgHandle,
		TargetType:    log.TargetTypeSpendRecords,
		ActionID:      log.ActionImportSpendRecords,
		TraceID:       traceID,
		Data: map[string]string{
			"org_handle": orgHandle,
		},
	})

	// Imported data triggers a background analysis run.
	workers.EnqueueAnalysisRun(orgHandle)

	utils.RespondJSON(w, http.StatusCreated, summary, constants.SpendRecordsApiPath)
}

// GetSpendRecords fetches the most recent spend records of an organization.
func (sh *SpendHandler) GetSpendRecords(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "spend_records:view")
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
	spendProvider := provider.NewSpendProvider()
	spendService := spendProvider.GetSpendService()
	records, err := spendService.GetSpendRecords(orgHandle, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, records, constants.SpendRecordsApiPath)
}

// DeleteSpendRecords removes all spend records of an organization.
func (sh *SpendHandler) DeleteSpendRecords(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "spend_records:delete")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	spendProvider := provider.NewSpendProvider()
	spendService := spendProvider.GetSpendService()
	err = spendService.DeleteSpendRecords(orgHandle)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNoContent)
}

// importSource resolves the CSV source of an import request.
func importSource(r *http.Request) (io.Reader, func(), error) {

	r.Body = http.MaxBytesReader(nil, r.Body, maxImportBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_SPEND_IMPORT.Code,
				Message:     errors2.INVALID_SPEND_IMPORT.Message,
				Description: "Missing 'file' field in multipart upload",
			}, http.StatusBadRequest)
		}
		return file, func() { _ = file.Close() }, nil
	}
	return r.Body, func() {}, nil
}
