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
	"encoding/json"
	"net/http"

	"github.com/wso2/procurement-analytics-service/internal/rules/model"
	"github.com/wso2/procurement-analytics-service/internal/rules/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/authn"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	pascontext "github.com/wso2/procurement-analytics-service/internal/system/context"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
	"github.com/wso2/procurement-analytics-service/internal/system/security"
	"github.com/wso2/procurement-analytics-service/internal/system/utils"

	"github.com/google/uuid"
)

type RulesHandler struct{}

func NewRulesHandler() *RulesHandler {

	return &RulesHandler{}
}

// AddRule handles adding a new business rule to the catalog.
func (rh *RulesHandler) AddRule(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "rules:create")
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var ruleInRequest model.RuleAPIRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ruleInRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "business rule"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	orgHandle := utils.ExtractOrgHandleFromPath(r)
	rule := model.Rule{
		RuleID:         uuid.New().String(),
		OrgHandle:      orgHandle,
		RuleName:       ruleInRequest.RuleName,
		Category:       ruleInRequest.Category,
		Description:    ruleInRequest.Description,
		ActionRequired: ruleInRequest.ActionRequired,
		Severity:       ruleInRequest.Severity,
		Threshold:      ruleInRequest.Threshold,
		Priority:       ruleInRequest.Priority,
		IsActive:       ruleInRequest.IsActive,
	}

	ruleProvider := provider.NewRuleProvider()
	ruleService := ruleProvider.GetRuleService()
	err = ruleService.AddRule(rule, orgHandle)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for rule creation
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      rule.RuleID,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionAddRule,
		TraceID:       traceID,
		Data: map[string]string{
			"org_handle": orgHandle,
			"rule_name":  rule.RuleName,
			"category":   rule.Category,
		},
	})

	addedRule, err := ruleService.GetRule(rule.RuleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, addedRule.ToAPIResponse(), constants.RuleResource)
}

// GetRules handles fetching all business rules of an organization.
func (rh *RulesHandler) GetRules(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "rules:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	ruleProvider := provider.NewRuleProvider()
	ruleService := ruleProvider.GetRuleService()
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	var rules []model.Rule
	if r.URL.Query().Get("active") == "true" {
		rules, err = ruleService.GetActiveRules(orgHandle)
	} else {
		rules, err = ruleService.GetRules(orgHandle)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	rulesResponse := make([]model.RuleAPIResponse, 0, len(rules))
	for _, rule := range rules {
		rulesResponse = append(rulesResponse, rule.ToAPIResponse())
	}
	utils.RespondJSON(w, http.StatusOK, rulesResponse, constants.RuleResource)
}

// GetRule fetches a specific business rule.
func (rh *RulesHandler) GetRule(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "rules:view")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	ruleID := r.PathValue("ruleId")
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	ruleProvider := provider.NewRuleProvider()
	ruleService := ruleProvider.GetRuleService()
	rule, err := ruleService.GetRule(ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, rule.ToAPIResponse(), constants.RuleResource)
}

// PatchRule applies partial updates to a business rule.
func (rh *RulesHandler) PatchRule(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "rules:update")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	ruleID := r.PathValue("ruleId")
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)

	var ruleUpdateRequest model.RuleUpdateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ruleUpdateRequest); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "business rule"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	updates := make(map[string]interface{})
	if ruleUpdateRequest.RuleName != nil {
		updates["rule_name"] = *ruleUpdateRequest.RuleName
	}
	if ruleUpdateRequest.Threshold != nil {
		updates["threshold"] = *ruleUpdateRequest.Threshold
	}
	if ruleUpdateRequest.Priority != nil {
		updates["priority"] = *ruleUpdateRequest.Priority
	}
	if ruleUpdateRequest.IsActive != nil {
		updates["is_active"] = *ruleUpdateRequest.IsActive
	}

	ruleProvider := provider.NewRuleProvider()
	ruleService := ruleProvider.GetRuleService()
	err = ruleService.PatchRule(ruleID, orgHandle, updates)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for rule update
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleID,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionUpdateRule,
		TraceID:       traceID,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	rule, err := ruleService.GetRule(ruleID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, rule.ToAPIResponse(), constants.RuleResource)
}

// DeleteRule removes a business rule from the catalog.
func (rh *RulesHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {

	err := security.AuthnAndAuthz(r, "rules:delete")
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	ruleID := r.PathValue("ruleId")
	if ruleID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	orgHandle := utils.ExtractOrgHandleFromPath(r)
	ruleProvider := provider.NewRuleProvider()
	ruleService := ruleProvider.GetRuleService()
	err = ruleService.DeleteRule(ruleID, orgHandle)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	// Audit log for rule deletion
	logger := log.GetLogger()
	traceID := pascontext.GetTraceID(r.Context())
	logger.Audit(log.AuditEvent{
		InitiatorID:   authn.GetUserIDFromRequest(r),
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleID,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionDeleteRule,
		TraceID:       traceID,
		Data:          map[string]string{"org_handle": orgHandle},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNoContent)
}
