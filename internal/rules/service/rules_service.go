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

	"github.com/wso2/procurement-analytics-service/internal/resolution"
	"github.com/wso2/procurement-analytics-service/internal/rules/model"
	"github.com/wso2/procurement-analytics-service/internal/rules/store"
	"github.com/wso2/procurement-analytics-service/internal/system/cache"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
)

// activeRulesCache holds the active rule catalog per organization. Rule
// evaluation reads the catalog on every analysis run, so catalog reads are
// cached briefly and invalidated on writes.
var activeRulesCache = cache.NewCache(time.Minute)

type RuleServiceInterface interface {
	AddRule(rule model.Rule, orgHandle string) error
	GetRules(orgHandle string) ([]model.Rule, error)
	GetActiveRules(orgHandle string) ([]model.Rule, error)
	GetRule(ruleID string) (model.Rule, error)
	PatchRule(ruleID string, orgHandle string, updates map[string]interface{}) error
	DeleteRule(ruleID string, orgHandle string) error
	PriorityTable(orgHandle string) (*resolution.PriorityTable, error)
}

// RuleService is the default implementation of the RuleServiceInterface.
type RuleService struct{}

// GetRuleService creates a new instance of RuleService.
func GetRuleService() RuleServiceInterface {

	return &RuleService{}
}

// AddRule adds a new business rule after validating its category and severity.
func (rs *RuleService) AddRule(rule model.Rule, orgHandle string) error {

	if !constants.AllowedRuleCategories[rule.Category] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_RULE_CATEGORY.Code,
			Message:     errors2.INVALID_RULE_CATEGORY.Message,
			Description: fmt.Sprintf("Category '%s' is not a recognized rule category", rule.Category),
		}, http.StatusBadRequest)
	}

	if rule.Severity != "" && !constants.AllowedSeverities[rule.Severity] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: fmt.Sprintf("Severity '%s' is not a recognized severity level", rule.Severity),
		}, http.StatusBadRequest)
	}

	existingRule, err := store.GetRuleByName(orgHandle, rule.RuleName)
	if err != nil {
		return err
	}
	if existingRule.RuleID != "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_ALREADY_EXISTS.Code,
			Message:     errors2.RULE_ALREADY_EXISTS.Message,
			Description: fmt.Sprintf("Rule with name %s already exists", rule.RuleName),
		}, http.StatusConflict)
	}

	now := time.Now().UTC().Unix()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := store.AddRule(rule, orgHandle); err != nil {
		return err
	}
	activeRulesCache.Delete(orgHandle)
	return nil
}

// GetRules fetches all business rules of an organization.
func (rs *RuleService) GetRules(orgHandle string) ([]model.Rule, error) {

	return store.GetRules(orgHandle)
}

// GetActiveRules fetches the active rules of an organization, priority ordered.
func (rs *RuleService) GetActiveRules(orgHandle string) ([]model.Rule, error) {

	if cached, found := activeRulesCache.Get(orgHandle); found {
		if rules, ok := cached.([]model.Rule); ok {
			return rules, nil
		}
	}

	rules, err := store.GetActiveRules(orgHandle)
	if err != nil {
		return nil, err
	}
	activeRulesCache.Set(orgHandle, rules)
	return rules, nil
}

// GetRule fetches a specific business rule.
func (rs *RuleService) GetRule(ruleID string) (model.Rule, error) {

	rule, err := store.GetRule(ruleID)
	if err != nil {
		return model.Rule{}, err
	}
	if rule.RuleID == "" {
		return model.Rule{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_NOT_FOUND.Code,
			Message:     errors2.RULE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No rule found with id: %s", ruleID),
		}, http.StatusNotFound)
	}
	return rule, nil
}

// PatchRule applies a partial update on a specific business rule.
func (rs *RuleService) PatchRule(ruleID string, orgHandle string, updates map[string]interface{}) error {

	for field := range updates {
		if !constants.AllowedFieldsForRulePatch[field] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_PATCH_FIELD.Code,
				Message:     errors2.INVALID_PATCH_FIELD.Message,
				Description: fmt.Sprintf("Field '%s' cannot be updated.", field),
			}, http.StatusBadRequest)
		}
	}

	updates["updated_at"] = time.Now().UTC().Unix()
	if err := store.PatchRule(ruleID, updates); err != nil {
		return err
	}
	activeRulesCache.Delete(orgHandle)
	return nil
}

// DeleteRule removes a business rule.
func (rs *RuleService) DeleteRule(ruleID string, orgHandle string) error {

	if err := store.DeleteRule(ruleID); err != nil {
		return err
	}
	activeRulesCache.Delete(orgHandle)
	return nil
}

// PriorityTable builds the resolver priority table from the active rule catalog.
// The table is an immutable snapshot; catalog changes take effect on the next build.
func (rs *RuleService) PriorityTable(orgHandle string) (*resolution.PriorityTable, error) {

	rules, err := rs.GetActiveRules(orgHandle)
	if err != nil {
		return nil, err
	}

	ranks := make(map[string]int, len(rules))
	for _, rule := range rules {
		ranks[rule.RuleID] = rule.Priority
	}
	return resolution.NewPriorityTable(ranks), nil
}
