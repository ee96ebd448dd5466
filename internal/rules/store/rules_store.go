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

package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/rules/model"
	"github.com/wso2/procurement-analytics-service/internal/system/database/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/database/scripts"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// AddRule adds a new business rule to the database
func AddRule(rule model.Rule, orgHandle string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for adding rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.InsertRule[provider.NewDBProvider().GetDBType()]

	_, err = dbClient.ExecuteStatement(query, rule.RuleID, orgHandle, rule.RuleName, rule.Category,
		rule.Description, rule.ActionRequired, rule.Severity, rule.Threshold, rule.Priority, rule.IsActive,
		rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while adding rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Rule : %s added successfully", rule.RuleName))
	return nil
}

// GetRules fetches all business rules of an organization
func GetRules(orgHandle string) ([]model.Rule, error) {

	return queryRules(scripts.GetRules, orgHandle)
}

// GetActiveRules fetches the active business rules of an organization in priority order
func GetActiveRules(orgHandle string) ([]model.Rule, error) {

	return queryRules(scripts.GetActiveRules, orgHandle)
}

func queryRules(queryByType map[string]string, orgHandle string) ([]model.Rule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching rules for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := queryByType[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching rules for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	var rules []model.Rule
	for _, row := range results {
		rules = append(rules, scanRule(row))
	}

	return rules, nil
}

// GetRule fetches a specific business rule by its id
func GetRule(ruleID string) (model.Rule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return model.Rule{}, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.GetRuleById[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, ruleID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return model.Rule{}, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		return model.Rule{}, nil
	}
	return scanRule(results[0]), nil
}

// GetRuleByName fetches a business rule by its name for an organization
func GetRuleByName(orgHandle, ruleName string) (model.Rule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return model.Rule{}, errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}
	defer dbClient.Close()

	query := scripts.GetRuleByName[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle, ruleName)
	if err != nil {
		return model.Rule{}, errors2.NewServerError(errors2.EXECUTE_QUERY, err)
	}

	if len(results) == 0 {
		return model.Rule{}, nil
	}
	return scanRule(results[0]), nil
}

// PatchRule applies a partial update on a business rule
func PatchRule(ruleID string, updates map[string]interface{}) error {

	if len(updates) == 0 {
		return nil
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}
	defer dbClient.Close()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	position := 1
	for field, value := range updates {
		setClauses = append(setClauses, field+" = $"+strconv.Itoa(position))
		args = append(args, value)
		position++
	}
	args = append(args, ruleID)

	query := fmt.Sprintf("UPDATE business_rules SET %s WHERE rule_id = $%d",
		strings.Join(setClauses, ", "), position)

	_, err = dbClient.ExecuteStatement(query, args...)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while patching rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	return nil
}

// DeleteRule removes a business rule from the database
func DeleteRule(ruleID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteRule[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, ruleID)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting rule: %s", ruleID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Rule : %s deleted successfully", ruleID))
	return nil
}

// scanRule converts a result row into a rule model.
func scanRule(row map[string]interface{}) model.Rule {

	var rule model.Rule
	rule.RuleID, _ = row["rule_id"].(string)
	rule.RuleName, _ = row["rule_name"].(string)
	rule.Category, _ = row["category"].(string)
	rule.Description, _ = row["description"].(string)
	rule.ActionRequired, _ = row["action_required"].(string)
	rule.Severity, _ = row["severity"].(string)
	if threshold, ok := row["threshold"].(float64); ok {
		rule.Threshold = threshold
	}
	if priority, ok := row["priority"].(int64); ok {
		rule.Priority = int(priority)
	}
	rule.IsActive, _ = row["is_active"].(bool)
	if createdAt, ok := row["created_at"].(int64); ok {
		rule.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(int64); ok {
		rule.UpdatedAt = updatedAt
	}
	return rule
}
