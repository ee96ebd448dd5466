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

	"github.com/wso2/procurement-analytics-service/internal/spend/model"
	"github.com/wso2/procurement-analytics-service/internal/system/database/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/database/scripts"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// AddSpendRecords inserts the imported spend records in a single transaction
// so a failed import leaves no partial data behind.
func AddSpendRecords(records []model.SpendRecord, orgHandle string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for importing spend records for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for importing spend records for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	query := scripts.InsertSpendRecord[provider.NewDBProvider().GetDBType()]
	for _, record := range records {
		_, err = tx.Exec(query, record.RecordID, orgHandle, record.Supplier, record.Category, record.Amount,
			record.Currency, record.InvoiceDate, record.ContractExpiry, record.CreatedAt)
		if err != nil {
			_ = tx.Rollback()
			errorMsg := fmt.Sprintf("Error occurred while inserting spend record for supplier: %s", record.Supplier)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.EXECUTE_QUERY.Code,
				Message:     errors2.EXECUTE_QUERY.Message,
				Description: errorMsg,
			}, err)
		}
	}

	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit spend record import for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Imported %d spend records for organization: %s", len(records), orgHandle))
	return nil
}

// GetSpendRecords fetches the most recent spend records of an organization.
func GetSpendRecords(orgHandle string, limit int) ([]model.SpendRecord, error) {

	return querySpendRecords(scripts.GetSpendRecords, orgHandle, limit)
}

// GetAllSpendRecords fetches every spend record of an organization.
func GetAllSpendRecords(orgHandle string) ([]model.SpendRecord, error) {

	return querySpendRecords(scripts.GetAllSpendRecords, orgHandle)
}

func querySpendRecords(queryByType map[string]string, orgHandle string, args ...interface{}) ([]model.SpendRecord, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching spend records for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := queryByType[provider.NewDBProvider().GetDBType()]
	queryArgs := append([]interface{}{orgHandle}, args...)
	results, err := dbClient.ExecuteQuery(query, queryArgs...)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching spend records for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	var records []model.SpendRecord
	for _, row := range results {
		records = append(records, scanSpendRecord(row))
	}
	return records, nil
}

// CountSpendRecords returns the number of spend records held for an organization.
func CountSpendRecords(orgHandle string) (int, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for counting spend records for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.CountSpendRecords[provider.NewDBProvider().GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in counting spend records for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	if total, ok := results[0]["total"].(int64); ok {
		return int(total), nil
	}
	return 0, nil
}

// DeleteSpendRecords removes all spend records of an organization.
func DeleteSpendRecords(orgHandle string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting spend records for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := scripts.DeleteSpendRecordsForOrg[provider.NewDBProvider().GetDBType()]
	_, err = dbClient.ExecuteStatement(query, orgHandle)
	if err != nil {
		errorMsg := fmt.Sprintf("Error occurred while deleting spend records for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXECUTE_QUERY.Code,
			Message:     errors2.EXECUTE_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Deleted spend records for organization: %s", orgHandle))
	return nil
}

func scanSpendRecord(row map[string]interface{}) model.SpendRecord {

	record := model.SpendRecord{}
	if recordID, ok := row["record_id"].(string); ok {
		record.RecordID = recordID
	}
	if supplier, ok := row["supplier"].(string); ok {
		record.Supplier = supplier
	}
	if category, ok := row["category"].(string); ok {
		record.Category = category
	}
	switch amount := row["amount"].(type) {
	case float64:
		record.Amount = amount
	case int64:
		record.Amount = float64(amount)
	}
	if currency, ok := row["currency"].(string); ok {
		record.Currency = currency
	}
	if invoiceDate, ok := row["invoice_date"].(string); ok {
		record.InvoiceDate = invoiceDate
	}
	if contractExpiry, ok := row["contract_expiry"].(string); ok {
		record.ContractExpiry = contractExpiry
	}
	if createdAt, ok := row["created_at"].(int64); ok {
		record.CreatedAt = createdAt
	}
	return record
}
