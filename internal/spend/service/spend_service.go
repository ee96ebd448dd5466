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
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/procurement-analytics-service/internal/spend/model"
	"github.com/wso2/procurement-analytics-service/internal/spend/store"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
)

const dateLayout = "2006-01-02"

type SpendServiceInterface interface {
	ImportSpendRecords(orgHandle string, source io.Reader) (model.ImportSummary, error)
	GetSpendRecords(orgHandle string, limit int) ([]model.SpendRecord, error)
	GetAggregates(orgHandle string, asOf time.Time) (model.SpendAggregates, error)
	DeleteSpendRecords(orgHandle string) error
}

// SpendService is the default implementation of the SpendServiceInterface.
type SpendService struct{}

// GetSpendService creates a new instance of SpendService.
func GetSpendService() SpendServiceInterface {

	return &SpendService{}
}

// ImportSpendRecords parses a spend CSV file and stores the valid rows. Rows
// with missing required fields or unparsable values are skipped and reported
// in the summary rather than failing the whole import.
func (ss *SpendService) ImportSpendRecords(orgHandle string, source io.Reader) (model.ImportSummary, error) {

	records, summary, err := ParseSpendCSV(source, orgHandle)
	if err != nil {
		return model.ImportSummary{}, err
	}
	if len(records) == 0 {
		return model.ImportSummary{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SPEND_IMPORT.Code,
			Message:     errors2.INVALID_SPEND_IMPORT.Message,
			Description: "No valid spend rows found in the uploaded file",
		}, http.StatusBadRequest)
	}

	if err := store.AddSpendRecords(records, orgHandle); err != nil {
		return model.ImportSummary{}, err
	}
	return summary, nil
}

// GetSpendRecords fetches the most recent spend records of an organization.
func (ss *SpendService) GetSpendRecords(orgHandle string, limit int) ([]model.SpendRecord, error) {

	return store.GetSpendRecords(orgHandle, limit)
}

// GetAggregates computes the spend totals rule evaluation runs against.
func (ss *SpendService) GetAggregates(orgHandle string, asOf time.Time) (model.SpendAggregates, error) {

	records, err := store.GetAllSpendRecords(orgHandle)
	if err != nil {
		return model.SpendAggregates{}, err
	}
	return ComputeAggregates(records, asOf), nil
}

// DeleteSpendRecords removes all spend records of an organization.
func (ss *SpendService) DeleteSpendRecords(orgHandle string) error {

	return store.DeleteSpendRecords(orgHandle)
}

// ParseSpendCSV reads spend rows from the reader. The header must carry the
// required import columns; currency and contract_expiry are optional.
func ParseSpendCSV(source io.Reader, orgHandle string) ([]model.SpendRecord, model.ImportSummary, error) {

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, model.ImportSummary{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SPEND_IMPORT.Code,
			Message:     errors2.INVALID_SPEND_IMPORT.Message,
			Description: "Uploaded file is not valid CSV",
		}, http.StatusBadRequest)
	}
	if len(rows) == 0 {
		return nil, model.ImportSummary{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_SPEND_IMPORT.Code,
			Message:     errors2.INVALID_SPEND_IMPORT.Message,
			Description: "Uploaded file is empty",
		}, http.StatusBadRequest)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range constants.SpendImportColumns {
		if _, found := cols[required]; !found {
			return nil, model.ImportSummary{}, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_SPEND_IMPORT.Code,
				Message:     errors2.INVALID_SPEND_IMPORT.Message,
				Description: fmt.Sprintf("Missing required column: %s", required),
			}, http.StatusBadRequest)
		}
	}

	now := time.Now().UTC().Unix()
	var records []model.SpendRecord
	summary := model.ImportSummary{}
	for i, row := range rows[1:] {
		record, rowErr := parseSpendRow(row, cols)
		if rowErr != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %s", i+2, rowErr))
			continue
		}
		record.RecordID = uuid.New().String()
		record.OrgHandle = orgHandle
		record.CreatedAt = now
		records = append(records, record)
		summary.Imported++
	}
	return records, summary, nil
}

func parseSpendRow(row []string, cols map[string]int) (model.SpendRecord, error) {

	field := func(name string) string {
		index, found := cols[name]
		if !found || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	supplier := field("supplier")
	category := field("category")
	if supplier == "" || category == "" {
		return model.SpendRecord{}, fmt.Errorf("missing supplier or category")
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil || amount < 0 {
		return model.SpendRecord{}, fmt.Errorf("invalid amount %q", field("amount"))
	}

	invoiceDate := field("invoice_date")
	if _, err := time.Parse(dateLayout, invoiceDate); err != nil {
		return model.SpendRecord{}, fmt.Errorf("invalid invoice_date %q", invoiceDate)
	}

	contractExpiry := field("contract_expiry")
	if contractExpiry != "" {
		if _, err := time.Parse(dateLayout, contractExpiry); err != nil {
			return model.SpendRecord{}, fmt.Errorf("invalid contract_expiry %q", contractExpiry)
		}
	}

	return model.SpendRecord{
		Supplier:       supplier,
		Category:       category,
		Amount:         amount,
		Currency:       field("currency"),
		InvoiceDate:    invoiceDate,
		ContractExpiry: contractExpiry,
	}, nil
}

// ComputeAggregates derives the spend totals from the raw records. The asOf
// time decides which contracts count as expired.
func ComputeAggregates(records []model.SpendRecord, asOf time.Time) model.SpendAggregates {

	aggregates := model.SpendAggregates{
		SupplierTotals:    make(map[string]float64),
		CategoryTotals:    make(map[string]float64),
		CategorySuppliers: make(map[string]map[string]bool),
		MonthlyTotals:     make(map[string]float64),
		RecordCount:       len(records),
	}

	for _, record := range records {
		aggregates.TotalSpend += record.Amount
		aggregates.SupplierTotals[record.Supplier] += record.Amount
		aggregates.CategoryTotals[record.Category] += record.Amount

		if aggregates.CategorySuppliers[record.Category] == nil {
			aggregates.CategorySuppliers[record.Category] = make(map[string]bool)
		}
		aggregates.CategorySuppliers[record.Category][record.Supplier] = true

		if invoiceDate, err := time.Parse(dateLayout, record.InvoiceDate); err == nil {
			aggregates.MonthlyTotals[invoiceDate.Format("2006-01")] += record.Amount
		}
		if record.ContractExpiry != "" {
			if expiry, err := time.Parse(dateLayout, record.ContractExpiry); err == nil && expiry.Before(asOf) {
				aggregates.ExpiredContractSpend += record.Amount
			}
		}
	}
	return aggregates
}
