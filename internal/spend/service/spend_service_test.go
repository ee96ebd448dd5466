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
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/procurement-analytics-service/internal/spend/model"
	"github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// ParseSpendCSV
// ---------------------------------------------------------------------------

func TestParseSpendCSV_ValidRows(t *testing.T) {
	csvData := `supplier,category,amount,currency,invoice_date,contract_expiry
Acme Corp,IT Hardware,1200.50,USD,2026-01-15,2026-12-31
Beta Ltd,Logistics,800,USD,2026-02-01,
`
	records, summary, err := ParseSpendCSV(strings.NewReader(csvData), "org1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Skipped)

	assert.Equal(t, "Acme Corp", records[0].Supplier)
	assert.Equal(t, "IT Hardware", records[0].Category)
	assert.Equal(t, 1200.50, records[0].Amount)
	assert.Equal(t, "org1", records[0].OrgHandle)
	assert.NotEmpty(t, records[0].RecordID)
	assert.Empty(t, records[1].ContractExpiry)
}

func TestParseSpendCSV_BadRowsSkippedNotFatal(t *testing.T) {
	csvData := `supplier,category,amount,invoice_date
Acme Corp,IT Hardware,1200.50,2026-01-15
,Logistics,800,2026-02-01
Beta Ltd,Logistics,not-a-number,2026-02-01
Gamma Inc,Facilities,500,01/02/2026
Delta Co,Travel,250,2026-03-10
`
	records, summary, err := ParseSpendCSV(strings.NewReader(csvData), "org1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 3, summary.Skipped)
	assert.Len(t, summary.Errors, 3)
}

func TestParseSpendCSV_MissingRequiredColumn_Rejected(t *testing.T) {
	csvData := `supplier,amount,invoice_date
Acme Corp,1200.50,2026-01-15
`
	_, _, err := ParseSpendCSV(strings.NewReader(csvData), "org1")
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors.INVALID_SPEND_IMPORT.Code, clientErr.Code)
}

func TestParseSpendCSV_NegativeAmount_Skipped(t *testing.T) {
	csvData := `supplier,category,amount,invoice_date
Acme Corp,IT Hardware,-100,2026-01-15
`
	records, summary, err := ParseSpendCSV(strings.NewReader(csvData), "org1")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, summary.Skipped)
}

// ---------------------------------------------------------------------------
// ComputeAggregates
// ---------------------------------------------------------------------------

func TestComputeAggregates_Totals(t *testing.T) {
	records := []model.SpendRecord{
		{Supplier: "Acme Corp", Category: "IT Hardware", Amount: 1000, InvoiceDate: "2026-01-15"},
		{Supplier: "Acme Corp", Category: "Logistics", Amount: 500, InvoiceDate: "2026-01-20"},
		{Supplier: "Beta Ltd", Category: "IT Hardware", Amount: 300, InvoiceDate: "2026-02-01"},
	}
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	aggregates := ComputeAggregates(records, asOf)

	assert.Equal(t, 1800.0, aggregates.TotalSpend)
	assert.Equal(t, 1500.0, aggregates.SupplierTotals["Acme Corp"])
	assert.Equal(t, 1300.0, aggregates.CategoryTotals["IT Hardware"])
	assert.Len(t, aggregates.CategorySuppliers["IT Hardware"], 2)
	assert.Len(t, aggregates.CategorySuppliers["Logistics"], 1)
	assert.Equal(t, 1500.0, aggregates.MonthlyTotals["2026-01"])
	assert.Equal(t, 300.0, aggregates.MonthlyTotals["2026-02"])
	assert.Equal(t, 3, aggregates.RecordCount)
}

func TestComputeAggregates_ExpiredContractSpend(t *testing.T) {
	records := []model.SpendRecord{
		{Supplier: "Acme Corp", Category: "IT", Amount: 1000, InvoiceDate: "2026-01-15", ContractExpiry: "2026-02-01"},
		{Supplier: "Beta Ltd", Category: "IT", Amount: 400, InvoiceDate: "2026-01-20", ContractExpiry: "2026-12-31"},
		{Supplier: "Gamma Inc", Category: "IT", Amount: 200, InvoiceDate: "2026-01-25"},
	}
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	aggregates := ComputeAggregates(records, asOf)

	assert.Equal(t, 1000.0, aggregates.ExpiredContractSpend)
}

func TestComputeAggregates_Empty(t *testing.T) {
	aggregates := ComputeAggregates(nil, time.Now().UTC())

	assert.Zero(t, aggregates.TotalSpend)
	assert.Zero(t, aggregates.RecordCount)
	assert.Empty(t, aggregates.SupplierTotals)
}
