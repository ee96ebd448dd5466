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

package model

// SpendRecord is one line of procurement spend. Dates are kept in ISO
// YYYY-MM-DD form as imported; ContractExpiry may be empty.
type SpendRecord struct {
	RecordID       string  `json:"record_id"`
	OrgHandle      string  `json:"org_handle"`
	Supplier       string  `json:"supplier"`
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	InvoiceDate    string  `json:"invoice_date"`
	ContractExpiry string  `json:"contract_expiry,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

// ImportSummary reports the outcome of a spend file import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// SpendAggregates holds the totals rule evaluation runs against. All totals
// cover one organization's spend records.
type SpendAggregates struct {
	TotalSpend           float64
	SupplierTotals       map[string]float64
	CategoryTotals       map[string]float64
	CategorySuppliers    map[string]map[string]bool
	ExpiredContractSpend float64
	MonthlyTotals        map[string]float64
	RecordCount          int
}
