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

package scripts

var InsertRule = map[string]string{
	"postgres": `INSERT INTO business_rules
	(rule_id, org_handle, rule_name, category, description, action_required, severity, threshold, priority, is_active,
	 created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
}

var GetRules = map[string]string{
	"postgres": `SELECT rule_id, rule_name, category, description, action_required, severity, threshold, priority,
       is_active, created_at, updated_at FROM business_rules WHERE org_handle = $1 ORDER BY priority ASC`,
}

var GetActiveRules = map[string]string{
	"postgres": `SELECT rule_id, rule_name, category, description, action_required, severity, threshold, priority,
       is_active, created_at, updated_at FROM business_rules WHERE org_handle = $1 AND is_active = true
       ORDER BY priority ASC`,
}

var GetRuleById = map[string]string{
	"postgres": `SELECT rule_id, rule_name, category, description, action_required, severity, threshold, priority,
       is_active, created_at, updated_at FROM business_rules WHERE rule_id = $1 LIMIT 1`,
}

var GetRuleByName = map[string]string{
	"postgres": `SELECT rule_id, rule_name, category, description, action_required, severity, threshold, priority,
       is_active, created_at, updated_at FROM business_rules WHERE org_handle = $1 AND rule_name = $2 LIMIT 1`,
}

var DeleteRule = map[string]string{
	"postgres": `DELETE FROM business_rules WHERE rule_id = $1`,
}

var InsertSpendRecord = map[string]string{
	"postgres": `INSERT INTO spend_records
	(record_id, org_handle, supplier, category, amount, currency, invoice_date, contract_expiry, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
}

var GetSpendRecords = map[string]string{
	"postgres": `SELECT record_id, supplier, category, amount, currency, invoice_date, contract_expiry, created_at
	FROM spend_records WHERE org_handle = $1 ORDER BY invoice_date DESC LIMIT $2`,
}

var GetAllSpendRecords = map[string]string{
	"postgres": `SELECT record_id, supplier, category, amount, currency, invoice_date, contract_expiry, created_at
	FROM spend_records WHERE org_handle = $1`,
}

var CountSpendRecords = map[string]string{
	"postgres": `SELECT COUNT(*) AS total FROM spend_records WHERE org_handle = $1`,
}

var DeleteSpendRecordsForOrg = map[string]string{
	"postgres": `DELETE FROM spend_records WHERE org_handle = $1`,
}
