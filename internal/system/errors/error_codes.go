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

package errors

const errorPrefix = "PAS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while initializing the database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while executing the database query.",
	}

	ADD_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while adding business rule.",
	}

	FETCH_RULES = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching business rule(s).",
	}

	UPDATE_RULE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while updating business rule.",
	}

	DELETE_RULE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while deleting business rule.",
	}

	LOAD_CONFLICT_MATRIX = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while loading the rule conflict matrix.",
	}

	IMPORT_SPEND_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while importing spend records.",
	}

	FETCH_SPEND_RECORDS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching spend records.",
	}

	RUN_ANALYSIS = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while running procurement analysis.",
	}

	SAVE_ANALYSIS_REPORT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while persisting analysis report.",
	}

	FETCH_ANALYSIS_REPORT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching analysis report(s).",
	}

	MONGO_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while initializing the document store client.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while parsing the authentication token.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Unauthorized request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Insufficient permissions for the requested operation.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Business rule not found.",
	}

	RULE_ALREADY_EXISTS = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Business rule already exists.",
	}

	INVALID_RULE_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Invalid rule category.",
	}

	INVALID_PATCH_FIELD = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Field cannot be updated.",
	}

	INVALID_SPEND_IMPORT = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Spend record import file is invalid.",
	}

	ANALYSIS_REPORT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Analysis report not found.",
	}

	CONFLICT_MATRIX_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Conflict matrix source is unavailable.",
	}
)
