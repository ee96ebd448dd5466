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

package authz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/system/config"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// ValidatePermission checks if the provided scopes match the expected scopes for an operation
func ValidatePermission(scopeStr string, operation string) bool {

	logger := log.GetLogger()
	if scopeStr == "" {
		logger.Debug(fmt.Sprintf("No scopes provided for operation: %s", operation))
		return false
	}

	requiredScopes := config.GetPASRuntime().Config.AuthServer.RequiredScopes
	if requiredScopes == nil {
		logger.Debug(fmt.Sprintf("No scopes configured for operation: %s", operation))
		return false
	}

	grantedScopes := strings.Split(scopeStr, " ")
	expectedScopes, found := requiredScopes[operation]
	if !found {
		return false
	}

	// Any one of the configured scopes grants the operation.
	for _, expected := range expectedScopes {
		if slices.Contains(grantedScopes, expected) {
			return true
		}
	}

	logger.Debug(fmt.Sprintf("Granted scopes do not permit operation: %s", operation))
	return false
}
