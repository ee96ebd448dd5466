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

package security

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/system/authn"
	"github.com/wso2/procurement-analytics-service/internal/system/authz"
	"github.com/wso2/procurement-analytics-service/internal/system/config"
	"github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// AuthnWithAdminCredentials performs authentication using admin credentials from the request.
func AuthnWithAdminCredentials(r *http.Request) error {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Basic ") {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Basic "))

	isValidAdmin, err := validateAdminCredentials(token)
	if err != nil || !isValidAdmin {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	return nil
}

func validateAdminCredentials(token string) (bool, error) {

	authServerConfig := config.GetPASRuntime().Config.AuthServer
	username := strings.TrimSpace(authServerConfig.AdminUsername)
	password := strings.TrimSpace(authServerConfig.AdminPassword)
	if username == "" || password == "" || token == "" {
		return false, nil
	}

	creds := username + ":" + password
	expected := base64.StdEncoding.EncodeToString([]byte(creds))

	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
		log.GetLogger().Debug("Admin credentials validated successfully.")
		return true, nil
	}

	return false, nil
}

// AuthnAndAuthz performs authentication and authorization for the given HTTP request and operation.
func AuthnAndAuthz(r *http.Request, operation string) error {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") || authHeader == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
		return clientError
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := authn.ValidateAuthenticationAndReturnClaims(token)
	if err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Token validation failed",
		}, http.StatusUnauthorized)
		return clientError
	}

	scopeStr, _ := claims["scope"].(string)
	if !authz.ValidatePermission(scopeStr, operation) {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: "Operation " + operation + " is not permitted for the granted scopes",
		}, http.StatusForbidden)
	}

	return nil
}
