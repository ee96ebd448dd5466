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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/procurement-analytics-service/internal/system/config"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// ValidateAuthenticationAndReturnClaims validates a Bearer token and returns its claims.
func ValidateAuthenticationAndReturnClaims(token string) (map[string]interface{}, error) {

	logger := log.GetLogger()

	// Detect if token is JWT or opaque
	if strings.Count(token, ".") != 2 {
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError()
	}

	claims, err := ParseJWTClaims(token)
	if err != nil {
		return nil, unauthorizedError()
	}

	if !validateClaims(claims) {
		return nil, unauthorizedError()
	}

	return claims, nil
}

// ParseJWTClaims parses claims from a JWT without verifying the signature
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		errMsg := "Error occurred when parsing claims from JWT token."
		logger.Debug(errMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PARSING_ERROR.Code,
			Message:     errors2.PARSING_ERROR.Message,
			Description: errMsg,
		}, err)
		return nil, serverError
	}
	return claims, nil
}

// validateClaims checks the audience, issuer and expiry of the parsed claims
// against the configured authorization server.
func validateClaims(claims map[string]interface{}) bool {

	logger := log.GetLogger()
	authServer := config.GetPASRuntime().Config.AuthServer

	if aud, ok := claims["aud"].(string); ok && authServer.Audience != "" {
		if aud != authServer.Audience {
			logger.Debug("JWT token audience mismatch.")
			return false
		}
	}

	if iss, ok := claims["iss"].(string); ok && authServer.Issuer != "" {
		if iss != authServer.Issuer {
			logger.Debug("JWT token issuer mismatch.")
			return false
		}
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().UTC().Unix() >= int64(exp) {
			logger.Debug("JWT token has expired.")
			return false
		}
	}

	return true
}

// GetUserIDFromRequest extracts the subject claim from the request's Bearer token.
// Returns an empty string if the token is missing or unparsable.
func GetUserIDFromRequest(r *http.Request) string {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ParseJWTClaims(token)
	if err != nil {
		return ""
	}

	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: "Token validation failed",
	}, http.StatusUnauthorized)
}
