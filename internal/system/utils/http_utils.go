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

package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	customerrors "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
		})
		return
	}

	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		logger := log.GetLogger()
		logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "Internal server error",
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteErrorResponse writes a client error with its configured status code.
func WriteErrorResponse(w http.ResponseWriter, err *customerrors.ClientError) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)

	_ = json.NewEncoder(w).Encode(err.ErrorMessage)
}

// RespondJSON writes a JSON response with the given status code. When a resource
// name and identifier are supplied, a Location header is set on 201 responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}, resource string) {

	w.Header().Set("Content-Type", "application/json")
	if statusCode == http.StatusCreated && resource != "" {
		w.Header().Set("Location", constants.ApiBasePath+"/"+resource)
	}
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// ExtractOrgHandleFromPath returns the organization handle placed in the request
// context by the org dispatcher.
func ExtractOrgHandleFromPath(r *http.Request) string {
	org, _ := r.Context().Value(constants.OrgContextKey).(string)
	return org
}

// RewriteToDefaultOrg rewrites `/api/v1/...` to `/o/{defaultOrg}/api/v1/...`
func RewriteToDefaultOrg(apiBasePath string, mux *http.ServeMux, defaultOrg string) {
	mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		newPath := "/o/" + defaultOrg + r.URL.Path
		http.Redirect(w, r, newPath, http.StatusTemporaryRedirect)
	})
}

// MountOrgDispatcher mounts the org-scoped dispatcher. Paths have the form
// /o/{org}/api/v1/... and are stripped down to the feature-relative path before
// being handed to the service router.
func MountOrgDispatcher(mux *http.ServeMux, apiBasePath string, handlerFunc http.HandlerFunc) {
	mux.HandleFunc("/o/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		if !strings.HasPrefix(path, "/o/") {
			http.NotFound(w, r)
			return
		}

		// Split: /o/{org}/api/v1/...
		parts := strings.SplitN(path[len("/o/"):], "/", 2)
		if len(parts) != 2 {
			http.Error(w, "Invalid org path format", http.StatusBadRequest)
			return
		}

		orgHandle := parts[0]
		remainingPath := "/" + parts[1]

		if !strings.HasPrefix(remainingPath, apiBasePath) {
			http.Error(w, "Path must start with "+apiBasePath, http.StatusNotFound)
			return
		}

		relativePath := strings.TrimPrefix(remainingPath, apiBasePath)

		ctx := context.WithValue(r.Context(), constants.OrgContextKey, orgHandle)
		r = r.WithContext(ctx)
		r.URL.Path = relativePath

		handlerFunc(w, r)
	})
}
