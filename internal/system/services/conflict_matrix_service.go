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

package services

import (
	"net/http"
	"strings"

	"github.com/wso2/procurement-analytics-service/internal/conflicts/handler"
)

type ConflictMatrixService struct {
	conflictsHandler *handler.ConflictsHandler
}

func NewConflictMatrixService() *ConflictMatrixService {
	return &ConflictMatrixService{
		conflictsHandler: handler.NewConflictsHandler(),
	}
}

// Route handles all conflict matrix endpoints.
func (s *ConflictMatrixService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodGet && path == "/conflict-matrix":
		s.conflictsHandler.GetConflictMatrix(w, r)

	case method == http.MethodGet && path == "/conflict-matrix/status":
		s.conflictsHandler.GetMatrixStatus(w, r)

	case method == http.MethodPost && path == "/conflict-matrix/reload":
		s.conflictsHandler.ReloadConflictMatrix(w, r)

	case method == http.MethodGet && strings.HasPrefix(path, "/conflict-matrix/"):
		r.SetPathValue("ruleId", strings.TrimPrefix(path, "/conflict-matrix/"))
		s.conflictsHandler.GetConflictEntry(w, r)

	default:
		http.NotFound(w, r)
	}
}
