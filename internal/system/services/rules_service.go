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

	"github.com/wso2/procurement-analytics-service/internal/rules/handler"
)

type RulesService struct {
	rulesHandler *handler.RulesHandler
}

func NewRulesService() *RulesService {
	return &RulesService{
		rulesHandler: handler.NewRulesHandler(),
	}
}

// Route handles all org-aware business rule endpoints.
func (s *RulesService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/rules":
		s.rulesHandler.AddRule(w, r)

	case method == http.MethodGet && path == "/rules":
		s.rulesHandler.GetRules(w, r)

	case method == http.MethodGet && strings.HasPrefix(path, "/rules/"):
		r.SetPathValue("ruleId", strings.TrimPrefix(path, "/rules/"))
		s.rulesHandler.GetRule(w, r)

	case method == http.MethodPatch && strings.HasPrefix(path, "/rules/"):
		r.SetPathValue("ruleId", strings.TrimPrefix(path, "/rules/"))
		s.rulesHandler.PatchRule(w, r)

	case method == http.MethodDelete && strings.HasPrefix(path, "/rules/"):
		r.SetPathValue("ruleId", strings.TrimPrefix(path, "/rules/"))
		s.rulesHandler.DeleteRule(w, r)

	default:
		http.NotFound(w, r)
	}
}
