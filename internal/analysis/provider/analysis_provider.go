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

package provider

import (
	"github.com/wso2/procurement-analytics-service/internal/analysis/service"
)

// AnalysisProviderInterface defines the interface for the analysis provider.
type AnalysisProviderInterface interface {
	GetAnalysisService() service.AnalysisServiceInterface
}

// AnalysisProvider is the default implementation of the AnalysisProviderInterface.
type AnalysisProvider struct{}

// NewAnalysisProvider creates a new instance of AnalysisProvider.
func NewAnalysisProvider() AnalysisProviderInterface {

	return &AnalysisProvider{}
}

// GetAnalysisService returns the analysis service instance.
func (ap *AnalysisProvider) GetAnalysisService() service.AnalysisServiceInterface {

	return service.GetAnalysisService()
}
