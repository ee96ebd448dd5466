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
	"github.com/wso2/procurement-analytics-service/internal/spend/service"
)

// SpendProviderInterface defines the interface for the spend record provider.
type SpendProviderInterface interface {
	GetSpendService() service.SpendServiceInterface
}

// SpendProvider is the default implementation of the SpendProviderInterface.
type SpendProvider struct{}

// NewSpendProvider creates a new instance of SpendProvider.
func NewSpendProvider() SpendProviderInterface {

	return &SpendProvider{}
}

// GetSpendService returns the spend record service instance.
func (sp *SpendProvider) GetSpendService() service.SpendServiceInterface {

	return service.GetSpendService()
}
