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

package schedulers

import (
	"fmt"
	"time"

	"github.com/wso2/procurement-analytics-service/internal/conflicts/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// StartMatrixReloadScheduler refreshes the conflict matrix from its configured
// source on a fixed interval, so edits to the matrix file are picked up
// without a restart.
func StartMatrixReloadScheduler(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Load once at startup
	reloadMatrix()

	for range ticker.C {
		reloadMatrix()
	}
}

func reloadMatrix() {
	logger := log.GetLogger()

	matrixService := provider.NewConflictMatrixProvider().GetConflictMatrixService()
	status, err := matrixService.Reload()
	if err != nil {
		logger.Error("Failed to reload conflict matrix", log.Error(err))
		return
	}
	logger.Info(fmt.Sprintf("Conflict matrix reloaded from %s with %d relations",
		status.Source, status.Relations))
}
