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

package workers

import (
	"fmt"

	"github.com/wso2/procurement-analytics-service/internal/analysis/provider"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// AnalysisQueue holds org handles waiting for a background analysis run.
// Spend imports enqueue their organization so a fresh report is ready shortly
// after new data lands.
var AnalysisQueue chan string

func StartAnalysisWorker() {

	AnalysisQueue = make(chan string, constants.DefaultQueueSize)

	go func() {
		for orgHandle := range AnalysisQueue {
			runAnalysis(orgHandle)
		}
	}()
}

// EnqueueAnalysisRun schedules a background analysis for an organization. The
// request is dropped when the queue is full; the next import or an on-demand
// run covers it.
func EnqueueAnalysisRun(orgHandle string) {
	if AnalysisQueue == nil {
		return
	}
	select {
	case AnalysisQueue <- orgHandle:
	default:
		log.GetLogger().Warn(fmt.Sprintf("Analysis queue full, dropping run for organization: %s", orgHandle))
	}
}

func runAnalysis(orgHandle string) {

	logger := log.GetLogger()
	analysisService := provider.NewAnalysisProvider().GetAnalysisService()
	report, err := analysisService.RunAnalysis(orgHandle)
	if err != nil {
		logger.Error(fmt.Sprintf("Background analysis failed for organization: %s", orgHandle), log.Error(err))
		return
	}
	logger.Info(fmt.Sprintf("Background analysis completed for organization: %s, report: %s",
		orgHandle, report.ReportID))
}
