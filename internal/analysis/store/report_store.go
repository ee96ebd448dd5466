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

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/procurement-analytics-service/internal/analysis/model"
	"github.com/wso2/procurement-analytics-service/internal/system/database/mongo"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

const reportCollection = "analysis_reports"
const storeTimeout = 10 * time.Second

// SaveReport archives an analysis report in the document store.
func SaveReport(report model.AnalysisReport) error {

	logger := log.GetLogger()
	collection, err := mongo.Collection(reportCollection)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get document store collection for saving report: %s", report.ReportID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MONGO_CLIENT_INIT.Code,
			Message:     errors2.MONGO_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, report); err != nil {
		errorMsg := fmt.Sprintf("Error occurred while saving analysis report: %s", report.ReportID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SAVE_ANALYSIS_REPORT.Code,
			Message:     errors2.SAVE_ANALYSIS_REPORT.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Analysis report : %s archived successfully", report.ReportID))
	return nil
}

// GetReports fetches the most recent analysis reports of an organization.
func GetReports(orgHandle string, limit int) ([]model.AnalysisReport, error) {

	logger := log.GetLogger()
	collection, err := mongo.Collection(reportCollection)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get document store collection for fetching reports for organization: %s",
			orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MONGO_CLIENT_INIT.Code,
			Message:     errors2.MONGO_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := collection.Find(ctx, bson.M{"org_handle": orgHandle}, findOptions)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in fetching analysis reports for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ANALYSIS_REPORT.Code,
			Message:     errors2.FETCH_ANALYSIS_REPORT.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var reports []model.AnalysisReport
	if err := cursor.All(ctx, &reports); err != nil {
		errorMsg := fmt.Sprintf("Failed in decoding analysis reports for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ANALYSIS_REPORT.Code,
			Message:     errors2.FETCH_ANALYSIS_REPORT.Message,
			Description: errorMsg,
		}, err)
	}
	return reports, nil
}

// GetReport fetches a specific analysis report by its id. A missing report is
// reported as a nil report, not an error.
func GetReport(reportID string) (*model.AnalysisReport, error) {

	logger := log.GetLogger()
	collection, err := mongo.Collection(reportCollection)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get document store collection for fetching report: %s", reportID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MONGO_CLIENT_INIT.Code,
			Message:     errors2.MONGO_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var report model.AnalysisReport
	err = collection.FindOne(ctx, bson.M{"report_id": reportID}).Decode(&report)
	if err != nil {
		if err == mongodriver.ErrNoDocuments {
			return nil, nil
		}
		errorMsg := fmt.Sprintf("Failed in fetching analysis report: %s", reportID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ANALYSIS_REPORT.Code,
			Message:     errors2.FETCH_ANALYSIS_REPORT.Message,
			Description: errorMsg,
		}, err)
	}
	return &report, nil
}
