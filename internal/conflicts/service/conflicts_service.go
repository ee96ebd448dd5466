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

package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wso2/procurement-analytics-service/internal/conflicts/model"
	"github.com/wso2/procurement-analytics-service/internal/resolution"
	"github.com/wso2/procurement-analytics-service/internal/system/config"
	errors2 "github.com/wso2/procurement-analytics-service/internal/system/errors"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
)

// matrixSnapshot pairs a loaded matrix with its load metadata. Snapshots are
// immutable; Reload swaps the whole snapshot atomically so in-flight analysis
// runs keep the matrix they started with.
type matrixSnapshot struct {
	matrix   *resolution.ConflictMatrix
	source   string
	loadedAt time.Time
}

type ConflictMatrixServiceInterface interface {
	CurrentMatrix() (*resolution.ConflictMatrix, error)
	GetConflictEntries() ([]model.ConflictEntry, error)
	GetConflictEntry(ruleID string) (model.ConflictEntry, error)
	Reload() (model.MatrixStatus, error)
	Status() (model.MatrixStatus, error)
}

// ConflictMatrixService is the default implementation of the
// ConflictMatrixServiceInterface.
type ConflictMatrixService struct {
	snapshot atomic.Pointer[matrixSnapshot]
}

var (
	instance *ConflictMatrixService
	once     sync.Once
)

// GetConflictMatrixService returns the shared conflict matrix service.
func GetConflictMatrixService() ConflictMatrixServiceInterface {

	once.Do(func() {
		instance = &ConflictMatrixService{}
	})
	return instance
}

// CurrentMatrix returns the loaded matrix, loading it from the configured
// source on first use.
func (cms *ConflictMatrixService) CurrentMatrix() (*resolution.ConflictMatrix, error) {

	if snap := cms.snapshot.Load(); snap != nil {
		return snap.matrix, nil
	}
	status, err := cms.Reload()
	if err != nil {
		return nil, err
	}
	logger := log.GetLogger()
	logger.Info("Conflict matrix loaded", log.String("source", status.Source),
		log.Int("relations", status.Relations))
	return cms.snapshot.Load().matrix, nil
}

// GetConflictEntries returns the declared conflicts of every rule in the matrix.
func (cms *ConflictMatrixService) GetConflictEntries() ([]model.ConflictEntry, error) {

	matrix, err := cms.CurrentMatrix()
	if err != nil {
		return nil, err
	}
	ruleIDs := matrix.RuleIDs()
	entries := make([]model.ConflictEntry, 0, len(ruleIDs))
	for _, ruleID := range ruleIDs {
		entries = append(entries, model.ConflictEntry{
			RuleID:    ruleID,
			Conflicts: matrix.ConflictsOf(ruleID),
		})
	}
	return entries, nil
}

// GetConflictEntry returns the declared conflicts of one rule. A rule without
// declared conflicts yields an entry with an empty conflict list.
func (cms *ConflictMatrixService) GetConflictEntry(ruleID string) (model.ConflictEntry, error) {

	matrix, err := cms.CurrentMatrix()
	if err != nil {
		return model.ConflictEntry{}, err
	}
	conflicts := matrix.ConflictsOf(ruleID)
	if conflicts == nil {
		conflicts = []resolution.ConflictRelation{}
	}
	return model.ConflictEntry{RuleID: ruleID, Conflicts: conflicts}, nil
}

// Reload loads the matrix from the configured source and swaps it in. On load
// failure the previous snapshot stays active.
func (cms *ConflictMatrixService) Reload() (model.MatrixStatus, error) {

	source := config.GetPASRuntime().Config.Rules.ConflictMatrixPath
	matrix, err := resolution.LoadConflictMatrixCSV(source)
	if err != nil {
		return model.MatrixStatus{}, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_CONFLICT_MATRIX.Code,
			Message:     errors2.LOAD_CONFLICT_MATRIX.Message,
			Description: fmt.Sprintf("Error while loading conflict matrix from %s", source),
		}, err)
	}

	snap := &matrixSnapshot{
		matrix:   matrix,
		source:   source,
		loadedAt: time.Now().UTC(),
	}
	cms.snapshot.Store(snap)
	return statusOf(snap), nil
}

// Status reports the load state of the current matrix.
func (cms *ConflictMatrixService) Status() (model.MatrixStatus, error) {

	if _, err := cms.CurrentMatrix(); err != nil {
		return model.MatrixStatus{}, err
	}
	return statusOf(cms.snapshot.Load()), nil
}

func statusOf(snap *matrixSnapshot) model.MatrixStatus {

	return model.MatrixStatus{
		Source:    snap.source,
		Relations: snap.matrix.Size(),
		Rules:     len(snap.matrix.RuleIDs()),
		LoadedAt:  snap.loadedAt.Unix(),
	}
}
