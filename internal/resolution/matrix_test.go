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

package resolution

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConflictMatrix_Basic(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")

	relations := matrix.ConflictsOf("R001")
	require.Len(t, relations, 1)
	assert.Equal(t, "R003", relations[0].ConflictsWith)
	assert.Equal(t, "resource_contention", relations[0].ConflictType)
	assert.Equal(t, "Diversify jointly", relations[0].ResolutionStrategy)
	assert.Equal(t, "R001 first", relations[0].PriorityOrder)
}

func TestParseConflictMatrix_PipeDelimitedPartners(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003|R005|R007,resource_contention,Coordinate,R001 first\n")

	relations := matrix.ConflictsOf("R001")
	require.Len(t, relations, 3)
	assert.Equal(t, "R003", relations[0].ConflictsWith)
	assert.Equal(t, "R005", relations[1].ConflictsWith)
	assert.Equal(t, "R007", relations[2].ConflictsWith)
}

func TestParseConflictMatrix_Symmetrized(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")

	reverse := matrix.ConflictsOf("R003")
	require.Len(t, reverse, 1)
	assert.Equal(t, "R001", reverse[0].ConflictsWith)
	assert.Equal(t, "Diversify jointly", reverse[0].ResolutionStrategy)
}

func TestParseConflictMatrix_MalformedRowsSkipped(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		",R003,resource_contention,Strategy,Order\n"+
		"R002,,resource_contention,Strategy,Order\n"+
		"R004,R005,contradictory_remediation,Keep this one,R004 first\n")

	assert.Empty(t, matrix.ConflictsOf("R002"))
	assert.Empty(t, matrix.ConflictsOf("R003"))
	require.Len(t, matrix.ConflictsOf("R004"), 1)
}

func TestParseConflictMatrix_SelfConflictIgnored(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R001,resource_contention,Strategy,Order\n")

	assert.Empty(t, matrix.ConflictsOf("R001"))
}

func TestParseConflictMatrix_DuplicatePairCollapses(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,First declaration,R001 first\n"+
		"R003,R001,resource_contention,Second declaration,R003 first\n")

	require.Len(t, matrix.ConflictsOf("R001"), 1)
	require.Len(t, matrix.ConflictsOf("R003"), 1)
	// First declaration wins for both directions.
	assert.Equal(t, "First declaration", matrix.ConflictsOf("R001")[0].ResolutionStrategy)
}

func TestParseConflictMatrix_EmptySource(t *testing.T) {
	matrix, err := ParseConflictMatrixCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, matrix.Size())
	assert.Empty(t, matrix.ConflictsOf("R001"))
}

func TestRelation_Lookup(t *testing.T) {
	matrix := matrixFromCSV(t, matrixHeader+
		"R001,R003,resource_contention,Diversify jointly,R001 first\n")

	rel, found := matrix.Relation("R001", "R003")
	require.True(t, found)
	assert.Equal(t, "Diversify jointly", rel.ResolutionStrategy)

	_, found = matrix.Relation("R001", "R999")
	assert.False(t, found)
}

func TestLoadConflictMatrixCSV_MissingFileDegradesToEmpty(t *testing.T) {
	matrix, err := LoadConflictMatrixCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, matrix.Size())
}

func TestLoadConflictMatrixCSV_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.csv")
	content := matrixHeader + "R001,R003,resource_contention,Diversify jointly,R001 first\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	matrix, err := LoadConflictMatrixCSV(path)
	require.NoError(t, err)
	require.Len(t, matrix.ConflictsOf("R001"), 1)
}
