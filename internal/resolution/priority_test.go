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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityOf_KnownRule(t *testing.T) {
	table := NewPriorityTable(map[string]int{"R001": 3, "HC001": 7})

	assert.Equal(t, 3, table.PriorityOf("R001"))
	assert.Equal(t, 7, table.PriorityOf("HC001"))
}

func TestPriorityOf_UnrankedRuleGetsSentinel(t *testing.T) {
	table := NewPriorityTable(map[string]int{"R001": 3})

	assert.Equal(t, UnrankedPriority, table.PriorityOf("R999"))
	assert.False(t, table.Has("R999"))
	assert.True(t, table.Has("R001"))
}

func TestNewPriorityTable_CopiesInput(t *testing.T) {
	ranks := map[string]int{"R001": 3}
	table := NewPriorityTable(ranks)

	ranks["R001"] = 50
	assert.Equal(t, 3, table.PriorityOf("R001"))
}

func TestPriorityTable_Size(t *testing.T) {
	assert.Equal(t, 0, NewPriorityTable(nil).Size())
	assert.Equal(t, 2, NewPriorityTable(map[string]int{"a": 1, "b": 2}).Size())
}
