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

package config

import "sync"

// PASRuntime holds the runtime configuration for the procurement analytics server.
type PASRuntime struct {
	PASHome string `yaml:"pas_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *PASRuntime
	once          sync.Once
)

// InitializePASRuntime initializes the PASRuntime configuration.
func InitializePASRuntime(pasHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &PASRuntime{
			PASHome: pasHome,
			Config:  *config,
		}
	})

	return nil
}

// GetPASRuntime returns the PASRuntime configuration.
func GetPASRuntime() *PASRuntime {

	if runtimeConfig == nil {
		panic("PASRuntime is not initialized")
	}
	return runtimeConfig
}
