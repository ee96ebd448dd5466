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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type AuthServerConfig struct {
	Issuer         string              `yaml:"issuer"`
	Audience       string              `yaml:"audience"`
	AdminUsername  string              `yaml:"admin_username"`
	AdminPassword  string              `yaml:"admin_password"`
	RequiredScopes map[string][]string `yaml:"required_scopes"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RulesConfig holds the file-backed rule configuration sources.
type RulesConfig struct {
	ConflictMatrixPath  string `yaml:"conflict_matrix_path"`
	MatrixReloadMinutes int    `yaml:"matrix_reload_minutes"`
	DefaultPriority     int    `yaml:"default_priority"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	AuthServer AuthServerConfig `yaml:"auth_server"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Mongo      MongoConfig      `yaml:"mongodb"`
	Rules      RulesConfig      `yaml:"rules"`
}
