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

package mongo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/procurement-analytics-service/internal/system/config"
)

var (
	mongoClient *mongo.Client
	connectErr  error
	once        sync.Once
)

// GetMongoClient returns a shared client for the configured document store.
// The connection is established once per process.
func GetMongoClient() (*mongo.Client, error) {

	once.Do(func() {
		uri := config.GetPASRuntime().Config.Mongo.URI

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoClient, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if connectErr != nil {
			return
		}
		connectErr = mongoClient.Ping(ctx, nil)
	})

	return mongoClient, connectErr
}

// Collection returns a handle to the named collection in the configured database.
func Collection(name string) (*mongo.Collection, error) {

	client, err := GetMongoClient()
	if err != nil {
		return nil, err
	}

	dbName := config.GetPASRuntime().Config.Mongo.Database
	return client.Database(dbName).Collection(name), nil
}
