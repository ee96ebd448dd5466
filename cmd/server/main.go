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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/wso2/procurement-analytics-service/internal/system/config"
	"github.com/wso2/procurement-analytics-service/internal/system/constants"
	pascontext "github.com/wso2/procurement-analytics-service/internal/system/context"
	"github.com/wso2/procurement-analytics-service/internal/system/log"
	"github.com/wso2/procurement-analytics-service/internal/system/managers"
	"github.com/wso2/procurement-analytics-service/internal/system/schedulers"
	"github.com/wso2/procurement-analytics-service/internal/system/workers"
)

const configFile = "/repository/conf/deployment.yaml"

func main() {
	pasHome := getPASHome()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	pasConfig, err := config.LoadConfig(pasHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializePASRuntime(pasHome, pasConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := log.Init(pasConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Background analysis queue.
	workers.StartAnalysisWorker()

	// Periodic conflict matrix refresh.
	reloadMinutes := pasConfig.Rules.MatrixReloadMinutes
	if reloadMinutes <= 0 {
		reloadMinutes = 15
	}
	go schedulers.StartMatrixReloadScheduler(time.Duration(reloadMinutes) * time.Minute)

	serverAddr := fmt.Sprintf("%s:%d", pasConfig.Addr.Host, pasConfig.Addr.Port)
	handler := enableCORS(withTraceID(initMultiplexer()))

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}
	logger.Info("Procurement analytics service started", log.String("address", serverAddr))

	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}
	return mux
}

// withTraceID attaches a trace id to every request context.
func withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := pascontext.GetOrGenerateTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(pascontext.WithTraceID(r.Context(), traceID)))
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getPASHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("pasHome", "", "Path to procurement analytics service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}
	return projectHome
}
