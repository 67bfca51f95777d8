/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package main

import (
	"flag"
	"fmt"
	"os"

	"monzo-webhooks-go/internal/common"
	"monzo-webhooks-go/internal/config"
	"monzo-webhooks-go/internal/fixtures"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func printResults(results []fixtures.Result) {
	for i, r := range results {
		isLast := i == len(results)-1
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Printf("%s[%s] %-28s %s\n", common.BoxPrefix(isLast), status, r.Name, r.Kind)
		fmt.Printf("%s      %s\n", common.BoxDetailPrefix(isLast), r.Detail)
	}
}

func main() {
	manifestFlag := flag.String("manifest", "", "Fixture manifest to verify (default: FIXTURES_MANIFEST, or the built-in examples)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	baseLogger, loggerCleanup := common.InitializeLogger(cfg.Logging)
	defer loggerCleanup()

	logger := baseLogger.With(zap.String("run_id", uuid.New().String()))

	manifestFile := cfg.Fixtures.ManifestFile
	if *manifestFlag != "" {
		manifestFile = *manifestFlag
	}

	verifier := fixtures.NewVerifier(logger)

	var (
		title   string
		results []fixtures.Result
	)
	if manifestFile == "" {
		logger.Info("Verifying built-in example payloads")
		title = "BUILT-IN EXAMPLES"
		results = verifier.VerifyExamples()
	} else {
		logger.Info("Verifying fixture manifest", zap.String("manifest", manifestFile))
		loaded, err := fixtures.LoadManifest(manifestFile)
		if err != nil {
			logger.Fatal("Failed to load fixture manifest", zap.Error(err))
		}
		title = "FIXTURES: " + manifestFile
		results = verifier.VerifyFixtures(loaded)
	}

	common.PrintHeader(os.Stdout, title, common.DefaultWidth)
	printResults(results)

	failed := fixtures.Failed(results)
	summary := fmt.Sprintf("SUMMARY: %d passed, %d failed", len(results)-failed, failed)
	common.PrintFooter(os.Stdout, summary, common.DefaultWidth)

	logger.Info("Verification completed",
		zap.Int("total", len(results)),
		zap.Int("failed", failed))

	if failed > 0 {
		loggerCleanup()
		os.Exit(1)
	}
}
