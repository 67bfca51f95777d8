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
	"io"
	"os"
	"strings"

	"monzo-webhooks-go/internal/common"
	"monzo-webhooks-go/internal/config"
	"monzo-webhooks-go/pkg/monzo"

	"go.uber.org/zap"
)

func readPayload(file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func logEventSummary(logger *zap.Logger, event monzo.WebhookEvent) {
	tx, ok := event.TransactionCreated()
	if !ok {
		logger.Info("Decoded webhook event", zap.String("type", event.Type()))
		return
	}

	fields := []zap.Field{
		zap.String("type", event.Type()),
		zap.String("transaction_id", tx.ID),
		zap.String("account_id", tx.AccountID),
		zap.Int64("amount_minor", tx.Amount),
		zap.Bool("debit", tx.IsDebit()),
		zap.String("merchant", tx.Merchant.Name),
		zap.String("emoji", tx.Merchant.Emoji.String()),
	}

	amount, err := tx.MajorAmount()
	if err != nil {
		logger.Warn("Unable to convert amount to major units", zap.String("currency", tx.Currency), zap.Error(err))
	} else {
		scale, _ := monzo.MinorUnitScale(tx.Currency)
		fields = append(fields, zap.String("amount", common.FormatMoney(amount, scale, tx.Currency)))
	}

	logger.Info("Decoded webhook event", fields...)
}

func main() {
	kindFlag := flag.String("kind", "event", "Payload kind: "+strings.Join(common.Kinds(), ", "))
	fileFlag := flag.String("file", "", "Payload file to decode (default: stdin)")
	formatFlag := flag.String("format", "", "Output format, json or yaml (default: OUTPUT_FORMAT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, loggerCleanup := common.InitializeLogger(cfg.Logging)
	defer loggerCleanup()

	format := cfg.Output.Format
	if *formatFlag != "" {
		format, err = config.ParseFormat(*formatFlag)
		if err != nil {
			logger.Fatal("Invalid output format", zap.Error(err))
		}
	}

	payload, err := readPayload(*fileFlag)
	if err != nil {
		logger.Fatal("Failed to read payload", zap.String("file", *fileFlag), zap.Error(err))
	}

	decoded, err := common.DecodeKind(*kindFlag, payload)
	if err != nil {
		logger.Error("Payload rejected", zap.String("kind", *kindFlag), zap.Error(err))
		loggerCleanup()
		os.Exit(1)
	}

	if event, ok := decoded.(monzo.WebhookEvent); ok {
		logEventSummary(logger, event)
	}

	encoded, err := common.EncodeKind(*kindFlag, decoded)
	if err != nil {
		logger.Fatal("Failed to encode payload", zap.Error(err))
	}

	out, err := common.Render(encoded, format, cfg.Output.Indent)
	if err != nil {
		logger.Fatal("Failed to render payload", zap.String("format", format), zap.Error(err))
	}

	fmt.Println(strings.TrimRight(string(out), "\n"))
}
