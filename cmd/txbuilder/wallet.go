// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/txassembler/config"
	"github.com/ava-labs/txassembler/utils/logging"
	"github.com/ava-labs/txassembler/vms/platformvm/metrics"
	"github.com/ava-labs/txassembler/wallet/chain/p"
	"github.com/ava-labs/txassembler/wallet/chain/p/builder"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

const (
	metricsNamespace = "txbuilder"

	memoKey = "memo"
)

// wallet holds everything a command needs to build a transaction. It is
// populated before any command runs.
type wallet struct {
	config   config.Config
	log      logging.Logger
	registry *prometheus.Registry
	backend  p.Backend
	builder  builder.Builder
}

func newCommand() *cobra.Command {
	w := &wallet{}
	cmd := &cobra.Command{
		Use:               "txbuilder",
		Short:             "Builds unsigned P-chain transactions from a UTXO snapshot",
		SilenceUsage:      true,
		PersistentPreRunE: w.init,
		PersistentPostRun: w.reportMetrics,
	}

	flags := cmd.PersistentFlags()
	config.AddFlags(flags)
	flags.String(memoKey, "", "Memo to attach to the transaction")

	cmd.AddCommand(
		balanceCommand(w),
		transferCommand(w),
		exportCommand(w),
		importCommand(w),
		addValidatorCommand(w),
		addDelegatorCommand(w),
		addSubnetValidatorCommand(w),
		createSubnetCommand(w),
		createChainCommand(w),
	)
	return cmd
}

func (w *wallet) init(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	v, err := config.BuildViper(flags)
	if err != nil {
		return err
	}
	w.config, err = config.GetConfig(v)
	if err != nil {
		return err
	}

	w.log = logging.NewLoggerFromConfig(w.config.Logging, nopCloser{cmd.ErrOrStderr()})

	ctx := cmd.Context()
	w.backend = p.NewBackend()
	if w.config.SnapshotFile != "" {
		if err := loadSnapshot(ctx, w.config.SnapshotFile, w.backend); err != nil {
			return err
		}
	}

	w.registry = prometheus.NewRegistry()
	m, err := metrics.New(metricsNamespace, w.registry)
	if err != nil {
		return err
	}

	memo, err := flags.GetString(memoKey)
	if err != nil {
		return err
	}

	w.builder = p.NewBuilderWithOptions(
		p.NewBuilderWithMetrics(
			builder.New(
				w.config.Addresses,
				&w.config.Context,
				w.backend,
				w.log,
			),
			m,
		),
		common.WithContext(ctx),
		common.WithChangeAddresses(w.config.ChangeAddresses),
		common.WithIssuanceAt(w.config.IssuanceAt(time.Now())),
		common.WithMemo([]byte(memo)),
	)

	w.log.Debug("initialized wallet",
		zap.Uint32("networkID", w.config.Context.NetworkID),
		zap.Int("numAddresses", w.config.Addresses.Len()),
		zap.String("snapshot", w.config.SnapshotFile),
	)
	return nil
}

func (w *wallet) reportMetrics(*cobra.Command, []string) {
	families, err := w.registry.Gather()
	if err != nil {
		w.log.Warn("failed to gather metrics",
			zap.Error(err),
		)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if value := metric.GetCounter().GetValue(); value > 0 {
				w.log.Debug("metric",
					zap.String("name", family.GetName()),
					zap.Float64("value", value),
				)
			}
		}
	}
}

// printJSON writes [v] as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
