// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/txassembler/utils/wrappers"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
)

var _ txs.Visitor = (*txMetrics)(nil)

type txMetrics struct {
	numBaseTxs,
	numImportTxs,
	numExportTxs,
	numAddValidatorTxs,
	numAddDelegatorTxs,
	numAddSubnetValidatorTxs,
	numCreateSubnetTxs,
	numCreateChainTxs prometheus.Counter
}

func newTxMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*txMetrics, error) {
	errs := wrappers.Errs{}
	m := &txMetrics{
		numBaseTxs:               newTxMetric(namespace, "base", registerer, &errs),
		numImportTxs:             newTxMetric(namespace, "import", registerer, &errs),
		numExportTxs:             newTxMetric(namespace, "export", registerer, &errs),
		numAddValidatorTxs:       newTxMetric(namespace, "add_validator", registerer, &errs),
		numAddDelegatorTxs:       newTxMetric(namespace, "add_delegator", registerer, &errs),
		numAddSubnetValidatorTxs: newTxMetric(namespace, "add_subnet_validator", registerer, &errs),
		numCreateSubnetTxs:       newTxMetric(namespace, "create_subnet", registerer, &errs),
		numCreateChainTxs:        newTxMetric(namespace, "create_chain", registerer, &errs),
	}
	return m, errs.Err
}

func newTxMetric(
	namespace string,
	txName string,
	registerer prometheus.Registerer,
	errs *wrappers.Errs,
) prometheus.Counter {
	txMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      fmt.Sprintf("%s_txs_built", txName),
		Help:      fmt.Sprintf("Number of %s transactions built", txName),
	})
	errs.Add(registerer.Register(txMetric))
	return txMetric
}

func (m *txMetrics) BaseTx(*txs.BaseTx) error {
	m.numBaseTxs.Inc()
	return nil
}

func (m *txMetrics) ImportTx(*txs.ImportTx) error {
	m.numImportTxs.Inc()
	return nil
}

func (m *txMetrics) ExportTx(*txs.ExportTx) error {
	m.numExportTxs.Inc()
	return nil
}

func (m *txMetrics) AddValidatorTx(*txs.AddValidatorTx) error {
	m.numAddValidatorTxs.Inc()
	return nil
}

func (m *txMetrics) AddDelegatorTx(*txs.AddDelegatorTx) error {
	m.numAddDelegatorTxs.Inc()
	return nil
}

func (m *txMetrics) AddSubnetValidatorTx(*txs.AddSubnetValidatorTx) error {
	m.numAddSubnetValidatorTxs.Inc()
	return nil
}

func (m *txMetrics) CreateSubnetTx(*txs.CreateSubnetTx) error {
	m.numCreateSubnetTxs.Inc()
	return nil
}

func (m *txMetrics) CreateChainTx(*txs.CreateChainTx) error {
	m.numCreateChainTxs.Inc()
	return nil
}
