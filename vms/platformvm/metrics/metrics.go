// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/txassembler/utils/wrappers"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	// Mark that the given transaction was built
	MarkBuilt(txs.UnsignedTx) error
	// Mark that a build failed because the UTXOs could not cover it
	MarkInsufficientFunds()
	// Mark that a build failed for any other reason
	MarkFailed()
}

type metrics struct {
	txMetrics *txMetrics

	numInsufficientFunds prometheus.Counter
	numFailed            prometheus.Counter
}

func New(
	namespace string,
	registerer prometheus.Registerer,
) (Metrics, error) {
	txMetrics, err := newTxMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}

	m := &metrics{
		txMetrics: txMetrics,
		numInsufficientFunds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insufficient_funds",
			Help:      "Number of builds that failed due to insufficient funds",
		}),
		numFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures",
			Help:      "Number of builds that failed for reasons other than insufficient funds",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.numInsufficientFunds),
		registerer.Register(m.numFailed),
	)
	return m, errs.Err
}

func (m *metrics) MarkBuilt(tx txs.UnsignedTx) error {
	return tx.Visit(m.txMetrics)
}

func (m *metrics) MarkInsufficientFunds() {
	m.numInsufficientFunds.Inc()
}

func (m *metrics) MarkFailed() {
	m.numFailed.Inc()
}
