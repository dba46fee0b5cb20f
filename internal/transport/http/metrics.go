package httptransport

import "expvar"

var (
	metricLoginTotal  = expvar.NewInt("login_total")
	metricLoginErrors = expvar.NewInt("login_errors_total")

	metricSlotSpinTotal      = expvar.NewInt("slot_spin_total")
	metricRouletteSpinTotal  = expvar.NewInt("roulette_spin_total")
	metricSpinRejectedTotal  = expvar.NewInt("spin_rejected_total")
	metricSettleFailureTotal = expvar.NewInt("settle_failure_total")
)
