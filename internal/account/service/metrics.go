package service

import (
	"github.com/profiled/accounts/internal/account/domain"
	"github.com/profiled/accounts/internal/observability/metrics"
)

func incrementAccountsCreated() {
	metrics.AccountsCreated.Inc()
}

func incrementLoginsSucceeded() {
	metrics.LoginsSucceeded.Inc()
}

func incrementLoginsFailed() {
	metrics.LoginsFailed.Inc()
}

func incrementSessionTokensIssued() {
	metrics.SessionTokensIssued.Inc()
}

func incrementSessionTokensRevoked(n int) {
	metrics.SessionTokensRevoked.Add(float64(n))
}

func addSessionTokensPruned(n int) {
	metrics.SessionTokensPruned.Add(float64(n))
}

func incrementPasswordChanges() {
	metrics.PasswordChanges.Inc()
}

func incrementProfileUpdates(field domain.ProfileField) {
	metrics.ProfileUpdates.WithLabelValues(string(field)).Inc()
}
