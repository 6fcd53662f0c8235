// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package viewmodel holds the presentation state behind each console
// page. View models take their collaborators (stores, reporter,
// clock) as explicit constructor arguments; failures that terminate a
// user action are forwarded to the Reporter and never retried.
package viewmodel

import (
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("maasnetview.viewmodel")

// Reporter receives failures that end a user action. Implementations
// surface them to the operator; callers fire and forget.
type Reporter interface {
	RaiseError(error)
}

type logReporter struct{}

// NewLogReporter returns a Reporter that writes raised errors to the
// package log.
func NewLogReporter() Reporter {
	return logReporter{}
}

func (logReporter) RaiseError(err error) {
	logger.Errorf("%v", err)
}
