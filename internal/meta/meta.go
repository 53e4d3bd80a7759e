// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/nuoa-io/nuoa-swe/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context and the writer reports are printed to.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Out     io.Writer
}
