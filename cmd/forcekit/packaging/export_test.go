// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package packaging

import (
	"time"

	"github.com/juju/clock"
	"github.com/juju/cmd/v3"

	"github.com/forcekit/forcekit/orgstore"
)

func NewCreateVersionCommandForTest(store orgstore.ClientStore, api CreateVersionAPI, clk clock.Clock, interval time.Duration) cmd.Command {
	command := &createVersionCommand{api: api, clock: clk, pollInterval: interval}
	command.SetClientStore(store)
	return command
}

func NewShowVersionRequestCommandForTest(store orgstore.ClientStore, api ShowVersionRequestAPI) cmd.Command {
	command := &showVersionRequestCommand{api: api}
	command.SetClientStore(store)
	return command
}

func NewListRequestsCommandForTest(store orgstore.ClientStore, api ListRequestsAPI) cmd.Command {
	command := &listRequestsCommand{api: api}
	command.SetClientStore(store)
	return command
}

func NewListPackagesCommandForTest(store orgstore.ClientStore, api ListPackagesAPI) cmd.Command {
	command := &listPackagesCommand{api: api}
	command.SetClientStore(store)
	return command
}

func NewListVersionsCommandForTest(store orgstore.ClientStore, api ListVersionsAPI) cmd.Command {
	command := &listVersionsCommand{api: api}
	command.SetClientStore(store)
	return command
}

func NewShowVersionCommandForTest(store orgstore.ClientStore, api ShowVersionAPI) cmd.Command {
	command := &showVersionCommand{api: api}
	command.SetClientStore(store)
	return command
}

var (
	InstallURL         = installURL
	ParseVersionNumber = parseVersionNumber
)
