// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package supervisor runs the client's background services under suture v4.

The tree is small:

	RootSupervisor ("tourguide")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (if store.gc_interval > 0 and the store is on disk)
	└── StatusSupervisor ("status-layer")
	    └── HTTPServerService (if status.addr is set)

Crashed services are restarted with suture's failure decay and backoff.
Supervisor events are logged through sutureslog, which writes to the
zerolog global logger via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStatusService(services.NewHTTPServerService(server, 5*time.Second))
	errCh := tree.ServeBackground(ctx)
	// run the shell, then cancel ctx
	<-errCh

Services implement suture.Service and should implement fmt.Stringer so
log lines name them.
*/
package supervisor
