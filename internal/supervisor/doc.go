// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package supervisor provides process supervision for DogMatch using suture v4.

# Overview

	RootSupervisor ("dogmatch")
	├── ModelSupervisor ("model-layer")
	│   └── ModelWarmupService (if artifacts.preload)
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService
	    ├── UptimeService
	    └── CacheSweepService (when the result cache is enabled)

The warm-up service loads the model artifacts once and then leaves the tree.
Load failures restart it with the tree's failure backoff; the API layer is
unaffected and keeps serving health checks (503 until the model loads).

Supervisor events go through sutureslog into the zerolog pipeline via
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddModelService(services.NewModelWarmupService(handle))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

# Shutdown

Canceling the context stops every service. Services that do not return
within ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
