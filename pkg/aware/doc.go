// Package aware implements the NAN coordinator: it multiplexes one Wi-Fi
// Aware (Neighbor Awareness Networking) radio across many independent
// clients.
//
// # Responsibilities
//
//   - Correlate each HAL command with its asynchronous response through a
//     16-bit transaction id (TransactionTable).
//   - Merge every client's ConfigRequest into one device-wide configuration
//     whenever the client set or a request changes (MergeConfigs).
//   - Track publish/subscribe sessions per client, including the id the HAL
//     assigns to them and its reuse for later updates.
//   - Keep peer addressing stable while peers rotate their MAC address
//     (PeerIdentityMap).
//
// # Execution Model
//
// A Manager owns all of this state and mutates it from a single goroutine.
// Public operations and HAL callbacks are posted to an ordered, unbounded
// mailbox and return immediately; each posted step runs to completion
// before the next starts, so no locking is needed around the registries.
// Waiting for the radio is represented only as a pending transaction.
//
//	mgr := aware.NewManager(commander, aware.DefaultConfig())
//	if err := mgr.Start(ctx); err != nil {
//	    return err
//	}
//	defer mgr.Stop()
//
//	// The HAL driver delivers results to the Manager.
//	driver.SetCallbacks(mgr)
//
//	_ = mgr.Connect(1001, listener, aware.ListenConfigCompleted)
//	_ = mgr.RequestConfig(1001, hal.ConfigRequest{ClusterLow: 5, ClusterHigh: 100})
//
// # Delivery Rules
//
// A result is delivered at most once, and only to a listener whose client
// (and session) still exists when the result is processed. Results for
// torn-down owners are dropped silently; their transactions are still
// resolved and removed. Unknown transaction ids are logged and ignored.
package aware
