// Package hal defines the boundary between the NAN coordinator and the
// hardware abstraction layer that drives the radio.
//
// The coordinator consumes a Commander: every method issues one command
// tagged with a 16-bit transaction id and returns without waiting for the
// radio. Results come back later through the Callbacks interface, which the
// coordinator implements. Responses are correlated by transaction id only;
// they may arrive in any order.
//
// # Identifiers
//
//   - Transaction id: minted by the coordinator per command (uint16).
//   - Publish/subscribe id: assigned by the HAL once a publish or subscribe
//     succeeds. Zero means "create a new one".
//   - Peer instance id: the requestor instance id the HAL reports with a
//     match or a received message. It stays stable while the peer's MAC
//     address rotates.
//
// # Status Codes
//
// The HAL reports a Status for command failures and a TerminateReason when
// a publish or subscribe ends on its own. Both are collapsed into
// application-visible reasons by the coordinator and never leak further.
package hal
