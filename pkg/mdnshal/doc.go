// Package mdnshal is a hal.Commander that emulates NAN discovery with
// DNS-SD over multicast DNS. Publishes become service registrations and
// subscribes become browses, so several hosts on one LAN can exercise the
// coordinator without NAN hardware.
//
// Follow-up messages have no DNS-SD equivalent; SendMessage always fails
// with hal.StatusProtocolFailure.
package mdnshal
