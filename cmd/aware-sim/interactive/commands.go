package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
)

func parseClient(arg string) (aware.ClientID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client id: %s", arg)
	}
	return aware.ClientID(id), nil
}

func parseSession(arg string) (aware.SessionID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid session id: %s", arg)
	}
	return aware.SessionID(id), nil
}

func parseUint32(name, arg string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, arg)
	}
	return uint32(v), nil
}

// parseConfig parses "5g pref=N low=N high=N" in any order.
func parseConfig(args []string) (hal.ConfigRequest, error) {
	req := hal.DefaultConfigRequest()
	for _, arg := range args {
		if strings.EqualFold(arg, "5g") {
			req.Support5g = true
			continue
		}
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return req, fmt.Errorf("invalid option: %s", arg)
		}
		switch key = strings.ToLower(key); key {
		case "pref":
			v, err := strconv.ParseUint(val, 10, 8)
			if err != nil {
				return req, fmt.Errorf("invalid master preference: %s", val)
			}
			req.MasterPreference = uint8(v)
		case "low", "high":
			v, err := strconv.ParseUint(val, 0, 16)
			if err != nil {
				return req, fmt.Errorf("invalid cluster id: %s", val)
			}
			if key == "low" {
				req.ClusterLow = uint16(v)
			} else {
				req.ClusterHigh = uint16(v)
			}
		default:
			return req, fmt.Errorf("unknown option: %s", key)
		}
	}
	return req, req.Validate()
}

func (s *Shell) cmdConnect(args []string) {
	if len(args) < 1 {
		s.println("Usage: connect <client>")
		return
	}
	id, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if err := s.mgr.Connect(id, &clientPrinter{shell: s, id: id}, aware.ListenAllEvents); err != nil {
		s.printf("Connect failed: %v\n", err)
		return
	}
	s.printf("Client %d connected\n", id)
}

func (s *Shell) cmdDisconnect(args []string) {
	if len(args) < 1 {
		s.println("Usage: disconnect <client>")
		return
	}
	id, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if err := s.mgr.Disconnect(id); err != nil {
		s.printf("Disconnect failed: %v\n", err)
		return
	}
	s.printf("Client %d disconnected\n", id)
}

func (s *Shell) cmdConfig(args []string) {
	if len(args) < 1 {
		s.println("Usage: config <client> [5g] [pref=N] [low=N] [high=N]")
		return
	}
	id, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	req, err := parseConfig(args[1:])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if err := s.mgr.RequestConfig(id, req); err != nil {
		s.printf("Config failed: %v\n", err)
		return
	}
	s.printf("Requested %s for client %d\n", req, id)
}

// sessionArgs parses "<client> <session> <service> [info]" and creates the
// session if needed.
func (s *Shell) sessionArgs(kind aware.SessionKind, usage string, args []string) (aware.ClientID, aware.SessionID, string, []byte, bool) {
	if len(args) < 3 {
		s.println(usage)
		return 0, 0, "", nil, false
	}
	clientID, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return 0, 0, "", nil, false
	}
	sessionID, err := parseSession(args[1])
	if err != nil {
		s.printf("Error: %v\n", err)
		return 0, 0, "", nil, false
	}
	var info []byte
	if len(args) > 3 {
		info = []byte(strings.Join(args[3:], " "))
	}

	listener := &sessionPrinter{shell: s, client: clientID, session: sessionID}
	if err := s.mgr.CreateSession(clientID, sessionID, kind, listener, aware.ListenAllSessionEvents); err != nil {
		s.printf("Create session failed: %v\n", err)
		return 0, 0, "", nil, false
	}
	return clientID, sessionID, args[2], info, true
}

func (s *Shell) cmdPublish(args []string) {
	clientID, sessionID, service, info, ok := s.sessionArgs(aware.SessionPublish, "Usage: publish <client> <session> <service> [info]", args)
	if !ok {
		return
	}
	data := hal.PublishData{ServiceName: service, ServiceSpecificInfo: info}
	settings := hal.PublishSettings{Type: hal.PublishUnsolicited}
	if err := s.mgr.Publish(clientID, sessionID, data, settings); err != nil {
		s.printf("Publish failed: %v\n", err)
		return
	}
	s.printf("Publishing %q on %d/%d\n", service, clientID, sessionID)
}

func (s *Shell) cmdSubscribe(args []string) {
	clientID, sessionID, service, info, ok := s.sessionArgs(aware.SessionSubscribe, "Usage: subscribe <client> <session> <service> [info]", args)
	if !ok {
		return
	}
	data := hal.SubscribeData{ServiceName: service, ServiceSpecificInfo: info}
	settings := hal.SubscribeSettings{Type: hal.SubscribePassive}
	if err := s.mgr.Subscribe(clientID, sessionID, data, settings); err != nil {
		s.printf("Subscribe failed: %v\n", err)
		return
	}
	s.printf("Subscribing to %q on %d/%d\n", service, clientID, sessionID)
}

func (s *Shell) cmdSend(args []string) {
	if len(args) < 4 {
		s.println("Usage: send <client> <session> <peer> <message>")
		return
	}
	clientID, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	sessionID, err := parseSession(args[1])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	peerID, err := parseUint32("peer id", args[2])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	s.nextMessageID++
	msgID := s.nextMessageID
	payload := []byte(strings.Join(args[3:], " "))
	if err := s.mgr.SendMessage(clientID, sessionID, peerID, payload, msgID); err != nil {
		s.printf("Send failed: %v\n", err)
		return
	}
	s.printf("Message %d queued to peer %d\n", msgID, peerID)
}

func (s *Shell) cmdDestroy(args []string) {
	if len(args) < 2 {
		s.println("Usage: destroy <client> <session>")
		return
	}
	clientID, err := parseClient(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	sessionID, err := parseSession(args[1])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if err := s.mgr.DestroySession(clientID, sessionID); err != nil {
		s.printf("Destroy failed: %v\n", err)
		return
	}
	s.printf("Session %d/%d destroyed\n", clientID, sessionID)
}

func (s *Shell) cmdCaps() {
	err := s.mgr.RequestCapabilities(func(caps hal.Capabilities) {
		s.printf("[CAPS] publishes=%d subscribes=%d clusters=%d ssi=%d\n",
			caps.MaxPublishes, caps.MaxSubscribes, caps.MaxConcurrentClusters, caps.MaxServiceSpecificInfoLen)
	})
	if err != nil {
		s.printf("Capabilities failed: %v\n", err)
	}
}

func (s *Shell) cmdStatus(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	snap, err := s.mgr.Snapshot(ctx)
	if err != nil {
		s.printf("Status failed: %v\n", err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nCoordinator %s\n", s.mgr.InstanceID())
	fmt.Fprintln(&b, "-------------------------------------------")
	fmt.Fprintf(&b, "  Requested:   %s\n", formatConfig(snap.RequestedConfig))
	fmt.Fprintf(&b, "  Current:     %s\n", formatConfig(snap.CurrentConfig))
	fmt.Fprintf(&b, "  Interface:   %s\n", snap.InterfaceAddress)
	fmt.Fprintf(&b, "  Cluster:     %s\n", snap.ClusterID)
	fmt.Fprintf(&b, "  Pending txs: %d\n", snap.PendingTransactions)
	fmt.Fprintf(&b, "  Known peers: %d\n", snap.KnownPeers)
	fmt.Fprintf(&b, "  Clients (%d): %v\n", len(snap.Clients), snap.Clients)
	fmt.Fprintf(&b, "  Sessions (%d):\n", len(snap.Sessions))
	for _, si := range snap.Sessions {
		halID := "unassigned"
		if si.HalID != 0 {
			halID = strconv.FormatUint(uint64(si.HalID), 10)
		}
		fmt.Fprintf(&b, "    %d/%d %s hal=%s\n", si.ClientID, si.SessionID, si.Kind, halID)
	}
	s.printf("%s", b.String())
}

func formatConfig(c *hal.ConfigRequest) string {
	if c == nil {
		return "disabled"
	}
	return c.String()
}

func (s *Shell) requireSim() bool {
	if s.sim == nil {
		s.println("Not available: the radio is not simulated")
		return false
	}
	return true
}

func (s *Shell) cmdPeer(args []string) {
	if !s.requireSim() {
		return
	}
	if len(args) < 2 {
		s.println("Usage: peer add <service> [info] [echo] | peer rotate <peer> <mac> | peer send <peer> <message>")
		return
	}

	switch strings.ToLower(args[0]) {
	case "add":
		p := halsim.Peer{ServiceName: args[1]}
		rest := args[2:]
		if n := len(rest); n > 0 && strings.EqualFold(rest[n-1], "echo") {
			p.Echo = true
			rest = rest[:n-1]
		}
		if len(rest) > 0 {
			p.ServiceSpecificInfo = []byte(strings.Join(rest, " "))
		}
		id, err := s.sim.AddPeer(p)
		if err != nil {
			s.printf("Add peer failed: %v\n", err)
			return
		}
		s.printf("Peer %d publishing %q\n", id, p.ServiceName)

	case "rotate":
		if len(args) < 3 {
			s.println("Usage: peer rotate <peer> <mac>")
			return
		}
		id, err := parseUint32("peer id", args[1])
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		mac, err := hal.ParseMAC(args[2])
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		if err := s.sim.RotatePeerMAC(id, mac); err != nil {
			s.printf("Rotate failed: %v\n", err)
			return
		}
		s.printf("Peer %d now at %s\n", id, mac)

	case "send":
		if len(args) < 3 {
			s.println("Usage: peer send <peer> <message>")
			return
		}
		id, err := parseUint32("peer id", args[1])
		if err != nil {
			s.printf("Error: %v\n", err)
			return
		}
		if err := s.sim.SendFromPeer(id, []byte(strings.Join(args[2:], " "))); err != nil {
			s.printf("Send failed: %v\n", err)
		}

	default:
		s.printf("Unknown peer command: %s\n", args[0])
	}
}

func parseTerminateReason(arg string) (hal.TerminateReason, error) {
	switch strings.ToLower(arg) {
	case "done", "count":
		return hal.TerminateCountReached, nil
	case "timeout":
		return hal.TerminateTimeout, nil
	case "user":
		return hal.TerminateUserRequest, nil
	case "fail", "failure":
		return hal.TerminateFailure, nil
	}
	return 0, fmt.Errorf("unknown reason: %s", arg)
}

func (s *Shell) cmdTerminate(args []string) {
	if !s.requireSim() {
		return
	}
	if len(args) < 1 {
		s.println("Usage: terminate <pubsub-id> [done|timeout|user|fail]")
		return
	}
	id, err := parseUint32("pubsub id", args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	reason := hal.TerminateCountReached
	if len(args) > 1 {
		if reason, err = parseTerminateReason(args[1]); err != nil {
			s.printf("Error: %v\n", err)
			return
		}
	}
	if err := s.sim.Terminate(id, reason); err != nil {
		s.printf("Terminate failed: %v\n", err)
	}
}

func (s *Shell) cmdNanDown() {
	if !s.requireSim() {
		return
	}
	if err := s.sim.NanDown(hal.StatusInternalFailure); err != nil {
		s.printf("NAN down failed: %v\n", err)
	}
}

func (s *Shell) cmdCluster(args []string) {
	if !s.requireSim() {
		return
	}
	if len(args) < 1 {
		s.println("Usage: cluster <mac>")
		return
	}
	mac, err := hal.ParseMAC(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	if err := s.sim.JoinCluster(mac); err != nil {
		s.printf("Join failed: %v\n", err)
	}
}
